package controllers

import (
	"errors"
	"net/http"

	"github.com/irsyadst/nutri-balance-backend/services"
	"github.com/irsyadst/nutri-balance-backend/utils"

	"github.com/gin-gonic/gin"
)

func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// respondServiceError maps the service error taxonomy to HTTP statuses. The
// empty-pool case is its own status because it depends on data state, not
// request shape. Unknown errors are logged internally and surfaced as a
// generic message so store details never reach the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProfileIncomplete),
		errors.Is(err, services.ErrTargetsUnset),
		errors.Is(err, services.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrEmptyFoodPool):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		utils.Logger.WithField("path", c.FullPath()).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
