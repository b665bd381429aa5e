package controllers

import (
	"net/http"

	"github.com/irsyadst/nutri-balance-backend/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	user, err := services.GetUser(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile replaces the questionnaire answers wholesale and recomputes
// the daily targets.
func UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateProfile(currentUserID(c), input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "user": user})
}
