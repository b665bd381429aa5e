package controllers

import (
	"net/http"
	"time"

	"github.com/irsyadst/nutri-balance-backend/services"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	Svc *services.StatisticsService
}

func NewStatisticsController(svc *services.StatisticsService) *StatisticsController {
	return &StatisticsController{Svc: svc}
}

// GET /api/statistics/summary?date=YYYY-MM-DD&period=daily|weekly|monthly
func (h *StatisticsController) GetSummary(c *gin.Context) {
	ref := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
		ref = parsed
	}
	period := c.DefaultQuery("period", "daily")

	out, err := h.Svc.Summary(currentUserID(c), ref, period)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
