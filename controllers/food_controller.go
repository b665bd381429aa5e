package controllers

import (
	"net/http"
	"time"

	"github.com/irsyadst/nutri-balance-backend/models"
	"github.com/irsyadst/nutri-balance-backend/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Foods   *services.FoodService
	Logs    *services.LogService
	Planner *services.PlannerService
}

func NewFoodController(foods *services.FoodService, logs *services.LogService, planner *services.PlannerService) *FoodController {
	return &FoodController{Foods: foods, Logs: logs, Planner: planner}
}

// GET /api/food/categories
func (h *FoodController) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.FoodCategories())
}

// GET /api/food/search?search=&category=
func (h *FoodController) SearchFoods(c *gin.Context) {
	out, err := h.Foods.Search(services.FoodQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/food/log
func (h *FoodController) LogFood(c *gin.Context) {
	var body struct {
		FoodID   uint    `json:"foodId" binding:"required"`
		Quantity float64 `json:"quantity" binding:"required,gt=0"`
		MealType string  `json:"mealType" binding:"required"`
		Date     string  `json:"date"` // YYYY-MM-DD, defaults to today
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if body.Date != "" {
		var err error
		date, err = time.ParseInLocation("2006-01-02", body.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
			return
		}
	}

	entry, err := h.Logs.LogFood(currentUserID(c), body.FoodID, body.Quantity, body.MealType, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "food logged", "log": entry})
}

// GET /api/food/log/history
func (h *FoodController) GetHistory(c *gin.Context) {
	entries, err := h.Logs.History(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// DELETE /api/food/log/:id
func (h *FoodController) DeleteLog(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Logs.Delete(currentUserID(c), id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "log entry deleted"})
}

// GET /api/food/meal-plan?date=YYYY-MM-DD
func (h *FoodController) GetMealPlan(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'date' query param"})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format, use YYYY-MM-DD"})
		return
	}

	plan, err := h.Planner.PlanForDate(currentUserID(c), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// POST /api/food/generate-meal-plan
func (h *FoodController) GenerateMealPlan(c *gin.Context) {
	var body struct {
		Period       string `json:"period" binding:"required"` // daily|three_days|weekly|custom
		StartDate    string `json:"startDate"`
		EndDate      string `json:"endDate"`
		IncludeSnack *bool  `json:"includeSnack"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	if body.StartDate != "" {
		var err error
		start, err = time.ParseInLocation("2006-01-02", body.StartDate, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate, use YYYY-MM-DD"})
			return
		}
	}
	end := start
	if body.EndDate != "" {
		var err error
		end, err = time.ParseInLocation("2006-01-02", body.EndDate, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate, use YYYY-MM-DD"})
			return
		}
	}

	cfg := services.DefaultPlannerConfig()
	if body.IncludeSnack != nil {
		cfg.IncludeSnack = *body.IncludeSnack
	}

	days, err := h.Planner.GenerateForPeriod(currentUserID(c), body.Period, start, end, cfg)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "meal plan generated", "daysGenerated": days})
}
