package controllers

import (
	"net/http"
	"strconv"

	"github.com/irsyadst/nutri-balance-backend/models"
	"github.com/irsyadst/nutri-balance-backend/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	Foods *services.FoodService
}

func NewAdminController(foods *services.FoodService) *AdminController {
	return &AdminController{Foods: foods}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// ---------- users ----------

func (h *AdminController) GetAllUsers(c *gin.Context) {
	users, err := services.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminController) CreateUser(c *gin.Context) {
	var input services.AdminUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := services.CreateUser(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *AdminController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input services.AdminUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := services.UpdateUser(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AdminController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := services.DeleteUser(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ---------- logs ----------

func (h *AdminController) GetAllLogs(c *gin.Context) {
	logs, err := services.ListRecentLogs()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// ---------- foods ----------

func (h *AdminController) GetAllFoods(c *gin.Context) {
	foods, err := h.Foods.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, foods)
}

func (h *AdminController) CreateFood(c *gin.Context) {
	var food models.FoodItem
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Foods.Create(&food); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, food)
}

func (h *AdminController) UpdateFood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input models.FoodItem
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	food, err := h.Foods.Update(id, &input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, food)
}

func (h *AdminController) DeleteFood(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Foods.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
