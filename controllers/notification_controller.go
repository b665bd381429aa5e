package controllers

import (
	"net/http"
	"strconv"

	"github.com/irsyadst/nutri-balance-backend/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Svc *services.NotificationService
}

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{Svc: svc}
}

// GET /api/user/notifications
func (h *NotificationController) List(c *gin.Context) {
	out, err := h.Svc.List(currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/user/notifications
func (h *NotificationController) Create(c *gin.Context) {
	var body struct {
		Title     string `json:"title" binding:"required"`
		Body      string `json:"body" binding:"required"`
		IconAsset string `json:"iconAsset"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n, err := h.Svc.Create(currentUserID(c), body.Title, body.Body, body.IconAsset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// PUT /api/user/notifications/:id
func (h *NotificationController) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}
	if err := h.Svc.MarkRead(currentUserID(c), uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked as read"})
}

// DELETE /api/user/notifications/:id
func (h *NotificationController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}
	if err := h.Svc.Delete(currentUserID(c), uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
