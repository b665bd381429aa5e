package services

import (
	"github.com/irsyadst/nutri-balance-backend/models"

	"gorm.io/gorm"
)

type NotificationService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewNotificationService(db *gorm.DB, hub *RealtimeHub) *NotificationService {
	return &NotificationService{db: db, hub: hub}
}

// List returns the newest 50 notifications for the user.
func (s *NotificationService) List(userID uint) ([]models.Notification, error) {
	var out []models.Notification
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&out).Error
	return out, err
}

// Create stores a notification and pushes it to any connected websocket
// clients of the owning user.
func (s *NotificationService) Create(userID uint, title, body, iconAsset string) (*models.Notification, error) {
	if iconAsset == "" {
		iconAsset = "notification"
	}
	n := &models.Notification{UserID: userID, Title: title, Body: body, IconAsset: iconAsset}
	if err := s.db.Create(n).Error; err != nil {
		return nil, err
	}
	if s.hub != nil {
		s.hub.Broadcast(userID, map[string]any{
			"kind":         "notification.created",
			"notification": n,
		})
	}
	return n, nil
}

// MarkRead flips the isRead flag, the only mutation a notification supports.
func (s *NotificationService) MarkRead(userID, id uint) error {
	res := s.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *NotificationService) Delete(userID, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Notification{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
