package services

import (
	"errors"
	"strings"

	"github.com/irsyadst/nutri-balance-backend/config"
	"github.com/irsyadst/nutri-balance-backend/models"
	"github.com/irsyadst/nutri-balance-backend/utils"

	"gorm.io/gorm"
)

func ListUsers() ([]models.User, error) {
	var users []models.User
	err := config.DB.Preload("Profile").Order("created_at DESC").Find(&users).Error
	return users, err
}

type AdminUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser makes an account directly, bypassing OTP verification.
func CreateUser(in AdminUserInput) (*models.User, error) {
	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = "user"
	}
	user := models.User{
		Name:     in.Name,
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Password: hashed,
		Role:     role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, errors.New("email is already registered")
	}
	return &user, nil
}

func UpdateUser(id uint, in AdminUserInput) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.Password != "" {
		hashed, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func DeleteUser(id uint) error {
	res := config.DB.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// AdminLogRow is a log entry annotated with its owner for the dashboard.
type AdminLogRow struct {
	models.FoodLogEntry
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// ListRecentLogs returns the latest 50 log entries across all users.
func ListRecentLogs() ([]AdminLogRow, error) {
	var rows []AdminLogRow
	err := config.DB.
		Table("food_log_entries").
		Select("food_log_entries.*, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = food_log_entries.user_id").
		Where("food_log_entries.deleted_at IS NULL").
		Order("food_log_entries.created_at DESC").
		Limit(50).
		Scan(&rows).Error
	return rows, err
}
