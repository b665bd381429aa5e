package services

import (
	"time"

	"github.com/irsyadst/nutri-balance-backend/models"

	"gorm.io/gorm"
)

type LogService struct {
	db    *gorm.DB
	foods *FoodService
}

func NewLogService(db *gorm.DB, foods *FoodService) *LogService {
	return &LogService{db: db, foods: foods}
}

// LogFood records a consumed food for the given day. The catalog macros are
// copied onto the entry so later edits or deletes of the food never rewrite
// history.
func (s *LogService) LogFood(userID, foodID uint, quantity float64, mealType string, date time.Time) (*models.FoodLogEntry, error) {
	food, err := s.foods.Get(foodID)
	if err != nil {
		return nil, err
	}

	entry := &models.FoodLogEntry{
		UserID:       userID,
		Date:         dayStart(date),
		MealType:     mealType,
		Quantity:     quantity,
		FoodID:       food.ID,
		FoodName:     food.Name,
		FoodCategory: food.Category,
		Calories:     food.Calories,
		Proteins:     food.Proteins,
		Carbs:        food.Carbs,
		Fats:         food.Fats,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *LogService) History(userID uint) ([]models.FoodLogEntry, error) {
	var entries []models.FoodLogEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (s *LogService) Delete(userID, entryID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", entryID, userID).Delete(&models.FoodLogEntry{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
