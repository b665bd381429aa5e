package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodLogEntry records an eaten food. The macro fields snapshot the catalog
// values at log time so history never changes when the referenced food is
// edited or deleted later. Immutable once created except by deletion.
type FoodLogEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"-"`
	Date     time.Time `gorm:"index;not null" json:"date"` // truncated to local midnight
	MealType string    `gorm:"size:16;not null" json:"mealType"`
	Quantity float64   `gorm:"not null" json:"quantity"` // serving multiplier

	FoodID       uint    `json:"foodId"`
	FoodName     string  `json:"foodName"`
	FoodCategory string  `json:"foodCategory"`
	Calories     float64 `json:"calories"` // per serving, as were at log time
	Proteins     float64 `json:"proteins"`
	Carbs        float64 `json:"carbs"`
	Fats         float64 `json:"fats"`
}
