package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// MealPlanEntry is one generated slot of a user's daily plan. Unlike
// FoodLogEntry it references the catalog row instead of snapshotting it: plans
// are forward-looking and display current catalog truth via join. Entries for a
// date set are always replaced wholesale, never merged.
type MealPlanEntry struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"-"`
	Date     time.Time `gorm:"index;not null" json:"date"` // truncated to local midnight
	MealType string    `gorm:"size:16;not null" json:"mealType"`
	FoodID   uint      `gorm:"not null" json:"foodId"`
	Quantity float64   `gorm:"not null" json:"quantity"` // serving multiplier
	Time     string    `gorm:"size:8" json:"time"`       // fixed clock string per meal type
}
