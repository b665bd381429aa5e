package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"size:16;default:user" json:"role"` // "user" | "admin"

	// Null until the onboarding questionnaire is filled in.
	Profile *UserProfile `json:"profile"`
}

// UserProfile carries the questionnaire answers plus the four derived daily
// targets. The targets are recomputed together by utils.CalculateNeeds on every
// profile update; they are never written individually.
type UserProfile struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null" json:"-"`

	Gender        string  `gorm:"size:16" json:"gender"` // "male" | "female"
	Age           int     `json:"age"`
	Height        float64 `json:"height"`        // cm
	CurrentWeight float64 `json:"currentWeight"` // kg
	GoalWeight    float64 `json:"goalWeight"`    // kg
	ActivityLevel string  `gorm:"size:32" json:"activityLevel"`

	// Comma-separated tag lists.
	Goals               string `gorm:"type:text" json:"goals"`
	DietaryRestrictions string `gorm:"type:text" json:"dietaryRestrictions"`
	Allergies           string `gorm:"type:text" json:"allergies"`

	TargetCalories int `json:"targetCalories"`
	TargetProteins int `json:"targetProteins"`
	TargetCarbs    int `json:"targetCarbs"`
	TargetFats     int `json:"targetFats"`
}

func (p *UserProfile) GoalList() []string        { return SplitTags(p.Goals) }
func (p *UserProfile) RestrictionList() []string { return SplitTags(p.DietaryRestrictions) }
func (p *UserProfile) AllergyList() []string     { return SplitTags(p.Allergies) }
