package models

import "gorm.io/gorm"

// TempUser holds a registration that has not verified its OTP yet. Promoted to
// a User row on successful verification, then deleted.
type TempUser struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // already hashed
	OTP      string `gorm:"size:6"`
}
