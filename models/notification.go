package models

import "gorm.io/gorm"

type Notification struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null" json:"-"`
	Title     string `gorm:"not null" json:"title"`
	Body      string `gorm:"type:text;not null" json:"body"`
	IsRead    bool   `gorm:"default:false" json:"isRead"`
	IconAsset string `gorm:"size:64;default:notification" json:"iconAsset"`
}
