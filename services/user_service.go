package services

import (
	"github.com/irsyadst/nutri-balance-backend/config"
	"github.com/irsyadst/nutri-balance-backend/models"
	"github.com/irsyadst/nutri-balance-backend/utils"

	"gorm.io/gorm"
)

func GetUser(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.Preload("Profile").First(&user, userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ProfileInput is the questionnaire payload. Updates replace the stored
// profile wholesale; there is no partial overlay.
type ProfileInput struct {
	Gender              string   `json:"gender"`
	Age                 int      `json:"age"`
	Height              float64  `json:"height"`
	CurrentWeight       float64  `json:"currentWeight"`
	GoalWeight          float64  `json:"goalWeight"`
	ActivityLevel       string   `json:"activityLevel"`
	Goals               []string `json:"goals"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
	Allergies           []string `json:"allergies"`
}

// UpdateProfile overwrites the user's profile with the questionnaire answers
// and recomputes the four daily targets together. If the anthropometrics are
// incomplete the previous targets are carried over unchanged.
func UpdateProfile(userID uint, in ProfileInput) (*models.User, error) {
	user, err := GetUser(userID)
	if err != nil {
		return nil, err
	}

	profile := models.UserProfile{
		UserID:              userID,
		Gender:              in.Gender,
		Age:                 in.Age,
		Height:              in.Height,
		CurrentWeight:       in.CurrentWeight,
		GoalWeight:          in.GoalWeight,
		ActivityLevel:       in.ActivityLevel,
		Goals:               models.JoinTags(in.Goals),
		DietaryRestrictions: models.JoinTags(in.DietaryRestrictions),
		Allergies:           models.JoinTags(in.Allergies),
	}
	if user.Profile != nil {
		profile.ID = user.Profile.ID
		// Stale until CalculateNeeds runs; kept as-is on a no-op.
		profile.TargetCalories = user.Profile.TargetCalories
		profile.TargetProteins = user.Profile.TargetProteins
		profile.TargetCarbs = user.Profile.TargetCarbs
		profile.TargetFats = user.Profile.TargetFats
	}

	utils.CalculateNeeds(&profile)

	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	user.Profile = &profile
	return user, nil
}
