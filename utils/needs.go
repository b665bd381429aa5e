package utils

import (
	"math"

	"github.com/irsyadst/nutri-balance-backend/models"
)

// Goal tags recognized by the calorie adjustment. Mutually exclusive by
// product contract; weight loss wins if both are somehow present.
const (
	GoalWeightLoss = "weight-loss"
	GoalMuscleGain = "muscle-gain"
	goalAdjustment = 500.0
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"very-active": 1.725,
}

// CalculateNeeds derives the four daily targets from the profile's
// anthropometrics using the revised Harris-Benedict equation and writes them
// back in place. The caller persists the profile.
//
// If weight, height or age is missing the profile is left untouched; a partial
// questionnaire is a defined no-op, not an error.
func CalculateNeeds(p *models.UserProfile) {
	if p == nil || p.CurrentWeight <= 0 || p.Height <= 0 || p.Age <= 0 {
		return
	}

	var bmr float64
	if p.Gender == "male" {
		bmr = 88.362 + 13.397*p.CurrentWeight + 4.799*p.Height - 5.677*float64(p.Age)
	} else {
		bmr = 447.593 + 9.247*p.CurrentWeight + 3.098*p.Height - 4.330*float64(p.Age)
	}

	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = 1.2
	}
	tdee := bmr * mult

	goals := p.GoalList()
	if hasTag(goals, GoalWeightLoss) {
		tdee -= goalAdjustment
	} else if hasTag(goals, GoalMuscleGain) {
		tdee += goalAdjustment
	}

	// 45% carbs and 30% protein at 4 kcal/g, 25% fat at 9 kcal/g.
	p.TargetCalories = int(math.Round(tdee))
	p.TargetCarbs = int(math.Round(tdee * 0.45 / 4))
	p.TargetProteins = int(math.Round(tdee * 0.30 / 4))
	p.TargetFats = int(math.Round(tdee * 0.25 / 9))
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
