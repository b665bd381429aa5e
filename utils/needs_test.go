package utils

import (
	"math"
	"testing"

	"github.com/irsyadst/nutri-balance-backend/models"
)

func TestCalculateNeedsMaleModerate(t *testing.T) {
	p := &models.UserProfile{
		Gender:        "male",
		Age:           30,
		Height:        175,
		CurrentWeight: 70,
		ActivityLevel: "moderate",
	}
	CalculateNeeds(p)

	// BMR = 88.362 + 13.397*70 + 4.799*175 - 5.677*30 = 1695.667, TDEE = *1.55
	if p.TargetCalories != 2628 {
		t.Errorf("TargetCalories = %d, want 2628", p.TargetCalories)
	}
	if p.TargetCarbs != 296 {
		t.Errorf("TargetCarbs = %d, want 296", p.TargetCarbs)
	}
	if p.TargetProteins != 197 {
		t.Errorf("TargetProteins = %d, want 197", p.TargetProteins)
	}
	if p.TargetFats != 73 {
		t.Errorf("TargetFats = %d, want 73", p.TargetFats)
	}
}

func TestCalculateNeedsEnergyConsistency(t *testing.T) {
	profiles := []*models.UserProfile{
		{Gender: "male", Age: 30, Height: 175, CurrentWeight: 70, ActivityLevel: "moderate"},
		{Gender: "female", Age: 25, Height: 165, CurrentWeight: 60, ActivityLevel: "sedentary"},
		{Gender: "female", Age: 45, Height: 158, CurrentWeight: 82, ActivityLevel: "light", Goals: "weight-loss"},
		{Gender: "male", Age: 19, Height: 182, CurrentWeight: 65, ActivityLevel: "very-active", Goals: "muscle-gain"},
	}
	// Each macro is rounded to whole grams, so the reconstructed energy can
	// drift from the calorie target by at most 0.5*4 + 0.5*4 + 0.5*9 + 0.5.
	for _, p := range profiles {
		CalculateNeeds(p)
		kcal := p.TargetCarbs*4 + p.TargetProteins*4 + p.TargetFats*9
		if math.Abs(float64(kcal-p.TargetCalories)) > 9 {
			t.Errorf("macros %d kcal vs target %d kcal, want within 9", kcal, p.TargetCalories)
		}
	}
}

func TestCalculateNeedsGoalAdjustment(t *testing.T) {
	base := models.UserProfile{Gender: "female", Age: 25, Height: 165, CurrentWeight: 60, ActivityLevel: "sedentary"}

	neutral := base
	CalculateNeeds(&neutral)

	loss := base
	loss.Goals = "weight-loss"
	CalculateNeeds(&loss)
	if got := neutral.TargetCalories - loss.TargetCalories; got != 500 {
		t.Errorf("weight-loss adjustment = %d, want 500", got)
	}

	gain := base
	gain.Goals = "muscle-gain"
	CalculateNeeds(&gain)
	if got := gain.TargetCalories - neutral.TargetCalories; got != 500 {
		t.Errorf("muscle-gain adjustment = %d, want 500", got)
	}

	// Mutually exclusive by product contract; weight loss wins if both appear.
	both := base
	both.Goals = "weight-loss,muscle-gain"
	CalculateNeeds(&both)
	if both.TargetCalories != loss.TargetCalories {
		t.Errorf("both goals: TargetCalories = %d, want %d", both.TargetCalories, loss.TargetCalories)
	}
}

func TestCalculateNeedsUnknownActivityDefaultsToSedentary(t *testing.T) {
	known := models.UserProfile{Gender: "male", Age: 40, Height: 170, CurrentWeight: 75, ActivityLevel: "sedentary"}
	unknown := known
	unknown.ActivityLevel = "astronaut"

	CalculateNeeds(&known)
	CalculateNeeds(&unknown)
	if known.TargetCalories != unknown.TargetCalories {
		t.Errorf("unknown activity level: %d, want sedentary value %d", unknown.TargetCalories, known.TargetCalories)
	}
}

func TestCalculateNeedsIncompleteProfileIsNoOp(t *testing.T) {
	cases := []models.UserProfile{
		{Gender: "male", Age: 0, Height: 175, CurrentWeight: 70},
		{Gender: "male", Age: 30, Height: 0, CurrentWeight: 70},
		{Gender: "male", Age: 30, Height: 175, CurrentWeight: 0},
	}
	for _, p := range cases {
		p.TargetCalories = 2000
		p.TargetProteins = 150
		p.TargetCarbs = 225
		p.TargetFats = 56
		CalculateNeeds(&p)
		if p.TargetCalories != 2000 || p.TargetProteins != 150 || p.TargetCarbs != 225 || p.TargetFats != 56 {
			t.Errorf("incomplete profile mutated targets: %+v", p)
		}
	}

	CalculateNeeds(nil) // must not panic
}
