package services

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/irsyadst/nutri-balance-backend/models"

	"gorm.io/gorm"
)

var testTargets = DailyTargets{Calories: 2200, Proteins: 165, Carbs: 248, Fats: 61}

func testPool() []models.FoodItem {
	return []models.FoodItem{
		{Model: withID(1), Name: "Chicken Breast", Category: models.CategoryProteinAnimal, Calories: 165, Proteins: 31, Fats: 4},
		{Model: withID(2), Name: "Tempeh", Category: models.CategoryProteinPlant, Calories: 193, Proteins: 19, Carbs: 9, Fats: 11},
		{Model: withID(3), Name: "White Rice", Category: models.CategoryCarbohydrate, Calories: 130, Proteins: 3, Carbs: 28},
		{Model: withID(4), Name: "Sweet Potato", Category: models.CategoryCarbohydrate, Calories: 86, Proteins: 2, Carbs: 20},
		{Model: withID(5), Name: "Garden Salad", Category: models.CategoryVegetable, Calories: 50, Proteins: 2, Carbs: 10, Fats: 1},
		{Model: withID(6), Name: "Banana", Category: models.CategoryFruit, Calories: 89, Proteins: 1, Carbs: 23},
		{Model: withID(7), Name: "Plain Yogurt", Category: models.CategoryDairySnack, Calories: 59, Proteins: 10, Carbs: 4},
	}
}

func withID(id uint) gorm.Model { return gorm.Model{ID: id} }

func TestScorePlanPerfectMatchIsZero(t *testing.T) {
	actual := macroTotal{calories: testTargets.Calories, proteins: testTargets.Proteins, carbs: testTargets.Carbs, fats: testTargets.Fats}
	if got := scorePlan(actual, testTargets); got != 0 {
		t.Errorf("score at target = %v, want 0", got)
	}
}

func TestScorePlanOvershootPenalizedMoreThanUndershoot(t *testing.T) {
	base := macroTotal{calories: testTargets.Calories, proteins: testTargets.Proteins, carbs: testTargets.Carbs, fats: testTargets.Fats}
	for _, delta := range []float64{10, 100, 500} {
		over := base
		over.calories += delta
		under := base
		under.calories -= delta
		if scorePlan(over, testTargets) <= scorePlan(under, testTargets) {
			t.Errorf("delta %v: overshoot score %v not greater than undershoot score %v",
				delta, scorePlan(over, testTargets), scorePlan(under, testTargets))
		}
	}
}

func TestScorePlanZeroTargetGuard(t *testing.T) {
	targets := DailyTargets{Calories: 2000} // macro targets all zero
	actual := macroTotal{calories: 2000, proteins: 50, carbs: 100, fats: 30}
	got := scorePlan(actual, targets)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("score with zero targets = %v, want finite", got)
	}
}

func TestBuildBucketsFallbackChain(t *testing.T) {
	// No vegetable or fruit categories: both buckets must backfill from the
	// macro heuristics instead of staying empty.
	pool := []models.FoodItem{
		{Model: withID(1), Name: "Chicken", Category: models.CategoryProteinAnimal, Calories: 165, Proteins: 31},
		{Model: withID(2), Name: "Rice", Category: models.CategoryCarbohydrate, Calories: 130, Carbs: 28},
		{Model: withID(3), Name: "Miso Soup", Category: models.CategoryOther, Calories: 40, Proteins: 2, Carbs: 5},
	}
	buckets := buildBuckets(pool)

	if len(buckets[roleVegetable]) == 0 {
		t.Fatal("vegetable bucket empty, fallback did not fire")
	}
	if buckets[roleVegetable][0].Name != "Miso Soup" {
		t.Errorf("vegetable fallback picked %q, want the low-calorie item", buckets[roleVegetable][0].Name)
	}
	if len(buckets[roleProtein]) == 0 || buckets[roleProtein][0].Name != "Chicken" {
		t.Error("category match must win over fallback for the protein bucket")
	}
}

func TestBuildBucketsEmergencyItem(t *testing.T) {
	// A pool where no fallback predicate matches for some roles still yields
	// non-empty buckets via the emergency stand-in.
	pool := []models.FoodItem{
		{Model: withID(1), Name: "Butter", Category: models.CategoryOther, Calories: 717, Fats: 81},
	}
	buckets := buildBuckets(pool)
	for role := mealRole(0); role < roleCount; role++ {
		if len(buckets[role]) == 0 {
			t.Errorf("role %d bucket empty for single-item pool", role)
		}
	}
}

func TestGeneratePlanPopulatesEverySlot(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	plan, err := GeneratePlan(rng, testTargets, testPool(), DefaultPlannerConfig())
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	wantCounts := map[string]int{
		models.MealBreakfast: 2,
		models.MealLunch:     3,
		models.MealDinner:    3,
		models.MealSnack:     1,
	}
	for mealType, want := range wantCounts {
		items := plan.Meals[mealType]
		if len(items) != want {
			t.Errorf("%s has %d items, want %d", mealType, len(items), want)
		}
		for _, it := range items {
			if it.Food.Name == "" {
				t.Errorf("%s contains an unpopulated food", mealType)
			}
		}
	}
}

func TestGeneratePlanQuantitiesClampedAndHalfStepped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		plan, err := GeneratePlan(rng, testTargets, testPool(), DefaultPlannerConfig())
		if err != nil {
			t.Fatalf("GeneratePlan: %v", err)
		}
		for mealType, items := range plan.Meals {
			for _, it := range items {
				if it.Quantity < minScalingFactor || it.Quantity > maxScalingFactor {
					t.Errorf("%s %q quantity %v outside [%v, %v]",
						mealType, it.Food.Name, it.Quantity, minScalingFactor, maxScalingFactor)
				}
				if r := it.Quantity * 2; r != math.Trunc(r) {
					t.Errorf("%s %q quantity %v is not a multiple of 0.5", mealType, it.Food.Name, it.Quantity)
				}
			}
		}
	}
}

func TestGeneratePlanNeverWorseThanFirstTrial(t *testing.T) {
	pool := testPool()
	cfg := DefaultPlannerConfig()

	// Replay the generator's first draw with an identical source.
	probe := rand.New(rand.NewSource(99))
	buckets := buildBuckets(pool)
	slots := daySkeleton(cfg.IncludeSnack)
	pools := slotPools(slots, buckets)
	first, ok := sampleTrial(probe, slots, pools, testTargets)
	if !ok {
		t.Fatal("first trial unexpectedly degenerate")
	}

	rng := rand.New(rand.NewSource(99))
	plan, err := GeneratePlan(rng, testTargets, pool, cfg)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.Score > first.score {
		t.Errorf("best score %v worse than first trial %v", plan.Score, first.score)
	}
}

func TestGeneratePlanSingleItemPool(t *testing.T) {
	pool := []models.FoodItem{
		{Model: withID(1), Name: "Boiled Egg", Category: models.CategoryProteinAnimal, Calories: 78, Proteins: 6, Carbs: 1, Fats: 5},
	}
	rng := rand.New(rand.NewSource(3))
	plan, err := GeneratePlan(rng, testTargets, pool, DefaultPlannerConfig())
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	for mealType, items := range plan.Meals {
		for _, it := range items {
			if it.Food.Name != "Boiled Egg" {
				t.Errorf("%s picked %q from a single-item pool", mealType, it.Food.Name)
			}
		}
	}
}

func TestGeneratePlanZeroCaloriePoolStillReturnsPlan(t *testing.T) {
	pool := []models.FoodItem{
		{Model: withID(1), Name: "Water Gelatin", Category: models.CategoryDairySnack, Calories: 0},
	}
	rng := rand.New(rand.NewSource(5))
	plan, err := GeneratePlan(rng, testTargets, pool, DefaultPlannerConfig())
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if len(plan.Meals) == 0 {
		t.Fatal("expected a plan even when every trial is degenerate")
	}
}

func TestGeneratePlanEmptyPoolRefused(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := GeneratePlan(rng, testTargets, nil, DefaultPlannerConfig()); err != ErrEmptyFoodPool {
		t.Fatalf("err = %v, want ErrEmptyFoodPool", err)
	}
}

func TestGeneratePlanSnackToggle(t *testing.T) {
	cfg := DefaultPlannerConfig()
	cfg.IncludeSnack = false
	rng := rand.New(rand.NewSource(2))
	plan, err := GeneratePlan(rng, testTargets, testPool(), cfg)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if _, ok := plan.Meals[models.MealSnack]; ok {
		t.Error("snack slot present despite IncludeSnack=false")
	}
}

func TestExpandPeriod(t *testing.T) {
	start := time.Date(2024, 5, 1, 10, 30, 0, 0, time.Local)

	cases := []struct {
		period string
		end    time.Time
		want   int
		err    bool
	}{
		{period: "daily", want: 1},
		{period: "three_days", want: 3},
		{period: "weekly", want: 7},
		{period: "custom", end: start.AddDate(0, 0, 4), want: 5},
		{period: "custom", end: start.AddDate(0, 0, 44), want: 31}, // truncated, not rejected
		{period: "custom", end: start.AddDate(0, 0, -1), err: true},
		{period: "fortnightly", err: true},
	}
	for _, tc := range cases {
		dates, err := ExpandPeriod(tc.period, start, tc.end)
		if tc.err {
			if err == nil {
				t.Errorf("%s: expected error", tc.period)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.period, err)
			continue
		}
		if len(dates) != tc.want {
			t.Errorf("%s: %d dates, want %d", tc.period, len(dates), tc.want)
		}
		for i, d := range dates {
			if d.Hour() != 0 || d.Minute() != 0 {
				t.Errorf("%s: date %d not day-truncated: %v", tc.period, i, d)
			}
			if i > 0 && !d.Equal(dates[i-1].AddDate(0, 0, 1)) {
				t.Errorf("%s: dates not consecutive at %d", tc.period, i)
			}
		}
	}
}
