package services

import (
	"math"
	"math/rand"

	"github.com/irsyadst/nutri-balance-backend/models"
)

// DailyTargets is the ephemeral value object derived from a user profile at
// generation time.
type DailyTargets struct {
	Calories float64
	Proteins float64
	Carbs    float64
	Fats     float64
}

// Tunable scoring policy. The overshoot multiplier and the double calorie
// weight encode a product decision: modest under-shoot is tolerable,
// exceeding the calorie budget is not.
const (
	calorieWeight    = 2.0
	overshootPenalty = 10.0
)

const (
	defaultTrials    = 200
	minScalingFactor = 0.5
	maxScalingFactor = 4.0
)

type macroTotal struct {
	calories float64
	proteins float64
	carbs    float64
	fats     float64
}

func (m *macroTotal) add(f models.FoodItem, qty float64) {
	m.calories += f.Calories * qty
	m.proteins += f.Proteins * qty
	m.carbs += f.Carbs * qty
	m.fats += f.Fats * qty
}

// scorePlan computes the weighted deviation between a candidate total and the
// daily targets. Lower is better, 0 is a perfect match. Calorie overage is
// penalized one-sidedly: going over budget costs overshootPenalty times the
// relative overage, going under costs only the plain relative deficit.
func scorePlan(actual macroTotal, t DailyTargets) float64 {
	calErr := math.Abs(actual.calories-t.Calories) / math.Max(t.Calories, 1)
	if actual.calories > t.Calories {
		calErr *= overshootPenalty
	}
	protErr := math.Abs(actual.proteins-t.Proteins) / math.Max(t.Proteins, 1)
	carbErr := math.Abs(actual.carbs-t.Carbs) / math.Max(t.Carbs, 1)
	fatErr := math.Abs(actual.fats-t.Fats) / math.Max(t.Fats, 1)

	return calorieWeight*calErr + protErr + carbErr + fatErr
}

// ---------- role buckets ----------

type mealRole int

const (
	roleProtein mealRole = iota
	roleCarb
	roleVegetable
	roleFruit
	roleDairySnack
	roleCount
)

// rolePrimary reports whether the item belongs to the role by category.
func rolePrimary(role mealRole, f models.FoodItem) bool {
	switch role {
	case roleProtein:
		return f.Category == models.CategoryProteinAnimal || f.Category == models.CategoryProteinPlant
	case roleCarb:
		return f.Category == models.CategoryCarbohydrate
	case roleVegetable:
		return f.Category == models.CategoryVegetable
	case roleFruit:
		return f.Category == models.CategoryFruit
	case roleDairySnack:
		return f.Category == models.CategoryDairySnack
	}
	return false
}

// roleFallbacks holds the ordered macro-based heuristics tried when a bucket
// has no category match. Strategies are applied in sequence and the first one
// that yields a non-empty bucket wins. This is the most silently-impactful
// behavior in the generator, so it stays explicit and tested.
var roleFallbacks = map[mealRole][]func(models.FoodItem) bool{
	roleProtein: {
		func(f models.FoodItem) bool { return f.Proteins > 5 },
	},
	roleCarb: {
		func(f models.FoodItem) bool { return f.Carbs > 15 },
		func(f models.FoodItem) bool { return f.Carbs > 5 },
	},
	roleVegetable: {
		func(f models.FoodItem) bool { return f.Calories < 80 },
	},
	roleFruit: {
		func(f models.FoodItem) bool { return f.Calories < 120 && f.Carbs > 5 },
		func(f models.FoodItem) bool { return f.Calories < 120 },
	},
	roleDairySnack: {
		func(f models.FoodItem) bool { return f.Calories < 250 },
	},
}

// buildBuckets partitions the pool into role buckets. Empty buckets are
// backfilled by the role's fallback chain; if the chain also comes up empty
// the first item of the pool is used as an emergency stand-in, so every
// bucket is non-empty whenever the pool is.
func buildBuckets(pool []models.FoodItem) [roleCount][]models.FoodItem {
	var buckets [roleCount][]models.FoodItem
	for role := mealRole(0); role < roleCount; role++ {
		for _, f := range pool {
			if rolePrimary(role, f) {
				buckets[role] = append(buckets[role], f)
			}
		}
		if len(buckets[role]) > 0 {
			continue
		}
		for _, accepts := range roleFallbacks[role] {
			for _, f := range pool {
				if accepts(f) {
					buckets[role] = append(buckets[role], f)
				}
			}
			if len(buckets[role]) > 0 {
				break
			}
		}
		if len(buckets[role]) == 0 && len(pool) > 0 {
			buckets[role] = []models.FoodItem{pool[0]}
		}
	}
	return buckets
}

// ---------- day skeleton ----------

type slotSpec struct {
	mealType string
	roles    []mealRole // candidates are pooled across these roles
	main     bool       // mains share the trial's scaling factor, sides stay at 1.0
}

func daySkeleton(includeSnack bool) []slotSpec {
	slots := []slotSpec{
		{models.MealBreakfast, []mealRole{roleCarb}, true},
		{models.MealBreakfast, []mealRole{roleFruit, roleDairySnack}, false},
		{models.MealLunch, []mealRole{roleProtein}, true},
		{models.MealLunch, []mealRole{roleCarb}, true},
		{models.MealLunch, []mealRole{roleVegetable}, false},
		{models.MealDinner, []mealRole{roleProtein}, true},
		{models.MealDinner, []mealRole{roleCarb}, true},
		{models.MealDinner, []mealRole{roleVegetable}, false},
	}
	if includeSnack {
		slots = append(slots, slotSpec{models.MealSnack, []mealRole{roleDairySnack, roleFruit}, false})
	}
	return slots
}

func slotPools(slots []slotSpec, buckets [roleCount][]models.FoodItem) [][]models.FoodItem {
	pools := make([][]models.FoodItem, len(slots))
	for i, s := range slots {
		for _, r := range s.roles {
			pools[i] = append(pools[i], buckets[r]...)
		}
	}
	return pools
}

// ---------- trials ----------

type trialResult struct {
	picks  []models.FoodItem // aligned with the slot list
	factor float64           // unrounded; rounding is deferred to snapshot time
	score  float64
}

// sampleTrial draws one uniformly-random item per slot, derives the shared
// scaling factor for mains from the remaining calorie budget and scores the
// result. Returns ok=false for degenerate draws whose unscaled main calories
// sum to zero.
func sampleTrial(rng *rand.Rand, slots []slotSpec, pools [][]models.FoodItem, t DailyTargets) (trialResult, bool) {
	picks := make([]models.FoodItem, len(slots))
	var sideCal, mainCal float64
	for i := range slots {
		picks[i] = pools[i][rng.Intn(len(pools[i]))]
		if slots[i].main {
			mainCal += picks[i].Calories
		} else {
			sideCal += picks[i].Calories
		}
	}
	if mainCal <= 0 {
		return trialResult{}, false
	}

	factor := (t.Calories - sideCal) / mainCal
	factor = clamp(factor, minScalingFactor, maxScalingFactor)

	var total macroTotal
	for i, f := range picks {
		if slots[i].main {
			total.add(f, factor)
		} else {
			total.add(f, 1.0)
		}
	}
	return trialResult{picks: picks, factor: factor, score: scorePlan(total, t)}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func roundHalf(v float64) float64 { return math.Round(v*2) / 2 }

// ---------- generation ----------

type PlannerConfig struct {
	Trials       int
	IncludeSnack bool
}

func DefaultPlannerConfig() PlannerConfig {
	return PlannerConfig{Trials: defaultTrials, IncludeSnack: true}
}

type PlannedItem struct {
	Food     models.FoodItem
	Quantity float64 // serving multiplier, a multiple of 0.5 for mains
}

type DayPlan struct {
	Meals map[string][]PlannedItem
	Score float64
}

// GeneratePlan assembles one day's meals from the eligible pool with a
// best-of-N randomized search: each trial samples one item per slot, scales
// the mains toward the calorie target and is scored against the daily
// targets; the lowest-scoring trial wins. The fold keeps only the running
// minimum, so candidates are independent of each other.
//
// The pool must already be filtered for the user's allergies and dietary
// restrictions. An empty pool is refused outright.
func GeneratePlan(rng *rand.Rand, t DailyTargets, pool []models.FoodItem, cfg PlannerConfig) (*DayPlan, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyFoodPool
	}
	trials := cfg.Trials
	if trials <= 0 {
		trials = defaultTrials
	}

	buckets := buildBuckets(pool)
	slots := daySkeleton(cfg.IncludeSnack)
	pools := slotPools(slots, buckets)

	var best *trialResult
	for i := 0; i < trials; i++ {
		trial, ok := sampleTrial(rng, slots, pools, t)
		if !ok {
			continue
		}
		if best == nil || trial.score < best.score {
			best = &trial
		}
	}
	if best == nil {
		// Every draw was degenerate (all mains zero-calorie). Plans must still
		// be produced for a non-empty pool, so fall back to unit portions.
		picks := make([]models.FoodItem, len(slots))
		for i := range slots {
			picks[i] = pools[i][rng.Intn(len(pools[i]))]
		}
		best = &trialResult{picks: picks, factor: 1.0}
	}

	plan := &DayPlan{Meals: make(map[string][]PlannedItem), Score: best.score}
	qtyMain := clamp(roundHalf(best.factor), minScalingFactor, maxScalingFactor)
	for i, s := range slots {
		qty := 1.0
		if s.main {
			qty = qtyMain
		}
		plan.Meals[s.mealType] = append(plan.Meals[s.mealType], PlannedItem{Food: best.picks[i], Quantity: qty})
	}
	return plan, nil
}
