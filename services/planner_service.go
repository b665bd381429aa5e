package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/irsyadst/nutri-balance-backend/models"
	"github.com/irsyadst/nutri-balance-backend/utils"

	"gorm.io/gorm"
)

// Fixed clock strings per meal type, carried on every generated entry.
var mealTimes = map[string]string{
	models.MealBreakfast: "07:00",
	models.MealLunch:     "12:30",
	models.MealDinner:    "19:00",
	models.MealSnack:     "16:00",
}

// maxPlanDays caps custom ranges; longer requests are truncated, not rejected.
const maxPlanDays = 31

type PlannerService struct {
	db       *gorm.DB
	foods    *FoodService
	notifier *NotificationService
}

func NewPlannerService(db *gorm.DB, foods *FoodService, notifier *NotificationService) *PlannerService {
	return &PlannerService{db: db, foods: foods, notifier: notifier}
}

// ExpandPeriod turns a period selector into the list of day-truncated dates to
// generate for. "daily", "three_days" and "weekly" run from start; "custom"
// covers the inclusive [start, end] range, truncated to maxPlanDays.
func ExpandPeriod(period string, start, end time.Time) ([]time.Time, error) {
	start = dayStart(start)
	var days int
	switch period {
	case "daily":
		days = 1
	case "three_days":
		days = 3
	case "weekly":
		days = 7
	case "custom":
		end = dayStart(end)
		if end.Before(start) {
			return nil, ErrInvalidPeriod
		}
		days = int(end.Sub(start).Hours()/24) + 1
		if days > maxPlanDays {
			days = maxPlanDays
		}
	default:
		return nil, ErrInvalidPeriod
	}

	dates := make([]time.Time, days)
	for i := range dates {
		dates[i] = start.AddDate(0, 0, i)
	}
	return dates, nil
}

// GenerateForPeriod builds a plan for every date in the requested period and
// replaces any prior entries for those dates wholesale. Returns the number of
// days generated.
func (s *PlannerService) GenerateForPeriod(userID uint, period string, start, end time.Time, cfg PlannerConfig) (int, error) {
	var profile models.UserProfile
	if err := s.db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, ErrProfileIncomplete
		}
		return 0, err
	}
	if profile.TargetCalories <= 0 {
		return 0, ErrTargetsUnset
	}
	targets := DailyTargets{
		Calories: float64(profile.TargetCalories),
		Proteins: float64(profile.TargetProteins),
		Carbs:    float64(profile.TargetCarbs),
		Fats:     float64(profile.TargetFats),
	}

	pool, err := s.foods.EligibleForProfile(&profile)
	if err != nil {
		return 0, err
	}
	if len(pool) == 0 {
		return 0, ErrEmptyFoodPool
	}

	dates, err := ExpandPeriod(period, start, end)
	if err != nil {
		return 0, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var entries []models.MealPlanEntry
	for _, date := range dates {
		plan, err := GeneratePlan(rng, targets, pool, cfg)
		if err != nil {
			return 0, err
		}
		for mealType, items := range plan.Meals {
			for _, it := range items {
				entries = append(entries, models.MealPlanEntry{
					UserID:   userID,
					Date:     date,
					MealType: mealType,
					FoodID:   it.Food.ID,
					Quantity: it.Quantity,
					Time:     mealTimes[mealType],
				})
			}
		}
	}

	// Replace, never merge. The delete and the bulk insert share one
	// transaction so a crash cannot leave the range half-written.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND date IN ?", userID, dates).
			Delete(&models.MealPlanEntry{}).Error; err != nil {
			return err
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return 0, err
	}

	// Best effort: a failed notification never fails the generation response.
	if s.notifier != nil {
		body := fmt.Sprintf("Your meal plan for the next %d day(s) is ready.", len(dates))
		if _, err := s.notifier.Create(userID, "Meal plan generated", body, "meal-plan"); err != nil {
			utils.Logger.WithField("userId", userID).WithError(err).Warn("plan notification failed")
		}
	}

	return len(dates), nil
}

// PlanEntryView is a plan entry joined with its catalog row for display.
// Quantity stays a serving multiplier; DisplayQuantity is multiplier times
// the food's serving size in its serving unit.
type PlanEntryView struct {
	ID              uint            `json:"id"`
	MealType        string          `json:"mealType"`
	Time            string          `json:"time"`
	Quantity        float64         `json:"quantity"`
	Food            models.FoodItem `json:"food"`
	DisplayQuantity float64         `json:"displayQuantity"`
	DisplayUnit     string          `json:"displayUnit"`
}

// PlanForDate returns the stored plan for one day, joined with food detail.
// Entries whose food has since been deleted from the catalog are skipped,
// never fatal.
func (s *PlannerService) PlanForDate(userID uint, date time.Time) ([]PlanEntryView, error) {
	var entries []models.MealPlanEntry
	if err := s.db.
		Where("user_id = ? AND date = ?", userID, dayStart(date)).
		Order("time ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return []PlanEntryView{}, nil
	}

	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.FoodID)
	}
	var foods []models.FoodItem
	if err := s.db.Where("id IN ?", ids).Find(&foods).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]models.FoodItem, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	out := make([]PlanEntryView, 0, len(entries))
	for _, e := range entries {
		food, ok := byID[e.FoodID]
		if !ok {
			continue // dangling reference after catalog delete
		}
		out = append(out, PlanEntryView{
			ID:              e.ID,
			MealType:        e.MealType,
			Time:            e.Time,
			Quantity:        e.Quantity,
			Food:            food,
			DisplayQuantity: e.Quantity * food.ServingQuantity,
			DisplayUnit:     food.ServingUnit,
		})
	}
	return out, nil
}
