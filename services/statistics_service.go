package services

import (
	"fmt"
	"math"
	"time"

	"github.com/irsyadst/nutri-balance-backend/models"

	"gorm.io/gorm"
)

type StatisticsService struct{ db *gorm.DB }

func NewStatisticsService(db *gorm.DB) *StatisticsService { return &StatisticsService{db: db} }

// StatisticsSummary is the dashboard aggregate for one period. All consumed
// figures are daily averages over the window so weekly and monthly periods
// stay comparable to daily ones.
type StatisticsSummary struct {
	Period               string             `json:"period"`
	CaloriesAverage      float64            `json:"caloriesAverage"`
	CalorieChangePercent float64            `json:"calorieChangePercent"`
	MacroRatio           string             `json:"macroRatio"` // "carb/protein/fat" whole percents
	MacroChangePercent   float64            `json:"macroChangePercent"`
	CaloriesPerMealType  map[string]float64 `json:"caloriesPerMealType"`
	MacroPercentages     map[string]float64 `json:"macroPercentages"`
}

// statsWindow is an inclusive [Start, End] day range.
type statsWindow struct {
	Start time.Time
	End   time.Time
	Days  int
}

// resolveWindows returns the current window containing ref and the
// equal-length immediately-preceding window.
//   - daily: today and yesterday
//   - weekly: the ISO Monday-Sunday week and the one before it
//   - monthly: the calendar month and the one before it (day counts differ
//     and are tracked per window)
func resolveWindows(period string, ref time.Time) (cur, prev statsWindow, err error) {
	switch period {
	case "daily":
		day := dayStart(ref)
		cur = statsWindow{Start: day, End: day, Days: 1}
		y := day.AddDate(0, 0, -1)
		prev = statsWindow{Start: y, End: y, Days: 1}
	case "weekly":
		monday := startOfWeek(ref)
		cur = statsWindow{Start: monday, End: monday.AddDate(0, 0, 6), Days: 7}
		prevMonday := monday.AddDate(0, 0, -7)
		prev = statsWindow{Start: prevMonday, End: prevMonday.AddDate(0, 0, 6), Days: 7}
	case "monthly":
		first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		last := first.AddDate(0, 1, -1)
		cur = statsWindow{Start: first, End: last, Days: last.Day()}
		prevFirst := first.AddDate(0, -1, 0)
		prevLast := first.AddDate(0, 0, -1)
		prev = statsWindow{Start: prevFirst, End: prevLast, Days: prevLast.Day()}
	default:
		err = ErrInvalidPeriod
	}
	return
}

// windowTotals sums quantity-scaled macros of logged entries, keeping a
// per-meal-type calorie breakdown.
type windowTotals struct {
	calories float64
	proteins float64
	carbs    float64
	fats     float64
	perMeal  map[string]float64
}

func aggregateLogs(entries []models.FoodLogEntry) windowTotals {
	t := windowTotals{perMeal: make(map[string]float64)}
	for _, e := range entries {
		t.calories += e.Calories * e.Quantity
		t.proteins += e.Proteins * e.Quantity
		t.carbs += e.Carbs * e.Quantity
		t.fats += e.Fats * e.Quantity
		t.perMeal[e.MealType] += e.Calories * e.Quantity
	}
	return t
}

func (t windowTotals) macroGrams() float64 { return t.proteins + t.carbs + t.fats }

// percentChange is defined as 0 when the previous value is 0 or equals the
// current one: it guards divide-by-zero and mutes noise on empty baselines.
func percentChange(current, previous float64) float64 {
	if previous == 0 || current == previous {
		return 0
	}
	return (current - previous) / previous * 100
}

// macroRatio renders each macro's share of total calories (4 kcal/g for
// protein and carbs, 9 kcal/g for fat) as a "carb/protein/fat" string of
// whole percents, plus the underlying percentages. All-zero when there are no
// calories.
func macroRatio(t windowTotals) (string, map[string]float64) {
	if t.calories <= 0 {
		return "0/0/0", map[string]float64{"carbs": 0, "proteins": 0, "fats": 0}
	}
	carbPct := t.carbs * 4 / t.calories * 100
	protPct := t.proteins * 4 / t.calories * 100
	fatPct := t.fats * 9 / t.calories * 100
	ratio := fmt.Sprintf("%d/%d/%d",
		int(math.Round(carbPct)), int(math.Round(protPct)), int(math.Round(fatPct)))
	return ratio, map[string]float64{"carbs": carbPct, "proteins": protPct, "fats": fatPct}
}

func buildSummary(period string, cur, prev windowTotals, curDays, prevDays int) StatisticsSummary {
	curAvgCal := avg(cur.calories, curDays)
	prevAvgCal := avg(prev.calories, prevDays)

	perMeal := make(map[string]float64, len(cur.perMeal))
	for mealType, cal := range cur.perMeal {
		perMeal[mealType] = avg(cal, curDays)
	}

	ratio, pcts := macroRatio(cur)

	return StatisticsSummary{
		Period:               period,
		CaloriesAverage:      curAvgCal,
		CalorieChangePercent: percentChange(curAvgCal, prevAvgCal),
		MacroRatio:           ratio,
		MacroChangePercent:   percentChange(avg(cur.macroGrams(), curDays), avg(prev.macroGrams(), prevDays)),
		CaloriesPerMealType:  perMeal,
		MacroPercentages:     pcts,
	}
}

// Summary computes the period aggregate for a user around a reference date.
func (s *StatisticsService) Summary(userID uint, ref time.Time, period string) (*StatisticsSummary, error) {
	cur, prev, err := resolveWindows(period, ref)
	if err != nil {
		return nil, err
	}

	curLogs, err := s.logsInWindow(userID, cur)
	if err != nil {
		return nil, err
	}
	prevLogs, err := s.logsInWindow(userID, prev)
	if err != nil {
		return nil, err
	}

	out := buildSummary(period, aggregateLogs(curLogs), aggregateLogs(prevLogs), cur.Days, prev.Days)
	return &out, nil
}

func (s *StatisticsService) logsInWindow(userID uint, w statsWindow) ([]models.FoodLogEntry, error) {
	var entries []models.FoodLogEntry
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(w.Start), dayEnd(w.End)).
		Find(&entries).Error
	return entries, err
}

// ---------- shared time helpers ----------

func avg(sum float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return round2(sum / float64(n))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// startOfWeek returns the Monday of the ISO week containing t.
func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return dayStart(t).AddDate(0, 0, -(wd - 1))
}
