package services

import (
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/irsyadst/nutri-balance-backend/models"
)

func localDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestResolveWindowsDaily(t *testing.T) {
	ref := time.Date(2024, 5, 15, 14, 30, 0, 0, time.Local)
	cur, prev, err := resolveWindows("daily", ref)
	if err != nil {
		t.Fatal(err)
	}
	if !cur.Start.Equal(localDate(2024, 5, 15)) || cur.Days != 1 {
		t.Errorf("current window = %+v, want 2024-05-15 for 1 day", cur)
	}
	if !prev.Start.Equal(localDate(2024, 5, 14)) || prev.Days != 1 {
		t.Errorf("previous window = %+v, want 2024-05-14 for 1 day", prev)
	}
}

func TestResolveWindowsWeeklyStartsMonday(t *testing.T) {
	// 2024-05-15 is a Wednesday.
	cur, prev, err := resolveWindows("weekly", localDate(2024, 5, 15))
	if err != nil {
		t.Fatal(err)
	}
	if cur.Start.Weekday() != time.Monday {
		t.Errorf("current week starts on %v, want Monday", cur.Start.Weekday())
	}
	if !cur.Start.Equal(localDate(2024, 5, 13)) || !cur.End.Equal(localDate(2024, 5, 19)) || cur.Days != 7 {
		t.Errorf("current week = %+v, want Mon 13th .. Sun 19th", cur)
	}
	if !prev.Start.Equal(localDate(2024, 5, 6)) || !prev.End.Equal(localDate(2024, 5, 12)) || prev.Days != 7 {
		t.Errorf("previous week = %+v, want Mon 6th .. Sun 12th", prev)
	}

	// A Monday reference is its own week start; a Sunday belongs to the week
	// begun the previous Monday.
	cur, _, _ = resolveWindows("weekly", localDate(2024, 5, 13))
	if !cur.Start.Equal(localDate(2024, 5, 13)) {
		t.Errorf("Monday ref: week start %v, want the same day", cur.Start)
	}
	cur, _, _ = resolveWindows("weekly", localDate(2024, 5, 19))
	if !cur.Start.Equal(localDate(2024, 5, 13)) {
		t.Errorf("Sunday ref: week start %v, want previous Monday", cur.Start)
	}
}

func TestResolveWindowsMonthlyDayCounts(t *testing.T) {
	cases := []struct {
		ref               time.Time
		curDays, prevDays int
	}{
		{localDate(2024, 2, 10), 29, 31}, // leap February, previous January
		{localDate(2023, 2, 10), 28, 31},
		{localDate(2024, 3, 15), 31, 29}, // previous is leap February
		{localDate(2024, 5, 1), 31, 30},
	}
	for _, tc := range cases {
		cur, prev, err := resolveWindows("monthly", tc.ref)
		if err != nil {
			t.Fatal(err)
		}
		if cur.Days != tc.curDays {
			t.Errorf("%v: current days = %d, want %d", tc.ref, cur.Days, tc.curDays)
		}
		if prev.Days != tc.prevDays {
			t.Errorf("%v: previous days = %d, want %d", tc.ref, prev.Days, tc.prevDays)
		}
		if cur.Start.Day() != 1 {
			t.Errorf("%v: month window starts on day %d, want 1", tc.ref, cur.Start.Day())
		}
	}
}

func TestResolveWindowsInvalidPeriod(t *testing.T) {
	if _, _, err := resolveWindows("yearly", time.Now()); err != ErrInvalidPeriod {
		t.Fatalf("err = %v, want ErrInvalidPeriod", err)
	}
}

func TestPercentChange(t *testing.T) {
	cases := []struct {
		current, previous, want float64
	}{
		{0, 0, 0},
		{1200, 0, 0},   // zero baseline is defined as no change
		{500, 500, 0},  // equal values are noise, not change
		{150, 100, 50},
		{75, 100, -25},
	}
	for _, tc := range cases {
		if got := percentChange(tc.current, tc.previous); got != tc.want {
			t.Errorf("percentChange(%v, %v) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
	}
}

func TestAggregateLogsScalesByQuantity(t *testing.T) {
	entries := []models.FoodLogEntry{
		{MealType: models.MealBreakfast, Quantity: 2, Calories: 130, Proteins: 3, Carbs: 28},
		{MealType: models.MealLunch, Quantity: 1.5, Calories: 165, Proteins: 31, Fats: 4},
		{MealType: models.MealLunch, Quantity: 1, Calories: 50, Proteins: 2, Carbs: 10, Fats: 1},
	}
	got := aggregateLogs(entries)

	wantCalories := 2*130 + 1.5*165 + 50.0
	if got.calories != wantCalories {
		t.Errorf("calories = %v, want %v", got.calories, wantCalories)
	}
	if got.perMeal[models.MealBreakfast] != 260 {
		t.Errorf("breakfast calories = %v, want 260", got.perMeal[models.MealBreakfast])
	}
	if got.perMeal[models.MealLunch] != 1.5*165+50 {
		t.Errorf("lunch calories = %v, want %v", got.perMeal[models.MealLunch], 1.5*165+50)
	}
	if got.proteins != 2*3+1.5*31+2 {
		t.Errorf("proteins = %v", got.proteins)
	}
}

func TestMacroRatioSumsToHundred(t *testing.T) {
	totals := windowTotals{calories: 2000, proteins: 150, carbs: 225, fats: 56}
	ratio, pcts := macroRatio(totals)

	parts := strings.Split(ratio, "/")
	if len(parts) != 3 {
		t.Fatalf("ratio %q not carb/protein/fat shaped", ratio)
	}
	sum := 0
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			t.Fatalf("ratio %q: %v", ratio, err)
		}
		sum += n
	}
	if math.Abs(float64(sum-100)) > 1 {
		t.Errorf("ratio %q sums to %d, want ~100", ratio, sum)
	}

	pctSum := pcts["carbs"] + pcts["proteins"] + pcts["fats"]
	if math.Abs(pctSum-100) > 1 {
		t.Errorf("percentages sum to %v, want ~100", pctSum)
	}
}

func TestMacroRatioZeroCalories(t *testing.T) {
	ratio, pcts := macroRatio(windowTotals{})
	if ratio != "0/0/0" {
		t.Errorf("ratio = %q, want 0/0/0", ratio)
	}
	for k, v := range pcts {
		if v != 0 {
			t.Errorf("%s = %v, want 0", k, v)
		}
	}
}

func TestBuildSummaryAveragesByWindowDays(t *testing.T) {
	cur := windowTotals{
		calories: 14000, proteins: 700, carbs: 1400, fats: 420,
		perMeal: map[string]float64{models.MealBreakfast: 3500, models.MealDinner: 10500},
	}
	prev := windowTotals{calories: 7000, proteins: 350, carbs: 700, fats: 210, perMeal: map[string]float64{}}

	out := buildSummary("weekly", cur, prev, 7, 7)

	if out.CaloriesAverage != 2000 {
		t.Errorf("CaloriesAverage = %v, want 2000", out.CaloriesAverage)
	}
	if out.CalorieChangePercent != 100 {
		t.Errorf("CalorieChangePercent = %v, want 100", out.CalorieChangePercent)
	}
	if out.CaloriesPerMealType[models.MealBreakfast] != 500 {
		t.Errorf("breakfast average = %v, want 500", out.CaloriesPerMealType[models.MealBreakfast])
	}
	if out.MacroChangePercent != 100 {
		t.Errorf("MacroChangePercent = %v, want 100", out.MacroChangePercent)
	}
}

func TestBuildSummaryEmptyPrevious(t *testing.T) {
	cur := windowTotals{calories: 1800, proteins: 90, carbs: 200, fats: 60, perMeal: map[string]float64{}}
	out := buildSummary("daily", cur, windowTotals{perMeal: map[string]float64{}}, 1, 1)

	if out.CalorieChangePercent != 0 {
		t.Errorf("CalorieChangePercent = %v, want 0 with empty baseline", out.CalorieChangePercent)
	}
	if out.MacroChangePercent != 0 {
		t.Errorf("MacroChangePercent = %v, want 0 with empty baseline", out.MacroChangePercent)
	}
}
