package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/money"
)

// Saturday, fixed so every window computation is deterministic.
var today = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func expense(amount money.Amount, category, date string) models.Expense {
	return models.Expense{
		ID:       category + "-" + date,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func TestWindowedSums(t *testing.T) {
	expenses := []models.Expense{
		expense(1000, models.CategoryFood, "2025-03-15"),      // today
		expense(2000, models.CategoryCoffee, "2025-03-12"),    // this week
		expense(4000, models.CategoryBills, "2025-03-08"),     // week boundary (today-7)
		expense(8000, models.CategoryHealth, "2025-03-01"),    // this month only
		expense(16000, models.CategoryTransport, "2025-02-28"), // last month
	}

	assert.Equal(t, money.Amount(1000), TodayTotal(expenses, today))
	// Calendar comparison: dates on or after today-7 count, including the boundary
	assert.Equal(t, money.Amount(7000), WeekTotal(expenses, today))
	assert.Equal(t, money.Amount(15000), MonthTotal(expenses, today))
}

func TestCategoryShares_Scenario(t *testing.T) {
	// Example from the product notes: 150.50 Food + 49.50 Coffee today
	expenses := []models.Expense{
		expense(15050, models.CategoryFood, "2025-03-15"),
		expense(4950, models.CategoryCoffee, "2025-03-15"),
		expense(99999, models.CategoryBills, "2025-03-14"), // yesterday, excluded
	}

	assert.Equal(t, money.Amount(20000), TodayTotal(expenses, today))

	shares := CategoryShares(expenses, today)
	byCategory := map[string]CategoryShare{}
	for _, s := range shares {
		byCategory[s.Category] = s
	}

	assert.Len(t, shares, 2)
	assert.InDelta(t, 75.25, byCategory[models.CategoryFood].Percent, 0.001)
	assert.InDelta(t, 24.75, byCategory[models.CategoryCoffee].Percent, 0.001)
}

func TestCategoryShares_SumTo100(t *testing.T) {
	expenses := []models.Expense{
		expense(333, models.CategoryFood, "2025-03-15"),
		expense(333, models.CategoryCoffee, "2025-03-15"),
		expense(334, models.CategoryOther, "2025-03-15"),
	}

	var sum float64
	for _, share := range CategoryShares(expenses, today) {
		sum += share.Percent
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestCategoryShares_EmptyTodayHasNoNaN(t *testing.T) {
	expenses := []models.Expense{
		expense(1000, models.CategoryFood, "2025-03-14"),
	}

	shares := CategoryShares(expenses, today)
	assert.Empty(t, shares)

	// Zero-amount breakdown entries would divide by zero without the guard
	zeroDay := []models.Expense{}
	for _, share := range CategoryShares(zeroDay, today) {
		assert.Equal(t, 0.0, share.Percent)
	}
}

func TestMoodShares(t *testing.T) {
	entries := []models.JournalEntry{
		{ID: "1", Mood: models.MoodGreat},
		{ID: "2", Mood: models.MoodGreat},
		{ID: "3", Mood: models.MoodOkay},
		{ID: "4", Mood: models.MoodBad},
	}

	shares := MoodShares(entries)
	assert.Len(t, shares, len(models.Moods))

	byMood := map[models.Mood]MoodShare{}
	for _, s := range shares {
		byMood[s.Mood] = s
	}
	assert.Equal(t, 2, byMood[models.MoodGreat].Count)
	assert.InDelta(t, 50.0, byMood[models.MoodGreat].Percent, 0.001)
	assert.Equal(t, 0, byMood[models.MoodGood].Count)
	assert.Equal(t, 0.0, byMood[models.MoodGood].Percent)
}

func TestMoodShares_EmptyJournal(t *testing.T) {
	for _, share := range MoodShares(nil) {
		assert.Equal(t, 0.0, share.Percent)
	}
}

func metDay() models.DaySnapshot {
	return models.DaySnapshot{
		models.HabitWater:    3,
		models.HabitExercise: 10,
		models.HabitSleep:    7,
	}
}

func TestStreak_CountsConsecutiveDays(t *testing.T) {
	days := map[string]models.DaySnapshot{
		"2025-03-15": metDay(),
		"2025-03-14": metDay(),
		"2025-03-13": metDay(),
		// gap at 03-12
		"2025-03-11": metDay(),
	}

	assert.Equal(t, 3, Streak(days, today))
}

func TestStreak_TodayNotLoggedTruncatesToZero(t *testing.T) {
	// D-2 and D-1 fully met, today absent: the walk fails on its first
	// step, so the streak reads 0 until today is logged.
	days := map[string]models.DaySnapshot{
		"2025-03-14": metDay(),
		"2025-03-13": metDay(),
	}

	assert.Equal(t, 0, Streak(days, today))
}

func TestStreak_ZeroValueBreaks(t *testing.T) {
	partial := metDay()
	partial[models.HabitSleep] = 0

	days := map[string]models.DaySnapshot{
		"2025-03-15": metDay(),
		"2025-03-14": partial,
		"2025-03-13": metDay(),
	}

	assert.Equal(t, 1, Streak(days, today))
}

func TestStreak_BoundedAt365(t *testing.T) {
	days := map[string]models.DaySnapshot{}
	for i := 0; i < 500; i++ {
		days[Day(today.AddDate(0, 0, -i))] = metDay()
	}

	assert.Equal(t, 365, Streak(days, today))
}

func TestWeeklyCompletion(t *testing.T) {
	days := map[string]models.DaySnapshot{
		"2025-03-15": metDay(),
		"2025-03-13": {models.HabitWater: 0, models.HabitExercise: 0, models.HabitSleep: 0},
		"2025-03-09": metDay(),
		"2025-03-08": metDay(), // outside the 7-day window
	}

	// Any stored snapshot counts, goals met or not
	assert.Equal(t, 3, WeeklyCompletion(days, today))
}

func TestWeekSeries(t *testing.T) {
	days := map[string]models.DaySnapshot{
		"2025-03-15": metDay(),
	}

	series := WeekSeries(days, today)
	assert.Len(t, series, 7)
	assert.Equal(t, "2025-03-09", series[0].Date)
	assert.Equal(t, "2025-03-15", series[6].Date)
	assert.True(t, series[6].AllMet)
	assert.False(t, series[0].Logged)
}

func TestDailyProgress(t *testing.T) {
	snap := models.DaySnapshot{
		models.HabitWater:    4,  // of 8
		models.HabitExercise: 15, // of 30
		models.HabitSleep:    4,  // of 8
	}

	// 23 of 46 total units
	assert.Equal(t, 50, DailyProgress(snap))
	assert.Equal(t, 0, DailyProgress(models.NewDaySnapshot()))
}

func TestHabitPercent_CapsAt100(t *testing.T) {
	assert.Equal(t, 100.0, HabitPercent(12, 8))
	assert.Equal(t, 50.0, HabitPercent(4, 8))
	assert.Equal(t, 0.0, HabitPercent(4, 0))
}

func TestBudgetPercent(t *testing.T) {
	assert.InDelta(t, 50.0, BudgetPercent(50000, 100000), 0.001)
	assert.Equal(t, 0.0, BudgetPercent(50000, 0))
	assert.InDelta(t, 150.0, BudgetPercent(150000, 100000), 0.001)
}
