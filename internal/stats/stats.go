// Package stats derives summary views from collection snapshots. Every
// function is pure: no storage access, no wall-clock reads. Callers pass
// "today" in so results are deterministic under test.
package stats

import (
	"math"
	"time"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/money"
)

const DateFormat = "2006-01-02"

// Day formats a time as the calendar-date key used across all stores.
func Day(t time.Time) string {
	return t.Format(DateFormat)
}

// TodayTotal sums expense amounts dated today.
func TodayTotal(expenses []models.Expense, today time.Time) money.Amount {
	day := Day(today)
	var total money.Amount
	for _, e := range expenses {
		if e.Date == day {
			total += e.Amount
		}
	}
	return total
}

// WeekTotal sums expense amounts over the trailing week. The window is a
// calendar-date comparison against today minus seven days, not a rolling
// 168-hour cutoff.
func WeekTotal(expenses []models.Expense, today time.Time) money.Amount {
	cutoff := Day(today.AddDate(0, 0, -7))
	var total money.Amount
	for _, e := range expenses {
		// ISO dates compare correctly as strings
		if e.Date >= cutoff {
			total += e.Amount
		}
	}
	return total
}

// MonthTotal sums expense amounts for the current calendar month by
// date-prefix match.
func MonthTotal(expenses []models.Expense, today time.Time) money.Amount {
	prefix := today.Format("2006-01")
	var total money.Amount
	for _, e := range expenses {
		if len(e.Date) >= 7 && e.Date[:7] == prefix {
			total += e.Amount
		}
	}
	return total
}

// CategoryBreakdown maps category to summed amount for today's expenses.
func CategoryBreakdown(expenses []models.Expense, today time.Time) map[string]money.Amount {
	day := Day(today)
	breakdown := make(map[string]money.Amount)
	for _, e := range expenses {
		if e.Date == day {
			breakdown[e.Category] += e.Amount
		}
	}
	return breakdown
}

// CategoryShare is one category's slice of today's spending.
type CategoryShare struct {
	Category string
	Amount   money.Amount
	Percent  float64
}

// CategoryShares returns today's non-zero categories in fixed category
// order with their percentage of today's total. Percentages are 0 when
// today's total is 0.
func CategoryShares(expenses []models.Expense, today time.Time) []CategoryShare {
	breakdown := CategoryBreakdown(expenses, today)
	total := TodayTotal(expenses, today)

	var shares []CategoryShare
	for _, cat := range models.Categories {
		amount, ok := breakdown[cat]
		if !ok {
			continue
		}
		share := CategoryShare{Category: cat, Amount: amount}
		if total > 0 {
			share.Percent = float64(amount) / float64(total) * 100
		}
		shares = append(shares, share)
	}
	return shares
}

// MoodCounts tallies entries per mood across the whole journal.
func MoodCounts(entries []models.JournalEntry) map[models.Mood]int {
	counts := make(map[models.Mood]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	return counts
}

// MoodShare is one mood's slice of all journal entries.
type MoodShare struct {
	Mood    models.Mood
	Count   int
	Percent float64
}

// MoodShares returns per-mood counts in scale order with their percentage
// of the total entry count. Percentages are 0 when the journal is empty.
func MoodShares(entries []models.JournalEntry) []MoodShare {
	counts := MoodCounts(entries)

	shares := make([]MoodShare, 0, len(models.Moods))
	for _, mood := range models.Moods {
		share := MoodShare{Mood: mood, Count: counts[mood]}
		if len(entries) > 0 {
			share.Percent = float64(counts[mood]) / float64(len(entries)) * 100
		}
		shares = append(shares, share)
	}
	return shares
}

// EntryForDay returns the first entry matching the given day.
func EntryForDay(entries []models.JournalEntry, today time.Time) (models.JournalEntry, bool) {
	day := Day(today)
	for _, e := range entries {
		if e.Date == day {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}

// Streak counts consecutive qualifying days ending at today, walking
// backward up to a 365-day bound. A day qualifies when a snapshot exists
// and every stored habit value is strictly positive. Today not yet logged
// fails the first step and truncates the streak to 0 even mid-day; that
// matches the tracker's strict reading of "consecutive days ending today".
func Streak(days map[string]models.DaySnapshot, today time.Time) int {
	streak := 0
	for i := 0; i < 365; i++ {
		date := Day(today.AddDate(0, 0, -i))
		snap, ok := days[date]
		if !ok || !snap.AllMet() {
			break
		}
		streak++
	}
	return streak
}

// WeeklyCompletion counts days across the last 7 calendar days (today
// inclusive) that have any stored snapshot, regardless of goals met.
func WeeklyCompletion(days map[string]models.DaySnapshot, today time.Time) int {
	count := 0
	for i := 0; i < 7; i++ {
		date := Day(today.AddDate(0, 0, -i))
		if snap, ok := days[date]; ok && len(snap) > 0 {
			count++
		}
	}
	return count
}

// DayStatus summarizes one day of the weekly habit view.
type DayStatus struct {
	Date     string
	Snapshot models.DaySnapshot
	Logged   bool
	AllMet   bool
}

// WeekSeries returns the last 7 days oldest-first for the weekly view.
func WeekSeries(days map[string]models.DaySnapshot, today time.Time) []DayStatus {
	series := make([]DayStatus, 0, 7)
	for i := 6; i >= 0; i-- {
		date := Day(today.AddDate(0, 0, -i))
		snap, ok := days[date]
		series = append(series, DayStatus{
			Date:     date,
			Snapshot: snap,
			Logged:   ok && len(snap) > 0,
			AllMet:   ok && snap.AllMet(),
		})
	}
	return series
}

// DailyProgress is the sum of today's habit values over the sum of goals,
// as a percentage rounded to the nearest integer.
func DailyProgress(snap models.DaySnapshot) int {
	var current, total float64
	for _, h := range models.Habits {
		current += snap[h.ID]
		total += h.Goal
	}
	if total == 0 {
		return 0
	}
	return int(math.Round(current / total * 100))
}

// HabitPercent is one habit's progress toward its goal, capped at 100.
func HabitPercent(value, goal float64) float64 {
	if goal == 0 {
		return 0
	}
	return math.Min(100, value/goal*100)
}

// BudgetPercent is the share of the monthly budget already spent. It is 0
// when the budget is 0 and may exceed 100 when overspent.
func BudgetPercent(monthTotal, budget money.Amount) float64 {
	if budget <= 0 {
		return 0
	}
	return float64(monthTotal) / float64(budget) * 100
}
