package tracker

import (
	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/money"
	"github.com/julianstephens/wellnest/internal/stats"
	"github.com/julianstephens/wellnest/internal/storage"
)

// Summary is the cross-domain dashboard view for today.
type Summary struct {
	Date             string
	Habits           models.DaySnapshot
	HabitProgress    int
	Streak           int
	WeeklyCompletion int
	TodaySpend       money.Amount
	MonthSpend       money.Amount
	Budget           money.Amount
	BudgetPercent    float64
	JournalLogged    bool
	TodayEntry       *models.JournalEntry
}

// Dashboard composes today's view from three independent reads. A failing
// read degrades its own section to zero values and never affects the
// others; there is no shared transaction to fail.
func (t *Tracker) Dashboard() Summary {
	now := t.now()
	summary := Summary{
		Date:   stats.Day(now),
		Habits: models.NewDaySnapshot(),
		Budget: storage.DefaultBudget,
	}

	if days, err := t.store.GetSnapshots(); err == nil {
		if snap, ok := days[summary.Date]; ok {
			for id, v := range snap {
				summary.Habits[id] = v
			}
		}
		summary.Streak = stats.Streak(days, now)
		summary.WeeklyCompletion = stats.WeeklyCompletion(days, now)
	}
	summary.HabitProgress = stats.DailyProgress(summary.Habits)

	if expenses, err := t.store.GetExpenses(); err == nil {
		summary.TodaySpend = stats.TodayTotal(expenses, now)
		summary.MonthSpend = stats.MonthTotal(expenses, now)
	}
	if budget, err := t.store.GetBudget(); err == nil {
		summary.Budget = budget
	}
	summary.BudgetPercent = stats.BudgetPercent(summary.MonthSpend, summary.Budget)

	if entries, err := t.store.GetEntries(); err == nil {
		if entry, ok := stats.EntryForDay(entries, now); ok {
			summary.JournalLogged = true
			summary.TodayEntry = &entry
		}
	}

	return summary
}
