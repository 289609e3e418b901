package cli

import (
	"fmt"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/stats"
)

type DashboardCmd struct{}

func (c *DashboardCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	summary := ctx.Tracker.Dashboard()

	fmt.Printf("Wellness summary for %s\n\n", summary.Date)

	fmt.Printf("Habits (%d%% of today's goals, streak %d days):\n",
		summary.HabitProgress, summary.Streak)
	for _, habit := range models.Habits {
		value := summary.Habits[habit.ID]
		pct := stats.HabitPercent(value, habit.Goal)
		fmt.Printf("  %-14s %s %g/%g %s\n",
			habit.Name, progressBar(pct, 16), value, habit.Goal, habit.Unit)
	}

	fmt.Printf("\nSpending: %s today, %s this month (%.0f%% of %s budget)\n",
		summary.TodaySpend, summary.MonthSpend, summary.BudgetPercent, summary.Budget)

	if summary.JournalLogged {
		fmt.Printf("Journal:  checked in (mood %s, energy %s)\n",
			summary.TodayEntry.Mood, summary.TodayEntry.Energy)
	} else {
		fmt.Println("Journal:  no check-in yet today")
	}

	return nil
}
