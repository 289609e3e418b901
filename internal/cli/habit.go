package cli

import (
	"fmt"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/stats"
)

type HabitLogCmd struct {
	Habit string  `arg:"" help:"Habit to adjust (water|exercise|sleep)."`
	Delta float64 `arg:"" help:"Amount to add; negative values subtract."`
}

func (c *HabitLogCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	snap, err := ctx.Tracker.AdjustHabit(c.Habit, c.Delta)
	if err != nil {
		return err
	}

	habit, _ := models.HabitByID(c.Habit)
	fmt.Printf("%s: %g/%g %s\n", habit.Name, snap[habit.ID], habit.Goal, habit.Unit)
	return nil
}

type HabitShowCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD or 'today')." default:"today"`
	Week bool   `short:"w" help:"Also show the last 7 days."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	now := ctx.Tracker.Now()
	day, err := parseDay(c.Date, now)
	if err != nil {
		return err
	}

	days, err := ctx.Tracker.HabitDays()
	if err != nil {
		return err
	}

	var snap models.DaySnapshot
	if day == stats.Day(now) {
		if snap, err = ctx.Tracker.TodaySnapshot(); err != nil {
			return err
		}
	} else if snap = days[day]; snap == nil {
		snap = models.NewDaySnapshot()
	}

	fmt.Printf("Habits for %s:\n\n", day)
	for _, habit := range models.Habits {
		value := snap[habit.ID]
		pct := stats.HabitPercent(value, habit.Goal)
		fmt.Printf("  %-14s %s %5.1f%%  (%g/%g %s)\n",
			habit.Name, progressBar(pct, 20), pct, value, habit.Goal, habit.Unit)
	}

	fmt.Printf("\nDaily progress:   %d%%\n", stats.DailyProgress(snap))
	fmt.Printf("Current streak:   %d days\n", stats.Streak(days, now))
	fmt.Printf("Logged this week: %d/7 days\n", stats.WeeklyCompletion(days, now))

	if c.Week {
		fmt.Println("\nLast 7 days:")
		for _, status := range stats.WeekSeries(days, now) {
			mark := "·"
			if status.AllMet {
				mark = "✓"
			} else if status.Logged {
				mark = "○"
			}
			fmt.Printf("  %s  %s\n", status.Date, mark)
		}
	}

	return nil
}
