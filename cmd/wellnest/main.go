package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/wellnest/internal/cli"
	"github.com/julianstephens/wellnest/internal/storage"
	"github.com/julianstephens/wellnest/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/wellnest/wellnest.db" env:"WELLNEST_CONFIG"`

	Init      cli.InitCmd      `cmd:"" help:"Initialize wellnest storage."`
	Tui       cli.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Dashboard cli.DashboardCmd `cmd:"" help:"Show today's cross-domain summary."`
	Budget    cli.BudgetCmd    `cmd:"" help:"Show or set the monthly budget."`
	Habit     struct {
		Log  cli.HabitLogCmd  `cmd:"" help:"Adjust a habit's progress for today."`
		Show cli.HabitShowCmd `cmd:"" help:"Show habit progress and streak."`
	} `cmd:"" help:"Track daily habits."`
	Expense struct {
		Add    cli.ExpenseAddCmd    `cmd:"" help:"Log an expense."`
		List   cli.ExpenseListCmd   `cmd:"" help:"List expenses with totals and breakdown."`
		Delete cli.ExpenseDeleteCmd `cmd:"" help:"Delete an expense."`
	} `cmd:"" help:"Track spending."`
	Journal struct {
		Add    cli.JournalAddCmd    `cmd:"" help:"Log or update today's mood/energy check-in."`
		List   cli.JournalListCmd   `cmd:"" help:"List journal entries."`
		Stats  cli.JournalStatsCmd  `cmd:"" help:"Show the mood histogram."`
		Delete cli.JournalDeleteCmd `cmd:"" help:"Delete a journal entry."`
	} `cmd:"" help:"Keep a mood and energy journal."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("wellnest"),
		kong.Description("Personal wellness tracker: habits, expenses, and mood journaling"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:   store,
		Tracker: tracker.New(store),
	}

	err := ctx.Run(appCtx)
	if closeErr := store.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
