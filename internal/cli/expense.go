package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/wellnest/internal/stats"
)

type ExpenseAddCmd struct {
	Amount      string `arg:"" help:"Amount spent, e.g. 12.50."`
	Category    string `short:"c" help:"Category (Food|Transport|Shopping|Coffee|Bills|Health|Other)." default:"Other"`
	Description string `short:"m" help:"What the money went to; defaults to the category name."`
	Date        string `short:"d" help:"Date (YYYY-MM-DD); defaults to today."`
}

func (c *ExpenseAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	expense, err := ctx.Tracker.AddExpense(c.Amount, c.Category, c.Description, c.Date)
	if err != nil {
		return err
	}

	fmt.Printf("Added expense: %s %s (%s, ID: %s)\n",
		expense.Amount, expense.Description, expense.Category, expense.ID)
	return nil
}

type ExpenseListCmd struct {
	Limit int `short:"n" help:"Show at most this many expenses." default:"20"`
}

func (c *ExpenseListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	expenses, err := ctx.Tracker.Expenses()
	if err != nil {
		return err
	}
	if len(expenses) == 0 {
		fmt.Println("No expenses logged")
		return nil
	}

	now := ctx.Tracker.Now()
	fmt.Printf("Today: %s   Week: %s   Month: %s\n\n",
		stats.TodayTotal(expenses, now),
		stats.WeekTotal(expenses, now),
		stats.MonthTotal(expenses, now))

	budget, err := ctx.Tracker.Budget()
	if err == nil {
		month := stats.MonthTotal(expenses, now)
		pct := stats.BudgetPercent(month, budget)
		fmt.Printf("Budget: %s of %s %s %.0f%%\n\n", month, budget, progressBar(pct, 20), pct)
	}

	shares := stats.CategoryShares(expenses, now)
	if len(shares) > 0 {
		fmt.Println("Today by category:")
		for _, share := range shares {
			fmt.Printf("  %-10s %8s  %5.1f%%\n", share.Category, share.Amount, share.Percent)
		}
		fmt.Println()
	}

	shown := expenses
	if c.Limit > 0 && len(shown) > c.Limit {
		shown = shown[:c.Limit]
	}
	for _, e := range shown {
		desc := e.Description
		if desc == "" {
			desc = e.Category
		}
		fmt.Printf("  %s  %8s  %-10s %s  (%s)\n", e.Date, e.Amount, e.Category, desc, e.ID)
	}
	if len(expenses) > len(shown) {
		fmt.Printf("  … and %d more\n", len(expenses)-len(shown))
	}

	return nil
}

type ExpenseDeleteCmd struct {
	ID string `arg:"" help:"Expense ID to delete."`
}

func (c *ExpenseDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteExpense(strings.TrimSpace(c.ID)); err != nil {
		return err
	}
	fmt.Println("Deleted expense (if it existed)")
	return nil
}
