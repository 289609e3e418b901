package cli

import "fmt"

type BudgetCmd struct {
	Amount string `arg:"" optional:"" help:"New monthly budget; omit to show the current one."`
}

func (c *BudgetCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	if c.Amount == "" {
		budget, err := ctx.Tracker.Budget()
		if err != nil {
			return err
		}
		fmt.Printf("Monthly budget: %s\n", budget)
		return nil
	}

	budget, err := ctx.Tracker.SetBudget(c.Amount)
	if err != nil {
		return err
	}
	fmt.Printf("Monthly budget set to %s\n", budget)
	return nil
}
