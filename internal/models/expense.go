package models

import "github.com/julianstephens/wellnest/internal/money"

// Expense categories form a fixed set; CategoryOther is the fallback.
const (
	CategoryFood      = "Food"
	CategoryTransport = "Transport"
	CategoryShopping  = "Shopping"
	CategoryCoffee    = "Coffee"
	CategoryBills     = "Bills"
	CategoryHealth    = "Health"
	CategoryOther     = "Other"
)

// Categories lists all expense categories in display order.
var Categories = []string{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryCoffee,
	CategoryBills,
	CategoryHealth,
	CategoryOther,
}

// ValidCategory reports whether name is a member of the fixed category set.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Expense is a single logged expense. Expenses are immutable once created;
// the only mutation after creation is deletion by ID.
type Expense struct {
	ID          string       `json:"id"`
	Amount      money.Amount `json:"amount"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	Date        string       `json:"date"`      // YYYY-MM-DD format
	CreatedAt   int64        `json:"timestamp"` // epoch millis, insertion order
}
