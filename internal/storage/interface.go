package storage

import (
	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/money"
)

// DefaultBudget is the monthly ceiling used when no budget has been saved.
const DefaultBudget = money.Amount(100000) // 1000.00

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Expenses, newest-first
	AddExpense(models.Expense) error
	GetExpenses() ([]models.Expense, error)
	DeleteExpense(id string) error

	// Journal entries, newest-first; Save replaces by ID or prepends
	SaveEntry(models.JournalEntry) error
	GetEntries() ([]models.JournalEntry, error)
	DeleteEntry(id string) error

	// Habit snapshots keyed by calendar date (YYYY-MM-DD)
	SaveSnapshot(date string, snap models.DaySnapshot) error
	GetSnapshot(date string) (models.DaySnapshot, bool, error)
	GetSnapshots() (map[string]models.DaySnapshot, error)

	// Monthly budget; GetBudget yields DefaultBudget when unset
	GetBudget() (money.Amount, error)
	SetBudget(money.Amount) error

	// Utils
	GetConfigPath() string
}
