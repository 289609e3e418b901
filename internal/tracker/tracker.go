// Package tracker is the mutation layer over a storage.Provider: it
// validates input, fills defaults, and writes through to storage before an
// operation is considered complete.
package tracker

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/money"
	"github.com/julianstephens/wellnest/internal/stats"
	"github.com/julianstephens/wellnest/internal/storage"
)

type Tracker struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Tracker {
	return &Tracker{
		store: store,
		now:   time.Now,
	}
}

// NewWithClock fixes "today" for tests.
func NewWithClock(store storage.Provider, now func() time.Time) *Tracker {
	return &Tracker{
		store: store,
		now:   now,
	}
}

// Now returns the tracker's current wall-clock time.
func (t *Tracker) Now() time.Time {
	return t.now()
}

func (t *Tracker) today() string {
	return stats.Day(t.now())
}

// AddExpense validates and persists a new expense. The amount must parse to
// a strictly positive value; category defaults to Other and the description
// defaults to the category name. An empty date means today.
func (t *Tracker) AddExpense(amount, category, description, date string) (models.Expense, error) {
	cents, err := money.Parse(amount)
	if err != nil {
		return models.Expense{}, fmt.Errorf("%w: amount must be a positive number, got %q", ErrValidation, amount)
	}

	if category == "" {
		category = models.CategoryOther
	}
	if !models.ValidCategory(category) {
		return models.Expense{}, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}

	if description == "" {
		description = category
	}

	if date == "" {
		date = t.today()
	} else if _, err := time.Parse(stats.DateFormat, date); err != nil {
		return models.Expense{}, fmt.Errorf("%w: invalid date %q, use YYYY-MM-DD", ErrValidation, date)
	}

	expense := models.Expense{
		ID:          uuid.New().String(),
		Amount:      cents,
		Category:    category,
		Description: description,
		Date:        date,
		CreatedAt:   t.now().UnixMilli(),
	}

	if err := t.store.AddExpense(expense); err != nil {
		return models.Expense{}, err
	}
	return expense, nil
}

func (t *Tracker) Expenses() ([]models.Expense, error) {
	return t.store.GetExpenses()
}

// DeleteExpense removes an expense by ID. Deleting an absent ID is a no-op.
func (t *Tracker) DeleteExpense(id string) error {
	return t.store.DeleteExpense(id)
}

// AdjustHabit applies delta to today's value for the given habit, clamped
// to [0, goal], and persists the whole snapshot. It returns the updated
// snapshot.
func (t *Tracker) AdjustHabit(habitID string, delta float64) (models.DaySnapshot, error) {
	habit, ok := models.HabitByID(habitID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown habit %q", ErrValidation, habitID)
	}

	snap, err := t.TodaySnapshot()
	if err != nil {
		return nil, err
	}

	value := snap[habit.ID] + delta
	if value < 0 {
		value = 0
	}
	if value > habit.Goal {
		value = habit.Goal
	}
	snap[habit.ID] = value

	if err := t.store.SaveSnapshot(t.today(), snap); err != nil {
		return nil, err
	}
	return snap, nil
}

// TodaySnapshot returns today's habit snapshot, zero-valued when nothing
// has been logged yet.
func (t *Tracker) TodaySnapshot() (models.DaySnapshot, error) {
	snap, ok, err := t.store.GetSnapshot(t.today())
	if err != nil {
		return nil, err
	}
	if !ok {
		return models.NewDaySnapshot(), nil
	}
	// Older snapshots may predate a habit; treat missing keys as zero
	for _, h := range models.Habits {
		if _, ok := snap[h.ID]; !ok {
			snap[h.ID] = 0
		}
	}
	return snap, nil
}

// HabitDays returns every stored snapshot keyed by date.
func (t *Tracker) HabitDays() (map[string]models.DaySnapshot, error) {
	return t.store.GetSnapshots()
}

// SaveJournalEntry creates or updates a mood/energy check-in for today.
// A blank ID creates a new entry; a known ID replaces that entry in place,
// keeping its original creation timestamp; an unknown ID is inserted as if
// new. All writes date the entry today.
func (t *Tracker) SaveJournalEntry(id string, mood models.Mood, energy models.Energy, notes string, tags []string) (models.JournalEntry, error) {
	if !mood.Valid() {
		return models.JournalEntry{}, fmt.Errorf("%w: unknown mood %q", ErrValidation, mood)
	}
	if !energy.Valid() {
		return models.JournalEntry{}, fmt.Errorf("%w: unknown energy level %q", ErrValidation, energy)
	}

	createdAt := t.now().UnixMilli()
	if id == "" {
		id = uuid.New().String()
	} else if entries, err := t.store.GetEntries(); err == nil {
		for _, e := range entries {
			if e.ID == id {
				createdAt = e.CreatedAt
				break
			}
		}
	}

	entry := models.JournalEntry{
		ID:        id,
		Date:      t.today(),
		Mood:      mood,
		Energy:    energy,
		Notes:     notes,
		Tags:      tags,
		CreatedAt: createdAt,
	}

	if err := t.store.SaveEntry(entry); err != nil {
		return models.JournalEntry{}, err
	}
	return entry, nil
}

func (t *Tracker) Entries() ([]models.JournalEntry, error) {
	return t.store.GetEntries()
}

// DeleteJournalEntry removes an entry by ID. Deleting an absent ID is a
// no-op.
func (t *Tracker) DeleteJournalEntry(id string) error {
	return t.store.DeleteEntry(id)
}

func (t *Tracker) Budget() (money.Amount, error) {
	return t.store.GetBudget()
}

// SetBudget parses and persists the monthly budget ceiling.
func (t *Tracker) SetBudget(amount string) (money.Amount, error) {
	cents, err := money.Parse(amount)
	if err != nil {
		return 0, fmt.Errorf("%w: budget must be a positive number, got %q", ErrValidation, amount)
	}
	if err := t.store.SetBudget(cents); err != nil {
		return 0, err
	}
	return cents, nil
}
