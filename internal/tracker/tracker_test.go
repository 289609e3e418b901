package tracker_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/money"
	"github.com/julianstephens/wellnest/internal/storage"
	"github.com/julianstephens/wellnest/internal/tracker"
)

var testNow = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newTestTracker(t *testing.T) (*tracker.Tracker, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "wellnest.json")
	store := storage.NewJSONStore(path)
	require.NoError(t, store.Init())
	require.NoError(t, store.Load())

	return tracker.NewWithClock(store, fixedClock), path
}

func reopen(t *testing.T, path string) *tracker.Tracker {
	t.Helper()

	store := storage.NewJSONStore(path)
	require.NoError(t, store.Load())
	return tracker.NewWithClock(store, fixedClock)
}

func TestAddExpense_NewestFirst(t *testing.T) {
	trk, _ := newTestTracker(t)

	first, err := trk.AddExpense("10.00", models.CategoryFood, "lunch", "")
	require.NoError(t, err)
	second, err := trk.AddExpense("5.00", models.CategoryCoffee, "", "")
	require.NoError(t, err)

	expenses, err := trk.Expenses()
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, second.ID, expenses[0].ID)
	assert.Equal(t, first.ID, expenses[1].ID)
}

func TestAddExpense_Defaults(t *testing.T) {
	trk, _ := newTestTracker(t)

	expense, err := trk.AddExpense("12.50", "", "", "")
	require.NoError(t, err)

	assert.Equal(t, models.CategoryOther, expense.Category)
	assert.Equal(t, models.CategoryOther, expense.Description)
	assert.Equal(t, "2025-03-15", expense.Date)
	assert.Equal(t, money.Amount(1250), expense.Amount)
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, testNow.UnixMilli(), expense.CreatedAt)
}

func TestAddExpense_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		category string
		date     string
	}{
		{name: "ZeroAmount", amount: "0"},
		{name: "NegativeAmount", amount: "-5"},
		{name: "NonNumericAmount", amount: "lots"},
		{name: "UnknownCategory", amount: "5.00", category: "Vacation"},
		{name: "MalformedDate", amount: "5.00", date: "15/03/2025"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trk, _ := newTestTracker(t)

			_, err := trk.AddExpense(tt.amount, tt.category, "", tt.date)
			require.Error(t, err)
			assert.ErrorIs(t, err, tracker.ErrValidation)

			// No partial state: nothing was stored
			expenses, err := trk.Expenses()
			require.NoError(t, err)
			assert.Empty(t, expenses)
		})
	}
}

func TestDeleteExpense_Idempotent(t *testing.T) {
	trk, _ := newTestTracker(t)

	expense, err := trk.AddExpense("10.00", models.CategoryFood, "", "")
	require.NoError(t, err)

	require.NoError(t, trk.DeleteExpense("no-such-id"))
	expenses, err := trk.Expenses()
	require.NoError(t, err)
	assert.Len(t, expenses, 1)

	require.NoError(t, trk.DeleteExpense(expense.ID))
	require.NoError(t, trk.DeleteExpense(expense.ID))
	expenses, err = trk.Expenses()
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestAdjustHabit_ClampInvariant(t *testing.T) {
	trk, _ := newTestTracker(t)

	// Decrement at zero stays at zero
	snap, err := trk.AdjustHabit(models.HabitWater, -1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, snap[models.HabitWater])

	// A large sequence of adjustments never escapes [0, goal]
	deltas := []float64{5, 5, 5, -20, 3, 100, -1, -0.5}
	for _, delta := range deltas {
		snap, err = trk.AdjustHabit(models.HabitWater, delta)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, snap[models.HabitWater], 0.0)
		assert.LessOrEqual(t, snap[models.HabitWater], 8.0)
	}

	// Increment past the goal clamps to the goal
	for i := 0; i < 50; i++ {
		snap, err = trk.AdjustHabit(models.HabitExercise, 10)
		require.NoError(t, err)
	}
	assert.Equal(t, 30.0, snap[models.HabitExercise])
}

func TestAdjustHabit_UnknownHabit(t *testing.T) {
	trk, _ := newTestTracker(t)

	_, err := trk.AdjustHabit("meditation", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, tracker.ErrValidation)
}

func TestAdjustHabit_WritesThrough(t *testing.T) {
	trk, path := newTestTracker(t)

	_, err := trk.AdjustHabit(models.HabitSleep, 7)
	require.NoError(t, err)

	// A fresh load from disk sees the mutation
	snap, err := reopen(t, path).TodaySnapshot()
	require.NoError(t, err)
	assert.Equal(t, 7.0, snap[models.HabitSleep])
}

func TestSaveJournalEntry_UpsertSemantics(t *testing.T) {
	trk, _ := newTestTracker(t)

	first, err := trk.SaveJournalEntry("", models.MoodGood, models.EnergyMedium, "fine", nil)
	require.NoError(t, err)
	second, err := trk.SaveJournalEntry("", models.MoodOkay, models.EnergyLow, "", nil)
	require.NoError(t, err)

	entries, err := trk.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)

	// Replacing by ID keeps the entry's position and creation timestamp
	updated, err := trk.SaveJournalEntry(first.ID, models.MoodGreat, models.EnergyHigh, "better", []string{"Exercise"})
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, updated.CreatedAt)

	entries, err = trk.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, second.ID, entries[0].ID)
	assert.Equal(t, first.ID, entries[1].ID)
	assert.Equal(t, models.MoodGreat, entries[1].Mood)

	// An unknown ID falls back to insertion
	_, err = trk.SaveJournalEntry("ghost", models.MoodLow, models.EnergyEmpty, "", nil)
	require.NoError(t, err)
	entries, err = trk.Entries()
	require.NoError(t, err)
	assert.Len(t, entries, 3)
	assert.Equal(t, "ghost", entries[0].ID)
}

func TestSaveJournalEntry_RejectsUnknownEnums(t *testing.T) {
	trk, _ := newTestTracker(t)

	_, err := trk.SaveJournalEntry("", "Ecstatic", models.EnergyHigh, "", nil)
	assert.ErrorIs(t, err, tracker.ErrValidation)

	_, err = trk.SaveJournalEntry("", models.MoodGood, "Overflowing", "", nil)
	assert.ErrorIs(t, err, tracker.ErrValidation)

	entries, err := trk.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDeleteJournalEntry_Idempotent(t *testing.T) {
	trk, _ := newTestTracker(t)

	entry, err := trk.SaveJournalEntry("", models.MoodGood, models.EnergyGood, "", nil)
	require.NoError(t, err)

	require.NoError(t, trk.DeleteJournalEntry("missing"))
	require.NoError(t, trk.DeleteJournalEntry(entry.ID))
	require.NoError(t, trk.DeleteJournalEntry(entry.ID))

	entries, err := trk.Entries()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBudget_DefaultAndSet(t *testing.T) {
	trk, _ := newTestTracker(t)

	budget, err := trk.Budget()
	require.NoError(t, err)
	assert.Equal(t, storage.DefaultBudget, budget)

	set, err := trk.SetBudget("2500")
	require.NoError(t, err)
	assert.Equal(t, money.Amount(250000), set)

	budget, err = trk.Budget()
	require.NoError(t, err)
	assert.Equal(t, money.Amount(250000), budget)

	_, err = trk.SetBudget("-10")
	assert.ErrorIs(t, err, tracker.ErrValidation)
}

func TestDashboard_ComposesAllThreeStores(t *testing.T) {
	trk, _ := newTestTracker(t)

	_, err := trk.AddExpense("150.50", models.CategoryFood, "", "")
	require.NoError(t, err)
	_, err = trk.AddExpense("49.50", models.CategoryCoffee, "", "")
	require.NoError(t, err)
	_, err = trk.AdjustHabit(models.HabitWater, 8)
	require.NoError(t, err)
	_, err = trk.AdjustHabit(models.HabitExercise, 30)
	require.NoError(t, err)
	_, err = trk.AdjustHabit(models.HabitSleep, 8)
	require.NoError(t, err)
	_, err = trk.SaveJournalEntry("", models.MoodGreat, models.EnergyHigh, "", nil)
	require.NoError(t, err)

	summary := trk.Dashboard()

	assert.Equal(t, "2025-03-15", summary.Date)
	assert.Equal(t, money.Amount(20000), summary.TodaySpend)
	assert.Equal(t, money.Amount(20000), summary.MonthSpend)
	assert.Equal(t, 100, summary.HabitProgress)
	assert.Equal(t, 1, summary.Streak)
	assert.Equal(t, 1, summary.WeeklyCompletion)
	assert.True(t, summary.JournalLogged)
	require.NotNil(t, summary.TodayEntry)
	assert.Equal(t, models.MoodGreat, summary.TodayEntry.Mood)
	assert.InDelta(t, 20.0, summary.BudgetPercent, 0.001)
}

func TestDashboard_EmptyStoresDegradeToZero(t *testing.T) {
	trk, _ := newTestTracker(t)

	summary := trk.Dashboard()

	assert.Equal(t, money.Amount(0), summary.TodaySpend)
	assert.Equal(t, 0, summary.HabitProgress)
	assert.Equal(t, 0, summary.Streak)
	assert.False(t, summary.JournalLogged)
	assert.Nil(t, summary.TodayEntry)
	assert.Equal(t, storage.DefaultBudget, summary.Budget)
}

// brokenExpenses simulates one failing store section.
type brokenExpenses struct {
	storage.Provider
}

func (b brokenExpenses) GetExpenses() ([]models.Expense, error) {
	return nil, errors.New("storage unavailable")
}

func TestDashboard_FaultIsolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellnest.json")
	base := storage.NewJSONStore(path)
	require.NoError(t, base.Init())
	require.NoError(t, base.Load())

	trk := tracker.NewWithClock(brokenExpenses{Provider: base}, fixedClock)

	_, err := trk.AdjustHabit(models.HabitWater, 4)
	require.NoError(t, err)
	_, err = trk.SaveJournalEntry("", models.MoodOkay, models.EnergyMedium, "", nil)
	require.NoError(t, err)

	summary := trk.Dashboard()

	// The failing expense read degrades to zero without touching the rest
	assert.Equal(t, money.Amount(0), summary.TodaySpend)
	assert.Equal(t, 4.0, summary.Habits[models.HabitWater])
	assert.True(t, summary.JournalLogged)
}
