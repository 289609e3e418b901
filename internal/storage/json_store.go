package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/money"
)

// Store is the single persisted blob: every mutation rewrites it whole.
type Store struct {
	Version  int                           `json:"version"`
	Budget   money.Amount                  `json:"budget,omitempty"`
	Expenses []models.Expense              `json:"expenses"`
	Journal  []models.JournalEntry         `json:"journal_entries"`
	Habits   map[string]models.DaySnapshot `json:"habits"`
}

// JSONStore persists the whole Store to a single file.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Two processes sharing the same storage path race on save: the last
//     writer wins and silently clobbers the other's state. Running multiple
//     wellnest processes against one file is not supported.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func emptyStore() *Store {
	return &Store{
		Version:  1,
		Expenses: []models.Expense{},
		Journal:  []models.JournalEntry{},
		Habits:   make(map[string]models.DaySnapshot),
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = emptyStore()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'wellnest init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Fail open: a corrupt blob costs at most a few weeks of manual
		// logging, while refusing to start costs the whole tool.
		slog.Warn("stored data is malformed, starting from an empty store",
			"path", s.path, "error", err)
		s.store = emptyStore()
		return nil
	}

	// Ensure collections are initialized
	if s.store.Expenses == nil {
		s.store.Expenses = []models.Expense{}
	}
	if s.store.Journal == nil {
		s.store.Journal = []models.JournalEntry{}
	}
	if s.store.Habits == nil {
		s.store.Habits = make(map[string]models.DaySnapshot)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) AddExpense(expense models.Expense) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	// Newest-first: prepend
	s.store.Expenses = append([]models.Expense{expense}, s.store.Expenses...)
	return s.save()
}

func (s *JSONStore) GetExpenses() ([]models.Expense, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	out := make([]models.Expense, len(s.store.Expenses))
	copy(out, s.store.Expenses)
	return out, nil
}

func (s *JSONStore) DeleteExpense(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	kept := s.store.Expenses[:0:0]
	for _, e := range s.store.Expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.store.Expenses) {
		// Absent ID is a no-op, not an error
		return nil
	}
	s.store.Expenses = kept
	return s.save()
}

func (s *JSONStore) SaveEntry(entry models.JournalEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	for i, existing := range s.store.Journal {
		if existing.ID == entry.ID {
			s.store.Journal[i] = entry
			return s.save()
		}
	}

	s.store.Journal = append([]models.JournalEntry{entry}, s.store.Journal...)
	return s.save()
}

func (s *JSONStore) GetEntries() ([]models.JournalEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	out := make([]models.JournalEntry, len(s.store.Journal))
	copy(out, s.store.Journal)
	return out, nil
}

func (s *JSONStore) DeleteEntry(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	kept := s.store.Journal[:0:0]
	for _, e := range s.store.Journal {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.store.Journal) {
		return nil
	}
	s.store.Journal = kept
	return s.save()
}

func (s *JSONStore) SaveSnapshot(date string, snap models.DaySnapshot) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Habits[date] = snap.Clone()
	return s.save()
}

func (s *JSONStore) GetSnapshot(date string) (models.DaySnapshot, bool, error) {
	if s.store == nil {
		return nil, false, fmt.Errorf("storage not loaded")
	}

	snap, ok := s.store.Habits[date]
	if !ok {
		return nil, false, nil
	}
	return snap.Clone(), true, nil
}

func (s *JSONStore) GetSnapshots() (map[string]models.DaySnapshot, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	out := make(map[string]models.DaySnapshot, len(s.store.Habits))
	for date, snap := range s.store.Habits {
		out[date] = snap.Clone()
	}
	return out, nil
}

func (s *JSONStore) GetBudget() (money.Amount, error) {
	if s.store == nil {
		return 0, fmt.Errorf("storage not loaded")
	}

	if s.store.Budget <= 0 {
		return DefaultBudget, nil
	}
	return s.store.Budget, nil
}

func (s *JSONStore) SetBudget(amount money.Amount) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.store.Budget = amount
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
