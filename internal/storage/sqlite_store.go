package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/money"
)

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := runMigrations(s.path); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'wellnest init' first")
	}

	if err := runMigrations(s.path); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) AddExpense(expense models.Expense) error {
	_, err := s.db.Exec(`
		INSERT INTO expenses (id, amount_cents, category, description, date, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, int64(expense.Amount), expense.Category, expense.Description,
		expense.Date, expense.CreatedAt,
	)
	return err
}

func (s *SQLiteStore) GetExpenses() ([]models.Expense, error) {
	// Newest-first by insertion; rowid breaks same-millisecond ties
	rows, err := s.db.Query(`
		SELECT id, amount_cents, category, description, date, created_at
		FROM expenses ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		var cents int64
		if err := rows.Scan(&e.ID, &cents, &e.Category, &e.Description, &e.Date, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Amount = money.Amount(cents)
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

func (s *SQLiteStore) DeleteExpense(id string) error {
	// Absent ID deletes zero rows, which is fine
	_, err := s.db.Exec(`DELETE FROM expenses WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) SaveEntry(entry models.JournalEntry) error {
	tagsJSON, err := json.Marshal(entry.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO journal_entries (id, date, mood, energy, notes, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			date = excluded.date,
			mood = excluded.mood,
			energy = excluded.energy,
			notes = excluded.notes,
			tags = excluded.tags`,
		entry.ID, entry.Date, entry.Mood, entry.Energy, entry.Notes,
		string(tagsJSON), entry.CreatedAt,
	)
	return err
}

func (s *SQLiteStore) GetEntries() ([]models.JournalEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, date, mood, energy, notes, tags, created_at
		FROM journal_entries ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.JournalEntry{}
	for rows.Next() {
		var e models.JournalEntry
		var mood, energy, tags string
		if err := rows.Scan(&e.ID, &e.Date, &mood, &energy, &e.Notes, &tags, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Mood = models.Mood(mood)
		e.Energy = models.Energy(energy)
		if tags != "" {
			if err := json.Unmarshal([]byte(tags), &e.Tags); err != nil {
				return nil, fmt.Errorf("failed to unmarshal tags for entry %s: %w", e.ID, err)
			}
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (s *SQLiteStore) DeleteEntry(id string) error {
	_, err := s.db.Exec(`DELETE FROM journal_entries WHERE id = ?`, id)
	return err
}

func (s *SQLiteStore) SaveSnapshot(date string, snap models.DaySnapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM habit_days WHERE date = ?`, date); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO habit_days (date, habit, value) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for habit, value := range snap {
		if _, err := stmt.Exec(date, habit, value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetSnapshot(date string) (models.DaySnapshot, bool, error) {
	rows, err := s.db.Query(`SELECT habit, value FROM habit_days WHERE date = ?`, date)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	snap := models.DaySnapshot{}
	for rows.Next() {
		var habit string
		var value float64
		if err := rows.Scan(&habit, &value); err != nil {
			return nil, false, err
		}
		snap[habit] = value
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}

	if len(snap) == 0 {
		return nil, false, nil
	}
	return snap, true, nil
}

func (s *SQLiteStore) GetSnapshots() (map[string]models.DaySnapshot, error) {
	rows, err := s.db.Query(`SELECT date, habit, value FROM habit_days`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(map[string]models.DaySnapshot)
	for rows.Next() {
		var date, habit string
		var value float64
		if err := rows.Scan(&date, &habit, &value); err != nil {
			return nil, err
		}
		if days[date] == nil {
			days[date] = models.DaySnapshot{}
		}
		days[date][habit] = value
	}

	return days, rows.Err()
}

func (s *SQLiteStore) GetBudget() (money.Amount, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = 'budget'`).Scan(&value)
	if err == sql.ErrNoRows {
		return DefaultBudget, nil
	}
	if err != nil {
		return 0, err
	}

	cents, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing budget: %w", err)
	}
	return money.Amount(cents), nil
}

func (s *SQLiteStore) SetBudget(amount money.Amount) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO settings (key, value) VALUES ('budget', ?)`,
		strconv.FormatInt(int64(amount), 10))
	return err
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
