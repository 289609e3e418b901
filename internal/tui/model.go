package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/stats"
	"github.com/julianstephens/wellnest/internal/tracker"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHabits
	StateExpenses
	StateJournal
	StateExpenseForm
	StateJournalForm
)

// tabCount covers the cycling tabs; form states sit outside the cycle.
const tabCount = 4

type ExpenseFormModel struct {
	Amount      string
	Category    string
	Description string
}

type JournalFormModel struct {
	Mood   string
	Energy string
	Notes  string
	Tags   []string
}

type Model struct {
	tracker *tracker.Tracker
	state   SessionState
	keys    KeyMap
	help    help.Model
	gauge   progress.Model

	summary  tracker.Summary
	snapshot models.DaySnapshot
	days     map[string]models.DaySnapshot
	expenses []models.Expense
	entries  []models.JournalEntry

	habitCursor   int
	expenseCursor int
	entryCursor   int

	form        *huh.Form
	expenseForm *ExpenseFormModel
	journalForm *JournalFormModel

	statusErr string
	quitting  bool
	width     int
	height    int
}

func NewModel(trk *tracker.Tracker) Model {
	m := Model{
		tracker: trk,
		state:   StateDashboard,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		gauge:   progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.refresh()
	return m
}

// refresh re-reads every collection and re-derives the dashboard summary.
// Collections are small enough that recomputing on every mutation is the
// simplest correct thing.
func (m *Model) refresh() {
	m.summary = m.tracker.Dashboard()

	if snap, err := m.tracker.TodaySnapshot(); err == nil {
		m.snapshot = snap
	} else {
		m.snapshot = models.NewDaySnapshot()
	}
	if days, err := m.tracker.HabitDays(); err == nil {
		m.days = days
	}
	if expenses, err := m.tracker.Expenses(); err == nil {
		m.expenses = expenses
	}
	if entries, err := m.tracker.Entries(); err == nil {
		m.entries = entries
	}

	if m.expenseCursor >= len(m.expenses) {
		m.expenseCursor = 0
	}
	if m.entryCursor >= len(m.entries) {
		m.entryCursor = 0
	}
}

func (m *Model) newExpenseForm() {
	m.expenseForm = &ExpenseFormModel{Category: models.CategoryOther}

	categoryOpts := make([]huh.Option[string], 0, len(models.Categories))
	for _, c := range models.Categories {
		categoryOpts = append(categoryOpts, huh.NewOption(c, c))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Value(&m.expenseForm.Amount),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOpts...).
				Value(&m.expenseForm.Category),
			huh.NewInput().
				Title("Description").
				Placeholder("defaults to category").
				Value(&m.expenseForm.Description),
		),
	)
}

func (m *Model) newJournalForm() {
	m.journalForm = &JournalFormModel{
		Mood:   string(models.MoodGood),
		Energy: string(models.EnergyMedium),
	}
	// Editing today's check-in starts from its current values
	if entry, ok := stats.EntryForDay(m.entries, m.tracker.Now()); ok {
		m.journalForm.Mood = string(entry.Mood)
		m.journalForm.Energy = string(entry.Energy)
		m.journalForm.Notes = entry.Notes
		m.journalForm.Tags = entry.Tags
	}

	moodOpts := make([]huh.Option[string], 0, len(models.Moods))
	for _, mood := range models.Moods {
		moodOpts = append(moodOpts, huh.NewOption(string(mood), string(mood)))
	}
	energyOpts := make([]huh.Option[string], 0, len(models.EnergyLevels))
	for _, e := range models.EnergyLevels {
		energyOpts = append(energyOpts, huh.NewOption(string(e), string(e)))
	}
	tagOpts := make([]huh.Option[string], 0, len(models.QuickTags))
	for _, tag := range models.QuickTags {
		opt := huh.NewOption(tag, tag)
		for _, sel := range m.journalForm.Tags {
			if sel == tag {
				opt = opt.Selected(true)
			}
		}
		tagOpts = append(tagOpts, opt)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Mood").
				Options(moodOpts...).
				Value(&m.journalForm.Mood),
			huh.NewSelect[string]().
				Title("Energy").
				Options(energyOpts...).
				Value(&m.journalForm.Energy),
			huh.NewMultiSelect[string]().
				Title("Tags").
				Options(tagOpts...).
				Value(&m.journalForm.Tags),
			huh.NewText().
				Title("Notes").
				Value(&m.journalForm.Notes),
		),
	)
}

func (m Model) Init() tea.Cmd {
	return nil
}
