package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/stats"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.state == StateExpenseForm || m.state == StateJournalForm {
			if msg.String() == "esc" {
				m.state = m.formReturnState()
				m.form = nil
				return m, nil
			}
			return m.updateForm(msg)
		}

		m.statusErr = ""
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			return m.updateTab(msg)
		}
	}

	if m.state == StateExpenseForm || m.state == StateJournalForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) formReturnState() SessionState {
	if m.state == StateExpenseForm {
		return StateExpenses
	}
	return StateJournal
}

func (m Model) updateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateHabits:
		return m.updateHabits(msg)
	case StateExpenses:
		return m.updateExpenses(msg)
	case StateJournal:
		return m.updateJournal(msg)
	}
	return m, nil
}

func (m Model) updateHabits(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.habitCursor > 0 {
			m.habitCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.habitCursor < len(models.Habits)-1 {
			m.habitCursor++
		}
	case key.Matches(msg, m.keys.Increment):
		m.adjustSelectedHabit(1)
	case key.Matches(msg, m.keys.Decrement):
		m.adjustSelectedHabit(-1)
	}
	return m, nil
}

func (m *Model) adjustSelectedHabit(delta float64) {
	habit := models.Habits[m.habitCursor]
	if _, err := m.tracker.AdjustHabit(habit.ID, delta); err != nil {
		m.statusErr = err.Error()
		return
	}
	m.refresh()
}

func (m Model) updateExpenses(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.expenseCursor > 0 {
			m.expenseCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.expenseCursor < len(m.expenses)-1 {
			m.expenseCursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.newExpenseForm()
		m.state = StateExpenseForm
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if m.expenseCursor < len(m.expenses) {
			if err := m.tracker.DeleteExpense(m.expenses[m.expenseCursor].ID); err != nil {
				m.statusErr = err.Error()
			} else {
				m.refresh()
			}
		}
	}
	return m, nil
}

func (m Model) updateJournal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.entryCursor > 0 {
			m.entryCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.entryCursor < len(m.entries)-1 {
			m.entryCursor++
		}
	case key.Matches(msg, m.keys.Add):
		m.newJournalForm()
		m.state = StateJournalForm
		return m, m.form.Init()
	case key.Matches(msg, m.keys.Delete):
		if m.entryCursor < len(m.entries) {
			if err := m.tracker.DeleteJournalEntry(m.entries[m.entryCursor].ID); err != nil {
				m.statusErr = err.Error()
			} else {
				m.refresh()
			}
		}
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.state = m.formReturnState()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitForm()
		m.state = m.formReturnState()
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func (m *Model) submitForm() {
	switch m.state {
	case StateExpenseForm:
		_, err := m.tracker.AddExpense(
			m.expenseForm.Amount, m.expenseForm.Category, m.expenseForm.Description, "")
		if err != nil {
			m.statusErr = err.Error()
			return
		}
	case StateJournalForm:
		id := ""
		if entry, ok := stats.EntryForDay(m.entries, m.tracker.Now()); ok {
			id = entry.ID
		}
		_, err := m.tracker.SaveJournalEntry(id,
			models.Mood(m.journalForm.Mood), models.Energy(m.journalForm.Energy),
			m.journalForm.Notes, m.journalForm.Tags)
		if err != nil {
			m.statusErr = err.Error()
			return
		}
	}
	m.refresh()
}
