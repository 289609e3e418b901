package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/wellnest/internal/models"
	"github.com/julianstephens/wellnest/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StateHabits:
		content = m.viewHabits()
	case StateExpenses:
		content = m.viewExpenses()
	case StateJournal:
		content = m.viewJournal()
	case StateExpenseForm, StateJournalForm:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		}
	}

	sections := []string{m.viewTabs(), content}
	if m.statusErr != "" {
		sections = append(sections, errorStyle.Render("  "+m.statusErr))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Habits", "Expenses", "Journal"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewDashboard() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render("Wellness summary · "+m.summary.Date))

	fmt.Fprintf(&b, "%s  %d%% of today's goals · streak %d days · logged %d/7 days\n",
		labelStyle.Render("Habits "), m.summary.HabitProgress,
		m.summary.Streak, m.summary.WeeklyCompletion)
	for _, habit := range models.Habits {
		value := m.summary.Habits[habit.ID]
		pct := stats.HabitPercent(value, habit.Goal)
		fmt.Fprintf(&b, "  %-14s %s %g/%g %s\n",
			habit.Name, m.gauge.ViewAs(pct/100), value, habit.Goal, habit.Unit)
	}

	fmt.Fprintf(&b, "\n%s  %s today · %s this month (%.0f%% of %s budget)\n",
		labelStyle.Render("Money  "), m.summary.TodaySpend,
		m.summary.MonthSpend, m.summary.BudgetPercent, m.summary.Budget)

	if m.summary.JournalLogged {
		fmt.Fprintf(&b, "%s  checked in · mood %s · energy %s\n",
			labelStyle.Render("Journal"), m.summary.TodayEntry.Mood, m.summary.TodayEntry.Energy)
	} else {
		fmt.Fprintf(&b, "%s  %s\n",
			labelStyle.Render("Journal"), dimStyle.Render("no check-in yet today"))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewHabits() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render("Daily habits"))
	for i, habit := range models.Habits {
		value := m.snapshot[habit.ID]
		pct := stats.HabitPercent(value, habit.Goal)
		line := fmt.Sprintf("%-14s %s %g/%g %s",
			habit.Name, m.gauge.ViewAs(pct/100), value, habit.Goal, habit.Unit)
		if i == m.habitCursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nToday's progress: %d%%\n", stats.DailyProgress(m.snapshot))

	b.WriteString("\nLast 7 days: ")
	for _, day := range stats.WeekSeries(m.days, m.tracker.Now()) {
		switch {
		case day.AllMet:
			b.WriteString("✓ ")
		case day.Logged:
			b.WriteString("○ ")
		default:
			b.WriteString(dimStyle.Render("· "))
		}
	}
	b.WriteString("\n")

	return docStyle.Render(b.String())
}

func (m Model) viewExpenses() string {
	var b strings.Builder

	now := m.tracker.Now()
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render("Expenses"))
	fmt.Fprintf(&b, "Today %s · Week %s · Month %s\n\n",
		stats.TodayTotal(m.expenses, now),
		stats.WeekTotal(m.expenses, now),
		stats.MonthTotal(m.expenses, now))

	shares := stats.CategoryShares(m.expenses, now)
	if len(shares) > 0 {
		for _, share := range shares {
			fmt.Fprintf(&b, "  %-10s %8s  %5.1f%%\n", share.Category, share.Amount, share.Percent)
		}
		b.WriteString("\n")
	}

	if len(m.expenses) == 0 {
		b.WriteString(dimStyle.Render("No expenses logged. Press 'a' to add one.\n"))
	}
	for i, e := range m.expenses {
		line := fmt.Sprintf("%s  %8s  %-10s %s", e.Date, e.Amount, e.Category, e.Description)
		if i == m.expenseCursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewJournal() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render("Mood & energy journal"))

	if entry, ok := stats.EntryForDay(m.entries, m.tracker.Now()); ok {
		fmt.Fprintf(&b, "Today: mood %s · energy %s", entry.Mood, entry.Energy)
		if len(entry.Tags) > 0 {
			fmt.Fprintf(&b, " · %s", strings.Join(entry.Tags, ", "))
		}
		b.WriteString("\n\n")
	} else {
		b.WriteString(dimStyle.Render("No check-in yet today. Press 'a' to check in.\n\n"))
	}

	if len(m.entries) > 0 {
		for _, share := range stats.MoodShares(m.entries) {
			fmt.Fprintf(&b, "  %-5s %s %5.1f%% (%d)\n",
				share.Mood, m.gauge.ViewAs(share.Percent/100), share.Percent, share.Count)
		}
		b.WriteString("\n")
	}

	for i, e := range m.entries {
		line := fmt.Sprintf("%s  mood %-5s energy %-6s %s", e.Date, e.Mood, e.Energy, e.Notes)
		if i == m.entryCursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	return docStyle.Render(b.String())
}
