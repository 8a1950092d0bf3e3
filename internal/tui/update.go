package tui

import (
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"dailyhabit/internal/logger"
	"dailyhabit/internal/models"
	"dailyhabit/internal/progress"
	"dailyhabit/internal/tui/components/itemlist"
)

var (
	errEmptyTitle      = errors.New("title must not be empty")
	errBadWeeklyTarget = errors.New("must be a number between 1 and 7")
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.today.SetSize(msg.Width-4, msg.Height-7)
		return m, nil

	case itemlist.ToggleHabitMsg:
		m.toggleHabit(msg.ID)
		return m, nil

	case itemlist.ToggleTodoMsg:
		m.toggleTodo(msg.ID)
		return m, nil

	case itemlist.AddHabitMsg:
		m.previousState = m.state
		m.state = StateAddHabit
		m.newHabitForm()
		return m, m.form.Init()

	case itemlist.DeleteHabitMsg:
		m.previousState = m.state
		m.state = StateConfirmDelete
		m.deleteHabitID = msg.ID
		m.deleteTodoID = ""
		return m, nil

	case itemlist.DeleteTodoMsg:
		m.previousState = m.state
		m.state = StateConfirmDelete
		m.deleteTodoID = msg.ID
		m.deleteHabitID = ""
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		}

		if m.state == StateToday {
			switch {
			case key.Matches(msg, m.keys.PrevDay):
				m.day = m.day.AddDays(-1)
				m.refresh()
				return m, nil
			case key.Matches(msg, m.keys.NextDay):
				m.day = m.day.AddDays(1)
				m.refresh()
				return m, nil
			case key.Matches(msg, m.keys.Today):
				m.day = progress.Today()
				m.refresh()
				return m, nil
			}
		}
	}

	if m.state == StateToday {
		var cmd tea.Cmd
		m.today, cmd = m.today.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) toggleHabit(id string) {
	for i := range m.habits {
		if m.habits[i].ID != id {
			continue
		}
		completed := progress.Toggle(&m.habits[i], m.day)
		if err := m.store.UpdateHabit(m.username, m.habits[i]); err != nil {
			logger.Error("failed to save habit toggle", "err", err)
			m.statusMsg = "Failed to save: " + err.Error()
			return
		}
		if awarded := progress.AwardPoints(&m.profile, completed); awarded > 0 {
			if err := m.store.SaveProfile(m.profile); err != nil {
				logger.Error("failed to save points", "err", err)
			}
		}
		m.statusMsg = ""
		m.refresh()
		return
	}
}

func (m *Model) toggleTodo(id string) {
	for i := range m.todos {
		if m.todos[i].ID != id {
			continue
		}
		progress.ToggleTodo(&m.todos[i])
		if err := m.store.UpdateTodo(m.username, m.todos[i]); err != nil {
			logger.Error("failed to save todo toggle", "err", err)
			m.statusMsg = "Failed to save: " + err.Error()
			return
		}
		m.statusMsg = ""
		m.refresh()
		return
	}
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.submitHabitForm()
		m.state = m.previousState
		m.refresh()
	}
	return m, cmd
}

func (m *Model) submitHabitForm() {
	f := m.habitForm

	var cats []models.Category
	for _, c := range f.Categories {
		if parsed, ok := models.ParseCategory(c); ok {
			cats = append(cats, parsed)
		}
	}
	if len(cats) == 0 {
		cats = []models.Category{models.CategoryOther}
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Categories:  cats,
		Frequency:   models.FrequencyType(f.Frequency),
		CreatedAt:   progress.NowMillis(),
	}

	switch habit.Frequency {
	case models.FrequencyWeeklyDays:
		for _, d := range f.Days {
			if n, err := strconv.Atoi(d); err == nil {
				habit.FrequencyConfig.Days = append(habit.FrequencyConfig.Days, n)
			}
		}
		if len(habit.FrequencyConfig.Days) == 0 {
			// No weekdays picked; treat as daily rather than a habit
			// that can never be active.
			habit.Frequency = models.FrequencyDaily
		}
	case models.FrequencyWeeklyCount:
		n, err := strconv.Atoi(strings.TrimSpace(f.Count))
		if err != nil || n < 1 {
			n = 1
		}
		habit.FrequencyConfig.Count = n
	}

	style := models.StyleFor(habit.PrimaryCategory())
	habit.Color = style.Color
	habit.Icon = style.Icon

	if err := m.store.AddHabit(m.username, habit); err != nil {
		logger.Error("failed to add habit", "err", err)
		m.statusMsg = "Failed to add habit: " + err.Error()
		return
	}
	m.statusMsg = "Added habit: " + habit.Title
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		var err error
		if m.deleteHabitID != "" {
			err = m.store.DeleteHabit(m.username, m.deleteHabitID)
		} else if m.deleteTodoID != "" {
			err = m.store.DeleteTodo(m.username, m.deleteTodoID)
		}
		if err != nil {
			logger.Error("failed to delete", "err", err)
			m.statusMsg = "Failed to delete: " + err.Error()
		}
		m.deleteHabitID = ""
		m.deleteTodoID = ""
		m.state = m.previousState
		m.refresh()
	case "n", "N", "esc", "q":
		m.deleteHabitID = ""
		m.deleteTodoID = ""
		m.state = m.previousState
	}
	return m, nil
}
