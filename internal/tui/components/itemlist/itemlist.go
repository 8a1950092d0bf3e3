// Package itemlist renders one day's habits and todos as a selectable
// list and emits messages for the actions taken on the selection.
package itemlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"dailyhabit/internal/models"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type ToggleTodoMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type DeleteTodoMsg struct {
	ID string
}

// Item is either a habit scheduled for the day or a todo due on it.
type Item struct {
	Habit  *models.Habit
	Todo   *models.Todo
	Done   bool
	Streak int
}

func (i Item) Title() string {
	mark := "○"
	if i.Done {
		mark = "✓"
	}
	if i.Habit != nil {
		return fmt.Sprintf("%s %s %s", mark, i.Habit.Icon, i.Habit.Title)
	}
	return fmt.Sprintf("%s %s", mark, i.Todo.Title)
}

func (i Item) Description() string {
	if i.Habit != nil {
		desc := string(i.Habit.PrimaryCategory())
		if i.Streak > 0 {
			desc += fmt.Sprintf(" | 🔥 %d day streak", i.Streak)
		}
		return desc
	}
	return "todo | due " + i.Todo.Date
}

func (i Item) FilterValue() string {
	if i.Habit != nil {
		return i.Habit.Title
	}
	return i.Todo.Title
}

type KeyMap struct {
	Toggle key.Binding
	Add    key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add habit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(items []Item, width, height int) Model {
	l := list.New(toListItems(items), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is rendered globally

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Toggle, keys.Add, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}

func (m *Model) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Habit != nil {
					return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Habit.ID} }
				}
				return m, func() tea.Msg { return ToggleTodoMsg{ID: i.Todo.ID} }
			}
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if i.Habit != nil {
					return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
				}
				return m, func() tea.Msg { return DeleteTodoMsg{ID: i.Todo.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nothing scheduled for this day.\n  Press 'a' to add a habit."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
