package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"dailyhabit/internal/models"
	"dailyhabit/internal/progress"
	"dailyhabit/internal/storage"
	"dailyhabit/internal/tui/components/itemlist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StateStats
	StateProfile
	StateAddHabit
	StateConfirmDelete
)

// tabCount covers the cycling tabs; form and confirm states sit outside
// the cycle.
const tabCount = 3

type HabitFormModel struct {
	Title       string
	Description string
	Categories  []string
	Frequency   string
	Days        []string
	Count       string
}

type Model struct {
	store    storage.Provider
	username string
	day      progress.Day

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	habits  []models.Habit
	todos   []models.Todo
	profile models.UserProfile
	note    string
	friends []friendSummary
	pending int

	today     itemlist.Model
	form      *huh.Form
	habitForm *HabitFormModel

	deleteHabitID string
	deleteTodoID  string
	statusMsg     string

	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, username string) Model {
	m := Model{
		store:    store,
		username: username,
		day:      progress.Today(),
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		today:    itemlist.New(nil, 0, 0),
	}
	m.refresh()
	return m
}

// friendSummary is one row of the profile tab's friend list.
type friendSummary struct {
	name    string
	avatar  string
	points  int
	percent int
}

// refresh reloads everything from the store and rebuilds the day list.
func (m *Model) refresh() {
	habits, err := m.store.GetAllHabits(m.username)
	if err == nil {
		m.habits = habits
	}
	todos, err := m.store.GetAllTodos(m.username)
	if err == nil {
		m.todos = todos
	}
	profile, err := m.store.GetProfile(m.username)
	if err == nil {
		m.profile = profile
	}

	m.note = ""
	if n, err := m.store.GetNote(m.username, m.day.String()); err == nil {
		m.note = n.Text
	}

	m.friends = m.friends[:0]
	today := progress.Today()
	for _, f := range m.profile.Friends {
		fp, err := m.store.GetProfile(f)
		if err != nil {
			continue
		}
		fHabits, err := m.store.GetAllHabits(f)
		if err != nil {
			continue
		}
		fTodos, err := m.store.GetAllTodos(f)
		if err != nil {
			continue
		}
		m.friends = append(m.friends, friendSummary{
			name:    f,
			avatar:  fp.Avatar,
			points:  fp.Points,
			percent: progress.DailyCompletionPercent(fHabits, fTodos, today),
		})
	}
	requests, err := m.store.GetRequests()
	if err == nil {
		m.pending = 0
		for _, r := range requests {
			if r.To == m.username && r.Status == models.RequestPending {
				m.pending++
			}
		}
	}

	var items []itemlist.Item
	for i := range m.habits {
		h := &m.habits[i]
		if !progress.IsActiveOn(*h, m.day) {
			continue
		}
		items = append(items, itemlist.Item{
			Habit:  h,
			Done:   progress.IsCompletedOn(*h, m.day),
			Streak: progress.CurrentStreak(*h, m.day),
		})
	}
	for i := range m.todos {
		t := &m.todos[i]
		if t.Date != m.day.String() {
			continue
		}
		items = append(items, itemlist.Item{Todo: t, Done: t.IsCompleted})
	}
	m.today.SetItems(items)
}

func (m *Model) newHabitForm() {
	m.habitForm = &HabitFormModel{Frequency: string(models.FrequencyDaily), Count: "3"}

	var catOptions []huh.Option[string]
	for _, c := range models.AllCategories {
		catOptions = append(catOptions, huh.NewOption(string(c), string(c)))
	}

	dayOptions := []huh.Option[string]{
		huh.NewOption("Monday", "1"),
		huh.NewOption("Tuesday", "2"),
		huh.NewOption("Wednesday", "3"),
		huh.NewOption("Thursday", "4"),
		huh.NewOption("Friday", "5"),
		huh.NewOption("Saturday", "6"),
		huh.NewOption("Sunday", "0"),
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&m.habitForm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errEmptyTitle
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&m.habitForm.Description),
			huh.NewMultiSelect[string]().
				Title("Categories").
				Options(catOptions...).
				Value(&m.habitForm.Categories),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Every day", string(models.FrequencyDaily)),
					huh.NewOption("Specific weekdays", string(models.FrequencyWeeklyDays)),
					huh.NewOption("N times per week", string(models.FrequencyWeeklyCount)),
				).
				Value(&m.habitForm.Frequency),
			huh.NewMultiSelect[string]().
				Title("Weekdays (for specific weekdays)").
				Options(dayOptions...).
				Value(&m.habitForm.Days),
			huh.NewInput().
				Title("Times per week (for N times per week)").
				Value(&m.habitForm.Count).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 || n > 7 {
						return errBadWeeklyTarget
					}
					return nil
				}),
		),
	)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday {
		keys = append(keys, m.keys.Enter, m.keys.Add, m.keys.PrevDay, m.keys.NextDay)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.PrevDay, m.keys.NextDay, m.keys.Today}
	actions := []key.Binding{m.keys.Enter, m.keys.Add, m.keys.Delete}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
