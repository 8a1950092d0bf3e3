package cli

import (
	"fmt"
	"strconv"
	"strings"

	"dailyhabit/internal/models"
	"dailyhabit/internal/progress"
	"dailyhabit/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// requireUser loads the store and returns the logged-in username. Most
// commands start here.
func (ctx *Context) requireUser() (string, error) {
	if err := ctx.Store.Load(); err != nil {
		return "", err
	}
	return ctx.Store.CurrentUser()
}

// parseDayArg accepts "today", "yesterday", or YYYY-MM-DD.
func parseDayArg(s string) (progress.Day, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return progress.Today(), nil
	case "yesterday":
		return progress.Today().AddDays(-1), nil
	}
	return progress.ParseDay(s)
}

var dayNames = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

var dayAbbrev = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// parseWeekdays turns "mon,wed,fri" or "1,3,5" into weekday indices
// (0=Sunday).
func parseWeekdays(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	var days []int
	seen := make(map[int]bool)
	for _, part := range parts {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" {
			continue
		}
		d, ok := dayNames[part]
		if !ok {
			num, err := strconv.Atoi(part)
			if err != nil || num < 0 || num > 6 {
				return nil, fmt.Errorf("invalid weekday: %s", part)
			}
			d = num
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}
	return days, nil
}

func formatFrequency(h models.Habit) string {
	switch h.Frequency {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeeklyDays:
		var names []string
		for _, d := range h.FrequencyConfig.Days {
			if d >= 0 && d <= 6 {
				names = append(names, dayAbbrev[d])
			}
		}
		if len(names) == 0 {
			return "weekly"
		}
		return "weekly on " + strings.Join(names, ",")
	case models.FrequencyWeeklyCount:
		return fmt.Sprintf("%dx per week", h.FrequencyConfig.Count)
	default:
		return "unknown"
	}
}

func parseCategories(s string) ([]models.Category, error) {
	var cats []models.Category
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, ok := models.ParseCategory(part)
		if !ok {
			return nil, fmt.Errorf("invalid category %q (valid: %s)", part, categoryNames())
		}
		cats = append(cats, c)
	}
	if len(cats) == 0 {
		cats = []models.Category{models.CategoryOther}
	}
	return cats, nil
}

func categoryNames() string {
	names := make([]string, len(models.AllCategories))
	for i, c := range models.AllCategories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

// findHabit resolves an ID or an unambiguous title prefix.
func findHabit(habits []models.Habit, key string) (models.Habit, error) {
	for _, h := range habits {
		if h.ID == key {
			return h, nil
		}
	}
	var matches []models.Habit
	lower := strings.ToLower(key)
	for _, h := range habits {
		if strings.HasPrefix(strings.ToLower(h.Title), lower) {
			matches = append(matches, h)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Habit{}, fmt.Errorf("%w: %s", storage.ErrHabitNotFound, key)
	default:
		return models.Habit{}, fmt.Errorf("ambiguous habit %q, matches %d habits", key, len(matches))
	}
}

func findTodo(todos []models.Todo, key string) (models.Todo, error) {
	for _, t := range todos {
		if t.ID == key {
			return t, nil
		}
	}
	var matches []models.Todo
	lower := strings.ToLower(key)
	for _, t := range todos {
		if strings.HasPrefix(strings.ToLower(t.Title), lower) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Todo{}, fmt.Errorf("%w: %s", storage.ErrTodoNotFound, key)
	default:
		return models.Todo{}, fmt.Errorf("ambiguous todo %q, matches %d todos", key, len(matches))
	}
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
