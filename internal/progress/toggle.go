package progress

import (
	"time"

	"dailyhabit/internal/models"
)

// CompletionPoints is awarded once per false-to-true completion
// transition. Un-completing never revokes points already awarded.
const CompletionPoints = 10

// Toggle flips the habit's completion state for day and returns the new
// state. Toggling twice restores the original CompletedDays set.
func Toggle(h *models.Habit, day Day) (completed bool) {
	s := day.String()
	for i, d := range h.CompletedDays {
		if d == s {
			h.CompletedDays = append(h.CompletedDays[:i], h.CompletedDays[i+1:]...)
			return false
		}
	}
	h.CompletedDays = append(h.CompletedDays, s)
	return true
}

// ToggleTodo flips a todo's completion flag and returns the new state.
func ToggleTodo(t *models.Todo) (completed bool) {
	t.IsCompleted = !t.IsCompleted
	return t.IsCompleted
}

// AwardPoints applies the completion award to a profile when a toggle
// transitioned to completed. The true-to-false direction deliberately
// leaves points untouched, so repeated on/off/on cycles award once per
// on-transition only.
func AwardPoints(p *models.UserProfile, completed bool) (awarded int) {
	if !completed {
		return 0
	}
	p.Points += CompletionPoints
	return CompletionPoints
}

func msToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// NowMillis is the creation-timestamp clock for new habits and todos.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
