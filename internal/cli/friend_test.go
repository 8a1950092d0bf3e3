package cli

import (
	"path/filepath"
	"testing"

	"dailyhabit/internal/models"
	"dailyhabit/internal/progress"
	"dailyhabit/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	s := storage.NewJSONStore(filepath.Join(t.TempDir(), "store.json"))
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return s
}

func TestFriendDailyPercent(t *testing.T) {
	s := newTestStore(t)
	today := progress.Today()

	// The friend has two daily habits, one completed today, plus one
	// open todo due today: 1 of 3.
	for i, done := range []bool{true, false} {
		h := models.Habit{
			ID:        string(rune('a' + i)),
			Title:     "habit",
			Frequency: models.FrequencyDaily,
		}
		if done {
			h.CompletedDays = []string{today.String()}
		}
		if err := s.AddHabit("bob", h); err != nil {
			t.Fatalf("AddHabit() error = %v", err)
		}
	}
	if err := s.AddTodo("bob", models.Todo{ID: "t1", Title: "errand", Date: today.String()}); err != nil {
		t.Fatalf("AddTodo() error = %v", err)
	}

	percent, err := friendDailyPercent(s, "bob", today)
	if err != nil {
		t.Fatalf("friendDailyPercent() error = %v", err)
	}
	if percent != 33 {
		t.Errorf("friendDailyPercent() = %d, want 33", percent)
	}
}

func TestFriendDailyPercentNoData(t *testing.T) {
	s := newTestStore(t)

	// A friend with no habits or todos has nothing due, not an error.
	percent, err := friendDailyPercent(s, "carol", progress.Today())
	if err != nil {
		t.Fatalf("friendDailyPercent() error = %v", err)
	}
	if percent != 0 {
		t.Errorf("friendDailyPercent() = %d, want 0", percent)
	}
}
