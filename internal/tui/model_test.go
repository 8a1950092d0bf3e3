package tui

import (
	"path/filepath"
	"strings"
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

func TestRefreshLoadsDayNote(t *testing.T) {
	s := newTestStore(t)
	today := progress.Today()
	if err := s.SaveNote("alice", models.DailyNote{Date: today.String(), Text: "slow morning"}); err != nil {
		t.Fatalf("SaveNote() error = %v", err)
	}

	m := NewModel(s, "alice")
	if m.note != "slow morning" {
		t.Errorf("note after NewModel = %q, want %q", m.note, "slow morning")
	}
	if !strings.Contains(m.viewToday(), "slow morning") {
		t.Error("viewToday() does not render the day's note")
	}

	// Day navigation swaps the note for the newly selected day.
	m.day = m.day.AddDays(-1)
	m.refresh()
	if m.note != "" {
		t.Errorf("note after moving to an unnoted day = %q, want empty", m.note)
	}
}

func TestRefreshBuildsFriendSummaries(t *testing.T) {
	s := newTestStore(t)
	today := progress.Today()

	profile := models.DefaultProfile("alice")
	profile.Friends = []string{"bob"}
	if err := s.SaveProfile(profile); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}

	bob := models.DefaultProfile("bob")
	bob.Points = 40
	if err := s.SaveProfile(bob); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	done := models.Habit{ID: "h1", Title: "read", Frequency: models.FrequencyDaily,
		CompletedDays: []string{today.String()}}
	open := models.Habit{ID: "h2", Title: "run", Frequency: models.FrequencyDaily}
	for _, h := range []models.Habit{done, open} {
		if err := s.AddHabit("bob", h); err != nil {
			t.Fatalf("AddHabit() error = %v", err)
		}
	}

	m := NewModel(s, "alice")
	if len(m.friends) != 1 {
		t.Fatalf("friends len = %d, want 1", len(m.friends))
	}
	f := m.friends[0]
	if f.name != "bob" || f.points != 40 || f.percent != 50 {
		t.Errorf("friend summary = %+v, want bob/40/50", f)
	}
	if !strings.Contains(m.viewProfile(), "today 50%") {
		t.Error("viewProfile() does not render the friend's daily progress")
	}
}
