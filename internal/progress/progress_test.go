package progress

import (
	"testing"
	"time"

	"dailyhabit/internal/models"
)

func mustDay(t *testing.T, s string) Day {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("ParseDay(%q) failed: %v", s, err)
	}
	return d
}

func TestParseDay_RejectsMalformedDates(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2024-13-01", "2024-01-32", "01/02/2024", "2024-1-2"} {
		_, err := ParseDay(s)
		if err == nil {
			t.Errorf("ParseDay(%q): expected error, got none", s)
			continue
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Errorf("ParseDay(%q): expected *ValidationError, got %T", s, err)
		}
	}
}

func TestIsActiveOn_Daily(t *testing.T) {
	h := models.Habit{Frequency: models.FrequencyDaily}

	day := mustDay(t, "2024-01-01")
	for i := 0; i < 14; i++ {
		if !IsActiveOn(h, day) {
			t.Errorf("daily habit inactive on %s", day)
		}
		day = day.AddDays(1)
	}
}

func TestIsActiveOn_WeeklyDays(t *testing.T) {
	h := models.Habit{
		Frequency:       models.FrequencyWeeklyDays,
		FrequencyConfig: models.FrequencyConfig{Days: []int{1, 3, 5}}, // Mon, Wed, Fri
	}

	day := mustDay(t, "2024-01-01") // a Monday
	for i := 0; i < 7; i++ {
		want := false
		switch day.Weekday() {
		case time.Monday, time.Wednesday, time.Friday:
			want = true
		}
		if got := IsActiveOn(h, day); got != want {
			t.Errorf("IsActiveOn on %s (%s) = %v, want %v", day, day.Weekday(), got, want)
		}
		day = day.AddDays(1)
	}
}

func TestIsActiveOn_WeeklyCountAlwaysActive(t *testing.T) {
	h := models.Habit{
		Frequency:       models.FrequencyWeeklyCount,
		FrequencyConfig: models.FrequencyConfig{Count: 3},
	}

	if !IsActiveOn(h, mustDay(t, "2024-06-15")) {
		t.Error("weekly_count habit should be active on any day")
	}
}

func TestToggle_DoubleToggleRestoresSet(t *testing.T) {
	h := models.Habit{CompletedDays: []string{"2024-01-01", "2024-01-03"}}
	day := mustDay(t, "2024-01-02")

	if completed := Toggle(&h, day); !completed {
		t.Fatal("first toggle should complete")
	}
	if !IsCompletedOn(h, day) {
		t.Fatal("habit should be completed after toggle on")
	}
	if completed := Toggle(&h, day); completed {
		t.Fatal("second toggle should un-complete")
	}

	if len(h.CompletedDays) != 2 {
		t.Fatalf("expected 2 completed days after double toggle, got %d", len(h.CompletedDays))
	}
	for _, want := range []string{"2024-01-01", "2024-01-03"} {
		found := false
		for _, d := range h.CompletedDays {
			if d == want {
				found = true
			}
		}
		if !found {
			t.Errorf("day %s missing after double toggle", want)
		}
	}
}

func TestCurrentStreak(t *testing.T) {
	h := models.Habit{CompletedDays: []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05",
	}}

	tests := []struct {
		asOf string
		want int
	}{
		{"2024-01-05", 5}, // completed today
		{"2024-01-06", 5}, // not completed today, but yesterday holds the streak
		{"2024-01-07", 0}, // gap of more than one day
		{"2024-01-03", 3}, // evaluated mid-run
		{"2023-12-31", 0}, // before any completion
	}

	for _, tt := range tests {
		if got := CurrentStreak(h, mustDay(t, tt.asOf)); got != tt.want {
			t.Errorf("CurrentStreak as of %s = %d, want %d", tt.asOf, got, tt.want)
		}
	}
}

func TestCurrentStreak_IgnoresSchedule(t *testing.T) {
	// Streaks are calendar-consecutive even for scheduled habits: a
	// weekly habit completed Mon and Wed has streak 1, not 2.
	h := models.Habit{
		Frequency:       models.FrequencyWeeklyDays,
		FrequencyConfig: models.FrequencyConfig{Days: []int{1, 3}},
		CompletedDays:   []string{"2024-01-01", "2024-01-03"},
	}
	if got := CurrentStreak(h, mustDay(t, "2024-01-03")); got != 1 {
		t.Errorf("CurrentStreak = %d, want 1", got)
	}
}

func TestDailyCompletionPercent(t *testing.T) {
	day := mustDay(t, "2024-01-01") // Monday

	habits := []models.Habit{
		{Frequency: models.FrequencyDaily, CompletedDays: []string{"2024-01-01"}},
		{Frequency: models.FrequencyDaily},
	}
	todos := []models.Todo{
		{Date: "2024-01-01", IsCompleted: true},
		{Date: "2024-01-01"},
		{Date: "2024-01-02", IsCompleted: true}, // due another day, excluded
	}

	if got := DailyCompletionPercent(habits, todos, day); got != 50 {
		t.Errorf("DailyCompletionPercent = %d, want 50", got)
	}
}

func TestDailyCompletionPercent_RoundsHalfUp(t *testing.T) {
	day := mustDay(t, "2024-01-01")
	habits := []models.Habit{
		{Frequency: models.FrequencyDaily, CompletedDays: []string{"2024-01-01"}},
		{Frequency: models.FrequencyDaily},
		{Frequency: models.FrequencyDaily},
	}
	// 1 of 3: 33.33 rounds to 33. 5 of 8: 62.5 must round up to 63.
	if got := DailyCompletionPercent(habits, nil, day); got != 33 {
		t.Errorf("1/3 = %d, want 33", got)
	}

	var habits8 []models.Habit
	for i := 0; i < 8; i++ {
		h := models.Habit{Frequency: models.FrequencyDaily}
		if i < 5 {
			h.CompletedDays = []string{"2024-01-01"}
		}
		habits8 = append(habits8, h)
	}
	if got := DailyCompletionPercent(habits8, nil, day); got != 63 {
		t.Errorf("5/8 = %d, want 63 (half-up)", got)
	}
}

func TestDailyCompletionPercent_EmptyCollections(t *testing.T) {
	if got := DailyCompletionPercent(nil, nil, mustDay(t, "2024-01-01")); got != 0 {
		t.Errorf("empty collections = %d, want 0", got)
	}
}

func TestDailyCompletionPercent_SkipsInactiveHabits(t *testing.T) {
	day := mustDay(t, "2024-01-02") // Tuesday
	habits := []models.Habit{
		{Frequency: models.FrequencyWeeklyDays, FrequencyConfig: models.FrequencyConfig{Days: []int{1}}}, // Monday only
		{Frequency: models.FrequencyDaily, CompletedDays: []string{"2024-01-02"}},
	}
	if got := DailyCompletionPercent(habits, nil, day); got != 100 {
		t.Errorf("percent = %d, want 100 (inactive habit excluded)", got)
	}
}

func TestWeeklyCountProgress(t *testing.T) {
	// 2024-01-01 is a Monday, so the week of Jan 3 runs Jan 1 - Jan 7.
	h := models.Habit{
		Frequency:       models.FrequencyWeeklyCount,
		FrequencyConfig: models.FrequencyConfig{Count: 4},
		CompletedDays:   []string{"2023-12-31", "2024-01-01", "2024-01-03", "2024-01-07", "2024-01-08"},
	}

	count, percent := WeeklyCountProgress(h, mustDay(t, "2024-01-03"))
	if count != 3 {
		t.Errorf("count = %d, want 3 (Dec 31 and Jan 8 are outside the week)", count)
	}
	if percent != 75 {
		t.Errorf("percent = %d, want 75", percent)
	}
}

func TestWeeklyCountProgress_CapsAndFallback(t *testing.T) {
	h := models.Habit{
		Frequency:     models.FrequencyWeeklyCount,
		CompletedDays: []string{"2024-01-01", "2024-01-02", "2024-01-03"},
	}

	// Target unset falls back to 1; percent caps at 100.
	count, percent := WeeklyCountProgress(h, mustDay(t, "2024-01-04"))
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if percent != 100 {
		t.Errorf("percent = %d, want 100 (capped)", percent)
	}
}

func TestAwardPoints_OnlyOnCompletionTransition(t *testing.T) {
	h := models.Habit{Frequency: models.FrequencyDaily}
	p := models.UserProfile{Username: "daily"}
	day := mustDay(t, "2024-01-01")

	// on, off, on: exactly two awards.
	AwardPoints(&p, Toggle(&h, day))
	AwardPoints(&p, Toggle(&h, day))
	AwardPoints(&p, Toggle(&h, day))

	if p.Points != 2*CompletionPoints {
		t.Errorf("points = %d, want %d (award on each on-transition only)", p.Points, 2*CompletionPoints)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		points int
		level  int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{250, 3},
		{1000, 11},
	}
	for _, tt := range tests {
		if got := Level(tt.points); got != tt.level {
			t.Errorf("Level(%d) = %d, want %d", tt.points, got, tt.level)
		}
	}
}

func TestCurrentMilestone(t *testing.T) {
	tests := []struct {
		points int
		id     string
	}{
		{0, "seedling"},
		{99, "seedling"},
		{100, "sprout"},
		{499, "sprout"},
		{500, "sapling"},
		{2500, "evergreen"},
	}
	for _, tt := range tests {
		if got := CurrentMilestone(tt.points); got.ID != tt.id {
			t.Errorf("CurrentMilestone(%d) = %s, want %s", tt.points, got.ID, tt.id)
		}
	}

	if _, ok := NextMilestone(1000); ok {
		t.Error("NextMilestone at top tier should report false")
	}
	if next, ok := NextMilestone(120); !ok || next.ID != "sapling" {
		t.Errorf("NextMilestone(120) = %v, %v; want sapling, true", next.ID, ok)
	}
}

func TestLevelProgress(t *testing.T) {
	if got := LevelProgress(250); got != 50 {
		t.Errorf("LevelProgress(250) = %d, want 50", got)
	}
	if got := LevelProgress(0); got != 0 {
		t.Errorf("LevelProgress(0) = %d, want 0", got)
	}
}

func TestCompletionRate(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	h := models.Habit{
		CreatedAt:     created.UnixMilli(),
		CompletedDays: []string{"2024-01-01", "2024-01-02", "2024-01-04"},
	}

	// 3 completions over 5 days (Jan 1 - Jan 5) is 60%.
	if got := CompletionRate(h, mustDay(t, "2024-01-05")); got != 60 {
		t.Errorf("CompletionRate = %d, want 60", got)
	}
}

func TestWeeklyTrend(t *testing.T) {
	habits := []models.Habit{
		{CompletedDays: []string{"2024-01-05", "2024-01-07"}},
		{CompletedDays: []string{"2024-01-07"}},
	}

	trend := WeeklyTrend(habits, mustDay(t, "2024-01-07"))
	if len(trend) != 7 {
		t.Fatalf("trend length = %d, want 7", len(trend))
	}
	if trend[0].Day.String() != "2024-01-01" {
		t.Errorf("trend starts at %s, want 2024-01-01", trend[0].Day)
	}
	if trend[6].Count != 2 {
		t.Errorf("count on final day = %d, want 2", trend[6].Count)
	}
	if trend[4].Count != 1 {
		t.Errorf("count on Jan 5 = %d, want 1", trend[4].Count)
	}
}

func TestCategoryTotals(t *testing.T) {
	habits := []models.Habit{
		{Categories: []models.Category{models.CategoryHealth, models.CategoryMind}, CompletedDays: []string{"2024-01-01", "2024-01-02"}},
		{Categories: []models.Category{models.CategoryHealth}, CompletedDays: []string{"2024-01-01"}},
		{Categories: []models.Category{models.CategoryWork}}, // no completions, excluded
	}

	totals := CategoryTotals(habits)
	if totals[models.CategoryHealth] != 3 {
		t.Errorf("Health = %d, want 3", totals[models.CategoryHealth])
	}
	if totals[models.CategoryMind] != 2 {
		t.Errorf("Mind = %d, want 2", totals[models.CategoryMind])
	}
	if _, ok := totals[models.CategoryWork]; ok {
		t.Error("Work should be absent with zero completions")
	}
}

func TestHeatmap(t *testing.T) {
	h := models.Habit{CompletedDays: []string{"2024-01-28", "2024-01-15"}}
	cells := Heatmap(h, mustDay(t, "2024-01-28"), 28)
	if len(cells) != 28 {
		t.Fatalf("heatmap length = %d, want 28", len(cells))
	}
	if !cells[27] {
		t.Error("final cell (asOf) should be done")
	}
	if !cells[14] {
		t.Error("Jan 15 cell should be done")
	}
	if cells[0] {
		t.Error("Jan 1 cell should be empty")
	}
}
