package cli

import (
	"reflect"
	"testing"

	"dailyhabit/internal/models"
)

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		input   string
		want    []int
		wantErr bool
	}{
		{"mon,wed,fri", []int{1, 3, 5}, false},
		{"Monday, Wednesday", []int{1, 3}, false},
		{"1,3,5", []int{1, 3, 5}, false},
		{"sun", []int{0}, false},
		{"mon,mon", []int{1}, false},
		{"funday", nil, true},
		{"7", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseWeekdays(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseWeekdays(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDayArg(t *testing.T) {
	day, err := parseDayArg("2024-03-15")
	if err != nil {
		t.Fatalf("parseDayArg() error = %v", err)
	}
	if day.String() != "2024-03-15" {
		t.Errorf("parseDayArg() = %s", day)
	}

	today, err := parseDayArg("today")
	if err != nil {
		t.Fatalf("parseDayArg(today) error = %v", err)
	}
	yesterday, err := parseDayArg("yesterday")
	if err != nil {
		t.Fatalf("parseDayArg(yesterday) error = %v", err)
	}
	if yesterday.DaysSince(today) != -1 {
		t.Errorf("yesterday is %d day(s) from today, want -1", yesterday.DaysSince(today))
	}

	if _, err := parseDayArg("15/03/2024"); err == nil {
		t.Error("parseDayArg() should reject non-ISO dates")
	}
}

func TestFormatFrequency(t *testing.T) {
	tests := []struct {
		name  string
		habit models.Habit
		want  string
	}{
		{
			"daily",
			models.Habit{Frequency: models.FrequencyDaily},
			"daily",
		},
		{
			"weekly days",
			models.Habit{
				Frequency:       models.FrequencyWeeklyDays,
				FrequencyConfig: models.FrequencyConfig{Days: []int{1, 3, 5}},
			},
			"weekly on Mon,Wed,Fri",
		},
		{
			"weekly count",
			models.Habit{
				Frequency:       models.FrequencyWeeklyCount,
				FrequencyConfig: models.FrequencyConfig{Count: 3},
			},
			"3x per week",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatFrequency(tt.habit); got != tt.want {
				t.Errorf("formatFrequency() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFindHabit(t *testing.T) {
	habits := []models.Habit{
		{ID: "id-1", Title: "Morning run"},
		{ID: "id-2", Title: "Meditate"},
		{ID: "id-3", Title: "Morning pages"},
	}

	h, err := findHabit(habits, "id-2")
	if err != nil || h.Title != "Meditate" {
		t.Errorf("findHabit(by ID) = %+v, %v", h, err)
	}

	h, err = findHabit(habits, "med")
	if err != nil || h.ID != "id-2" {
		t.Errorf("findHabit(by prefix) = %+v, %v", h, err)
	}

	if _, err := findHabit(habits, "morning"); err == nil {
		t.Error("findHabit() should reject an ambiguous prefix")
	}
	if _, err := findHabit(habits, "nope"); err == nil {
		t.Error("findHabit() should fail on no match")
	}
}
