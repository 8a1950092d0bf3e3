package models

type FrequencyType string

const (
	FrequencyDaily       FrequencyType = "daily"
	FrequencyWeeklyDays  FrequencyType = "weekly_days"
	FrequencyWeeklyCount FrequencyType = "weekly_count"
)

// FrequencyConfig carries the schedule parameters for the non-daily
// frequency types. Days holds weekday indices 0-6 (0 is Sunday) for
// weekly_days; Count holds the per-week target for weekly_count.
type FrequencyConfig struct {
	Days  []int `json:"days,omitempty"`
	Count int   `json:"count,omitempty"`
}

// Habit represents a recurring practice tracked per calendar day.
type Habit struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description,omitempty"`
	Categories      []Category      `json:"categories"`
	Color           string          `json:"color"`
	Icon            string          `json:"icon"`
	Frequency       FrequencyType   `json:"frequency"`
	FrequencyConfig FrequencyConfig `json:"frequency_config"`
	CompletedDays   []string        `json:"completed_days"` // YYYY-MM-DD, no duplicates
	CreatedAt       int64           `json:"created_at"`     // epoch milliseconds
}

// PrimaryCategory returns the first category, which drives the default
// icon and color. Habits are created with at least one category.
func (h Habit) PrimaryCategory() Category {
	if len(h.Categories) == 0 {
		return CategoryOther
	}
	return h.Categories[0]
}

// CompletedSet returns CompletedDays as a membership set.
func (h Habit) CompletedSet() map[string]struct{} {
	set := make(map[string]struct{}, len(h.CompletedDays))
	for _, d := range h.CompletedDays {
		set[d] = struct{}{}
	}
	return set
}
