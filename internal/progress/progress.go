package progress

import (
	"math"

	"dailyhabit/internal/models"
)

// IsActiveOn reports whether a habit is due on the given day.
//
// Daily habits are always due. weekly_days habits are due on their
// configured weekdays. weekly_count habits are treated as always due:
// they have no fixed days, so any day is a valid day to work on them.
func IsActiveOn(h models.Habit, day Day) bool {
	switch h.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeeklyDays:
		wd := int(day.Weekday())
		for _, d := range h.FrequencyConfig.Days {
			if d == wd {
				return true
			}
		}
		return false
	case models.FrequencyWeeklyCount:
		return true
	default:
		return false
	}
}

// IsCompletedOn reports whether the habit was marked complete on day.
func IsCompletedOn(h models.Habit, day Day) bool {
	for _, d := range h.CompletedDays {
		if d == day.String() {
			return true
		}
	}
	return false
}

// DailyCompletionPercent derives the aggregate completion percentage for
// one day: habits active that day plus todos due that day form the
// denominator. Returns 0 when nothing is due. Rounds half-up.
func DailyCompletionPercent(habits []models.Habit, todos []models.Todo, day Day) int {
	total := 0
	completed := 0

	for _, h := range habits {
		if !IsActiveOn(h, day) {
			continue
		}
		total++
		if IsCompletedOn(h, day) {
			completed++
		}
	}

	for _, t := range todos {
		if t.Date != day.String() {
			continue
		}
		total++
		if t.IsCompleted {
			completed++
		}
	}

	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// CurrentStreak counts consecutive completed calendar days ending at
// asOf, or at asOf-1 when asOf itself is not yet completed. The walk is
// purely calendar-consecutive: weekly schedules do not excuse gaps.
func CurrentStreak(h models.Habit, asOf Day) int {
	set := h.CompletedSet()

	check := asOf
	if _, ok := set[check.String()]; !ok {
		check = asOf.AddDays(-1)
		if _, ok := set[check.String()]; !ok {
			return 0
		}
	}

	count := 0
	for {
		if _, ok := set[check.String()]; !ok {
			break
		}
		count++
		check = check.AddDays(-1)
	}
	return count
}

// WeeklyCountProgress reports completions within the Monday-start week
// containing asOf against the habit's weekly target. Percent is capped
// at 100; a missing or zero target falls back to 1.
func WeeklyCountProgress(h models.Habit, asOf Day) (count, percent int) {
	start := asOf.WeekStart()
	end := start.AddDays(6)

	for _, d := range h.CompletedDays {
		day, err := ParseDay(d)
		if err != nil {
			continue
		}
		if !day.Before(start) && !end.Before(day) {
			count++
		}
	}

	target := h.FrequencyConfig.Count
	if target <= 0 {
		target = 1
	}
	percent = 100 * count / target
	if percent > 100 {
		percent = 100
	}
	return count, percent
}

// CompletionRate is the share of days completed since the habit was
// created, as a rounded percentage.
func CompletionRate(h models.Habit, asOf Day) int {
	created := DayOf(msToTime(h.CreatedAt))
	totalDays := asOf.DaysSince(created) + 1
	if totalDays < 1 {
		totalDays = 1
	}
	rate := 100 * float64(len(h.CompletedDays)) / float64(totalDays)
	if rate > 100 {
		return 100
	}
	return int(math.Round(rate))
}

// TotalCompletions sums completion events across all habits.
func TotalCompletions(habits []models.Habit) int {
	total := 0
	for _, h := range habits {
		total += len(h.CompletedDays)
	}
	return total
}

// TrendPoint is one day of the weekly trend.
type TrendPoint struct {
	Day   Day
	Count int
}

// WeeklyTrend counts completions per day over the 7 days ending at asOf,
// oldest first.
func WeeklyTrend(habits []models.Habit, asOf Day) []TrendPoint {
	points := make([]TrendPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := asOf.AddDays(-i)
		count := 0
		for _, h := range habits {
			if IsCompletedOn(h, day) {
				count++
			}
		}
		points = append(points, TrendPoint{Day: day, Count: count})
	}
	return points
}

// CategoryTotals sums completion events per category. A habit tagged
// with several categories contributes its completions to each of them.
func CategoryTotals(habits []models.Habit) map[models.Category]int {
	totals := make(map[models.Category]int)
	for _, h := range habits {
		if len(h.CompletedDays) == 0 {
			continue
		}
		for _, c := range h.Categories {
			totals[c] += len(h.CompletedDays)
		}
	}
	return totals
}

// Heatmap reports done/not-done for the trailing n days ending at asOf,
// oldest first. Feeds the activity strips in the detail views.
func Heatmap(h models.Habit, asOf Day, n int) []bool {
	set := h.CompletedSet()
	cells := make([]bool, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := asOf.AddDays(-i)
		_, done := set[day.String()]
		cells = append(cells, done)
	}
	return cells
}
