package cli

import (
	"fmt"
	"sort"
	"strings"

	"dailyhabit/internal/models"
	"dailyhabit/internal/progress"
)

type StatsCmd struct {
	Date string `short:"D" help:"Day to anchor the stats on (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	day, err := parseDayArg(c.Date)
	if err != nil {
		return err
	}

	habits, err := ctx.Store.GetAllHabits(username)
	if err != nil {
		return err
	}
	todos, err := ctx.Store.GetAllTodos(username)
	if err != nil {
		return err
	}
	profile, err := ctx.Store.GetProfile(username)
	if err != nil {
		return err
	}

	fmt.Printf("Stats for %s as of %s\n\n", username, day)
	fmt.Printf("  Today:             %d%% complete\n", progress.DailyCompletionPercent(habits, todos, day))
	fmt.Printf("  Total completions: %d\n", progress.TotalCompletions(habits))
	fmt.Printf("  Points:            %d (level %d, %d/%d to next)\n",
		profile.Points, progress.Level(profile.Points),
		progress.LevelProgress(profile.Points), progress.PointsPerLevel)

	best := 0
	var bestHabit string
	for _, h := range habits {
		if s := progress.CurrentStreak(h, day); s > best {
			best = s
			bestHabit = h.Title
		}
	}
	if best > 0 {
		fmt.Printf("  Best streak:       %d days (%s)\n", best, bestHabit)
	}

	trend := progress.WeeklyTrend(habits, day)
	fmt.Printf("\n  Last 7 days: ")
	for _, p := range trend {
		fmt.Printf("%s:%d ", p.Day.Weekday().String()[:3], p.Count)
	}
	fmt.Println()

	totals := progress.CategoryTotals(habits)
	if len(totals) > 0 {
		fmt.Println("\n  By category:")
		cats := make([]models.Category, 0, len(totals))
		for c := range totals {
			cats = append(cats, c)
		}
		sort.Slice(cats, func(i, j int) bool { return totals[cats[i]] > totals[cats[j]] })
		for _, cat := range cats {
			fmt.Printf("    %-10s %s (%d)\n", cat, strings.Repeat("■", min(totals[cat], 30)), totals[cat])
		}
	}
	return nil
}
