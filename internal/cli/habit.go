package cli

import (
	"fmt"

	"github.com/google/uuid"

	"dailyhabit/internal/models"
	"dailyhabit/internal/progress"
)

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Description string `short:"d" help:"Optional description."`
	Categories  string `short:"c" help:"Comma-separated categories." default:"Other"`
	Frequency   string `short:"f" help:"Frequency (daily|weekly_days|weekly_count)." default:"daily"`
	Days        string `short:"w" help:"Comma-separated weekdays for weekly_days (e.g. mon,wed,fri)."`
	Count       int    `short:"n" help:"Weekly target for weekly_count." default:"1"`
	Color       string `help:"Override the category color."`
	Icon        string `help:"Override the category icon."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}

	cats, err := parseCategories(c.Categories)
	if err != nil {
		return err
	}

	habit := models.Habit{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		Categories:  cats,
		CreatedAt:   progress.NowMillis(),
	}

	switch models.FrequencyType(c.Frequency) {
	case models.FrequencyDaily:
		habit.Frequency = models.FrequencyDaily
	case models.FrequencyWeeklyDays:
		if c.Days == "" {
			return fmt.Errorf("weekly_days requires --days")
		}
		days, err := parseWeekdays(c.Days)
		if err != nil {
			return err
		}
		habit.Frequency = models.FrequencyWeeklyDays
		habit.FrequencyConfig.Days = days
	case models.FrequencyWeeklyCount:
		if c.Count < 1 || c.Count > 7 {
			return fmt.Errorf("weekly target must be between 1 and 7")
		}
		habit.Frequency = models.FrequencyWeeklyCount
		habit.FrequencyConfig.Count = c.Count
	default:
		return fmt.Errorf("invalid frequency: %s", c.Frequency)
	}

	style := models.StyleFor(habit.PrimaryCategory())
	habit.Color = c.Color
	if habit.Color == "" {
		habit.Color = style.Color
	}
	habit.Icon = c.Icon
	if habit.Icon == "" {
		habit.Icon = style.Icon
	}

	if err := ctx.Store.AddHabit(username, habit); err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Title, shortID(habit.ID))
	return nil
}

type HabitListCmd struct {
	Date string `short:"D" help:"Day to show completion for (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *HabitListCmd) Run(ctx *Context) error {
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
	if len(habits) == 0 {
		fmt.Println("No habits yet. Add one with 'dailyhabit habit add'.")
		return nil
	}

	for _, h := range habits {
		marker := "  "
		if progress.IsActiveOn(h, day) {
			marker = checkbox(progress.IsCompletedOn(h, day))
		}
		streak := progress.CurrentStreak(h, day)
		streakStr := ""
		if streak > 0 {
			streakStr = fmt.Sprintf("  🔥%d", streak)
		}
		fmt.Printf("%s %s %-28s %-18s %s%s\n",
			marker, h.Icon, h.Title, formatFrequency(h), shortID(h.ID), streakStr)
	}
	return nil
}

type HabitShowCmd struct {
	Habit string `arg:"" help:"Habit ID or title prefix."`
}

func (c *HabitShowCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	habits, err := ctx.Store.GetAllHabits(username)
	if err != nil {
		return err
	}
	h, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}

	today := progress.Today()
	fmt.Printf("%s %s\n", h.Icon, h.Title)
	if h.Description != "" {
		fmt.Printf("  %s\n", h.Description)
	}
	fmt.Printf("  ID:         %s\n", h.ID)
	fmt.Printf("  Frequency:  %s\n", formatFrequency(h))
	cats := ""
	for i, cat := range h.Categories {
		if i > 0 {
			cats += ", "
		}
		cats += string(cat)
	}
	fmt.Printf("  Categories: %s\n", cats)
	fmt.Printf("  Streak:     %d days\n", progress.CurrentStreak(h, today))
	fmt.Printf("  Completed:  %d times total, %d%% of days since created\n",
		progress.TotalCompletions([]models.Habit{h}), progress.CompletionRate(h, today))
	if h.Frequency == models.FrequencyWeeklyCount {
		count, percent := progress.WeeklyCountProgress(h, today)
		fmt.Printf("  This week:  %d/%d (%d%%)\n", count, h.FrequencyConfig.Count, percent)
	}

	fmt.Printf("  Last 14 days: ")
	for _, done := range progress.Heatmap(h, today, 14) {
		if done {
			fmt.Print("█")
		} else {
			fmt.Print("░")
		}
	}
	fmt.Println()
	return nil
}

type HabitEditCmd struct {
	Habit       string `arg:"" help:"Habit ID or title prefix."`
	Title       string `short:"t" help:"New title."`
	Description string `short:"d" help:"New description."`
	Categories  string `short:"c" help:"New comma-separated categories."`
	Frequency   string `short:"f" help:"New frequency (daily|weekly_days|weekly_count)."`
	Days        string `short:"w" help:"New weekdays for weekly_days."`
	Count       int    `short:"n" help:"New weekly target for weekly_count."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	habits, err := ctx.Store.GetAllHabits(username)
	if err != nil {
		return err
	}
	h, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}

	if c.Title != "" {
		h.Title = c.Title
	}
	if c.Description != "" {
		h.Description = c.Description
	}
	if c.Categories != "" {
		cats, err := parseCategories(c.Categories)
		if err != nil {
			return err
		}
		h.Categories = cats
	}
	if c.Frequency != "" {
		switch models.FrequencyType(c.Frequency) {
		case models.FrequencyDaily:
			h.Frequency = models.FrequencyDaily
			h.FrequencyConfig = models.FrequencyConfig{}
		case models.FrequencyWeeklyDays:
			h.Frequency = models.FrequencyWeeklyDays
		case models.FrequencyWeeklyCount:
			h.Frequency = models.FrequencyWeeklyCount
		default:
			return fmt.Errorf("invalid frequency: %s", c.Frequency)
		}
	}
	if c.Days != "" {
		days, err := parseWeekdays(c.Days)
		if err != nil {
			return err
		}
		h.FrequencyConfig.Days = days
	}
	if c.Count != 0 {
		if c.Count < 1 || c.Count > 7 {
			return fmt.Errorf("weekly target must be between 1 and 7")
		}
		h.FrequencyConfig.Count = c.Count
	}
	if h.Frequency == models.FrequencyWeeklyDays && len(h.FrequencyConfig.Days) == 0 {
		return fmt.Errorf("weekly_days requires --days")
	}

	if err := ctx.Store.UpdateHabit(username, h); err != nil {
		return err
	}
	fmt.Printf("Updated habit: %s\n", h.Title)
	return nil
}

type HabitToggleCmd struct {
	Habit string `arg:"" help:"Habit ID or title prefix."`
	Date  string `short:"D" help:"Day to toggle (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
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
	h, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}

	completed := progress.Toggle(&h, day)
	if err := ctx.Store.UpdateHabit(username, h); err != nil {
		return err
	}

	profile, err := ctx.Store.GetProfile(username)
	if err != nil {
		return err
	}
	before := progress.Level(profile.Points)
	awarded := progress.AwardPoints(&profile, completed)
	if awarded > 0 {
		if err := ctx.Store.SaveProfile(profile); err != nil {
			return err
		}
	}

	if completed {
		fmt.Printf("✓ %s completed on %s (+%d points)\n", h.Title, day, awarded)
		streak := progress.CurrentStreak(h, day)
		if streak > 1 {
			fmt.Printf("  Streak: %d days\n", streak)
		}
		if after := progress.Level(profile.Points); after > before {
			fmt.Printf("  Level up! You are now level %d.\n", after)
		}
		if m := progress.CurrentMilestone(profile.Points); profile.Points-awarded < m.MinXP {
			fmt.Printf("  Milestone reached: %s %s\n", m.Icon, m.Name)
		}
	} else {
		fmt.Printf("○ %s unmarked for %s\n", h.Title, day)
	}
	return nil
}

type HabitDeleteCmd struct {
	Habit string `arg:"" help:"Habit ID or title prefix."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	habits, err := ctx.Store.GetAllHabits(username)
	if err != nil {
		return err
	}
	h, err := findHabit(habits, c.Habit)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteHabit(username, h.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", h.Title)
	return nil
}
