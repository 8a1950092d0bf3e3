package cli

import (
	"errors"
	"fmt"

	"dailyhabit/internal/progress"
	"dailyhabit/internal/storage"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *DayCmd) Run(ctx *Context) error {
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

	fmt.Printf("%s (%s)\n\n", day, day.Weekday())

	active := 0
	for _, h := range habits {
		if !progress.IsActiveOn(h, day) {
			continue
		}
		active++
		fmt.Printf("%s %s %s\n", checkbox(progress.IsCompletedOn(h, day)), h.Icon, h.Title)
	}
	if active == 0 {
		fmt.Println("No habits scheduled.")
	}

	dueToday := 0
	for _, t := range todos {
		if t.Date != day.String() {
			continue
		}
		if dueToday == 0 {
			fmt.Println()
		}
		dueToday++
		fmt.Printf("%s %s\n", checkbox(t.IsCompleted), t.Title)
	}

	fmt.Printf("\nDay progress: %d%%\n", progress.DailyCompletionPercent(habits, todos, day))

	note, err := ctx.Store.GetNote(username, day.String())
	if err == nil {
		fmt.Printf("Note: %s\n", note.Text)
	} else if !errors.Is(err, storage.ErrNoteNotFound) {
		return err
	}
	return nil
}
