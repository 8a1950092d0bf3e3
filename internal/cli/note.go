package cli

import (
	"errors"
	"fmt"

	"dailyhabit/internal/models"
	"dailyhabit/internal/storage"
)

type NoteCmd struct {
	Text  string `arg:"" optional:"" help:"Note text. Omit to show the current note."`
	Date  string `short:"D" help:"Day the note belongs to (YYYY-MM-DD or 'today')." default:"today"`
	Clear bool   `help:"Remove the note for the day."`
}

func (c *NoteCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	day, err := parseDayArg(c.Date)
	if err != nil {
		return err
	}

	if c.Clear {
		if err := ctx.Store.SaveNote(username, models.DailyNote{Date: day.String()}); err != nil {
			return err
		}
		fmt.Printf("Cleared note for %s.\n", day)
		return nil
	}

	if c.Text == "" {
		note, err := ctx.Store.GetNote(username, day.String())
		if errors.Is(err, storage.ErrNoteNotFound) {
			fmt.Printf("No note for %s.\n", day)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Println(note.Text)
		return nil
	}

	if err := ctx.Store.SaveNote(username, models.DailyNote{Date: day.String(), Text: c.Text}); err != nil {
		return err
	}
	fmt.Printf("Saved note for %s.\n", day)
	return nil
}
