package cli

import (
	"fmt"

	"github.com/google/uuid"

	"dailyhabit/internal/models"
	"dailyhabit/internal/progress"
)

type TodoAddCmd struct {
	Title string `arg:"" help:"Todo title."`
	Date  string `short:"D" help:"Due day (YYYY-MM-DD or 'today')." default:"today"`
}

func (c *TodoAddCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	day, err := parseDayArg(c.Date)
	if err != nil {
		return err
	}

	todo := models.Todo{
		ID:        uuid.New().String(),
		Title:     c.Title,
		Date:      day.String(),
		CreatedAt: progress.NowMillis(),
	}
	if err := ctx.Store.AddTodo(username, todo); err != nil {
		return err
	}
	fmt.Printf("Added todo: %s for %s (ID: %s)\n", todo.Title, todo.Date, shortID(todo.ID))
	return nil
}

type TodoListCmd struct {
	Date string `short:"D" help:"Day to list (YYYY-MM-DD or 'today'), or 'all'." default:"today"`
}

func (c *TodoListCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}

	todos, err := ctx.Store.GetAllTodos(username)
	if err != nil {
		return err
	}

	if c.Date != "all" {
		day, err := parseDayArg(c.Date)
		if err != nil {
			return err
		}
		filtered := todos[:0]
		for _, t := range todos {
			if t.Date == day.String() {
				filtered = append(filtered, t)
			}
		}
		todos = filtered
	}

	if len(todos) == 0 {
		fmt.Println("No todos.")
		return nil
	}
	for _, t := range todos {
		fmt.Printf("%s %-32s %s  %s\n", checkbox(t.IsCompleted), t.Title, t.Date, shortID(t.ID))
	}
	return nil
}

type TodoToggleCmd struct {
	Todo string `arg:"" help:"Todo ID or title prefix."`
}

func (c *TodoToggleCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	todos, err := ctx.Store.GetAllTodos(username)
	if err != nil {
		return err
	}
	t, err := findTodo(todos, c.Todo)
	if err != nil {
		return err
	}

	completed := progress.ToggleTodo(&t)
	if err := ctx.Store.UpdateTodo(username, t); err != nil {
		return err
	}
	if completed {
		fmt.Printf("✓ %s done\n", t.Title)
	} else {
		fmt.Printf("○ %s reopened\n", t.Title)
	}
	return nil
}

type TodoEditCmd struct {
	Todo  string `arg:"" help:"Todo ID or title prefix."`
	Title string `short:"t" help:"New title."`
	Date  string `short:"D" help:"New due day (YYYY-MM-DD or 'today')."`
}

func (c *TodoEditCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	todos, err := ctx.Store.GetAllTodos(username)
	if err != nil {
		return err
	}
	t, err := findTodo(todos, c.Todo)
	if err != nil {
		return err
	}

	if c.Title != "" {
		t.Title = c.Title
	}
	if c.Date != "" {
		day, err := parseDayArg(c.Date)
		if err != nil {
			return err
		}
		t.Date = day.String()
	}
	if err := ctx.Store.UpdateTodo(username, t); err != nil {
		return err
	}
	fmt.Printf("Updated todo: %s\n", t.Title)
	return nil
}

type TodoDeleteCmd struct {
	Todo string `arg:"" help:"Todo ID or title prefix."`
}

func (c *TodoDeleteCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	todos, err := ctx.Store.GetAllTodos(username)
	if err != nil {
		return err
	}
	t, err := findTodo(todos, c.Todo)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteTodo(username, t.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted todo: %s\n", t.Title)
	return nil
}
