package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"dailyhabit/internal/cli"
	"dailyhabit/internal/logger"
	"dailyhabit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path (.json for JSON storage, anything else for SQLite)." type:"path" default:"~/.config/dailyhabit/dailyhabit.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize dailyhabit storage."`
	Register cli.RegisterCmd `cmd:"" help:"Create an account and log in."`
	Login    cli.LoginCmd    `cmd:"" help:"Log in to an existing account."`
	Logout   cli.LogoutCmd   `cmd:"" help:"End the current session."`
	Whoami   cli.WhoamiCmd   `cmd:"" help:"Show the logged-in user."`

	Tui cli.TuiCmd `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Habit struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Add a new habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List habits with today's status."`
		Show   cli.HabitShowCmd   `cmd:"" help:"Show one habit in detail."`
		Edit   cli.HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
		Toggle cli.HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
		Delete cli.HabitDeleteCmd `cmd:"" help:"Delete a habit."`
	} `cmd:"" help:"Manage habits."`

	Todo struct {
		Add    cli.TodoAddCmd    `cmd:"" help:"Add a one-off todo."`
		List   cli.TodoListCmd   `cmd:"" help:"List todos."`
		Toggle cli.TodoToggleCmd `cmd:"" help:"Toggle a todo's completion."`
		Edit   cli.TodoEditCmd   `cmd:"" help:"Edit a todo."`
		Delete cli.TodoDeleteCmd `cmd:"" help:"Delete a todo."`
	} `cmd:"" help:"Manage todos."`

	Day     cli.DayCmd     `cmd:"" help:"Show a day's habits, todos, and progress."`
	Note    cli.NoteCmd    `cmd:"" help:"Read or write the note for a day."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show progress statistics."`
	Profile cli.ProfileCmd `cmd:"" help:"Show or update your profile."`

	Friend struct {
		Code     cli.FriendCodeCmd     `cmd:"" help:"Show your invite code."`
		Invite   cli.FriendInviteCmd   `cmd:"" help:"Send a friend request by code or username."`
		Requests cli.FriendRequestsCmd `cmd:"" help:"List pending friend requests."`
		Accept   cli.FriendAcceptCmd   `cmd:"" help:"Accept a friend request."`
		Decline  cli.FriendDeclineCmd  `cmd:"" help:"Decline a friend request."`
		List     cli.FriendListCmd     `cmd:"" help:"List your friends."`
	} `cmd:"" help:"Manage friends."`

	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup now."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage backups."`

	Migrate cli.MigrateCmd `cmd:"" help:"Apply pending schema migrations."`
	Doctor  cli.DoctorCmd  `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("dailyhabit"),
		kong.Description("Habit and daily to-do tracker with streaks, points, and friends"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logging: %v\n", err)
	}

	// Storage format follows the file extension.
	var store storage.Provider
	if strings.EqualFold(filepath.Ext(CLI.Config), ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{Store: store}
	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
