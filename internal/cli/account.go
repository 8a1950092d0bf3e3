package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"dailyhabit/internal/auth"
	"dailyhabit/internal/progress"
	"dailyhabit/internal/social"
)

// promptPassword asks interactively unless the value came in by flag.
func promptPassword(title string, value *string) error {
	if *value != "" {
		return nil
	}
	return huh.NewInput().
		Title(title).
		EchoMode(huh.EchoModePassword).
		Value(value).
		Run()
}

type RegisterCmd struct {
	Username string `arg:"" help:"Username for the new account (min 2 characters)."`
	Password string `short:"p" help:"Password (prompted if omitted)."`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := promptPassword("Choose a password", &c.Password); err != nil {
		return err
	}
	if err := auth.Register(ctx.Store, c.Username, c.Password); err != nil {
		return err
	}
	fmt.Printf("Welcome, %s! You are now logged in.\n", c.Username)
	fmt.Printf("Your invite code is %s. Share it so friends can find you.\n", social.InviteCode(c.Username))
	return nil
}

type LoginCmd struct {
	Username string `arg:"" help:"Account to log in as."`
	Password string `short:"p" help:"Password (prompted if omitted)."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := promptPassword("Password", &c.Password); err != nil {
		return err
	}
	if err := auth.Login(ctx.Store, c.Username, c.Password); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s.\n", c.Username)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	if err := auth.Logout(ctx.Store); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

type WhoamiCmd struct{}

func (c *WhoamiCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	profile, err := ctx.Store.GetProfile(username)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (level %d, %d points)\n",
		profile.Avatar, username, progress.Level(profile.Points), profile.Points)
	return nil
}
