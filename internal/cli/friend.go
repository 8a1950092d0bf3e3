package cli

import (
	"fmt"
	"time"

	qrcode "github.com/skip2/go-qrcode"

	"dailyhabit/internal/progress"
	"dailyhabit/internal/social"
	"dailyhabit/internal/storage"
)

type FriendCodeCmd struct {
	QR bool `help:"Also print the code as a terminal QR code."`
}

func (c *FriendCodeCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	code := social.InviteCode(username)
	fmt.Printf("Your invite code: %s\n", code)
	if c.QR {
		qr, err := qrcode.New(code, qrcode.Medium)
		if err != nil {
			return fmt.Errorf("failed to generate QR code: %w", err)
		}
		fmt.Println(qr.ToSmallString(false))
	}
	return nil
}

type FriendInviteCmd struct {
	Code string `arg:"" help:"Invite code or exact username of the user to befriend."`
}

func (c *FriendInviteCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}

	// An invite code resolves against the local user registry; a plain
	// string is treated as an exact username.
	target := c.Code
	if social.LooksLikeCode(c.Code) {
		usernames, err := ctx.Store.ListUsernames()
		if err != nil {
			return err
		}
		resolved, ok := social.Resolve(c.Code, usernames)
		if !ok {
			return fmt.Errorf("no user matches invite code %s", c.Code)
		}
		target = resolved
	} else {
		if _, err := ctx.Store.GetCredential(target); err != nil {
			return fmt.Errorf("no such user: %s", target)
		}
	}

	requests, err := ctx.Store.GetRequests()
	if err != nil {
		return err
	}
	profile, err := ctx.Store.GetProfile(username)
	if err != nil {
		return err
	}

	req, err := social.NewRequest(username, target, requests, profile)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveRequests(append(requests, req)); err != nil {
		return err
	}
	fmt.Printf("Friend request sent to %s.\n", target)
	return nil
}

type FriendRequestsCmd struct{}

func (c *FriendRequestsCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	requests, err := ctx.Store.GetRequests()
	if err != nil {
		return err
	}

	pending := social.PendingFor(username, requests)
	if len(pending) == 0 {
		fmt.Println("No pending friend requests.")
		return nil
	}
	fmt.Printf("Pending friend requests (%d):\n", len(pending))
	for _, r := range pending {
		when := time.UnixMilli(r.Timestamp).Format("2006-01-02 15:04")
		fmt.Printf("  %s  (sent %s)\n", r.From, when)
	}
	fmt.Println("\nAccept with 'dailyhabit friend accept <username>'.")
	return nil
}

type FriendAcceptCmd struct {
	From string `arg:"" help:"Username whose request to accept."`
}

func (c *FriendAcceptCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	requests, err := ctx.Store.GetRequests()
	if err != nil {
		return err
	}
	profile, err := ctx.Store.GetProfile(username)
	if err != nil {
		return err
	}

	updated, err := social.Accept(&profile, c.From, requests)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveProfile(profile); err != nil {
		return err
	}
	if err := ctx.Store.SaveRequests(updated); err != nil {
		return err
	}
	fmt.Printf("You are now friends with %s.\n", c.From)
	return nil
}

type FriendDeclineCmd struct {
	From string `arg:"" help:"Username whose request to decline."`
}

func (c *FriendDeclineCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	requests, err := ctx.Store.GetRequests()
	if err != nil {
		return err
	}

	updated, err := social.Decline(username, c.From, requests)
	if err != nil {
		return err
	}
	if err := ctx.Store.SaveRequests(updated); err != nil {
		return err
	}
	fmt.Printf("Declined friend request from %s.\n", c.From)
	return nil
}

type FriendListCmd struct{}

func (c *FriendListCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	profile, err := ctx.Store.GetProfile(username)
	if err != nil {
		return err
	}

	if len(profile.Friends) == 0 {
		fmt.Println("No friends yet. Share your invite code with 'dailyhabit friend code'.")
		return nil
	}
	fmt.Printf("Friends (%d):\n", len(profile.Friends))
	today := progress.Today()
	for _, f := range profile.Friends {
		fp, err := ctx.Store.GetProfile(f)
		if err != nil {
			return err
		}
		percent, err := friendDailyPercent(ctx.Store, f, today)
		if err != nil {
			return err
		}
		fmt.Printf("  %s %-20s %d points  today %d%%\n", fp.Avatar, f, fp.Points, percent)
	}
	return nil
}

// friendDailyPercent derives a friend's completion for the day from
// their own habit and todo collections.
func friendDailyPercent(store storage.Provider, username string, day progress.Day) (int, error) {
	habits, err := store.GetAllHabits(username)
	if err != nil {
		return 0, err
	}
	todos, err := store.GetAllTodos(username)
	if err != nil {
		return 0, err
	}
	return progress.DailyCompletionPercent(habits, todos, day), nil
}
