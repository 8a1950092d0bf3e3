package cli

import (
	"fmt"

	"dailyhabit/internal/progress"
	"dailyhabit/internal/social"
)

type ProfileCmd struct {
	Avatar string `help:"Set a new avatar (single emoji or short string)."`
}

func (c *ProfileCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}
	profile, err := ctx.Store.GetProfile(username)
	if err != nil {
		return err
	}

	if c.Avatar != "" {
		profile.Avatar = c.Avatar
		if err := ctx.Store.SaveProfile(profile); err != nil {
			return err
		}
		fmt.Printf("Avatar updated to %s\n", profile.Avatar)
	}

	level := progress.Level(profile.Points)
	milestone := progress.CurrentMilestone(profile.Points)

	fmt.Printf("%s %s\n", profile.Avatar, profile.Username)
	fmt.Printf("  Invite code: %s\n", social.InviteCode(profile.Username))
	fmt.Printf("  Points:      %d\n", profile.Points)
	fmt.Printf("  Level:       %d (%d/%d to next)\n",
		level, progress.LevelProgress(profile.Points), progress.PointsPerLevel)
	fmt.Printf("  Milestone:   %s %s\n", milestone.Icon, milestone.Name)
	if next, ok := progress.NextMilestone(profile.Points); ok {
		fmt.Printf("  Next:        %s %s at %d points (%d to go)\n",
			next.Icon, next.Name, next.MinXP, next.MinXP-profile.Points)
	}
	if len(profile.Friends) > 0 {
		fmt.Printf("  Friends:     %d\n", len(profile.Friends))
	}
	return nil
}
