package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"dailyhabit/internal/backup"
	"dailyhabit/internal/logger"
	"dailyhabit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	username, err := ctx.requireUser()
	if err != nil {
		return err
	}

	// Snapshot on startup; a failed backup should not block the session.
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		logger.Warn("automatic backup failed", "err", err)
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, username), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
