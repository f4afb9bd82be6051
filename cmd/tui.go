package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"
	"tunebox/internal/shared"
	"tunebox/internal/ui"
)

// TUI launches the interactive catalog browser and player.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	st, err := r.clientState()
	if err != nil {
		return err
	}

	if token, ok := st.Token(); ok {
		r.api.SetToken(token)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/tunebox-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.api, st)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
