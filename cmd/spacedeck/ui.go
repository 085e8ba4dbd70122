package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/spacedeck/internal/tui/shell"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

func newUICmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ui [route]",
		Short: "Launch the interactive terminal UI",
		Long: `Launch the interactive terminal UI. An optional route opens a page directly:
home, missions, missions/<flight-number>, compare-rockets or explore.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route := ""
			if len(args) == 1 {
				route = args[0]
			}
			return runUI(cmd, app, route)
		},
	}

	return cmd
}

func runUI(cmd *cobra.Command, app *AppContext, route string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return newCommandError("launch terminal UI", "checking terminal", errors.New("stdout is not a terminal"),
			"Run from an interactive terminal, or use one-shot commands such as 'spacedeck missions'.")
	}

	s, err := app.Session(cmd, "tui", true)
	if err != nil {
		return err
	}
	defer s.close()

	m, err := shell.NewModel(shell.Options{
		Env: views.Env{
			Ctx:      s.ctx,
			Source:   s.client,
			Log:      s.log,
			PageSize: s.cfg.PageSize,
		},
		Store: s.prefs,
		Route: route,
	})
	if err != nil {
		return newCommandError("launch terminal UI", "opening route", err, "Use home, missions, missions/<flight-number>, compare-rockets or explore.")
	}

	s.log.Info(s.ctx, "launching terminal ui", "route", m.Route().Path(), "theme", m.Theme().String())

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(s.ctx)).Run()
	if fm, ok := final.(shell.Model); ok {
		fm.Teardown()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		s.log.Error(s.ctx, "terminal ui exited with error", "error", err)
		return newCommandError("run terminal UI", "rendering", err, "Try resizing the terminal or run with -v and check the log file.")
	}
	s.log.Info(s.ctx, "terminal ui closed")
	return nil
}
