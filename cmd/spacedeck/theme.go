package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spacedeck/internal/config"
	"github.com/alexisbeaulieu97/spacedeck/internal/prefs"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the terminal UI theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeShow(cmd, app)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeShow(cmd, app)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openPreferences(cmd, app)
			if err != nil {
				return err
			}
			next, err := store.Toggle()
			if err != nil {
				return newCommandError("toggle theme", "saving preferences", err, "Check permissions on "+store.Path()+".")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", next)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Choose a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(prefs.ThemeDark), string(prefs.ThemeLight)},
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := prefs.ParseTheme(args[0])
			if err != nil {
				return newCommandError("set theme", "parsing theme", err, "Use 'dark' or 'light'.")
			}
			store, err := openPreferences(cmd, app)
			if err != nil {
				return err
			}
			if err := store.Set(theme); err != nil {
				return newCommandError("set theme", "saving preferences", err, "Check permissions on "+store.Path()+".")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
			return nil
		},
	})

	return cmd
}

func runThemeShow(cmd *cobra.Command, app *AppContext) error {
	store, err := openPreferences(cmd, app)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), store.Theme())
	return nil
}

// openPreferences opens the store without requiring a backend URL: theme
// commands work before the backend is configured.
func openPreferences(cmd *cobra.Command, app *AppContext) (*prefs.Store, error) {
	path, err := preferencesPath(app)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	store, err := prefs.Open(ctx, path, nil)
	if err != nil {
		return nil, newCommandError("load preferences", "reading "+path, err, "Check permissions on "+filepath.Dir(path)+".")
	}
	return store, nil
}

func preferencesPath(app *AppContext) (string, error) {
	if cfg, err := app.Config(); err == nil {
		return cfg.PreferencesPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", newCommandError("load preferences", "determining home directory", err, "Ensure your HOME directory is set correctly.")
	}
	return config.Defaults(home).PreferencesPath, nil
}
