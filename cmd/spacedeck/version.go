package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spacedeck/internal/config"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Display build information and the resolved backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "spacedeck %s (commit %s, built %s, %s %s/%s)\n",
				version, commit, date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
			fmt.Fprintf(out, "config: %s\n", app.configPath())

			// A missing backend is reported, not treated as a failure.
			backend := "not configured"
			if cfg, err := app.Config(); err == nil {
				backend = cfg.BackendURL
			}
			fmt.Fprintf(out, "backend: %s\n", backend)
			return nil
		},
	}

	return cmd
}

// configPath is the file Config reads: --config, or the default under HOME.
func (a *AppContext) configPath() string {
	if a.flags.configPath != "" {
		return a.flags.configPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "unknown"
	}
	return config.DefaultPath(home)
}
