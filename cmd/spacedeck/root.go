package main

import (
	"time"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	backendURL string
	timeout    time.Duration
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := newAppContext(flags)

	cmd := &cobra.Command{
		Use:           "spacedeck",
		Short:         "spacedeck browses NASA imagery and SpaceX launch data from your terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the terminal UI
			if len(args) == 0 {
				return runUI(cmd, app, "")
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to config file (default ~/.spacedeck/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.backendURL, "backend-url", "", "Backend base URL")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "Per-request timeout (0 keeps the configured value)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newUICmd(app))
	cmd.AddCommand(newAPODCmd(app))
	cmd.AddCommand(newEPICCmd(app))
	cmd.AddCommand(newMissionsCmd(app))
	cmd.AddCommand(newMissionCmd(app))
	cmd.AddCommand(newRocketsCmd(app))
	cmd.AddCommand(newCompareCmd(app))
	cmd.AddCommand(newExploreCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}
