package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

type apodOptions struct {
	outputOptions
	date string
}

func newAPODCmd(app *AppContext) *cobra.Command {
	opts := &apodOptions{}

	cmd := &cobra.Command{
		Use:   "apod",
		Short: "Show the Astronomy Picture of the Day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAPOD(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.date, "date", "", "Date to show (YYYY-MM-DD, default today)")
	opts.bind(cmd)

	return cmd
}

func runAPOD(cmd *cobra.Command, app *AppContext, opts *apodOptions) error {
	var date *time.Time
	if opts.date != "" {
		parsed, err := time.ParseInLocation(api.DateLayout, opts.date, time.Local)
		if err != nil {
			return newCommandError("show picture of the day", "parsing --date", err, "Use the YYYY-MM-DD format, e.g. 2024-01-15.")
		}
		date = &parsed
	}

	s, err := app.Session(cmd, "command.apod", false)
	if err != nil {
		return err
	}
	defer s.close()

	apod, err := fetchOnce(s, "apod", views.APODFailure, "show picture of the day", func(ctx context.Context) (*api.APOD, error) {
		return s.client.APOD(ctx, date)
	})
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderJSON(cmd.OutOrStdout(), apod)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, valueOrFallback(apod.Title, "Untitled"))
	fmt.Fprintf(out, "Date: %s\n", valueOrFallback(apod.Date, "N/A"))
	if apod.Copyright != "" {
		fmt.Fprintf(out, "Copyright: %s\n", strings.TrimSpace(apod.Copyright))
	}
	if apod.IsVideo() {
		fmt.Fprintf(out, "Video: %s\n", valueOrFallback(apod.URL, "N/A"))
	} else {
		fmt.Fprintf(out, "Image: %s\n", valueOrFallback(apod.URL, "N/A"))
		if apod.HDURL != "" {
			fmt.Fprintf(out, "HD image: %s\n", apod.HDURL)
		}
	}
	fmt.Fprintf(out, "\n%s\n", valueOrFallback(apod.Explanation, "No description available."))
	return nil
}
