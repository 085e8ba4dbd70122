package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/fetch"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

type missionsOptions struct {
	outputOptions
	query string
	page  int
}

func newMissionsCmd(app *AppContext) *cobra.Command {
	opts := &missionsOptions{}

	cmd := &cobra.Command{
		Use:   "missions",
		Short: "List SpaceX missions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMissions(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.query, "query", "", "Only show missions whose name contains this text")
	cmd.Flags().IntVar(&opts.page, "page", 1, "Show this many pages of results")
	opts.bind(cmd)

	return cmd
}

type missionsPayload struct {
	Total    int          `json:"total"`
	Shown    int          `json:"shown"`
	Page     int          `json:"page"`
	HasMore  bool         `json:"has_more"`
	Missions []api.Launch `json:"missions"`
}

func runMissions(cmd *cobra.Command, app *AppContext, opts *missionsOptions) error {
	if opts.page < 1 {
		return newCommandError("list missions", "validating --page", fmt.Errorf("page %d is not positive", opts.page), "Use --page 1 or higher.")
	}

	s, err := app.Session(cmd, "command.missions", false)
	if err != nil {
		return err
	}
	defer s.close()

	launches, err := fetchOnce(s, "missions", views.MissionsFailure, "list missions", func(ctx context.Context) ([]api.Launch, error) {
		all, err := s.client.Launches(ctx)
		if err != nil {
			return nil, err
		}
		return views.SortByFlightDesc(all), nil
	})
	if err != nil {
		return err
	}

	pager := fetch.Pager{Page: opts.page, PageSize: s.cfg.PageSize}
	name := func(l api.Launch) string { return l.MissionName }
	matches := fetch.Filter(launches, opts.query, name)
	shown := fetch.Window(launches, opts.query, pager, name)

	if opts.jsonOutput {
		return renderJSON(cmd.OutOrStdout(), missionsPayload{
			Total:    len(matches),
			Shown:    len(shown),
			Page:     opts.page,
			HasMore:  pager.HasMore(len(matches)),
			Missions: shown,
		})
	}

	if len(shown) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No missions match your search.")
		return nil
	}

	rows := make([][]string, len(shown))
	for i, l := range shown {
		rows[i] = []string{
			strconv.Itoa(l.FlightNumber),
			l.MissionName,
			valueOrFallback(l.LaunchYear, "----"),
			valueOrFallback(l.Rocket.RocketName, "Unknown"),
			outcomeLabel(l.LaunchSuccess),
		}
	}
	if err := renderTable(cmd.OutOrStdout(), []string{"FLIGHT", "MISSION", "YEAR", "ROCKET", "OUTCOME"}, rows); err != nil {
		return err
	}

	success, failure := views.Outcomes(launches)
	fmt.Fprintf(cmd.OutOrStdout(), "Showing %d of %d · %d successful, %d failed launches overall\n", len(shown), len(matches), success, failure)
	if pager.HasMore(len(matches)) {
		fmt.Fprintf(cmd.OutOrStdout(), "Run with --page %d to see more.\n", opts.page+1)
	}
	return nil
}

func outcomeLabel(success *bool) string {
	switch {
	case success == nil:
		return "unknown"
	case *success:
		return "success"
	default:
		return "failure"
	}
}
