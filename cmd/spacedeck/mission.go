package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

func newMissionCmd(app *AppContext) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "mission <flight-number>",
		Short: "Show one SpaceX mission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMission(cmd, app, opts, args[0])
		},
	}
	opts.bind(cmd)

	return cmd
}

func runMission(cmd *cobra.Command, app *AppContext, opts *outputOptions, flight string) error {
	if _, err := strconv.Atoi(flight); err != nil {
		return newCommandError("show mission", "parsing flight number", err, "Pass the numeric flight number, e.g. 'spacedeck mission 12'.")
	}

	s, err := app.Session(cmd, "command.mission", false)
	if err != nil {
		return err
	}
	defer s.close()

	launches, err := fetchOnce(s, "mission", views.MissionFailure, "show mission", s.client.Launches)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	l, err := views.FindByFlight(launches, flight)
	if err != nil {
		s.log.Info(s.ctx, "mission not found", "flight", flight, "error", err)
		fmt.Fprintln(out, views.MissionNotFound)
		return nil
	}

	if opts.jsonOutput {
		return renderJSON(out, l)
	}

	fmt.Fprintf(out, "Mission #%d: %s\n", l.FlightNumber, l.MissionName)
	fmt.Fprintf(out, "Year: %s\n", valueOrFallback(l.LaunchYear, "N/A"))
	fmt.Fprintf(out, "Rocket: %s\n", valueOrFallback(l.Rocket.RocketName, "N/A"))
	fmt.Fprintf(out, "Site: %s\n", valueOrFallback(l.LaunchSite.SiteNameLong, "N/A"))
	fmt.Fprintf(out, "Outcome: %s\n", outcomeLabel(l.LaunchSuccess))
	fmt.Fprintf(out, "Patch: %s\n", valueOrFallback(l.Links.MissionPatch, "No patch image"))
	fmt.Fprintf(out, "\n%s\n", valueOrFallback(l.Details, "No additional details available."))
	return nil
}
