package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

func newEPICCmd(app *AppContext) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "epic",
		Short: "List the latest EPIC Earth images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEPIC(cmd, app, opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runEPIC(cmd *cobra.Command, app *AppContext, opts *outputOptions) error {
	s, err := app.Session(cmd, "command.epic", false)
	if err != nil {
		return err
	}
	defer s.close()

	images, err := fetchOnce(s, "epic", views.EPICFailure, "list Earth images", s.client.EPIC)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return renderJSON(cmd.OutOrStdout(), images)
	}

	rows := make([][]string, len(images))
	for i, img := range images {
		rows[i] = epicRow(img)
	}
	return renderTable(cmd.OutOrStdout(), []string{"DATE", "CENTROID", "DSCOVR", "ATTITUDE", "IMAGE"}, rows)
}

func epicRow(img api.EpicImage) []string {
	return []string{
		valueOrFallback(img.Date, "N/A"),
		views.FormatLatLon(img.CentroidCoordinates),
		views.FormatPosition(img.DSCOVRPosition),
		views.FormatQuaternion(img.AttitudeQuaternions),
		valueOrFallback(img.ImageURL, "N/A"),
	}
}
