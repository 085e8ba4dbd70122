package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

func newExploreCmd(app *AppContext) *cobra.Command {
	opts := &outputOptions{}

	cmd := &cobra.Command{
		Use:   "explore [planet]",
		Short: "Summarise NASA media for each planet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			planets := views.Planets
			if len(args) == 1 {
				if !isPlanet(args[0]) {
					return newCommandError("explore", "validating planet", fmt.Errorf("unknown planet %q", args[0]), "Use one of mercury, venus, earth, mars, jupiter, saturn, uranus or neptune.")
				}
				planets = []string{args[0]}
			}
			return runExplore(cmd, app, opts, planets)
		},
	}
	opts.bind(cmd)

	return cmd
}

type planetPayload struct {
	Planet string          `json:"planet"`
	Images []api.MediaItem `json:"images"`
	Videos []api.MediaItem `json:"videos"`
}

func runExplore(cmd *cobra.Command, app *AppContext, opts *outputOptions, planets []string) error {
	s, err := app.Session(cmd, "command.explore", false)
	if err != nil {
		return err
	}
	defer s.close()

	media, err := fetchOnce(s, "explore", views.ExploreAllEmpty, "explore planets", func(ctx context.Context) (views.PlanetMedia, error) {
		return views.FetchPlanetMedia(ctx, s.client, planets), nil
	})
	if err != nil {
		return err
	}
	for planet, parts := range media.Failures {
		for part, err := range parts {
			s.log.Warn(s.ctx, "planet media search failed", "planet", planet, "media", part, "error", err)
		}
	}

	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		payload := make([]planetPayload, len(planets))
		for i, p := range planets {
			payload[i] = planetPayload{Planet: p, Images: media.Get(p, views.PartImages), Videos: media.Get(p, views.PartVideos)}
		}
		return renderJSON(out, payload)
	}

	if media.Empty() {
		fmt.Fprintln(out, views.ExploreAllEmpty)
		return nil
	}

	rows := make([][]string, len(planets))
	for i, p := range planets {
		images, videos := media.Get(p, views.PartImages), media.Get(p, views.PartVideos)
		if len(images)+len(videos) == 0 {
			rows[i] = []string{p, "No media", "", ""}
			continue
		}
		first := ""
		if len(images) > 0 {
			first = images[0].Thumbnail
		}
		rows[i] = []string{p, strconv.Itoa(len(images)), strconv.Itoa(len(videos)), first}
	}
	return renderTable(out, []string{"PLANET", "IMAGES", "VIDEOS", "PREVIEW"}, rows)
}

func isPlanet(name string) bool {
	for _, p := range views.Planets {
		if p == name {
			return true
		}
	}
	return false
}
