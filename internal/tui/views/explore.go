package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/fetch"
)

// ExploreAllEmpty is shown when no planet returned any media.
const ExploreAllEmpty = "Failed to load media for all planets."

// Planets are the keys of the planetary media batch, in display order.
var Planets = []string{"mercury", "venus", "earth", "mars", "jupiter", "saturn", "uranus", "neptune"}

// Media part names of the batch.
const (
	PartImages = "images"
	PartVideos = "videos"
)

// exploreLimit bounds the NASA library requests in flight.
const exploreLimit = 4

// PlanetMedia is the settled batch of images and videos per planet.
type PlanetMedia = fetch.BatchResult[string, api.MediaItem]

// FetchPlanetMedia issues one image and one video search per planet and
// waits for all of them. Failed searches degrade to empty lists.
func FetchPlanetMedia(ctx context.Context, src Source, planets []string) PlanetMedia {
	search := func(mt api.MediaType) func(context.Context, string) ([]api.MediaItem, error) {
		return func(ctx context.Context, planet string) ([]api.MediaItem, error) {
			return src.NASAImages(ctx, planet, mt)
		}
	}
	parts := []fetch.Part[string, api.MediaItem]{
		{Name: PartImages, Fetch: search(api.MediaImage)},
		{Name: PartVideos, Fetch: search(api.MediaVideo)},
	}
	return fetch.Batch(ctx, planets, parts, exploreLimit)
}

// ExploreView is the planetary media explorer.
type ExploreView struct {
	env   Env
	state *fetch.Lifecycle[PlanetMedia]

	cursor int
	open   string
	width  int
}

// NewExplore creates the planetary explorer.
func NewExplore(env Env) *ExploreView {
	return &ExploreView{
		env: env,
		// The batch never fails as a whole; an all-empty result is rendered instead.
		state: fetch.New[PlanetMedia](env.Key("explore"), ExploreAllEmpty),
		width: 80,
	}
}

func (v *ExploreView) Key() string   { return "explore" }
func (v *ExploreView) Title() string { return "Explore" }

func (v *ExploreView) Init() tea.Cmd {
	src := v.env.Source
	log := v.env.Log
	return v.state.Fetch(v.env.context(), func(ctx context.Context) (PlanetMedia, error) {
		res := FetchPlanetMedia(ctx, src, Planets)
		for planet, parts := range res.Failures {
			for part, err := range parts {
				log.Warn(ctx, "planet media search failed", "planet", planet, "media", part, "error", err)
			}
		}
		return res, nil
	})
}

func (v *ExploreView) Teardown()       { v.state.Cancel() }
func (v *ExploreView) Busy() bool      { return v.state.State() == fetch.Loading }
func (v *ExploreView) Capturing() bool { return false }

// State exposes the lifecycle for inspection.
func (v *ExploreView) State() *fetch.Lifecycle[PlanetMedia] { return v.state }

// Open returns the planet whose media list is shown, or an empty string.
func (v *ExploreView) Open() string { return v.open }

func (v *ExploreView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width

	case fetch.Result[PlanetMedia]:
		v.state.Resolve(msg)

	case tea.KeyMsg:
		if v.open != "" {
			switch msg.String() {
			case "esc", "backspace", "enter":
				v.open = ""
			}
			return v, nil
		}
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(Planets)-1 {
				v.cursor++
			}
		case "enter":
			if _, ok := v.state.Data(); ok {
				v.open = Planets[v.cursor]
			}
		}
	}
	return v, nil
}

func (v *ExploreView) View() string {
	s := v.env.Styles
	var b strings.Builder
	b.WriteString(s.Header.Render("Solar System Explorer") + "\n")

	if out, done := renderState(s, v.state, "Loading planetary media..."); done {
		b.WriteString(out)
		return b.String()
	}

	media, _ := v.state.Data()
	if media.Empty() {
		b.WriteString(s.ErrorBanner.Render(ExploreAllEmpty))
		return b.String()
	}

	if v.open != "" {
		b.WriteString(v.renderPlanet(media, v.open))
		return b.String()
	}

	rows := make([]string, 0, len(Planets))
	for i, planet := range Planets {
		images, videos := media.Get(planet, PartImages), media.Get(planet, PartVideos)
		summary := s.Muted.Render("No media")
		if len(images)+len(videos) > 0 {
			summary = fmt.Sprintf("%d images, %d videos", len(images), len(videos))
		}
		line := fmt.Sprintf("%-10s %s", titleCase(planet), summary)
		if i == v.cursor {
			rows = append(rows, s.SelectedItem.Render(line))
		} else {
			rows = append(rows, s.Item.Render(line))
		}
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return b.String()
}

func (v *ExploreView) renderPlanet(media PlanetMedia, planet string) string {
	s := v.env.Styles
	var b strings.Builder
	b.WriteString(s.Title.Render(titleCase(planet)) + "\n")

	images := media.Get(planet, PartImages)
	b.WriteString(s.Emphasis.Render(fmt.Sprintf("Images (%d)", len(images))) + "\n")
	for _, img := range images {
		b.WriteString(s.Item.Render(fmt.Sprintf("%s  %s", placeholder(img.Title, "Untitled"), s.Muted.Render(img.Thumbnail))) + "\n")
	}

	videos := media.Get(planet, PartVideos)
	b.WriteString(s.Emphasis.Render(fmt.Sprintf("Videos (%d)", len(videos))) + "\n")
	for _, vid := range videos {
		b.WriteString(s.Item.Render(fmt.Sprintf("%s  %s", placeholder(vid.Title, "Untitled"), s.Muted.Render(placeholder(vid.VideoURL(), notAvailable)))) + "\n")
	}
	b.WriteString(s.Muted.Render("esc to go back"))
	return b.String()
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
