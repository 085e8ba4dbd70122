package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/fetch"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/components"
)

// EPICFailure is shown when the Earth imagery cannot be loaded.
const EPICFailure = "Failed to load EPIC Earth images."

const notAvailable = "N/A"

// EPICView browses the latest EPIC Earth images one at a time.
type EPICView struct {
	env   Env
	state *fetch.Lifecycle[[]api.EpicImage]
	index int
}

// NewEPIC creates the Earth imagery view.
func NewEPIC(env Env) *EPICView {
	return &EPICView{
		env:   env,
		state: fetch.New[[]api.EpicImage](env.Key("epic"), EPICFailure),
	}
}

func (v *EPICView) Key() string   { return "epic" }
func (v *EPICView) Title() string { return "Earth Imagery" }

func (v *EPICView) Init() tea.Cmd {
	return v.state.Fetch(v.env.context(), v.env.Source.EPIC)
}

func (v *EPICView) Teardown()       { v.state.Cancel() }
func (v *EPICView) Busy() bool      { return v.state.State() == fetch.Loading }
func (v *EPICView) Capturing() bool { return false }

// Index returns the selected image.
func (v *EPICView) Index() int { return v.index }

// State exposes the lifecycle for inspection.
func (v *EPICView) State() *fetch.Lifecycle[[]api.EpicImage] { return v.state }

func (v *EPICView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case fetch.Result[[]api.EpicImage]:
		if v.state.Resolve(msg) {
			v.index = 0
		}
	case tea.KeyMsg:
		images, _ := v.state.Data()
		switch msg.String() {
		case "left", "h":
			if v.index > 0 {
				v.index--
			}
		case "right", "l":
			if v.index < len(images)-1 {
				v.index++
			}
		}
	}
	return v, nil
}

func (v *EPICView) View() string {
	s := v.env.Styles
	var b strings.Builder
	b.WriteString(s.Header.Render("EPIC Earth Imagery") + "\n")

	if out, done := renderState(s, v.state, "Loading EPIC images..."); done {
		b.WriteString(out)
		return b.String()
	}

	images, _ := v.state.Data()
	if len(images) == 0 {
		b.WriteString(s.Empty.Render("No EPIC images available."))
		return b.String()
	}

	labels := make([]string, len(images))
	for i, img := range images {
		labels[i] = epicLabel(img, i)
	}
	strip := components.Strip{Size: 5, Normal: s.Muted, Selected: s.Emphasis, Muted: s.Muted}
	b.WriteString(strip.View(labels, v.index) + "\n")

	img := images[v.index]
	b.WriteString(components.KeyValue(s.Label, s.Value, notAvailable,
		[2]string{"Caption", img.Caption},
		[2]string{"Date", img.Date},
		[2]string{"Image", img.ImageURL},
		[2]string{"Centroid", FormatLatLon(img.CentroidCoordinates)},
		[2]string{"DSCOVR", FormatPosition(img.DSCOVRPosition)},
		[2]string{"Moon", FormatPosition(img.LunarPosition)},
		[2]string{"Sun", FormatPosition(img.SunPosition)},
		[2]string{"Attitude", FormatQuaternion(img.AttitudeQuaternions)},
	))
	return b.String()
}

// epicLabel uses the time of day when the date has one.
func epicLabel(img api.EpicImage, i int) string {
	if _, clock, ok := strings.Cut(img.Date, " "); ok && clock != "" {
		return clock
	}
	if img.Identifier != "" {
		return img.Identifier
	}
	return fmt.Sprintf("#%d", i+1)
}

// FormatLatLon renders a centroid with three decimals.
func FormatLatLon(c *api.LatLon) string {
	if c == nil {
		return notAvailable
	}
	return fmt.Sprintf("lat %.3f, lon %.3f", c.Lat, c.Lon)
}

// FormatPosition renders a J2000 position in whole kilometres.
func FormatPosition(p *api.Vector3) string {
	if p == nil {
		return notAvailable
	}
	return fmt.Sprintf("x %.0f, y %.0f, z %.0f", p.X, p.Y, p.Z)
}

// FormatQuaternion renders an attitude with three decimals.
func FormatQuaternion(q *api.Quaternion) string {
	if q == nil {
		return notAvailable
	}
	return fmt.Sprintf("q0 %.3f, q1 %.3f, q2 %.3f, q3 %.3f", q.Q0, q.Q1, q.Q2, q.Q3)
}
