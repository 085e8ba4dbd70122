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

const (
	// RocketsFailure is shown when the rocket catalogue cannot be loaded.
	RocketsFailure = "Failed to load rockets."
	// CompareFailure is shown when the backend cannot generate a comparison.
	CompareFailure = "Error: Could not generate comparison."
)

// maxSelected is how many rockets a comparison takes.
const maxSelected = 2

// RocketsView lets the user pick two rockets and asks the backend to
// compare them.
type RocketsView struct {
	env     Env
	rockets *fetch.Lifecycle[[]api.Rocket]
	compare *fetch.Lifecycle[*api.Comparison]

	cursor   int
	selected []string
	width    int
}

// NewRockets creates the rocket comparison view.
func NewRockets(env Env) *RocketsView {
	return &RocketsView{
		env:     env,
		rockets: fetch.New[[]api.Rocket](env.Key("rockets"), RocketsFailure),
		compare: fetch.New[*api.Comparison](env.Key("compare"), CompareFailure),
		width:   80,
	}
}

func (v *RocketsView) Key() string   { return "compare-rockets" }
func (v *RocketsView) Title() string { return "Compare Rockets" }

func (v *RocketsView) Init() tea.Cmd {
	return v.rockets.Fetch(v.env.context(), v.env.Source.Rockets)
}

func (v *RocketsView) Teardown() {
	v.rockets.Cancel()
	v.compare.Cancel()
}

func (v *RocketsView) Busy() bool {
	return v.rockets.State() == fetch.Loading || v.compare.State() == fetch.Loading
}

func (v *RocketsView) Capturing() bool { return false }

// Selected returns the chosen rocket names in selection order.
func (v *RocketsView) Selected() []string {
	return append([]string(nil), v.selected...)
}

// Comparison exposes the comparison lifecycle for inspection.
func (v *RocketsView) Comparison() *fetch.Lifecycle[*api.Comparison] { return v.compare }

// Rockets exposes the catalogue lifecycle for inspection.
func (v *RocketsView) Rockets() *fetch.Lifecycle[[]api.Rocket] { return v.rockets }

// Toggle selects or deselects a rocket by name. Selecting beyond two is
// ignored.
func (v *RocketsView) Toggle(name string) {
	for i, n := range v.selected {
		if n == name {
			v.selected = append(v.selected[:i:i], v.selected[i+1:]...)
			return
		}
	}
	if len(v.selected) >= maxSelected {
		return
	}
	v.selected = append(v.selected, name)
}

func (v *RocketsView) isSelected(name string) bool {
	for _, n := range v.selected {
		if n == name {
			return true
		}
	}
	return false
}

// CanCompare reports whether a comparison request may start: exactly two
// rockets chosen and no comparison already running.
func (v *RocketsView) CanCompare() bool {
	return len(v.selected) == maxSelected && v.compare.State() != fetch.Loading
}

// StartCompare issues the comparison request when allowed and returns nil otherwise.
func (v *RocketsView) StartCompare() tea.Cmd {
	if !v.CanCompare() {
		return nil
	}
	src := v.env.Source
	a, b := v.selected[0], v.selected[1]
	return v.compare.Fetch(v.env.context(), func(ctx context.Context) (*api.Comparison, error) {
		return src.CompareRockets(ctx, a, b)
	})
}

func (v *RocketsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width

	case fetch.Result[[]api.Rocket]:
		v.rockets.Resolve(msg)

	case fetch.Result[*api.Comparison]:
		v.compare.Resolve(msg)

	case tea.KeyMsg:
		rockets, _ := v.rockets.Data()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(rockets)-1 {
				v.cursor++
			}
		case " ", "space", "x":
			if v.cursor < len(rockets) {
				v.Toggle(rockets[v.cursor].Name)
			}
		case "c":
			return v, v.StartCompare()
		}
	}
	return v, nil
}

func (v *RocketsView) View() string {
	s := v.env.Styles
	var b strings.Builder
	b.WriteString(s.Header.Render("AI Rocket Comparison") + "\n")

	if out, done := renderState(s, v.rockets, "Loading rockets..."); done {
		b.WriteString(out)
		return b.String()
	}

	rockets, _ := v.rockets.Data()
	if len(rockets) == 0 {
		b.WriteString(s.Empty.Render("No rockets available."))
		return b.String()
	}

	rows := make([]string, 0, len(rockets))
	for i, r := range rockets {
		mark := "[ ]"
		if v.isSelected(r.Name) {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s  %s", mark, r.Name, s.Muted.Render("first flight "+placeholder(r.FirstFlight, notAvailable)))
		if i == v.cursor {
			rows = append(rows, s.SelectedItem.Render(line))
		} else {
			rows = append(rows, s.Item.Render(line))
		}
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n")

	hint := fmt.Sprintf("Selected %d/%d", len(v.selected), maxSelected)
	if len(v.selected) == maxSelected {
		hint += fmt.Sprintf(" · press c to compare %s and %s", v.selected[0], v.selected[1])
	}
	b.WriteString(s.Muted.Render(hint) + "\n")

	switch v.compare.State() {
	case fetch.Loading:
		b.WriteString(s.Muted.Render("Generating comparison..."))
	case fetch.Failed:
		b.WriteString(s.Failure.Render(v.compare.Message()))
	case fetch.Ready:
		cmp, _ := v.compare.Data()
		wrap := lipgloss.NewStyle().Width(max(20, v.width-6))
		b.WriteString(s.Section.Render(wrap.Render(cmp.Text)))
	}
	return b.String()
}
