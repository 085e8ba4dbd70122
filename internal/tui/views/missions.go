package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/fetch"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/components"
)

// MissionsFailure is shown when the launch history cannot be loaded.
const MissionsFailure = "Failed to load missions."

// MissionsView lists SpaceX launches with search and incremental paging,
// above charts derived from the full history.
type MissionsView struct {
	env   Env
	state *fetch.Lifecycle[[]api.Launch]

	pager    fetch.Pager
	sentinel fetch.Sentinel
	search   textinput.Model
	query    string
	editing  bool
	cursor   int
	width    int
}

// NewMissions creates the mission list view.
func NewMissions(env Env) *MissionsView {
	ti := textinput.New()
	ti.Placeholder = "Search mission name..."
	ti.Prompt = "/ "
	ti.CharLimit = 64

	return &MissionsView{
		env:    env,
		state:  fetch.New[[]api.Launch](env.Key("missions"), MissionsFailure),
		pager:  fetch.NewPager(env.pageSize()),
		search: ti,
		width:  80,
	}
}

func (v *MissionsView) Key() string   { return "missions" }
func (v *MissionsView) Title() string { return "Missions" }

func (v *MissionsView) Init() tea.Cmd {
	src := v.env.Source
	return v.state.Fetch(v.env.context(), func(ctx context.Context) ([]api.Launch, error) {
		launches, err := src.Launches(ctx)
		if err != nil {
			return nil, err
		}
		return SortByFlightDesc(launches), nil
	})
}

func (v *MissionsView) Teardown()       { v.state.Cancel() }
func (v *MissionsView) Busy() bool      { return v.state.State() == fetch.Loading }
func (v *MissionsView) Capturing() bool { return v.editing }

// State exposes the lifecycle for inspection.
func (v *MissionsView) State() *fetch.Lifecycle[[]api.Launch] { return v.state }

// Pager returns the current paging position.
func (v *MissionsView) Pager() fetch.Pager { return v.pager }

// Query returns the active search text.
func (v *MissionsView) Query() string { return v.query }

// Cursor returns the highlighted row.
func (v *MissionsView) Cursor() int { return v.cursor }

// listed is the part of the snapshot the list draws from.
func (v *MissionsView) listed() []api.Launch {
	launches, _ := v.state.Data()
	return fetch.Filter(WithPatch(launches), v.query, missionName)
}

// Visible returns the rows currently shown.
func (v *MissionsView) Visible() []api.Launch {
	launches, _ := v.state.Data()
	return fetch.Window(WithPatch(launches), v.query, v.pager, missionName)
}

func (v *MissionsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width

	case fetch.Result[[]api.Launch]:
		if v.state.Resolve(msg) {
			v.pager = v.pager.Reset()
			v.cursor = 0
		}

	case tea.KeyMsg:
		if v.editing {
			return v, v.handleSearch(msg)
		}
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *MissionsView) handleKey(msg tea.KeyMsg) tea.Cmd {
	visible := v.Visible()

	switch msg.String() {
	case "/":
		v.editing = true
		v.search.SetValue(v.query)
		return v.search.Focus()
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
		v.scrolled()
	case "end", "G":
		v.cursor = len(visible) - 1
		if v.cursor < 0 {
			v.cursor = 0
		}
		v.scrolled()
	case "esc":
		if v.query != "" {
			v.setQuery("")
		}
	case "enter":
		if v.cursor < len(visible) {
			return navigate("missions/" + visible[v.cursor].Key())
		}
	}
	return nil
}

// scrolled advances the pager when the cursor reaches the last rows.
func (v *MissionsView) scrolled() {
	if v.sentinel.Reached(v.cursor, len(v.Visible())) {
		v.pager = v.pager.Next(len(v.listed()))
	}
}

func (v *MissionsView) handleSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		v.editing = false
		v.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	if v.search.Value() != v.query {
		v.setQuery(v.search.Value())
	}
	return cmd
}

// setQuery applies a new search. Paging starts over from the first page.
func (v *MissionsView) setQuery(q string) {
	v.query = q
	v.pager = v.pager.Reset()
	v.cursor = 0
}

func (v *MissionsView) View() string {
	s := v.env.Styles
	var b strings.Builder
	b.WriteString(s.Header.Render("SpaceX Missions") + "\n")

	if out, done := renderState(s, v.state, "Loading missions..."); done {
		b.WriteString(out)
		return b.String()
	}

	launches, _ := v.state.Data()
	b.WriteString(v.renderCharts(launches) + "\n\n")

	if v.editing {
		b.WriteString(v.search.View() + "\n")
	} else if v.query != "" {
		b.WriteString(s.Muted.Render(fmt.Sprintf("Search: %q (esc to clear)", v.query)) + "\n")
	}

	visible := v.Visible()
	if len(visible) == 0 {
		b.WriteString(s.Empty.Render("No missions match your search."))
		return b.String()
	}

	rows := make([]string, 0, len(visible)+1)
	for i, l := range visible {
		outcome := s.Outcome(l.LaunchSuccess).Render(outcomeIcon(l.LaunchSuccess))
		line := fmt.Sprintf("%s #%-4d %s  🚀 %s | %s", outcome, l.FlightNumber, l.MissionName,
			placeholder(l.Rocket.RocketName, "Unknown rocket"), placeholder(l.LaunchYear, "----"))
		if i == v.cursor {
			rows = append(rows, s.SelectedItem.Render(line))
		} else {
			rows = append(rows, s.Item.Render(line))
		}
	}

	total := len(v.listed())
	footer := fmt.Sprintf("Showing %d of %d", len(visible), total)
	if v.pager.HasMore(total) {
		footer += " · Loading more missions as you scroll..."
	}
	rows = append(rows, s.Muted.Render(footer))
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return b.String()
}

func (v *MissionsView) renderCharts(launches []api.Launch) string {
	s := v.env.Styles

	years := CountByYear(launches)
	bars := make([]components.Bar, len(years))
	for i, y := range years {
		bars[i] = components.Bar{Label: y.Year, Value: y.Count}
	}
	chart := components.NewBarChart(24, s.Emphasis)
	chart.Label = s.Muted

	success, failure := Outcomes(launches)
	ratio := components.NewProgress("Success", success+failure, 24)

	left := lipgloss.JoinVertical(lipgloss.Left, s.Title.Render("Missions Per Year"), chart.View(bars))
	right := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Launch Success vs Failure"),
		ratio.View(success),
		s.Success.Render(fmt.Sprintf("Successful Launches: %d", success)),
		s.Failure.Render(fmt.Sprintf("Failed Launches: %d", failure)),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func outcomeIcon(success *bool) string {
	switch {
	case success == nil:
		return "?"
	case *success:
		return "✓"
	default:
		return "✗"
	}
}
