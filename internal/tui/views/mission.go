package views

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/fetch"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/components"
	apperrors "github.com/alexisbeaulieu97/spacedeck/pkg/errors"
)

// MissionFailure is shown when the launch history behind a detail page
// cannot be loaded.
const MissionFailure = "Could not fetch mission details"

// MissionNotFound is shown when no launch has the requested flight number.
const MissionNotFound = "Mission not found"

// MissionDetail is the outcome of looking a flight up in the launch history.
type MissionDetail struct {
	Launch api.Launch
	Found  bool
}

// MissionView shows one launch identified by its flight number.
type MissionView struct {
	env    Env
	flight string
	state  *fetch.Lifecycle[MissionDetail]
}

// NewMission creates the detail view for flight, the flight number as it
// appears in the route.
func NewMission(env Env, flight string) *MissionView {
	return &MissionView{
		env:    env,
		flight: flight,
		state:  fetch.New[MissionDetail](env.Key("mission/"+flight), MissionFailure),
	}
}

func (v *MissionView) Key() string   { return "missions/" + v.flight }
func (v *MissionView) Title() string { return "Mission " + v.flight }

// Flight returns the requested flight number.
func (v *MissionView) Flight() string { return v.flight }

// State exposes the lifecycle for inspection.
func (v *MissionView) State() *fetch.Lifecycle[MissionDetail] { return v.state }

func (v *MissionView) Init() tea.Cmd {
	src, flight := v.env.Source, v.flight
	return v.state.Fetch(v.env.context(), func(ctx context.Context) (MissionDetail, error) {
		launches, err := src.Launches(ctx)
		if err != nil {
			return MissionDetail{}, err
		}
		return lookupMission(launches, flight)
	})
}

// lookupMission turns a missing flight into a Ready detail with Found unset.
// Only a failed fetch enters the Failed state.
func lookupMission(launches []api.Launch, flight string) (MissionDetail, error) {
	launch, err := FindByFlight(launches, flight)
	if apperrors.KindOf(err) == apperrors.KindNotFound {
		return MissionDetail{}, nil
	}
	if err != nil {
		return MissionDetail{}, err
	}
	return MissionDetail{Launch: launch, Found: true}, nil
}

func (v *MissionView) Teardown()       { v.state.Cancel() }
func (v *MissionView) Busy() bool      { return v.state.State() == fetch.Loading }
func (v *MissionView) Capturing() bool { return false }

func (v *MissionView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case fetch.Result[MissionDetail]:
		v.state.Resolve(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return v, navigate("missions")
		}
	}
	return v, nil
}

func (v *MissionView) View() string {
	s := v.env.Styles
	var b strings.Builder

	if out, done := renderState(s, v.state, "Loading mission details..."); done {
		b.WriteString(s.Header.Render("Mission #"+v.flight) + "\n")
		b.WriteString(out)
		return b.String()
	}

	detail, _ := v.state.Data()
	if !detail.Found {
		b.WriteString(s.Header.Render("Mission #"+v.flight) + "\n")
		b.WriteString(s.Empty.Render(MissionNotFound))
		return b.String()
	}

	l := detail.Launch
	b.WriteString(s.Header.Render(fmt.Sprintf("Mission #%d: %s", l.FlightNumber, l.MissionName)) + "\n")

	outcome := "Unknown"
	if l.LaunchSuccess != nil {
		outcome = map[bool]string{true: "Success", false: "Failure"}[*l.LaunchSuccess]
	}
	b.WriteString(components.KeyValue(s.Label, s.Value, notAvailable,
		[2]string{"Launch year", l.LaunchYear},
		[2]string{"Launch date", l.LaunchDateUTC},
		[2]string{"Rocket", l.Rocket.RocketName},
		[2]string{"Rocket type", l.Rocket.RocketType},
		[2]string{"Launch site", l.LaunchSite.SiteNameLong},
		[2]string{"Mission patch", placeholder(l.Links.MissionPatch, "No patch image")},
		[2]string{"Article", l.Links.ArticleLink},
		[2]string{"Video", l.Links.VideoLink},
		[2]string{"Wikipedia", l.Links.Wikipedia},
	) + "\n")
	b.WriteString(s.Outcome(l.LaunchSuccess).Render("Outcome: "+outcome) + "\n")
	b.WriteString(s.Section.Render(placeholder(l.Details, "No additional details available.")))
	return b.String()
}
