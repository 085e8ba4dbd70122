package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

// Route names.
const (
	RouteHome     = "home"
	RouteMissions = "missions"
	RouteMission  = "missions/:flight"
	RouteCompare  = "compare-rockets"
	RouteExplore  = "explore"
)

// Route is a parsed navigation target.
type Route struct {
	Name   string
	Flight string
}

// Path renders the route back to its path form.
func (r Route) Path() string {
	if r.Name == RouteMission {
		return "missions/" + r.Flight
	}
	return r.Name
}

// ParseRoute resolves a path such as "missions/12". An empty path is home.
func ParseRoute(path string) (Route, error) {
	path = strings.Trim(strings.TrimSpace(path), "/")
	switch path {
	case "", RouteHome:
		return Route{Name: RouteHome}, nil
	case RouteMissions, RouteCompare, RouteExplore:
		return Route{Name: path}, nil
	}

	if flight, ok := strings.CutPrefix(path, "missions/"); ok && flight != "" && !strings.Contains(flight, "/") {
		if _, err := strconv.Atoi(flight); err != nil {
			return Route{}, fmt.Errorf("invalid flight number %q", flight)
		}
		return Route{Name: RouteMission, Flight: flight}, nil
	}
	return Route{}, fmt.Errorf("unknown route %q", path)
}

// tab is one entry of the navigation bar.
type tab struct {
	key   string
	route string
	label string
}

var tabs = []tab{
	{key: "1", route: RouteHome, label: "Home"},
	{key: "2", route: RouteMissions, label: "Missions"},
	{key: "3", route: RouteCompare, label: "Compare Rockets"},
	{key: "4", route: RouteExplore, label: "Explore"},
}

// tabIndex returns the nav entry a route belongs under. Mission detail
// pages sit under Missions.
func tabIndex(r Route) int {
	name := r.Name
	if name == RouteMission {
		name = RouteMissions
	}
	for i, t := range tabs {
		if t.route == name {
			return i
		}
	}
	return 0
}

// build creates the view for r.
func build(r Route, env views.Env) views.View {
	switch r.Name {
	case RouteMissions:
		return views.NewMissions(env)
	case RouteMission:
		return views.NewMission(env, r.Flight)
	case RouteCompare:
		return views.NewRockets(env)
	case RouteExplore:
		return views.NewExplore(env)
	default:
		return views.NewHome(env)
	}
}
