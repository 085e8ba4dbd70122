package shell

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Home     key.Binding
	Missions key.Binding
	Compare  key.Binding
	Explore  key.Binding
	Next     key.Binding
	Theme    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Home:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
		Missions: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "missions")),
		Compare:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "compare rockets")),
		Explore:  key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "explore")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		Theme:    key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "toggle theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Missions, k.Compare, k.Explore, k.Next},
		{k.Theme, k.Help, k.Quit},
	}
}

// viewHelp lists the keys each route understands, shown in the help overlay.
var viewHelp = map[string][][2]string{
	RouteHome: {
		{"[ / ]", "previous / next day"},
		{"t", "today's picture"},
		{"d", "go to a date"},
		{"← / →", "previous / next Earth image"},
	},
	RouteMissions: {
		{"↑ / ↓", "move; scrolling down loads more"},
		{"/", "search mission names"},
		{"esc", "clear search"},
		{"enter", "open mission"},
	},
	RouteMission: {
		{"esc", "back to missions"},
	},
	RouteCompare: {
		{"↑ / ↓", "move"},
		{"space", "select rocket (up to two)"},
		{"c", "compare selected rockets"},
	},
	RouteExplore: {
		{"↑ / ↓", "move"},
		{"enter", "show planet media"},
		{"esc", "back to planets"},
	},
}
