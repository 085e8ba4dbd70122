// Package shell is the top-level Bubble Tea model: it owns the route table,
// mounts and tears down views, and routes messages to the active one.
package shell

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spacedeck/internal/prefs"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/theme"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

const (
	minWidth  = 80
	minHeight = 24
)

// Options configures a new shell.
type Options struct {
	// Env is the base environment handed to every mounted view. Its Styles
	// and Mount fields are managed by the shell.
	Env views.Env
	// Store persists the theme. It may be nil, in which case toggling
	// only affects the running session.
	Store *prefs.Store
	// Route is the initial path; empty means home.
	Route string
}

// Model is the root model of the terminal UI.
type Model struct {
	env    views.Env
	store  *prefs.Store
	styles *theme.Styles

	route  Route
	active views.View
	mount  int

	spinner  spinner.Model
	keys     keyMap
	help     help.Model
	showHelp bool

	showError bool
	errorMsg  string
	sizeError bool

	width  int
	height int
}

// NewModel creates the shell with the initial route mounted. The view's
// first fetch runs from Init.
func NewModel(opts Options) (Model, error) {
	if opts.Env.Source == nil {
		return Model{}, errors.New("shell: a data source is required")
	}
	if opts.Env.Ctx == nil {
		opts.Env.Ctx = context.Background()
	}

	route, err := ParseRoute(opts.Route)
	if err != nil {
		return Model{}, err
	}

	current := prefs.DefaultTheme
	if opts.Store != nil {
		current = opts.Store.Theme()
	}
	styles := theme.New(current)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	m := Model{
		env:     opts.Env,
		store:   opts.Store,
		styles:  styles,
		spinner: s,
		keys:    newKeyMap(),
		help:    help.New(),
		width:   minWidth,
		height:  minHeight,
	}
	m.env.Styles = styles
	m.mountRoute(route)
	return m, nil
}

// Init starts the spinner and the initial view's requests.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.active.Init())
}

// Route returns the current route.
func (m Model) Route() Route { return m.route }

// Active returns the mounted view.
func (m Model) Active() views.View { return m.active }

// Mount returns the sequence number of the mounted view.
func (m Model) Mount() int { return m.mount }

// Theme returns the active theme.
func (m Model) Theme() prefs.Theme { return m.styles.Name }

// Navigate tears down the current view and mounts the one for path.
func (m Model) Navigate(path string) (Model, tea.Cmd) {
	route, err := ParseRoute(path)
	if err != nil {
		m.showError = true
		m.errorMsg = err.Error()
		return m, nil
	}
	m.mountRoute(route)
	m.showHelp = false
	if m.errorMsg != "" && !m.sizeError {
		m.showError = false
		m.errorMsg = ""
	}
	return m, tea.Batch(m.active.Init(), m.resize())
}

func (m *Model) mountRoute(route Route) {
	if m.active != nil {
		m.active.Teardown()
	}
	m.mount++
	env := m.env
	env.Mount = m.mount
	m.route = route
	m.active = build(route, env)
}

// resize tells a freshly mounted view the terminal size.
func (m Model) resize() tea.Cmd {
	width, height := m.width, m.height
	return func() tea.Msg { return tea.WindowSizeMsg{Width: width, Height: height} }
}

// ToggleTheme switches the colour scheme and persists it.
func (m Model) ToggleTheme() Model {
	next := m.styles.Name.Toggled()
	if m.store != nil {
		saved, err := m.store.Toggle()
		if err != nil {
			m.env.Log.Warn(m.env.Ctx, "failed to save theme preference", "error", err)
			m.showError = true
			m.errorMsg = "Could not save theme preference."
		}
		next = saved
	}
	// Views share the styles pointer and see the change on their next render.
	*m.styles = *theme.New(next)
	m.styles.ApplyMaxWidth(m.width)
	m.spinner.Style = m.styles.Spinner
	return m
}

// Teardown abandons every request of the mounted view.
func (m Model) Teardown() {
	if m.active != nil {
		m.active.Teardown()
	}
}
