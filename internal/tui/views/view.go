// Package views implements the screens of the terminal UI. Every view owns
// the fetch lifecycles for its data and renders with the active theme.
package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/fetch"
	"github.com/alexisbeaulieu97/spacedeck/internal/logger"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/theme"
)

// Source is the backend the views read from. *api.Client implements it.
type Source interface {
	APOD(ctx context.Context, date *time.Time) (*api.APOD, error)
	EPIC(ctx context.Context) ([]api.EpicImage, error)
	Launches(ctx context.Context) ([]api.Launch, error)
	Rockets(ctx context.Context) ([]api.Rocket, error)
	CompareRockets(ctx context.Context, rocket1, rocket2 string) (*api.Comparison, error)
	NASAImages(ctx context.Context, term string, mediaType api.MediaType) ([]api.MediaItem, error)
}

// Env carries what a mounted view needs. Styles is shared with the shell so
// a theme switch is picked up on the next render.
type Env struct {
	Ctx      context.Context
	Source   Source
	Styles   *theme.Styles
	Log      *logger.Logger
	PageSize int
	Mount    int
	Now      func() time.Time
}

func (e Env) context() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) pageSize() int {
	if e.PageSize < 1 {
		return 10
	}
	return e.PageSize
}

// Key returns a routing key unique to this mount of a view.
func (e Env) Key(name string) string {
	return fmt.Sprintf("%d:%s", e.Mount, name)
}

// MountOf extracts the mount number from a routing key.
func MountOf(key string) (int, bool) {
	prefix, _, ok := strings.Cut(key, ":")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Keyed is implemented by messages that belong to one mounted view.
type Keyed interface {
	ResultKey() string
}

// View is one screen of the UI.
type View interface {
	// Key identifies the route the view was mounted for.
	Key() string
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	// Teardown abandons every in-flight request. Results arriving later are ignored.
	Teardown()
	// Busy reports whether any request is in flight.
	Busy() bool
	// Capturing reports whether the view is consuming raw key input, such
	// as a search box, so global shortcuts must not fire.
	Capturing() bool
}

// NavigateMsg asks the shell to mount the view for Path.
type NavigateMsg struct {
	Path string
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// renderState renders the loading and failure states of a lifecycle. It
// returns false when the view should render its data instead.
func renderState[T any](s *theme.Styles, l *fetch.Lifecycle[T], loading string) (string, bool) {
	switch l.State() {
	case fetch.Idle, fetch.Loading:
		return s.Muted.Render(loading), true
	case fetch.Failed:
		return s.ErrorBanner.Render(l.Message()), true
	default:
		return "", false
	}
}

func placeholder(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
