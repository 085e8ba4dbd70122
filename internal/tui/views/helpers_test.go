package views

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/api/apitest"
	"github.com/alexisbeaulieu97/spacedeck/internal/prefs"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/theme"
)

var errBackend = errors.New("backend down")

// fakeSource answers from fixtures unless a func override is set.
type fakeSource struct {
	mu    sync.Mutex
	calls map[string]int
	dates []*time.Time

	apod     func(date *time.Time) (*api.APOD, error)
	epic     func() ([]api.EpicImage, error)
	launches func() ([]api.Launch, error)
	rockets  func() ([]api.Rocket, error)
	compare  func(a, b string) (*api.Comparison, error)
	images   func(term string, mt api.MediaType) ([]api.MediaItem, error)
}

func newFakeSource() *fakeSource {
	return &fakeSource{calls: make(map[string]int)}
}

func (f *fakeSource) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
}

func (f *fakeSource) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeSource) APOD(_ context.Context, date *time.Time) (*api.APOD, error) {
	f.record("apod")
	f.mu.Lock()
	f.dates = append(f.dates, date)
	f.mu.Unlock()
	if f.apod != nil {
		return f.apod(date)
	}
	a := apitest.SampleAPOD()
	return &a, nil
}

func (f *fakeSource) EPIC(context.Context) ([]api.EpicImage, error) {
	f.record("epic")
	if f.epic != nil {
		return f.epic()
	}
	return apitest.SampleEPIC(), nil
}

func (f *fakeSource) Launches(context.Context) ([]api.Launch, error) {
	f.record("launches")
	if f.launches != nil {
		return f.launches()
	}
	return apitest.SampleLaunches(), nil
}

func (f *fakeSource) Rockets(context.Context) ([]api.Rocket, error) {
	f.record("rockets")
	if f.rockets != nil {
		return f.rockets()
	}
	return apitest.SampleRockets(), nil
}

func (f *fakeSource) CompareRockets(_ context.Context, a, b string) (*api.Comparison, error) {
	f.record("compare")
	if f.compare != nil {
		return f.compare(a, b)
	}
	return &api.Comparison{Text: a + " versus " + b}, nil
}

func (f *fakeSource) NASAImages(_ context.Context, term string, mt api.MediaType) ([]api.MediaItem, error) {
	f.record("nasa-images")
	if f.images != nil {
		return f.images(term, mt)
	}
	return []api.MediaItem{{NASAID: term + "-1", Title: term, Thumbnail: "https://images.example/" + term + ".jpg"}}, nil
}

var fixedNow = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func testEnv(src Source) Env {
	return Env{
		Ctx:      context.Background(),
		Source:   src,
		Styles:   theme.New(prefs.ThemeDark),
		PageSize: 10,
		Mount:    1,
		Now:      func() time.Time { return fixedNow },
	}
}

// deliver runs cmd and feeds every keyed result it produces back into v.
func deliver(t *testing.T, v View, cmd tea.Cmd) View {
	t.Helper()
	if cmd == nil {
		return v
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			v = deliver(t, v, c)
		}
	case Keyed:
		v, _ = v.Update(msg)
	}
	return v
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(v View, text string) View {
	for _, r := range text {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}
