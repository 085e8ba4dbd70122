package views

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spacedeck/internal/api"
	"github.com/alexisbeaulieu97/spacedeck/internal/fetch"
	"github.com/alexisbeaulieu97/spacedeck/internal/tui/components"
)

// APODFailure is shown when the picture of the day cannot be loaded.
const APODFailure = "Failed to load Astronomy Picture of the Day."

// APODView shows the Astronomy Picture of the Day for a selectable date.
type APODView struct {
	env   Env
	state *fetch.Lifecycle[*api.APOD]

	date     *time.Time
	input    textinput.Model
	editing  bool
	inputErr string
	width    int
}

// NewAPOD creates the picture of the day view for today's date.
func NewAPOD(env Env) *APODView {
	ti := textinput.New()
	ti.Placeholder = api.DateLayout
	ti.CharLimit = len(api.DateLayout)
	ti.Width = 12

	return &APODView{
		env:   env,
		state: fetch.New[*api.APOD](env.Key("apod"), APODFailure),
		input: ti,
		width: 80,
	}
}

func (v *APODView) Key() string   { return "apod" }
func (v *APODView) Title() string { return "Picture of the Day" }

// Init fetches the picture for the current date.
func (v *APODView) Init() tea.Cmd { return v.load() }

func (v *APODView) Teardown()       { v.state.Cancel() }
func (v *APODView) Busy() bool      { return v.state.State() == fetch.Loading }
func (v *APODView) Capturing() bool { return v.editing }

// Date returns the selected date, nil meaning today.
func (v *APODView) Date() *time.Time { return v.date }

// State exposes the lifecycle for inspection.
func (v *APODView) State() *fetch.Lifecycle[*api.APOD] { return v.state }

func (v *APODView) load() tea.Cmd {
	date := v.date
	src := v.env.Source
	return v.state.Fetch(v.env.context(), func(ctx context.Context) (*api.APOD, error) {
		return src.APOD(ctx, date)
	})
}

func (v *APODView) today() time.Time {
	now := v.env.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// shift moves the selected date by days. Dates after today are refused.
func (v *APODView) shift(days int) tea.Cmd {
	base := v.today()
	if v.date != nil {
		base = *v.date
	}
	next := base.AddDate(0, 0, days)
	if next.After(v.today()) {
		return nil
	}
	v.date = &next
	return v.load()
}

func (v *APODView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		return v, nil

	case fetch.Result[*api.APOD]:
		v.state.Resolve(msg)
		return v, nil

	case tea.KeyMsg:
		if v.editing {
			return v, v.handleInput(msg)
		}
		switch msg.String() {
		case "[":
			return v, v.shift(-1)
		case "]":
			return v, v.shift(1)
		case "t":
			v.date = nil
			return v, v.load()
		case "d":
			v.editing = true
			v.inputErr = ""
			v.input.SetValue("")
			return v, v.input.Focus()
		}
	}
	return v, nil
}

func (v *APODView) handleInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		v.editing = false
		v.inputErr = ""
		v.input.Blur()
		return nil
	case tea.KeyEnter:
		date, err := time.ParseInLocation(api.DateLayout, strings.TrimSpace(v.input.Value()), v.env.now().Location())
		if err != nil {
			v.inputErr = "Use YYYY-MM-DD."
			return nil
		}
		if date.After(v.today()) {
			v.inputErr = "Date cannot be in the future."
			return nil
		}
		v.editing = false
		v.inputErr = ""
		v.input.Blur()
		v.date = &date
		return v.load()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *APODView) View() string {
	s := v.env.Styles
	var b strings.Builder

	selected := "today"
	if v.date != nil {
		selected = v.date.Format(api.DateLayout)
	}
	b.WriteString(s.Header.Render("Astronomy Picture of the Day") + "\n")
	b.WriteString(s.Muted.Render("Date: "+selected) + "\n")

	if v.editing {
		b.WriteString("Go to date: " + v.input.View() + "\n")
		if v.inputErr != "" {
			b.WriteString(s.Failure.Render(v.inputErr) + "\n")
		}
	}

	if out, done := renderState(s, v.state, "Loading picture of the day..."); done {
		b.WriteString(out)
		return b.String()
	}

	apod, _ := v.state.Data()
	b.WriteString(s.Emphasis.Render(placeholder(apod.Title, "Untitled")) + "\n")

	pairs := [][2]string{{"Date", apod.Date}}
	if apod.Copyright != "" {
		pairs = append(pairs, [2]string{"Copyright", strings.TrimSpace(apod.Copyright)})
	}
	if apod.IsVideo() {
		pairs = append(pairs, [2]string{"Video", apod.URL})
	} else {
		pairs = append(pairs, [2]string{"Image", apod.URL}, [2]string{"HD image", apod.HDURL})
	}
	b.WriteString(components.KeyValue(s.Label, s.Value, "N/A", pairs...) + "\n")
	if apod.IsVideo() {
		b.WriteString(s.Muted.Render("Open the video link in a browser to play it.") + "\n")
	}

	wrap := lipgloss.NewStyle().Width(max(20, v.width-4))
	b.WriteString(s.Section.Render(wrap.Render(placeholder(apod.Explanation, "No description available."))))
	return b.String()
}
