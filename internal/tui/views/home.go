package views

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HomeView stacks the picture of the day above the Earth imagery.
type HomeView struct {
	apod *APODView
	epic *EPICView
}

// NewHome creates the landing view.
func NewHome(env Env) *HomeView {
	return &HomeView{apod: NewAPOD(env), epic: NewEPIC(env)}
}

func (v *HomeView) Key() string   { return "home" }
func (v *HomeView) Title() string { return "Home" }

func (v *HomeView) Init() tea.Cmd {
	return tea.Batch(v.apod.Init(), v.epic.Init())
}

// APOD returns the picture of the day panel.
func (v *HomeView) APOD() *APODView { return v.apod }

// EPIC returns the Earth imagery panel.
func (v *HomeView) EPIC() *EPICView { return v.epic }

func (v *HomeView) Teardown() {
	v.apod.Teardown()
	v.epic.Teardown()
}

func (v *HomeView) Busy() bool      { return v.apod.Busy() || v.epic.Busy() }
func (v *HomeView) Capturing() bool { return v.apod.Capturing() }

func (v *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok && v.apod.Capturing() {
		_, cmd := v.apod.Update(msg)
		return v, cmd
	}

	_, apodCmd := v.apod.Update(msg)
	_, epicCmd := v.epic.Update(msg)
	return v, tea.Batch(apodCmd, epicCmd)
}

func (v *HomeView) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, v.apod.View(), "", v.epic.View())
}
