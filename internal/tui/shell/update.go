package shell

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/spacedeck/internal/tui/views"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.styles.ApplyMaxWidth(m.width)

		if m.width < minWidth || m.height < minHeight {
			m.showError = true
			m.sizeError = true
			m.errorMsg = fmt.Sprintf("Terminal too small (%dx%d). Minimum size: %dx%d",
				m.width, m.height, minWidth, minHeight)
		} else if m.sizeError {
			m.showError = false
			m.sizeError = false
			m.errorMsg = ""
		}
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case views.NavigateMsg:
		return m.Navigate(msg.Path)

	case views.Keyed:
		// Results of a view that has since been unmounted are dropped.
		if mount, ok := views.MountOf(msg.ResultKey()); !ok || mount != m.mount {
			return m, nil
		}
		return m.forward(msg)
	}

	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.Teardown()
		return m, tea.Quit
	}

	if m.active.Capturing() {
		return m.forward(msg)
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Help), msg.Type == tea.KeyEsc:
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			m.Teardown()
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Teardown()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Theme):
		return m.ToggleTheme(), nil
	case key.Matches(msg, m.keys.Next):
		next := tabs[(tabIndex(m.route)+1)%len(tabs)]
		return m.Navigate(next.route)
	}

	for _, t := range tabs {
		if msg.String() == t.key {
			return m.Navigate(t.route)
		}
	}

	return m.forward(msg)
}
