package shell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current model state
func (m Model) View() string {
	var content strings.Builder

	content.WriteString(m.renderHeader())
	content.WriteString("\n")

	if m.showError {
		content.WriteString(m.styles.ErrorBanner.Render(m.errorMsg))
		content.WriteString("\n")
	}

	if m.showHelp {
		content.WriteString(m.renderHelp())
	} else {
		content.WriteString(m.active.View())
	}
	content.WriteString("\n")

	content.WriteString(m.renderFooter())
	return content.String()
}

// renderHeader renders the title and navigation bar
func (m Model) renderHeader() string {
	title := m.styles.Title.Render("🚀 spacedeck")
	if m.active.Busy() {
		title += " " + m.spinner.View()
	}

	current := tabIndex(m.route)
	items := make([]string, 0, len(tabs))
	for i, t := range tabs {
		label := t.key + " " + t.label
		if i == current {
			items = append(items, m.styles.NavActive.Render(label))
		} else {
			items = append(items, m.styles.NavItem.Render(label))
		}
	}

	return m.styles.Header.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		lipgloss.JoinHorizontal(lipgloss.Top, items...),
	))
}

func (m Model) renderFooter() string {
	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	return m.styles.Footer.Render(hints + "  " + m.styles.Muted.Render("theme: "+m.styles.Name.String()))
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(m.styles.Emphasis.Render("Keyboard Shortcuts") + "\n\n")

	for _, row := range viewHelp[m.route.Name] {
		b.WriteString(m.styles.HelpKey.Render(row[0]) + m.styles.HelpDesc.Render(row[1]) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n" + m.styles.Muted.Render("Press ? or esc to close"))

	return m.styles.HelpBox.Render(b.String())
}
