package components

import "github.com/charmbracelet/lipgloss"

// Banner renders a one-line message inside a bordered box, or nothing when
// the message is empty.
func Banner(style lipgloss.Style, message string) string {
	if message == "" {
		return ""
	}
	return style.Render(message)
}

// KeyValue renders aligned label/value rows. Empty values become placeholder.
func KeyValue(label, value lipgloss.Style, placeholder string, pairs ...[2]string) string {
	rows := make([]string, 0, len(pairs))
	for _, p := range pairs {
		v := p[1]
		if v == "" {
			v = placeholder
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(p[0]), value.Render(v)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
