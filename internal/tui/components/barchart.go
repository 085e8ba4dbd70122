package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one labelled row of a BarChart.
type Bar struct {
	Label string
	Value int
}

// BarChart renders horizontal bars scaled to the largest value.
type BarChart struct {
	Width    int
	BarStyle lipgloss.Style
	Label    lipgloss.Style
}

// NewBarChart creates a chart whose longest bar spans width cells.
func NewBarChart(width int, bar lipgloss.Style) BarChart {
	if width < 1 {
		width = 30
	}
	return BarChart{Width: width, BarStyle: bar}
}

// Length returns the number of cells for value relative to max. Any
// positive value gets at least one cell.
func (c BarChart) Length(value, max int) int {
	if value <= 0 || max <= 0 {
		return 0
	}
	n := value * c.Width / max
	if n == 0 {
		n = 1
	}
	return n
}

// View renders the bars in the order given.
func (c BarChart) View(bars []Bar) string {
	if len(bars) == 0 {
		return ""
	}

	max, labelWidth := 0, 0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
		if w := lipgloss.Width(b.Label); w > labelWidth {
			labelWidth = w
		}
	}

	rows := make([]string, 0, len(bars))
	for _, b := range bars {
		label := c.Label.Width(labelWidth).Render(b.Label)
		bar := c.BarStyle.Render(strings.Repeat("█", c.Length(b.Value, max)))
		rows = append(rows, fmt.Sprintf("%s │%s %d", label, bar, b.Value))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
