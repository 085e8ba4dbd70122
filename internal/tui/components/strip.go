package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Strip renders a horizontal row of labelled cells with one highlighted,
// scrolled so that the selected cell is always visible.
type Strip struct {
	Size     int
	Normal   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
}

// Window returns the [start, end) range of labels shown for selected.
func (s Strip) Window(total, selected int) (int, int) {
	size := s.Size
	if size <= 0 || size > total {
		size = total
	}
	start := selected - size/2
	if start < 0 {
		start = 0
	}
	if start+size > total {
		start = total - size
	}
	return start, start + size
}

// View renders labels with the cell at selected highlighted.
func (s Strip) View(labels []string, selected int) string {
	if len(labels) == 0 {
		return ""
	}

	start, end := s.Window(len(labels), selected)
	cells := make([]string, 0, end-start+2)
	if start > 0 {
		cells = append(cells, s.Muted.Render("◀"))
	}
	for i := start; i < end; i++ {
		if i == selected {
			cells = append(cells, s.Selected.Render("["+labels[i]+"]"))
			continue
		}
		cells = append(cells, s.Normal.Render(" "+labels[i]+" "))
	}
	if end < len(labels) {
		cells = append(cells, s.Muted.Render("▶"))
	}

	position := s.Muted.Render(fmt.Sprintf("%d/%d", selected+1, len(labels)))
	return strings.Join(cells, " ") + "  " + position
}
