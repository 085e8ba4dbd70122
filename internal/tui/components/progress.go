package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders a part-of-whole bar such as launch successes over all
// launches with a known outcome.
type Progress struct {
	bar   progress.Model
	label string
	total int
}

// NewProgress creates a progress component for the given total.
func NewProgress(label string, total int, width int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	if width > 0 {
		bar.Width = width
	}
	return Progress{bar: bar, label: label, total: total}
}

// Ratio returns completed/total capped to [0, 1].
func (p Progress) Ratio(completed int) float64 {
	if p.total <= 0 || completed <= 0 {
		return 0
	}
	return math.Min(1.0, float64(completed)/float64(p.total))
}

// View renders the bar for the provided count.
func (p Progress) View(completed int) string {
	text := fmt.Sprintf("%d/%d", completed, p.total)
	if p.label != "" {
		text = p.label + " " + text
	}
	label := lipgloss.NewStyle().Bold(true).Render(text)
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(p.Ratio(completed)))
}
