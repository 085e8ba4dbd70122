// Package theme holds the lipgloss styles for the dark and light colour schemes.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/spacedeck/internal/prefs"
)

// Palette is the set of colours a scheme is built from.
type Palette struct {
	Primary    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Background lipgloss.Color
	Banner     lipgloss.Color
}

// Dark is the default scheme.
var Dark = Palette{
	Primary:    lipgloss.Color("99"),  // Purple
	Success:    lipgloss.Color("42"),  // Green
	Warning:    lipgloss.Color("226"), // Yellow
	Error:      lipgloss.Color("196"), // Red
	Muted:      lipgloss.Color("245"), // Gray
	Accent:     lipgloss.Color("212"), // Pink
	Text:       lipgloss.Color("252"),
	Background: lipgloss.Color("235"),
	Banner:     lipgloss.Color("52"),
}

// Light suits terminals with a bright background.
var Light = Palette{
	Primary:    lipgloss.Color("55"),
	Success:    lipgloss.Color("28"),
	Warning:    lipgloss.Color("130"),
	Error:      lipgloss.Color("160"),
	Muted:      lipgloss.Color("242"),
	Accent:     lipgloss.Color("125"),
	Text:       lipgloss.Color("235"),
	Background: lipgloss.Color("255"),
	Banner:     lipgloss.Color("224"),
}

// Styles is every style the views render with.
type Styles struct {
	Name    prefs.Theme
	Palette Palette

	Title        lipgloss.Style
	Header       lipgloss.Style
	Footer       lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Muted        lipgloss.Style
	Emphasis     lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style
	Unknown      lipgloss.Style
	Section      lipgloss.Style
	Empty        lipgloss.Style
	ErrorBanner  lipgloss.Style
	InfoBanner   lipgloss.Style
	NavItem      lipgloss.Style
	NavActive    lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
	HelpBox      lipgloss.Style
	Spinner      lipgloss.Style
}

// New builds the styles for the named theme. Unknown names get the dark scheme.
func New(name prefs.Theme) *Styles {
	p := Dark
	if name == prefs.ThemeLight {
		p = Light
	} else {
		name = prefs.ThemeDark
	}

	return &Styles{
		Name:    name,
		Palette: p,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			PaddingLeft(2).
			PaddingRight(2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Primary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.Muted).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(p.Muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.Muted).
			MarginTop(1),

		Item: lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingRight(2),

		SelectedItem: lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(2).
			Foreground(p.Accent).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.Primary),

		Label: lipgloss.NewStyle().
			Foreground(p.Muted).
			Bold(true).
			Width(16),

		Value:    lipgloss.NewStyle().Foreground(p.Text),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Emphasis: lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Success:  lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		Failure:  lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		Unknown:  lipgloss.NewStyle().Foreground(p.Muted),

		Section: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Muted).
			Padding(0, 1).
			MarginTop(1),

		Empty: lipgloss.NewStyle().
			Foreground(p.Muted).
			Italic(true).
			PaddingTop(1).
			PaddingBottom(1),

		ErrorBanner: lipgloss.NewStyle().
			Foreground(p.Error).
			Background(p.Banner).
			Bold(true).
			Padding(0, 2).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.Error),

		InfoBanner: lipgloss.NewStyle().
			Foreground(p.Primary).
			Padding(0, 2).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(p.Primary),

		NavItem: lipgloss.NewStyle().
			Foreground(p.Muted).
			Padding(0, 1),

		NavActive: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		HelpKey: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Width(12),

		HelpDesc: lipgloss.NewStyle().Foreground(p.Text),

		HelpBox: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(1, 3),

		Spinner: lipgloss.NewStyle().Foreground(p.Primary),
	}
}

// Outcome returns the style for a launch result. A nil outcome is unknown.
func (s *Styles) Outcome(success *bool) lipgloss.Style {
	switch {
	case success == nil:
		return s.Unknown
	case *success:
		return s.Success
	default:
		return s.Failure
	}
}

// ApplyMaxWidth bounds the full-width styles to the terminal width.
func (s *Styles) ApplyMaxWidth(width int) {
	if width <= 4 {
		return
	}
	s.Item = s.Item.MaxWidth(width - 4)
	s.SelectedItem = s.SelectedItem.MaxWidth(width - 4)
	s.Header = s.Header.Width(width - 2)
	s.Footer = s.Footer.Width(width - 2)
}
