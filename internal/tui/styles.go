package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vilaca/devfinder/internal/theme"
)

// Palette is the set of colors for one display mode.
type Palette struct {
	Background lipgloss.Color
	Card       lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
	Error      lipgloss.Color
}

var (
	lightPalette = Palette{
		Background: lipgloss.Color("#F6F8FF"),
		Card:       lipgloss.Color("#FEFEFE"),
		Text:       lipgloss.Color("#2B3442"),
		Muted:      lipgloss.Color("#697C9A"),
		Accent:     lipgloss.Color("#0079FF"),
		Error:      lipgloss.Color("#F74646"),
	}
	darkPalette = Palette{
		Background: lipgloss.Color("#141D2F"),
		Card:       lipgloss.Color("#1E2A47"),
		Text:       lipgloss.Color("#FFFFFF"),
		Muted:      lipgloss.Color("#B0B8C8"),
		Accent:     lipgloss.Color("#4D9FFF"),
		Error:      lipgloss.Color("#FF6B6B"),
	}
)

// Styles holds the lipgloss styles derived from a palette.
type Styles struct {
	Title   lipgloss.Style
	Toggle  lipgloss.Style
	Card    lipgloss.Style
	Name    lipgloss.Style
	Link    lipgloss.Style
	Text    lipgloss.Style
	Dimmed  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Error   lipgloss.Style
	Help    lipgloss.Style
	Spinner lipgloss.Style
}

// StylesFor builds the styles for a display mode.
func StylesFor(mode theme.Mode) Styles {
	p := lightPalette
	if mode.Dark() {
		p = darkPalette
	}

	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		Toggle: lipgloss.NewStyle().Bold(true).Foreground(p.Muted),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Background(p.Card).
			Padding(1, 2),
		Name:    lipgloss.NewStyle().Bold(true).Foreground(p.Text).Background(p.Card),
		Link:    lipgloss.NewStyle().Foreground(p.Accent).Background(p.Card),
		Text:    lipgloss.NewStyle().Foreground(p.Text).Background(p.Card),
		Dimmed:  lipgloss.NewStyle().Foreground(p.Muted).Background(p.Card).Faint(true),
		Label:   lipgloss.NewStyle().Foreground(p.Muted).Background(p.Card),
		Value:   lipgloss.NewStyle().Bold(true).Foreground(p.Text).Background(p.Card),
		Error:   lipgloss.NewStyle().Bold(true).Foreground(p.Error),
		Help:    lipgloss.NewStyle().Foreground(p.Muted),
		Spinner: lipgloss.NewStyle().Foreground(p.Accent),
	}
}
