package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vilaca/devfinder/internal/profileview"
)

const defaultWidth = 72

// RenderHeader renders the title and the theme toggle label.
func RenderHeader(view profileview.View, s Styles, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	title := s.Title.Render("devfinder")
	toggle := s.Toggle.Render(view.Mode.ToggleLabel() + " (ctrl+t)")
	gap := width - lipgloss.Width(title) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + toggle
}

// RenderSearch renders the input line with the no-results marker.
func RenderSearch(view profileview.View, s Styles, input string) string {
	line := "🔍 " + input
	if view.NoResults {
		line += "  " + s.Error.Render(profileview.NoResults)
	}
	return line
}

// RenderCard renders a profile card.
func RenderCard(card profileview.Card, s Styles, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	inner := width - 6
	var b strings.Builder

	heading := s.Name.Render(card.Name) + s.Text.Render("  ") + s.Link.Render("@"+card.Login)
	joined := s.Dimmed.Render(card.Joined)
	gap := inner - lipgloss.Width(heading) - lipgloss.Width(joined)
	if gap < 2 {
		gap = 2
	}
	b.WriteString(heading + s.Text.Render(strings.Repeat(" ", gap)) + joined)
	b.WriteString("\n\n")

	b.WriteString(fieldStyle(card.Bio, s).Width(inner).Render(card.Bio.Text))
	b.WriteString("\n\n")

	stats := make([]string, 0, len(card.Stats))
	for _, stat := range card.Stats {
		stats = append(stats, s.Label.Render(stat.Label+" ")+s.Value.Render(strconv.Itoa(stat.Value)))
	}
	b.WriteString(strings.Join(stats, s.Text.Render("    ")))
	b.WriteString("\n\n")

	half := inner / 2
	b.WriteString(renderPair("📍 ", card.Location, "🐦 ", card.Twitter, s, half))
	b.WriteString("\n")
	b.WriteString(renderPair("🔗 ", card.Blog, "🏢 ", card.Company, s, half))

	return s.Card.Width(width - 2).Render(b.String())
}

// RenderBody renders everything below the header except the input line.
func RenderBody(view profileview.View, s Styles, spinner string, width int) string {
	switch {
	case view.Loading:
		return s.Spinner.Render(spinner) + " Loading..."
	case view.Card != nil:
		return RenderCard(*view.Card, s, width)
	default:
		return ""
	}
}

func renderPair(leftIcon string, left profileview.Field, rightIcon string, right profileview.Field, s Styles, width int) string {
	l := lipgloss.NewStyle().Width(width).Render(leftIcon + fieldStyle(left, s).Render(fieldText(left)))
	r := rightIcon + fieldStyle(right, s).Render(fieldText(right))
	return l + r
}

func fieldText(f profileview.Field) string {
	if f.Link != "" && f.Link != f.Text {
		return f.Link
	}
	return f.Text
}

func fieldStyle(f profileview.Field, s Styles) lipgloss.Style {
	if f.Dimmed {
		return s.Dimmed
	}
	return s.Text
}
