package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vilaca/devfinder/internal/domain"
	"github.com/vilaca/devfinder/internal/lookup"
	"github.com/vilaca/devfinder/internal/profileview"
	"github.com/vilaca/devfinder/internal/theme"
)

// Fetcher starts and runs profile fetches against a session.
type Fetcher interface {
	Session() *lookup.Session
	Start(parent context.Context, raw string) (lookup.Ticket, context.Context, bool)
	Run(ctx context.Context, ticket lookup.Ticket) bool
}

// ThemeController toggles and reports the display mode.
type ThemeController interface {
	Mode() theme.Mode
	Toggle(ctx context.Context) (bool, error)
}

// lookupDoneMsg is sent when a fetch finished, applied or not.
type lookupDoneMsg struct {
	ticket  lookup.Ticket
	applied bool
}

// themeToggledMsg is sent after the theme flag was flipped.
type themeToggledMsg struct {
	err error
}

// Model is the Bubble Tea model of the terminal widget.
type Model struct {
	ctx     context.Context
	fetcher Fetcher
	theme   ThemeController

	input   textinput.Model
	spinner spinner.Model
	width   int

	// themeErr is the last persist failure, shown under the card.
	themeErr string
	quitting bool
}

// New creates the model. ctx bounds every fetch started from the UI.
func New(ctx context.Context, fetcher Fetcher, themes ThemeController) Model {
	ti := textinput.New()
	ti.Placeholder = "Search GitHub username..."
	ti.Prompt = ""
	ti.Width = 40
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:     ctx,
		fetcher: fetcher,
		theme:   themes,
		input:   ti,
		spinner: sp,
		width:   defaultWidth,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and fetch results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 && msg.Width < defaultWidth {
			m.width = msg.Width
		} else {
			m.width = defaultWidth
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			return m.submit()
		case "ctrl+t":
			return m, m.toggleTheme()
		}

	case lookupDoneMsg:
		// The session already holds the outcome; nothing else to update.
		return m, nil

	case themeToggledMsg:
		if msg.err != nil {
			m.themeErr = msg.err.Error()
		} else {
			m.themeErr = ""
		}
		return m, nil

	case spinner.TickMsg:
		if m.fetcher.Session().Snapshot().Status != domain.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the widget.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	view := profileview.Build(m.theme.Mode(), m.fetcher.Session().Snapshot())
	s := StylesFor(view.Mode)

	var b strings.Builder
	b.WriteString(RenderHeader(view, s, m.width))
	b.WriteString("\n\n")
	b.WriteString(RenderSearch(view, s, m.input.View()))
	b.WriteString("\n\n")

	if body := RenderBody(view, s, m.spinner.View(), m.width); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	if view.ErrorMessage != "" {
		b.WriteString(s.Error.Render(view.ErrorMessage))
		b.WriteString("\n")
	}
	if m.themeErr != "" {
		b.WriteString(s.Error.Render(m.themeErr))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Help.Render("enter: search • ctrl+t: toggle theme • esc: quit"))
	return b.String()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	ticket, ctx, ok := m.fetcher.Start(m.ctx, m.input.Value())
	if !ok {
		return m, nil
	}
	return m, tea.Batch(m.spinner.Tick, fetchProfile(ctx, m.fetcher, ticket))
}

func (m Model) toggleTheme() tea.Cmd {
	themes, ctx := m.theme, m.ctx
	return func() tea.Msg {
		_, err := themes.Toggle(ctx)
		return themeToggledMsg{err: err}
	}
}

func fetchProfile(ctx context.Context, f Fetcher, ticket lookup.Ticket) tea.Cmd {
	return func() tea.Msg {
		return lookupDoneMsg{ticket: ticket, applied: f.Run(ctx, ticket)}
	}
}
