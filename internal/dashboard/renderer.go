package dashboard

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vilaca/devfinder/internal/domain"
	"github.com/vilaca/devfinder/internal/lookup"
	"github.com/vilaca/devfinder/internal/profileview"
	"github.com/vilaca/devfinder/internal/theme"
)

// Renderer handles rendering responses to HTTP clients.
type Renderer interface {
	RenderPage(w io.Writer, view profileview.View, refreshMS int) error
	RenderHealth(w io.Writer) error
	RenderState(w io.Writer, mode theme.Mode, snap lookup.Snapshot) error
}

// HTMLRenderer implements Renderer for HTML responses.
type HTMLRenderer struct {
	// All HTML is embedded in methods, no external templates needed
}

// NewHTMLRenderer creates a new HTML renderer.
func NewHTMLRenderer() *HTMLRenderer {
	return &HTMLRenderer{}
}

// RenderPage writes the whole widget page for view.
// refreshMS is only applied while a lookup is loading.
func (r *HTMLRenderer) RenderPage(w io.Writer, view profileview.View, refreshMS int) error {
	if !view.Loading {
		refreshMS = 0
	}

	var sb strings.Builder
	sb.WriteString(htmlHead("devfinder", view.Mode, refreshMS))
	sb.WriteString(`
<body>
	<div class="container">`)
	sb.WriteString(r.buildHeader(view.Mode))
	sb.WriteString(r.buildSearchForm(view))

	switch {
	case view.Loading:
		sb.WriteString(loadingSpinner())
	case view.Card != nil:
		sb.WriteString(r.buildCard(*view.Card))
	}

	sb.WriteString(`
	</div>`)
	sb.WriteString(htmlFooter())

	_, err := w.Write([]byte(sb.String()))
	return err
}

func (r *HTMLRenderer) RenderHealth(w io.Writer) error {
	_, err := w.Write([]byte(`{"status":"ok"}`))
	return err
}

// stateResponse is the JSON shape of /api/state.
type stateResponse struct {
	Theme   theme.Mode      `json:"theme"`
	Query   string          `json:"query"`
	Status  domain.Status   `json:"status"`
	Error   string          `json:"error,omitempty"`
	Seq     uint64          `json:"seq"`
	Profile *domain.Profile `json:"profile"`
}

func (r *HTMLRenderer) RenderState(w io.Writer, mode theme.Mode, snap lookup.Snapshot) error {
	resp := stateResponse{
		Theme:   mode,
		Query:   snap.Query,
		Status:  snap.Status,
		Error:   snap.ErrorMessage(),
		Seq:     snap.Seq,
		Profile: snap.Profile,
	}
	return json.NewEncoder(w).Encode(resp)
}

// buildHeader renders the title and the theme toggle form.
func (r *HTMLRenderer) buildHeader(mode theme.Mode) string {
	icon := "🌙"
	if mode.Dark() {
		icon = "☀️"
	}
	return fmt.Sprintf(`
		<header>
			<h1>devfinder</h1>
			<form method="post" action="/theme">
				<button type="submit" class="theme-toggle" aria-label="Toggle theme">%s %s</button>
			</form>
		</header>`, mode.ToggleLabel(), icon)
}

// buildSearchForm renders the search box with the no-results marker.
func (r *HTMLRenderer) buildSearchForm(view profileview.View) string {
	marker := ""
	if view.NoResults {
		marker = fmt.Sprintf(`<span class="no-results" title="%s">%s</span>`,
			escapeHTML(view.ErrorMessage), profileview.NoResults)
	}
	return fmt.Sprintf(`
		<form class="search" method="post" action="/search">
			<span aria-hidden="true">🔍</span>
			<input type="text" name="username" placeholder="Search GitHub username..." value="%s" autocomplete="off">
			%s
			<button type="submit">Search</button>
		</form>`, escapeHTML(view.Query), marker)
}

// buildCard renders the profile card.
func (r *HTMLRenderer) buildCard(card profileview.Card) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`
		<div class="card" id="profile">
			<img class="avatar" src="%s" alt="%s">
			<div class="info">
				<div class="heading">
					<div>
						<h2>%s</h2>
						%s
					</div>
					<span class="joined">%s</span>
				</div>`,
		escapeHTML(card.AvatarURL), escapeHTML(card.AvatarAlt),
		escapeHTML(card.Name), externalLink(card.ProfileURL, "@"+card.Login),
		escapeHTML(card.Joined)))

	sb.WriteString(fmt.Sprintf(`
				<p class="bio%s">%s</p>
				<div class="stats">`, dimmedClass(card.Bio), escapeHTML(card.Bio.Text)))
	for _, stat := range card.Stats {
		sb.WriteString(fmt.Sprintf(`
					<div><h3>%s</h3><p>%d</p></div>`, escapeHTML(stat.Label), stat.Value))
	}
	sb.WriteString(`
				</div>
				<div class="links">`)

	links := []struct {
		icon  string
		field profileview.Field
	}{
		{"📍", card.Location},
		{"🐦", card.Twitter},
		{"🔗", card.Blog},
		{"🏢", card.Company},
	}
	for _, l := range links {
		text := escapeHTML(l.field.Text)
		if l.field.Link != "" {
			text = externalLink(l.field.Link, l.field.Text)
		}
		sb.WriteString(fmt.Sprintf(`
					<div class="%s">%s %s</div>`, strings.TrimSpace(dimmedClass(l.field)), l.icon, text))
	}

	sb.WriteString(`
				</div>
			</div>
		</div>`)
	return sb.String()
}

func dimmedClass(f profileview.Field) string {
	if f.Dimmed {
		return " dimmed"
	}
	return ""
}
