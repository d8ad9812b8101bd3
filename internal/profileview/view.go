// Package profileview turns lookup state into display-ready values.
// Build is a pure function shared by the HTML and terminal frontends.
package profileview

import (
	"strconv"
	"strings"
	"time"

	"github.com/vilaca/devfinder/internal/domain"
	"github.com/vilaca/devfinder/internal/lookup"
	"github.com/vilaca/devfinder/internal/theme"
)

// Placeholders for missing optional fields.
const (
	NoBio        = "This profile has no bio"
	NotAvailable = "Not Available"
	NoResults    = "No results"
)

// Field is an optional profile value with its placeholder already applied.
type Field struct {
	Text   string
	Link   string // empty when the field is not a link
	Dimmed bool
}

// Stat is a labelled counter.
type Stat struct {
	Label string
	Value int
}

// Card holds the display values of a profile.
type Card struct {
	AvatarURL  string
	AvatarAlt  string
	Name       string
	Login      string
	ProfileURL string
	Joined     string
	Bio        Field
	Stats      []Stat
	Location   Field
	Twitter    Field
	Blog       Field
	Company    Field
}

// View is everything a frontend needs to draw the widget.
type View struct {
	Mode         theme.Mode
	Query        string
	Loading      bool
	NoResults    bool
	ErrorMessage string
	Card         *Card
}

// Empty reports whether there is nothing to show below the search box.
func (v View) Empty() bool {
	return !v.Loading && v.Card == nil
}

// Build derives the view from the display mode and a session snapshot.
func Build(mode theme.Mode, snap lookup.Snapshot) View {
	v := View{
		Mode:    mode,
		Query:   snap.Query,
		Loading: snap.Status == domain.StatusLoading,
	}

	if snap.Status == domain.StatusError {
		v.NoResults = true
		v.ErrorMessage = snap.ErrorMessage()
	}

	if snap.Profile != nil {
		card := NewCard(*snap.Profile)
		v.Card = &card
	}

	return v
}

// NewCard applies the display rules to a profile.
func NewCard(p domain.Profile) Card {
	return Card{
		AvatarURL:  p.AvatarURL,
		AvatarAlt:  p.Login + "'s avatar",
		Name:       p.DisplayName(),
		Login:      p.Login,
		ProfileURL: ProfileURL(p.Login),
		Joined:     FormatJoinDate(p.CreatedAt),
		Bio:        optional(p.Bio, NoBio, ""),
		Stats: []Stat{
			{Label: "Repos", Value: p.PublicRepos},
			{Label: "Followers", Value: p.Followers},
			{Label: "Following", Value: p.Following},
		},
		Location: optional(p.Location, NotAvailable, ""),
		Twitter:  optional(p.TwitterUsername, NotAvailable, ""),
		Blog:     optional(p.Blog, NotAvailable, BlogURL(p.Blog)),
		Company:  optional(p.Company, NotAvailable, ""),
	}
}

// String renders a stat as "Label N".
func (s Stat) String() string {
	return s.Label + " " + strconv.Itoa(s.Value)
}

// FormatJoinDate formats a join time as "Joined 25 Jan 2011" in UTC.
func FormatJoinDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return "Joined " + t.UTC().Format("2 Jan 2006")
}

// BlogURL returns the link target for a blog value.
func BlogURL(blog string) string {
	if blog == "" {
		return ""
	}
	if strings.HasPrefix(blog, "http") {
		return blog
	}
	return "https://" + blog
}

// ProfileURL returns the public GitHub page of a login.
func ProfileURL(login string) string {
	return domain.GitHubWebURL + "/" + login
}

func optional(value, placeholder, link string) Field {
	if value == "" {
		return Field{Text: placeholder, Dimmed: true}
	}
	return Field{Text: value, Link: link}
}
