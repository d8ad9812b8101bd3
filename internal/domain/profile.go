package domain

import "time"

// Profile represents a public GitHub user profile.
// This is a domain model; JSON tags match the GitHub Users API field names.
type Profile struct {
	Login           string    `json:"login"`
	Name            string    `json:"name"`
	AvatarURL       string    `json:"avatar_url"`
	HTMLURL         string    `json:"html_url"`
	Bio             string    `json:"bio"`
	CreatedAt       time.Time `json:"created_at"`
	PublicRepos     int       `json:"public_repos"`
	Followers       int       `json:"followers"`
	Following       int       `json:"following"`
	Location        string    `json:"location"`
	Blog            string    `json:"blog"`
	Company         string    `json:"company"`
	TwitterUsername string    `json:"twitter_username"`
}

// DisplayName returns the profile name, falling back to the login.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
