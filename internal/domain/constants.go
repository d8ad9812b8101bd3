package domain

// Theme persistence constants
const (
	// ThemePreferenceKey is the store key holding the dark mode flag
	ThemePreferenceKey = "darkMode"
)

// GitHub endpoints
const (
	// GitHubAPIURL is the default GitHub REST API base URL
	GitHubAPIURL = "https://api.github.com"
	// GitHubWebURL is the base URL for public profile pages
	GitHubWebURL = "https://github.com"
)
