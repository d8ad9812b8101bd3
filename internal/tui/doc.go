// Package tui implements the terminal frontend using Bubble Tea.
//
// # Architecture
//
// The Model wraps a lookup.Session through its Fetcher. Key presses are
// translated into session transitions; the network call runs as a tea.Cmd
// and reports back with a lookupDoneMsg:
//
//	enter  → Fetcher.Start → fetchProfile() → lookupDoneMsg
//	ctrl+t → Theme.Toggle  → themeToggledMsg
//
// View never reads mutable state directly; it renders
// profileview.Build(mode, snapshot).
//
// # Key Files
//
//   - model.go: Model definition and Update/View methods
//   - render.go: card and layout rendering
//   - styles.go: Lipgloss palettes for light and dark mode
package tui
