package dashboard

import (
	"fmt"
	"strings"

	"github.com/vilaca/devfinder/internal/theme"
)

// htmlHead returns the common HTML head section with proper meta tags.
// A positive refreshMS adds a meta refresh so a pending lookup is picked up.
func htmlHead(title string, mode theme.Mode, refreshMS int) string {
	refresh := ""
	if refreshMS > 0 {
		seconds := (refreshMS + 999) / 1000
		refresh = fmt.Sprintf(`<meta http-equiv="refresh" content="%d">`, seconds)
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en" data-theme="%s">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0, viewport-fit=cover">
	<meta name="description" content="Look up public GitHub user profiles">
	%s
	<link rel="icon" type="image/svg+xml" href="data:image/svg+xml,<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 100 100'><text y='0.9em' font-size='90'>🔍</text></svg>">

	<title>%s</title>
	%s
</head>`, escapeHTML(string(mode)), refresh, escapeHTML(title), commonCSS())
}

// commonCSS returns the page styles, keyed off the data-theme attribute.
func commonCSS() string {
	return `<style>
		/* CSS Variables for theming */
		:root {
			--bg-primary: #f6f8ff;
			--bg-secondary: white;
			--bg-inset: #f6f8ff;
			--text-primary: #2b3442;
			--text-secondary: #697c9a;
			--link-color: #0079ff;
			--button-bg: #0079ff;
			--button-hover: #60abff;
			--error-text: #f74646;
			--shadow: rgba(70,96,187,0.2);
		}

		[data-theme="dark"] {
			--bg-primary: #141d2f;
			--bg-secondary: #1e2a47;
			--bg-inset: #141d2f;
			--text-primary: #ffffff;
			--text-secondary: #b0b8c8;
			--link-color: #4d9fff;
			--button-bg: #0079ff;
			--button-hover: #60abff;
			--error-text: #ff6b6b;
			--shadow: rgba(0,0,0,0.3);
		}

		* {
			box-sizing: border-box;
			margin: 0;
			padding: 0;
		}

		body {
			font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif;
			padding: 24px 16px;
			background: var(--bg-primary);
			color: var(--text-primary);
			transition: background-color 0.3s, color 0.3s;
			line-height: 1.6;
		}

		.container { max-width: 730px; margin: 0 auto; }
		header { display: flex; justify-content: space-between; align-items: center; margin-bottom: 32px; }
		h1 { font-size: 1.6rem; font-weight: 700; }
		.theme-toggle { background: none; border: none; cursor: pointer; font-weight: 700; letter-spacing: 2px; font-size: 13px; color: var(--text-secondary); }
		.theme-toggle:hover { color: var(--text-primary); }

		.search { display: flex; align-items: center; gap: 8px; background: var(--bg-secondary); border-radius: 12px; padding: 8px 8px 8px 16px; box-shadow: 0 16px 30px -10px var(--shadow); margin-bottom: 24px; }
		.search input { flex: 1; border: none; background: transparent; font-size: 16px; color: var(--text-primary); padding: 8px 0; }
		.search input:focus { outline: none; }
		.search button { background: var(--button-bg); color: white; border: none; border-radius: 10px; padding: 12px 20px; font-size: 15px; font-weight: 700; cursor: pointer; }
		.search button:hover { background: var(--button-hover); }
		.no-results { color: var(--error-text); font-weight: 700; font-size: 14px; white-space: nowrap; }

		.card { background: var(--bg-secondary); border-radius: 12px; padding: 32px; box-shadow: 0 16px 30px -10px var(--shadow); display: flex; gap: 32px; }
		.card .loading-spinner { margin: 0 auto; }
		.avatar { width: 117px; height: 117px; border-radius: 50%; flex-shrink: 0; }
		.info { flex: 1; min-width: 0; }
		.heading { display: flex; justify-content: space-between; flex-wrap: wrap; gap: 4px; margin-bottom: 16px; }
		.heading h2 { font-size: 1.5rem; font-weight: 700; }
		.heading a { color: var(--link-color); text-decoration: none; }
		.joined { color: var(--text-secondary); font-size: 14px; }
		.bio { margin-bottom: 24px; }
		.stats { display: grid; grid-template-columns: repeat(3, 1fr); background: var(--bg-inset); border-radius: 10px; padding: 16px 24px; margin-bottom: 24px; }
		.stats h3 { font-size: 13px; font-weight: 400; color: var(--text-secondary); }
		.stats p { font-size: 1.4rem; font-weight: 700; }
		.links { display: grid; grid-template-columns: 1fr 1fr; gap: 12px 24px; font-size: 15px; }
		.links div { overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
		.links a { color: inherit; text-decoration: none; }
		.links a:hover { text-decoration: underline; }
		.dimmed { opacity: 0.5; }

		.loading-spinner {
			width: 32px;
			height: 32px;
			border: 3px solid transparent;
			border-bottom-color: var(--link-color);
			border-radius: 50%;
			animation: spin 0.8s linear infinite;
		}

		@keyframes spin {
			to { transform: rotate(360deg); }
		}

		@media (max-width: 600px) {
			.card { flex-direction: column; padding: 24px; gap: 16px; }
			.avatar { width: 70px; height: 70px; }
			.links { grid-template-columns: 1fr; }
		}
	</style>`
}

// loadingSpinner returns the HTML for the loading card.
func loadingSpinner() string {
	return `<div class="card" id="loading"><div class="loading-spinner"></div></div>`
}

// htmlFooter closes the document.
func htmlFooter() string {
	return `
</body>
</html>`
}

// escapeHTML escapes special HTML characters to prevent XSS.
func escapeHTML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(s)
}

// externalLink creates a safe external link with proper security attributes.
func externalLink(url, text string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer">%s</a>`,
		escapeHTML(url), escapeHTML(text))
}
