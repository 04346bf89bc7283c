package export

import (
	"fmt"
	"strings"

	"github.com/gitcard/internal/card"
)

// PublicCardURL builds the shareable page URL for a card.
func PublicCardURL(baseURL, githubLogin string, cardID uint) string {
	return fmt.Sprintf("%s/dashboard/%s/cards/%d", strings.TrimRight(baseURL, "/"), githubLogin, cardID)
}

// Markdown renders a card as a README-ready markdown document: headings,
// stack and contact bullets, and a trailing badge linking the public page.
func Markdown(cfg card.Config, githubLogin, baseURL string, cardID uint) string {
	cfg.Normalize()

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cfg.Name)
	if cfg.Tagline != "" {
		fmt.Fprintf(&b, "%s\n\n", cfg.Tagline)
	}
	if cfg.Title != "" {
		fmt.Fprintf(&b, "## %s\n\n", cfg.Title)
	}

	if cfg.ShowStacks && len(cfg.Stacks) > 0 {
		b.WriteString("### 🛠️ Tech Stack\n\n")
		for _, entry := range cfg.Stacks {
			display := card.ResolveStackDisplay(entry)
			fmt.Fprintf(&b, "- %s\n", display.Label)
		}
		b.WriteString("\n")
	}

	if cfg.ShowContact && len(cfg.Contacts) > 0 {
		b.WriteString("### 📧 Contact\n\n")
		for _, entry := range cfg.Contacts {
			display := card.ResolveContactDisplay(entry)
			if display.Value == "" {
				continue
			}
			lower := strings.ToLower(display.Value)
			if strings.Contains(lower, "http") || strings.Contains(lower, "www") {
				fmt.Fprintf(&b, "- **%s**: [%s](%s)\n", display.Label, display.Value, display.Value)
			} else {
				fmt.Fprintf(&b, "- **%s**: %s\n", display.Label, display.Value)
			}
		}
		b.WriteString("\n")
	}

	cardURL := PublicCardURL(baseURL, githubLogin, cardID)
	fmt.Fprintf(&b, "---\n\n[![GitCard](%s)](%s)\n", cardURL, cardURL)

	return b.String()
}

// Badge renders the single-line markdown badge for a card.
func Badge(githubLogin, baseURL string, cardID uint) string {
	cardURL := PublicCardURL(baseURL, githubLogin, cardID)
	return fmt.Sprintf("[![GitCard](%s)](%s)", cardURL, cardURL)
}

// EmbedHTML renders the embeddable HTML snippet for a card.
func EmbedHTML(cfg card.Config, githubLogin, baseURL string, cardID uint) string {
	cardURL := PublicCardURL(baseURL, githubLogin, cardID)
	alt := cfg.Name
	if alt == "" {
		alt = "GitCard"
	}
	return fmt.Sprintf(`<a href="%s"><img src="%s" alt="%s" /></a>`, cardURL, cardURL, alt)
}
