package card

import "strings"

// Default banner colors, shared with the gradient codec fallbacks.
const (
	DefaultPrimaryColor   = "#667eea"
	DefaultSecondaryColor = "#764ba2"
)

// MaxRepositories caps the number of pinned repositories kept on a card.
const MaxRepositories = 8

// StackEntry is one technology badge on a card. Key optionally references
// the stack catalog; unset Label/Category/Color resolve from the catalog
// entry, otherwise the entry is fully self-described.
type StackEntry struct {
	ID       string `json:"id"`
	Key      string `json:"key,omitempty"`
	Label    string `json:"label,omitempty"`
	Category string `json:"category,omitempty"`
	Color    string `json:"color,omitempty"`
}

// ContactEntry is one contact channel. Type optionally references the
// contact catalog for a default icon, label and color.
type ContactEntry struct {
	ID    string `json:"id"`
	Type  string `json:"type,omitempty"`
	Label string `json:"label,omitempty"`
	Value string `json:"value"`
}

// RepositorySummary is one pinned repository shown on a card.
type RepositorySummary struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	Language    string `json:"language,omitempty"`
	Stars       int    `json:"stars"`
	Forks       int    `json:"forks"`
}

// Config is the complete editable state of one profile card. Persisted
// cards from older versions may lack newer fields; Normalize fills a
// defined default for every optional field.
type Config struct {
	CardTitle       string              `json:"card_title"`
	Name            string              `json:"name"`
	Title           string              `json:"title"`
	Tagline         string              `json:"tagline"`
	PrimaryColor    string              `json:"primary_color"`
	SecondaryColor  string              `json:"secondary_color"`
	Gradient        string              `json:"gradient"`
	ShowStacks      bool                `json:"show_stacks"`
	ShowContact     bool                `json:"show_contact"`
	ShowGithubStats bool                `json:"show_github_stats"`
	ShowBaekjoon    bool                `json:"show_baekjoon"`
	BaekjoonID      string              `json:"baekjoon_id,omitempty"`
	StackLabelLang  string              `json:"stack_label_lang"`
	StackAlignment  string              `json:"stack_alignment"`
	Stacks          []StackEntry        `json:"stacks"`
	Contacts        []ContactEntry      `json:"contacts"`
	Repositories    []RepositorySummary `json:"repositories"`
}

// Normalize coerces a config into a fully-defaulted, internally consistent
// state. The gradient is always regenerated from the two endpoint colors;
// a stored gradient with no matching colors is first decoded so legacy
// cards keep their banner.
func (c *Config) Normalize() {
	c.PrimaryColor = strings.TrimSpace(c.PrimaryColor)
	c.SecondaryColor = strings.TrimSpace(c.SecondaryColor)

	if c.PrimaryColor == "" || c.SecondaryColor == "" {
		// Older cards stored only the gradient string; recover the
		// endpoints positionally before applying defaults.
		primary, secondary := DecodeGradient(c.Gradient)
		if c.PrimaryColor == "" {
			c.PrimaryColor = primary
		}
		if c.SecondaryColor == "" {
			c.SecondaryColor = secondary
		}
	}

	c.Gradient = EncodeGradient(c.PrimaryColor, c.SecondaryColor)

	switch c.StackAlignment {
	case "left", "center", "right":
	default:
		c.StackAlignment = "center"
	}

	switch c.StackLabelLang {
	case "ko", "en":
	default:
		c.StackLabelLang = "en"
	}

	if c.Stacks == nil {
		c.Stacks = []StackEntry{}
	}
	if c.Contacts == nil {
		c.Contacts = []ContactEntry{}
	}
	if c.Repositories == nil {
		c.Repositories = []RepositorySummary{}
	}
	if len(c.Repositories) > MaxRepositories {
		c.Repositories = c.Repositories[:MaxRepositories]
	}

	c.BaekjoonID = strings.TrimSpace(c.BaekjoonID)
}
