package card

import "github.com/gitcard/internal/catalog"

// SectionKind identifies one independently toggleable block of a rendered
// card.
type SectionKind string

const (
	SectionBanner       SectionKind = "banner"
	SectionStacks       SectionKind = "stacks"
	SectionContacts     SectionKind = "contacts"
	SectionBaekjoon     SectionKind = "baekjoon"
	SectionRepositories SectionKind = "repositories"
	SectionGithubStats  SectionKind = "github_stats"
)

// Section is one rendered block. Only the fields relevant to its kind are
// populated.
type Section struct {
	Kind         SectionKind         `json:"kind"`
	Banner       *Banner             `json:"banner,omitempty"`
	StackGroups  []StackGroup        `json:"stack_groups,omitempty"`
	Alignment    string              `json:"alignment,omitempty"`
	Contacts     []ContactDisplay    `json:"contacts,omitempty"`
	BaekjoonID   string              `json:"baekjoon_id,omitempty"`
	Repositories []RepositorySummary `json:"repositories,omitempty"`
	Stats        *GithubStats        `json:"stats,omitempty"`
}

// Banner is the always-present head section: name, title and tagline over
// the gradient.
type Banner struct {
	Name           string `json:"name"`
	Title          string `json:"title"`
	Tagline        string `json:"tagline"`
	Gradient       string `json:"gradient"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	TextColor      string `json:"text_color"`
}

// StackGroup is one non-empty category of resolved stack badges.
type StackGroup struct {
	Category string         `json:"category"`
	Stacks   []StackDisplay `json:"stacks"`
}

// GithubStats carries the numbers the identity gateway supplies for the
// stats section. Contributions stays nil when the GraphQL fetch was not
// possible.
type GithubStats struct {
	Repositories  int  `json:"repositories"`
	Stars         int  `json:"stars"`
	Followers     int  `json:"followers"`
	Following     int  `json:"following"`
	Contributions *int `json:"contributions"`
}

// Render turns a card configuration into its ordered section list. The
// banner is always first; the remaining sections appear only when their
// visibility flag is on, in a fixed order with GithubStats last. Render
// never fails: every field degrades to a literal fallback, and a nil stats
// value simply omits the stats section.
func Render(cfg Config, stats *GithubStats) []Section {
	cfg.Normalize()

	sections := []Section{{
		Kind: SectionBanner,
		Banner: &Banner{
			Name:           cfg.Name,
			Title:          cfg.Title,
			Tagline:        cfg.Tagline,
			Gradient:       cfg.Gradient,
			PrimaryColor:   cfg.PrimaryColor,
			SecondaryColor: cfg.SecondaryColor,
			TextColor:      TextColorFor(cfg.PrimaryColor),
		},
	}}

	if cfg.ShowStacks {
		sections = append(sections, Section{
			Kind:        SectionStacks,
			StackGroups: groupStacks(cfg.Stacks),
			Alignment:   cfg.StackAlignment,
		})
	}

	if cfg.ShowContact {
		contacts := make([]ContactDisplay, 0, len(cfg.Contacts))
		for _, entry := range cfg.Contacts {
			contacts = append(contacts, ResolveContactDisplay(entry))
		}
		sections = append(sections, Section{Kind: SectionContacts, Contacts: contacts})
	}

	if cfg.ShowBaekjoon && cfg.BaekjoonID != "" {
		sections = append(sections, Section{Kind: SectionBaekjoon, BaekjoonID: cfg.BaekjoonID})
	}

	if len(cfg.Repositories) > 0 {
		sections = append(sections, Section{Kind: SectionRepositories, Repositories: cfg.Repositories})
	}

	if cfg.ShowGithubStats && stats != nil {
		sections = append(sections, Section{Kind: SectionGithubStats, Stats: stats})
	}

	return sections
}

// groupStacks buckets resolved entries by category and emits the non-empty
// groups in the fixed catalog order. Entries keep their stored order
// within a group.
func groupStacks(entries []StackEntry) []StackGroup {
	buckets := make(map[string][]StackDisplay)
	for _, entry := range entries {
		display := ResolveStackDisplay(entry)
		buckets[display.Category] = append(buckets[display.Category], display)
	}

	groups := make([]StackGroup, 0, len(buckets))
	for _, category := range catalog.Categories() {
		if stacks, ok := buckets[category]; ok {
			groups = append(groups, StackGroup{Category: category, Stacks: stacks})
		}
	}
	return groups
}
