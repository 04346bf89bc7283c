package card

import "testing"

func fullConfig() Config {
	return Config{
		CardTitle:       "My Card",
		Name:            "Jane",
		Title:           "Backend Developer",
		Tagline:         "building things",
		PrimaryColor:    "#667eea",
		SecondaryColor:  "#764ba2",
		ShowStacks:      true,
		ShowContact:     true,
		ShowGithubStats: true,
		ShowBaekjoon:    true,
		BaekjoonID:      "jane123",
		Stacks: []StackEntry{
			{ID: "1", Key: "go"},
			{ID: "2", Key: "postgresql"},
		},
		Contacts: []ContactEntry{
			{ID: "1", Type: "mail", Value: "jane@example.com"},
		},
		Repositories: []RepositorySummary{
			{Name: "gitcard", URL: "https://github.com/jane/gitcard", Stars: 12},
		},
	}
}

func sectionKinds(sections []Section) []SectionKind {
	kinds := make([]SectionKind, 0, len(sections))
	for _, s := range sections {
		kinds = append(kinds, s.Kind)
	}
	return kinds
}

func TestRenderFullSectionOrder(t *testing.T) {
	contributions := 420
	sections := Render(fullConfig(), &GithubStats{Repositories: 10, Contributions: &contributions})

	want := []SectionKind{
		SectionBanner,
		SectionStacks,
		SectionContacts,
		SectionBaekjoon,
		SectionRepositories,
		SectionGithubStats,
	}
	got := sectionKinds(sections)
	if len(got) != len(want) {
		t.Fatalf("expected %d sections, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("section %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRenderAllFlagsOffOnlyBanner(t *testing.T) {
	cfg := fullConfig()
	cfg.ShowStacks = false
	cfg.ShowContact = false
	cfg.ShowGithubStats = false
	cfg.ShowBaekjoon = false
	cfg.Repositories = nil

	sections := Render(cfg, nil)
	if len(sections) != 1 || sections[0].Kind != SectionBanner {
		t.Fatalf("expected only the banner, got %v", sectionKinds(sections))
	}
	if sections[0].Banner == nil || sections[0].Banner.Name != "Jane" {
		t.Fatalf("banner should carry the name, got %#v", sections[0].Banner)
	}
}

func TestRenderNilStatsOmitsStatsSection(t *testing.T) {
	sections := Render(fullConfig(), nil)
	for _, s := range sections {
		if s.Kind == SectionGithubStats {
			t.Fatalf("stats section must be omitted when stats are unavailable")
		}
	}
}

func TestRenderBaekjoonNeedsHandle(t *testing.T) {
	cfg := fullConfig()
	cfg.BaekjoonID = "  "

	for _, s := range Render(cfg, nil) {
		if s.Kind == SectionBaekjoon {
			t.Fatalf("baekjoon section must be omitted without a handle")
		}
	}
}

func TestRenderStackGroupingFixedCategoryOrder(t *testing.T) {
	cfg := fullConfig()
	cfg.Stacks = []StackEntry{
		{ID: "1", Label: "Gin", Category: "backend", Color: "#008ECF"},
		{ID: "2", Label: "Go", Category: "language", Color: "#00ADD8"},
		{ID: "3", Label: "Echo", Category: "backend", Color: "#333333"},
	}

	var groups []StackGroup
	for _, s := range Render(cfg, nil) {
		if s.Kind == SectionStacks {
			groups = s.StackGroups
		}
	}

	if len(groups) != 2 {
		t.Fatalf("expected 2 non-empty groups, got %d", len(groups))
	}
	if groups[0].Category != "language" || groups[1].Category != "backend" {
		t.Fatalf("expected language before backend, got %s then %s", groups[0].Category, groups[1].Category)
	}
	if groups[1].Stacks[0].Label != "Gin" || groups[1].Stacks[1].Label != "Echo" {
		t.Fatalf("stored order must be preserved within a group, got %#v", groups[1].Stacks)
	}
}

func TestNormalizeRegeneratesGradient(t *testing.T) {
	cfg := Config{PrimaryColor: "#111111", SecondaryColor: "#222222", Gradient: "stale"}
	cfg.Normalize()

	if cfg.Gradient != EncodeGradient("#111111", "#222222") {
		t.Fatalf("gradient must be regenerated from the colors, got %q", cfg.Gradient)
	}
}

func TestNormalizeRecoversColorsFromLegacyGradient(t *testing.T) {
	cfg := Config{Gradient: "linear-gradient(135deg, #123456 0%, #654321 100%)"}
	cfg.Normalize()

	if cfg.PrimaryColor != "#123456" || cfg.SecondaryColor != "#654321" {
		t.Fatalf("expected colors recovered from gradient, got (%s, %s)", cfg.PrimaryColor, cfg.SecondaryColor)
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := Config{StackAlignment: "diagonal", Repositories: make([]RepositorySummary, 12)}
	cfg.Normalize()

	if cfg.PrimaryColor != DefaultPrimaryColor || cfg.SecondaryColor != DefaultSecondaryColor {
		t.Fatalf("expected default color pair, got (%s, %s)", cfg.PrimaryColor, cfg.SecondaryColor)
	}
	if cfg.StackAlignment != "center" {
		t.Fatalf("unknown alignment must coerce to center, got %q", cfg.StackAlignment)
	}
	if len(cfg.Repositories) != MaxRepositories {
		t.Fatalf("repositories must be capped at %d, got %d", MaxRepositories, len(cfg.Repositories))
	}
	if cfg.Stacks == nil || cfg.Contacts == nil {
		t.Fatalf("lists must never stay nil after normalization")
	}
}
