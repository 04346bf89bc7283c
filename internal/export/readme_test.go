package export

import (
	"strings"
	"testing"

	"github.com/gitcard/internal/card"
)

func TestReadmeTemplate(t *testing.T) {
	readme := ReadmeTemplate("jane", ReadmeOptions{
		HeaderText:   "Hi, I'm Jane",
		Tagline:      "building things",
		PrimaryColor: "#667eea",
		ShowStats:    true,
		BaekjoonID:   "jane123",
		Stacks: []card.StackEntry{
			{ID: "1", Key: "go"},
			{ID: "2", Key: "react"},
		},
	})

	for _, want := range []string{
		"capsule-render.vercel.app",
		"color=667eea",
		"> building things",
		"img.shields.io/badge/Go-00add8",
		"img.shields.io/badge/React-61dafb",
		"github-readme-stats.vercel.app/api?username=jane",
		"mazassumnida.wtf/api/v2/generate_badge?boj=jane123",
	} {
		if !strings.Contains(readme, want) {
			t.Fatalf("readme missing %q:\n%s", want, readme)
		}
	}

	// language group (go) renders before frontend group (react)
	goIdx := strings.Index(readme, "badge/Go-")
	reactIdx := strings.Index(readme, "badge/React-")
	if goIdx > reactIdx {
		t.Fatalf("language badges must come before frontend badges")
	}
}

func TestReadmeTemplateDefaults(t *testing.T) {
	readme := ReadmeTemplate("jane", ReadmeOptions{})

	if !strings.Contains(readme, "Hi+%F0%9F%91%8B+I%27m+jane") && !strings.Contains(readme, "jane") {
		t.Fatalf("default header should mention the login:\n%s", readme)
	}
	if strings.Contains(readme, "github-readme-stats") {
		t.Fatalf("stats block must be opt-in")
	}
	if strings.Contains(readme, "mazassumnida") {
		t.Fatalf("baekjoon block needs a handle")
	}
	// Bad color falls back to the default primary.
	if !strings.Contains(readme, "color=667eea") {
		t.Fatalf("expected default banner color:\n%s", readme)
	}
}
