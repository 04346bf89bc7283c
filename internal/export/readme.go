package export

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/gitcard/internal/card"
	"github.com/gitcard/internal/catalog"
)

// ReadmeOptions selects which blocks the README template includes.
type ReadmeOptions struct {
	HeaderText   string
	Tagline      string
	Stacks       []card.StackEntry
	ShowStats    bool
	BaekjoonID   string
	PrimaryColor string
}

// ReadmeTemplate produces a full profile README built from external badge
// generators: a capsule-render header, shields.io badges for the resolved
// stacks, a github-readme-stats card and an optional solved.ac badge. It
// is pure templating; nothing is rendered locally.
func ReadmeTemplate(githubLogin string, opts ReadmeOptions) string {
	header := opts.HeaderText
	if header == "" {
		header = fmt.Sprintf("Hi 👋 I'm %s", githubLogin)
	}

	color := strings.TrimPrefix(card.NormalizeHex(opts.PrimaryColor), "#")
	if len(color) != 6 {
		color = strings.TrimPrefix(card.DefaultPrimaryColor, "#")
	}

	var b strings.Builder

	// Header banner. The gradient angle matches the card banner's 135°.
	fmt.Fprintf(&b,
		"![header](https://capsule-render.vercel.app/api?type=waving&color=%s&height=200&section=header&text=%s&fontColor=ffffff&fontSize=40)\n\n",
		color, url.QueryEscape(header))

	if opts.Tagline != "" {
		fmt.Fprintf(&b, "> %s\n\n", opts.Tagline)
	}

	if len(opts.Stacks) > 0 {
		b.WriteString("## 🛠️ Tech Stack\n\n")
		for _, category := range catalog.Categories() {
			var badges []string
			for _, entry := range opts.Stacks {
				display := card.ResolveStackDisplay(entry)
				if display.Category != category {
					continue
				}
				badges = append(badges, shieldBadge(display))
			}
			if len(badges) > 0 {
				b.WriteString(strings.Join(badges, " "))
				b.WriteString("\n\n")
			}
		}
	}

	if opts.ShowStats {
		b.WriteString("## 📊 GitHub Stats\n\n")
		fmt.Fprintf(&b,
			"![stats](https://github-readme-stats.vercel.app/api?username=%s&show_icons=true&theme=default)\n\n",
			githubLogin)
	}

	if opts.BaekjoonID != "" {
		b.WriteString("## 🏅 Baekjoon\n\n")
		fmt.Fprintf(&b,
			"[![Solved.ac](http://mazassumnida.wtf/api/v2/generate_badge?boj=%s)](https://solved.ac/%s)\n\n",
			opts.BaekjoonID, opts.BaekjoonID)
	}

	return b.String()
}

func shieldBadge(display card.StackDisplay) string {
	label := url.PathEscape(strings.ReplaceAll(display.Label, "-", "--"))
	color := strings.TrimPrefix(display.Color, "#")
	badge := fmt.Sprintf("https://img.shields.io/badge/%s-%s?style=flat-square", label, color)
	if display.Icon != "" {
		badge += "&logo=" + url.QueryEscape(display.Icon)
		if display.TextColor == "#ffffff" {
			badge += "&logoColor=white"
		}
	}
	return fmt.Sprintf("![%s](%s)", display.Label, badge)
}
