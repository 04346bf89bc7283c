package card

import (
	"strconv"
	"strings"

	"github.com/gitcard/internal/catalog"
)

// Literal fallbacks used when neither the entry nor the catalog supplies a
// value.
const (
	fallbackLabel    = "Unknown"
	fallbackCategory = "tool"
	fallbackColor    = "#6b7280"
)

// StackDisplay is a fully resolved stack badge ready for rendering.
type StackDisplay struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Category  string `json:"category"`
	Color     string `json:"color"`
	Icon      string `json:"icon,omitempty"`
	TextColor string `json:"text_color"`
}

// ContactDisplay is a fully resolved contact link ready for rendering.
type ContactDisplay struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
	Blank bool   `json:"blank"`
}

// ResolveStackDisplay applies the three-tier fallback chain for a stack
// entry: explicit field, then catalog entry for Key, then literal default.
// This is the single place that logic lives; the renderer and any editor
// preview go through it.
func ResolveStackDisplay(entry StackEntry) StackDisplay {
	display := StackDisplay{
		ID:       entry.ID,
		Label:    strings.TrimSpace(entry.Label),
		Category: strings.TrimSpace(entry.Category),
		Color:    strings.TrimSpace(entry.Color),
	}

	if meta, ok := catalog.LookupStack(entry.Key); ok {
		if display.Label == "" {
			display.Label = meta.Label
		}
		if display.Category == "" {
			display.Category = meta.Category
		}
		if display.Color == "" {
			display.Color = meta.Color
		}
		display.Icon = meta.Icon
	}

	if display.Label == "" {
		display.Label = fallbackLabel
	}
	if !catalog.KnownCategory(display.Category) {
		display.Category = fallbackCategory
	}
	if display.Color == "" {
		display.Color = fallbackColor
	}
	display.Color = NormalizeHex(display.Color)
	display.TextColor = TextColorFor(display.Color)

	return display
}

// ResolveContactDisplay mirrors ResolveStackDisplay for contact entries.
func ResolveContactDisplay(entry ContactEntry) ContactDisplay {
	display := ContactDisplay{
		ID:    entry.ID,
		Label: strings.TrimSpace(entry.Label),
		Value: strings.TrimSpace(entry.Value),
		Color: fallbackColor,
	}

	if meta, ok := catalog.LookupContact(entry.Type); ok {
		if display.Label == "" {
			display.Label = meta.Label
		}
		display.Color = meta.Color
		display.Icon = meta.Icon
	}

	if display.Label == "" {
		display.Label = fallbackLabel
	}

	display.Href = ContactHref(display.Value)
	display.Blank = !strings.HasPrefix(display.Href, "mailto:")

	return display
}

// ContactHref turns a raw contact value into a link target. Values that
// contain "@" and do not start with http are treated as email addresses;
// values already carrying a scheme pass through verbatim; everything else
// gets an https prefix. This is a heuristic, not validation; malformed
// values pass through unchanged.
func ContactHref(value string) string {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return ""
	case strings.HasPrefix(value, "http://"), strings.HasPrefix(value, "https://"):
		return value
	case strings.Contains(value, "@") && !strings.HasPrefix(value, "http"):
		return "mailto:" + value
	default:
		return "https://" + value
	}
}

// TextColorFor picks black or white badge text for a hex background so the
// label stays legible against arbitrary user-chosen colors. Perceived
// luminance above 0.5 gets black text, everything else white.
func TextColorFor(hex string) string {
	r, g, b, ok := parseHexRGB(hex)
	if !ok {
		return "#ffffff"
	}

	luminance := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255.0
	if luminance > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

func parseHexRGB(hex string) (r, g, b int, ok bool) {
	hex = NormalizeHex(hex)
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		return 0, 0, 0, false
	}

	parsed, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}

	return int(parsed >> 16 & 0xff), int(parsed >> 8 & 0xff), int(parsed & 0xff), true
}
