package card

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// The banner angle is fixed at 135° to match the gradient angle used by
// the external stats-badge service.
const gradientAngle = "135deg"

// colorTokenPattern matches either a hex color (3 or 6 digits) or an
// rgb(r, g, b) triple, in left-to-right order.
var colorTokenPattern = regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})|rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)`)

// EncodeGradient builds the canonical two-stop linear gradient string for
// a pair of endpoint colors.
func EncodeGradient(primary, secondary string) string {
	if strings.TrimSpace(primary) == "" {
		primary = DefaultPrimaryColor
	}
	if strings.TrimSpace(secondary) == "" {
		secondary = DefaultSecondaryColor
	}
	return fmt.Sprintf("linear-gradient(%s, %s 0%%, %s 100%%)", gradientAngle, primary, secondary)
}

// DecodeGradient recovers the two endpoint colors from a stored gradient
// string. Decoding is positional: the first recognized color token is the
// primary, the second the secondary. Strings produced by older encoders or
// stored verbatim are tolerated; anything with no recognizable color
// tokens (named colors, hsl(), empty) falls back to the default pair.
//
// Decoded colors come back in canonical form: 6-digit lowercase hex, with
// 3-digit and rgb() tokens expanded. Uppercase input therefore does not
// round-trip byte-for-byte, only case-insensitively.
func DecodeGradient(gradient string) (primary, secondary string) {
	colors := scanColors(gradient)

	switch {
	case len(colors) >= 2:
		return colors[0], colors[1]
	case len(colors) == 1:
		// A single color that is not the known default primary is
		// treated as the secondary stop.
		if strings.EqualFold(colors[0], DefaultPrimaryColor) {
			return DefaultPrimaryColor, DefaultSecondaryColor
		}
		return DefaultPrimaryColor, colors[0]
	default:
		return DefaultPrimaryColor, DefaultSecondaryColor
	}
}

func scanColors(s string) []string {
	matches := colorTokenPattern.FindAllStringSubmatch(s, -1)
	colors := make([]string, 0, len(matches))
	for _, m := range matches {
		token := m[0]
		if strings.HasPrefix(token, "#") {
			colors = append(colors, NormalizeHex(token))
			continue
		}
		r, g, b := clampChannel(m[1]), clampChannel(m[2]), clampChannel(m[3])
		colors = append(colors, fmt.Sprintf("#%02x%02x%02x", r, g, b))
	}
	return colors
}

// NormalizeHex expands 3-digit hex colors to 6 digits by doubling each
// digit and lowercases the result. Normalization is idempotent.
func NormalizeHex(hex string) string {
	hex = strings.ToLower(strings.TrimSpace(hex))
	if len(hex) == 4 && strings.HasPrefix(hex, "#") {
		return "#" + strings.Repeat(string(hex[1]), 2) +
			strings.Repeat(string(hex[2]), 2) +
			strings.Repeat(string(hex[3]), 2)
	}
	return hex
}

func clampChannel(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
