package card

import "testing"

func TestEncodeGradient(t *testing.T) {
	got := EncodeGradient("#667eea", "#764ba2")
	want := "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestGradientRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"#667eea", "#764ba2"},
		{"#000000", "#ffffff"},
		{"#ff3e00", "#06b6d4"},
		{"#123456", "#abcdef"},
	}

	for _, pair := range pairs {
		primary, secondary := DecodeGradient(EncodeGradient(pair[0], pair[1]))
		if primary != pair[0] || secondary != pair[1] {
			t.Fatalf("round trip for %v returned (%s, %s)", pair, primary, secondary)
		}
	}
}

func TestDecodeGradientLowercasesHex(t *testing.T) {
	// Decode canonicalizes to lowercase, so uppercase colors round-trip
	// case-insensitively rather than byte-for-byte.
	primary, secondary := DecodeGradient(EncodeGradient("#AABBCC", "#DDEEFF"))
	if primary != "#aabbcc" || secondary != "#ddeeff" {
		t.Fatalf("expected canonical lowercase colors, got (%s, %s)", primary, secondary)
	}
}

func TestDecodeGradientCanonical(t *testing.T) {
	primary, secondary := DecodeGradient("linear-gradient(135deg, #667eea 0%, #764ba2 100%)")
	if primary != "#667eea" || secondary != "#764ba2" {
		t.Fatalf("expected canonical pair, got (%s, %s)", primary, secondary)
	}
}

func TestDecodeGradientLegacyFormats(t *testing.T) {
	// Older encoders emitted rgb() triples and 3-digit hex.
	primary, secondary := DecodeGradient("linear-gradient(90deg, rgb(102, 126, 234), #fff)")
	if primary != "#667eea" {
		t.Fatalf("expected rgb triple to normalize to #667eea, got %s", primary)
	}
	if secondary != "#ffffff" {
		t.Fatalf("expected 3-digit hex to expand to #ffffff, got %s", secondary)
	}
}

func TestDecodeGradientSingleColor(t *testing.T) {
	primary, secondary := DecodeGradient("radial-gradient(#123456)")
	if primary != DefaultPrimaryColor || secondary != "#123456" {
		t.Fatalf("expected single color as secondary, got (%s, %s)", primary, secondary)
	}

	// A lone default primary keeps the default pair.
	primary, secondary = DecodeGradient("linear-gradient(#667EEA)")
	if primary != DefaultPrimaryColor || secondary != DefaultSecondaryColor {
		t.Fatalf("expected default pair, got (%s, %s)", primary, secondary)
	}
}

func TestDecodeGradientNoColors(t *testing.T) {
	for _, input := range []string{"", "linear-gradient(135deg, red, blue)", "hsl(200, 50%, 50%)"} {
		primary, secondary := DecodeGradient(input)
		if primary != DefaultPrimaryColor || secondary != DefaultSecondaryColor {
			t.Fatalf("input %q: expected default pair, got (%s, %s)", input, primary, secondary)
		}
	}
}

func TestNormalizeHexIdempotent(t *testing.T) {
	for _, input := range []string{"#fff", "#AbC", "#112233", "#A1B2C3"} {
		once := NormalizeHex(input)
		twice := NormalizeHex(once)
		if once != twice {
			t.Fatalf("normalize not idempotent for %q: %q vs %q", input, once, twice)
		}
		if len(once) != 7 {
			t.Fatalf("expected 6-digit hex for %q, got %q", input, once)
		}
	}
}
