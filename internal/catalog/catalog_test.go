package catalog

import "testing"

func TestCategoriesDeclaredOrder(t *testing.T) {
	want := []string{
		"language", "frontend", "mobile", "backend", "database",
		"infra", "collaboration", "ai-ml", "testing", "tool",
	}
	got := Categories()
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestLookupStack(t *testing.T) {
	meta, ok := LookupStack("react")
	if !ok {
		t.Fatalf("react should be in the catalog")
	}
	if meta.Label != "React" || meta.Category != "frontend" {
		t.Fatalf("unexpected metadata: %#v", meta)
	}

	// Lookup is case-insensitive and trims whitespace.
	if _, ok := LookupStack("  React "); !ok {
		t.Fatalf("lookup should normalize the key")
	}

	if _, ok := LookupStack("no-such-stack"); ok {
		t.Fatalf("unknown keys must report not found, not an error")
	}
}

func TestLookupContact(t *testing.T) {
	meta, ok := LookupContact("mail")
	if !ok || meta.Label != "Email" {
		t.Fatalf("mail lookup failed: %#v", meta)
	}
	if _, ok := LookupContact("carrier-pigeon"); ok {
		t.Fatalf("unknown contact types must report not found")
	}
}

func TestStacksByCategoryStable(t *testing.T) {
	first := StacksByCategory("language")
	second := StacksByCategory("language")
	if len(first) == 0 {
		t.Fatalf("language category should not be empty")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("category listing must be stable")
		}
	}
}

func TestAllStacksGroupedByCategoryOrder(t *testing.T) {
	all := AllStacks()
	if len(all) == 0 {
		t.Fatalf("catalog must not be empty")
	}

	lastIndex := 0
	for _, meta := range all {
		index := CategoryIndex(meta.Category)
		if index < lastIndex {
			t.Fatalf("entry %s out of category order", meta.Key)
		}
		lastIndex = index
	}
}

func TestCategoryIndexUnknownSortsLast(t *testing.T) {
	if CategoryIndex("nope") != len(Categories()) {
		t.Fatalf("unknown categories must sort last")
	}
	if KnownCategory("nope") {
		t.Fatalf("nope is not a known category")
	}
	if !KnownCategory("ai-ml") {
		t.Fatalf("ai-ml is a known category")
	}
}
