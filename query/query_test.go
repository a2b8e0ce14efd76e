package query

import (
	"reflect"
	"testing"
)

// TestDefaultModels tests that the default set is closed and copied
func TestDefaultModels(t *testing.T) {
	want := []string{"collection", "file", "kirby", "page", "site", "user"}
	got := DefaultModels()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DefaultModels() = %v, want %v", got, want)
	}

	// Mutating the returned slice must not affect the package.
	got[0] = "mutated"
	if DefaultModels()[0] != "collection" {
		t.Error("DefaultModels() returned a shared slice")
	}
}

// TestParserModels tests the sorted introspection of the allowed set
func TestParserModels(t *testing.T) {
	p := NewWithConfig(Config{CustomModels: []string{"article", "album"}})
	want := []string{"album", "article", "collection", "file", "kirby", "page", "site", "user"}
	if got := p.Models(); !reflect.DeepEqual(got, want) {
		t.Errorf("Models() = %v, want %v", got, want)
	}
}

// TestQueryString tests reassembly of parsed queries
func TestQueryString(t *testing.T) {
	tests := []string{
		"site",
		"site.title",
		"site.children.shuffle()",
		`page.children.filterBy("featured", true)`,
		`collection("notes")`,
		`page("notes").children.first`,
		`site.find("projects").children.listed.filterBy("featured", true).shuffle()`,
	}

	p := New()
	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			q, err := p.Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", input, err)
			}
			if got := q.String(); got != input {
				t.Errorf("String() = %q, want %q", got, input)
			}
		})
	}
}

// TestSegmentKindString tests the segment kind names
func TestSegmentKindString(t *testing.T) {
	if SegmentProperty.String() != "property" {
		t.Errorf("SegmentProperty.String() = %q", SegmentProperty.String())
	}
	if SegmentMethod.String() != "method" {
		t.Errorf("SegmentMethod.String() = %q", SegmentMethod.String())
	}
	if SegmentKind(42).String() != "unknown" {
		t.Errorf("SegmentKind(42).String() = %q", SegmentKind(42).String())
	}
}

// TestPackageLevelHelpers tests the default-parser convenience functions
func TestPackageLevelHelpers(t *testing.T) {
	if !Validate("site.title") {
		t.Error("Validate rejected a valid query")
	}
	if Validate("Site") {
		t.Error("Validate accepted a case-mismatched model")
	}

	q, err := Parse(`page.children.filterBy("featured", true)`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if q.Model != "page" || len(q.Chain) != 2 {
		t.Errorf("Parse returned %+v", q)
	}
}
