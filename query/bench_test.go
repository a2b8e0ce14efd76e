package query

import (
	"strings"
	"testing"
)

var benchQueries = []string{
	"site",
	"site.title",
	`page.children.filterBy("featured", true)`,
	`site.find("projects").children.listed.filterBy("featured", true).shuffle()`,
	`collection("notes")`,
}

// BenchmarkValidate measures validation of typical queries
func BenchmarkValidate(b *testing.B) {
	p := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, q := range benchQueries {
			p.Validate(q)
		}
	}
}

// BenchmarkParse measures decomposition of a mixed chain
func BenchmarkParse(b *testing.B) {
	p := New()
	input := `site.find("projects").children.listed.filterBy("featured", true).shuffle()`
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkParseLongChain measures a deep property chain
func BenchmarkParseLongChain(b *testing.B) {
	p := New()
	input := "site" + strings.Repeat(".children", 100) + ".first"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Parse(input); err != nil {
			b.Fatal(err)
		}
	}
}
