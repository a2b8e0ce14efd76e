// Package query parses and validates Kirby query strings.
//
// A query names a model (a top-level content-tree entry point such as
// "site" or "page") followed by a chain of property accesses and method
// calls, e.g. `site.find("projects").children.listed.first`. The package
// decides whether a string conforms to that grammar and decomposes valid
// queries into their model name and ordered segment chain. It performs no
// evaluation and no I/O; see the resolve package for running queries
// against content data.
package query

import "strings"

// defaultModels is the closed set of models Kirby itself exposes as query
// entry points. Custom models extend this set, they never replace it.
var defaultModels = []string{"collection", "file", "kirby", "page", "site", "user"}

// SegmentKind distinguishes the two kinds of chain segments
type SegmentKind int

const (
	// SegmentProperty is a bare property access, e.g. `.children`
	SegmentProperty SegmentKind = iota
	// SegmentMethod is a method call with raw argument text, e.g. `.filterBy("featured", true)`
	SegmentMethod
)

// String returns a string representation of the segment kind
func (k SegmentKind) String() string {
	switch k {
	case SegmentProperty:
		return "property"
	case SegmentMethod:
		return "method"
	default:
		return "unknown"
	}
}

// Segment is one step in a query chain
type Segment struct {
	Kind SegmentKind
	Name string
	// Params holds the raw argument text between the call's outer
	// parentheses, verbatim and unparsed. Empty for property segments.
	Params string
}

// Query is the structured decomposition of a valid query string
type Query struct {
	Model string
	Chain []Segment
}

// String reassembles the query into its canonical textual form. A method
// call absorbed into the model position (`page("notes")`) renders without
// a separating dot.
func (q *Query) String() string {
	var sb strings.Builder
	sb.WriteString(q.Model)
	for i, seg := range q.Chain {
		if seg.Kind == SegmentMethod {
			if i == 0 && seg.Name == q.Model {
				sb.WriteString("(")
				sb.WriteString(seg.Params)
				sb.WriteString(")")
				continue
			}
			sb.WriteString(".")
			sb.WriteString(seg.Name)
			sb.WriteString("(")
			sb.WriteString(seg.Params)
			sb.WriteString(")")
			continue
		}
		sb.WriteString(".")
		sb.WriteString(seg.Name)
	}
	return sb.String()
}

// DefaultModels returns a copy of the closed default model set
func DefaultModels() []string {
	models := make([]string, len(defaultModels))
	copy(models, defaultModels)
	return models
}

// defaultParser backs the package-level convenience functions
var defaultParser = New()

// Validate reports whether input is a valid query against the default
// model set
func Validate(input string) bool {
	return defaultParser.Validate(input)
}

// Parse decomposes input against the default model set
func Parse(input string) (*Query, error) {
	return defaultParser.Parse(input)
}
