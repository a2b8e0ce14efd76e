// Package ui renders diagnostics and query decompositions for the
// terminal.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	kql "github.com/johannschopplich/go-kql"
	"github.com/johannschopplich/go-kql/query"
)

// Options configures terminal rendering
type Options struct {
	NoColor bool
}

// severityColor picks the header color for a severity
func severityColor(s kql.Severity, noColor bool) *color.Color {
	var c *color.Color
	switch s {
	case kql.SeverityError:
		c = color.New(color.FgRed, color.Bold)
	case kql.SeverityWarning:
		c = color.New(color.FgYellow, color.Bold)
	default:
		c = color.New(color.FgCyan, color.Bold)
	}
	if noColor {
		c.DisableColor()
	}
	return c
}

// RenderDiagnostics writes one line per diagnostic, prefixed with the
// document name
func RenderDiagnostics(w io.Writer, name string, diags []kql.Diagnostic, opts Options) {
	for _, d := range diags {
		severityColor(d.Severity, opts.NoColor).Fprintf(w, "%s", d.Severity)
		fmt.Fprintf(w, " %s: %s: %s\n", name, d.Path, d.Message)
	}
}

// RenderParseError writes the query with a caret under the offending
// column, the way compiler errors point into a source line
func RenderParseError(w io.Writer, input string, err error, opts Options) {
	var perr *query.ParseError
	if !errors.As(err, &perr) {
		severityColor(kql.SeverityError, opts.NoColor).Fprint(w, "error")
		fmt.Fprintf(w, " %v\n", err)
		return
	}

	severityColor(kql.SeverityError, opts.NoColor).Fprint(w, "error")
	fmt.Fprintf(w, " %s\n", perr.Message)

	gutter := color.New(color.FgBlue)
	if opts.NoColor {
		gutter.DisableColor()
	}

	gutter.Fprint(w, "  | ")
	fmt.Fprintln(w, input)
	gutter.Fprint(w, "  | ")

	// Column is 1-based and counts runes, like the lexer.
	caret := perr.Column - 1
	if caret < 0 {
		caret = 0
	}
	if max := len([]rune(input)); caret > max {
		caret = max
	}
	fmt.Fprint(w, strings.Repeat(" ", caret))

	marker := color.New(color.FgRed, color.Bold)
	if opts.NoColor {
		marker.DisableColor()
	}
	marker.Fprintln(w, "^")
}

// RenderQuery writes a parsed query as a segment table
func RenderQuery(w io.Writer, q *query.Query, opts Options) {
	heading := color.New(color.FgCyan, color.Bold)
	if opts.NoColor {
		heading.DisableColor()
	}

	heading.Fprint(w, "model: ")
	fmt.Fprintln(w, q.Model)

	if len(q.Chain) == 0 {
		return
	}

	table := NewTable(w, []string{"#", "KIND", "NAME", "PARAMS"}, opts)
	for i, seg := range q.Chain {
		params := ""
		if seg.Kind == query.SegmentMethod {
			params = "(" + seg.Params + ")"
		}
		table.AddRow(fmt.Sprintf("%d", i+1), seg.Kind.String(), seg.Name, params)
	}
	table.Render()
}
