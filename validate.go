package kql

import (
	"fmt"

	"github.com/johannschopplich/go-kql/query"
)

// Validate checks the request document against the query grammar and
// returns every finding. The top-level query must parse; string
// selections that do not parse are reported at warning severity, since
// the wire format allows arbitrary strings there; nested requests are
// validated recursively with dotted paths. An empty result means the
// document is clean.
func (r *Request) Validate(p *query.Parser) []Diagnostic {
	return r.validate(p, "")
}

func (r *Request) validate(p *query.Parser, prefix string) []Diagnostic {
	var diags []Diagnostic

	queryPath := joinPath(prefix, "query")
	if r.Query == "" {
		diags = append(diags, Diagnostic{
			Severity: SeverityError,
			Path:     queryPath,
			Message:  "missing query",
		})
	} else if _, err := p.Parse(r.Query); err != nil {
		diags = append(diags, Diagnostic{
			Severity: SeverityError,
			Path:     queryPath,
			Message:  err.Error(),
		})
	}

	if r.Pagination != nil {
		if r.Pagination.Page < 1 {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Path:     joinPath(prefix, "pagination.page"),
				Message:  fmt.Sprintf("page must be at least 1, got %d", r.Pagination.Page),
			})
		}
		if r.Pagination.Limit < 1 {
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Path:     joinPath(prefix, "pagination.limit"),
				Message:  fmt.Sprintf("limit must be at least 1, got %d", r.Pagination.Limit),
			})
		}
	}

	if r.Select == nil {
		return diags
	}

	selectPath := joinPath(prefix, "select")
	for _, name := range r.Select.FieldNames() {
		sel, ok := r.Select.Map[name]
		if !ok {
			// List form: entries are plain field names, not queries.
			continue
		}

		fieldPath := selectPath + "." + name
		switch sel.Kind {
		case SelectionInclude:
			// Nothing to check.
		case SelectionQuery:
			if _, err := p.Parse(sel.Query); err != nil {
				diags = append(diags, Diagnostic{
					Severity: SeverityWarning,
					Path:     fieldPath,
					Message:  fmt.Sprintf("value is not a query: %v", err),
				})
			}
		case SelectionRequest:
			diags = append(diags, sel.Request.validate(p, fieldPath)...)
		}
	}

	return diags
}

// joinPath joins a document path prefix with a field name
func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
