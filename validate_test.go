package kql

import (
	"testing"

	"github.com/johannschopplich/go-kql/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCleanRequest(t *testing.T) {
	req := &Request{
		Query: `site.find("projects").children.listed`,
		Select: SelectMap(map[string]Selection{
			"title": Include(true),
			"text":  SubQuery("page.text.kirbytext"),
		}),
		Pagination: &Pagination{Page: 1, Limit: 20},
	}

	diags := req.Validate(query.New())
	assert.Empty(t, diags)
	assert.False(t, HasErrors(diags))
}

func TestValidateMissingQuery(t *testing.T) {
	req := &Request{}
	diags := req.Validate(query.New())

	require.Len(t, diags, 1)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Equal(t, "query", diags[0].Path)
	assert.True(t, HasErrors(diags))
}

func TestValidateMalformedQuery(t *testing.T) {
	req := NewRequest("kirby(")
	diags := req.Validate(query.New())

	require.Len(t, diags, 1)
	assert.Equal(t, SeverityError, diags[0].Severity)
	assert.Equal(t, "query", diags[0].Path)
	assert.Contains(t, diags[0].Message, "Unterminated")
}

func TestValidateStringSelectionWarns(t *testing.T) {
	req := &Request{
		Query: "site",
		Select: SelectMap(map[string]Selection{
			// Arbitrary strings are legal on the wire, so a non-query
			// value is only worth a warning.
			"weird": SubQuery("not a query!"),
		}),
	}

	diags := req.Validate(query.New())
	require.Len(t, diags, 1)
	assert.Equal(t, SeverityWarning, diags[0].Severity)
	assert.Equal(t, "select.weird", diags[0].Path)
	assert.False(t, HasErrors(diags))
}

func TestValidateNestedRequestPaths(t *testing.T) {
	req := &Request{
		Query: "page.children",
		Select: SelectMap(map[string]Selection{
			"images": Nested(&Request{
				Query:      "wrongModel.images",
				Pagination: &Pagination{Page: 0, Limit: 10},
			}),
		}),
	}

	diags := req.Validate(query.New())
	require.Len(t, diags, 2)

	paths := []string{diags[0].Path, diags[1].Path}
	assert.Contains(t, paths, "select.images.query")
	assert.Contains(t, paths, "select.images.pagination.page")
	assert.True(t, HasErrors(diags))
}

func TestValidatePagination(t *testing.T) {
	req := &Request{
		Query:      "site.children",
		Pagination: &Pagination{Page: 0, Limit: -5},
	}

	diags := req.Validate(query.New())
	require.Len(t, diags, 2)
	assert.Equal(t, "pagination.page", diags[0].Path)
	assert.Equal(t, "pagination.limit", diags[1].Path)
}

func TestValidateCustomModels(t *testing.T) {
	req := NewRequest("article.cover")

	assert.True(t, HasErrors(req.Validate(query.New())))

	p := query.NewWithConfig(query.Config{CustomModels: []string{"article"}})
	assert.Empty(t, req.Validate(p))
}

func TestValidateListFormSelect(t *testing.T) {
	// List entries are field names, not queries; nothing to flag.
	req := &Request{
		Query:  "site",
		Select: SelectFields("title", "not a query!"),
	}
	assert.Empty(t, req.Validate(query.New()))
}

func TestDiagnosticString(t *testing.T) {
	d := Diagnostic{Severity: SeverityWarning, Path: "select.text", Message: "value is not a query"}
	assert.Equal(t, "warning: select.text: value is not a query", d.String())
}
