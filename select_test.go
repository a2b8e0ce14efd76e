package kql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectListForm(t *testing.T) {
	var req Request
	err := json.Unmarshal([]byte(`{"query": "site", "select": ["title", "url"]}`), &req)
	require.NoError(t, err)

	require.NotNil(t, req.Select)
	assert.Equal(t, []string{"title", "url"}, req.Select.Fields)
	assert.Nil(t, req.Select.Map)

	out, err := json.Marshal(&req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"query": "site", "select": ["title", "url"]}`, string(out))
}

func TestSelectMapForm(t *testing.T) {
	doc := `{
		"query": "page.children",
		"select": {
			"title": true,
			"text": "page.text.kirbytext",
			"images": {
				"query": "page.images",
				"select": ["url"],
				"pagination": {"limit": 10}
			}
		}
	}`

	var req Request
	require.NoError(t, json.Unmarshal([]byte(doc), &req))
	require.NotNil(t, req.Select)
	require.Len(t, req.Select.Map, 3)

	title := req.Select.Map["title"]
	assert.Equal(t, SelectionInclude, title.Kind)
	assert.True(t, title.Include)

	text := req.Select.Map["text"]
	assert.Equal(t, SelectionQuery, text.Kind)
	assert.Equal(t, "page.text.kirbytext", text.Query)

	images := req.Select.Map["images"]
	require.Equal(t, SelectionRequest, images.Kind)
	require.NotNil(t, images.Request)
	assert.Equal(t, "page.images", images.Request.Query)
	assert.Equal(t, []string{"url"}, images.Request.Select.Fields)
	require.NotNil(t, images.Request.Pagination)
	assert.Equal(t, 10, images.Request.Pagination.Limit)

	// The map shape survives a round-trip.
	out, err := json.Marshal(&req)
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))
}

func TestSelectRejectsOtherShapes(t *testing.T) {
	var sel Select
	err := json.Unmarshal([]byte(`"title"`), &sel)
	assert.Error(t, err)
}

func TestSelectionRejectsUnsupportedKinds(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"number", `{"title": 42}`},
		{"array", `{"title": ["nested"]}`},
		{"null", `{"title": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sel Select
			err := json.Unmarshal([]byte(tt.doc), &sel)
			require.Error(t, err)
			assert.Contains(t, err.Error(), `"title"`)
		})
	}
}

func TestSelectionConstructors(t *testing.T) {
	sel := SelectMap(map[string]Selection{
		"title":    Include(true),
		"text":     SubQuery("page.text.kirbytext"),
		"children": Nested(NewRequest("page.children")),
	})

	out, err := json.Marshal(sel)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title": true,
		"text": "page.text.kirbytext",
		"children": {"query": "page.children"}
	}`, string(out))
}

func TestSelectFieldNames(t *testing.T) {
	list := SelectFields("url", "title")
	assert.Equal(t, []string{"title", "url"}, list.FieldNames())

	m := SelectMap(map[string]Selection{"b": Include(true), "a": Include(true)})
	assert.Equal(t, []string{"a", "b"}, m.FieldNames())
}
