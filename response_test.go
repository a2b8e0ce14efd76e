package kql

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseDecode(t *testing.T) {
	doc := []byte(`{"code": 200, "status": "OK", "result": {"title": "Home"}}`)

	var resp Response
	require.NoError(t, json.Unmarshal(doc, &resp))
	assert.True(t, resp.OK())

	var result struct {
		Title string `json:"title"`
	}
	require.NoError(t, resp.DecodeResult(&result))
	assert.Equal(t, "Home", result.Title)
}

func TestResponsePaginated(t *testing.T) {
	doc := []byte(`{
		"code": 200,
		"status": "OK",
		"result": {
			"data": [{"title": "One"}, {"title": "Two"}],
			"pagination": {"page": 1, "pages": 4, "offset": 0, "limit": 2, "total": 8}
		}
	}`)

	var resp Response
	require.NoError(t, json.Unmarshal(doc, &resp))

	paginated, err := resp.Paginated()
	require.NoError(t, err)
	require.NotNil(t, paginated.Pagination)
	assert.Equal(t, 4, paginated.Pagination.Pages)
	assert.Equal(t, 8, paginated.Pagination.Total)

	var items []map[string]string
	require.NoError(t, json.Unmarshal(paginated.Data, &items))
	assert.Len(t, items, 2)
}

func TestResponseErrorEnvelope(t *testing.T) {
	doc := []byte(`{"code": 404, "status": "Not Found"}`)

	var resp Response
	require.NoError(t, json.Unmarshal(doc, &resp))
	assert.False(t, resp.OK())

	_, err := resp.Paginated()
	assert.Error(t, err)
	assert.Error(t, resp.DecodeResult(&struct{}{}))
}
