package blocks

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlock(t *testing.T) {
	block, err := New(TypeText, TextContent{Text: "<p>Hello</p>"})
	require.NoError(t, err)

	assert.Equal(t, TypeText, block.Type)
	assert.False(t, block.IsHidden)

	_, err = uuid.Parse(block.ID)
	assert.NoError(t, err, "block id should be a UUID")

	content, err := block.DecodeContent()
	require.NoError(t, err)
	assert.Equal(t, &TextContent{Text: "<p>Hello</p>"}, content)
}

func TestNewBlockValidation(t *testing.T) {
	_, err := New("", nil)
	assert.Error(t, err)

	_, err = New(TypeText, func() {})
	assert.Error(t, err)
}

func TestNewBlockUniqueIDs(t *testing.T) {
	a, err := New(TypeLine, LineContent{})
	require.NoError(t, err)
	b, err := New(TypeLine, LineContent{})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestBlocksVisible(t *testing.T) {
	all := Blocks{
		{ID: "a", Type: TypeText},
		{ID: "b", Type: TypeText, IsHidden: true},
		{ID: "c", Type: TypeImage},
	}

	visible := all.Visible()
	require.Len(t, visible, 2)
	assert.Equal(t, "a", visible[0].ID)
	assert.Equal(t, "c", visible[1].ID)
}

func TestBlocksOfType(t *testing.T) {
	all := Blocks{
		{ID: "a", Type: TypeText},
		{ID: "b", Type: TypeImage},
		{ID: "c", Type: TypeText},
	}

	texts := all.OfType(TypeText)
	require.Len(t, texts, 2)
	assert.Equal(t, "a", texts[0].ID)
	assert.Equal(t, "c", texts[1].ID)
	assert.Empty(t, all.OfType(TypeVideo))
}

func TestBlocksFieldDecode(t *testing.T) {
	doc := []byte(`[
		{
			"content": {"level": "h2", "text": "About us"},
			"id": "6243b981-34e0-4bcd-8d1d-e0d177d16740",
			"isHidden": false,
			"type": "heading"
		},
		{
			"content": {"text": "<p>Welcome</p>"},
			"id": "9b2c0b1e-7dd0-4d5e-9f6f-1be6e09e2c39",
			"isHidden": true,
			"type": "text"
		}
	]`)

	var field Blocks
	require.NoError(t, json.Unmarshal(doc, &field))
	require.Len(t, field, 2)

	content, err := field[0].DecodeContent()
	require.NoError(t, err)
	heading, ok := content.(*HeadingContent)
	require.True(t, ok)
	assert.Equal(t, "h2", heading.Level)
	assert.Equal(t, "About us", heading.Text)

	assert.Len(t, field.Visible(), 1)
}
