// Package blocks models the content blocks and layouts Kirby emits for
// block and layout fields. A block is a typed JSON fragment; the default
// block types decode to typed content structs and custom types pass
// through as generic maps.
package blocks

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Block is one entry of a blocks field
type Block struct {
	Content  json.RawMessage `json:"content"`
	ID       string          `json:"id"`
	IsHidden bool            `json:"isHidden"`
	Type     string          `json:"type"`
}

// New creates a block of the given type with a generated id. Kirby block
// ids are UUIDs.
func New(typ string, content any) (Block, error) {
	if typ == "" {
		return Block{}, fmt.Errorf("block type must not be empty")
	}

	raw, err := json.Marshal(content)
	if err != nil {
		return Block{}, fmt.Errorf("failed to encode %s block content: %w", typ, err)
	}

	return Block{
		Content: raw,
		ID:      uuid.NewString(),
		Type:    typ,
	}, nil
}

// Blocks is the value of a blocks field
type Blocks []Block

// Visible returns the blocks that are not hidden, in order
func (b Blocks) Visible() Blocks {
	visible := make(Blocks, 0, len(b))
	for _, block := range b {
		if !block.IsHidden {
			visible = append(visible, block)
		}
	}
	return visible
}

// OfType returns the blocks of the given type, in order
func (b Blocks) OfType(typ string) Blocks {
	matched := make(Blocks, 0, len(b))
	for _, block := range b {
		if block.Type == typ {
			matched = append(matched, block)
		}
	}
	return matched
}
