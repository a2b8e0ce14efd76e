package blocks

import "encoding/json"

// Layout is one entry of a layout field: a row of columns with optional
// layout-level attributes
type Layout struct {
	Attrs   json.RawMessage `json:"attrs,omitempty"`
	Columns []LayoutColumn  `json:"columns"`
	ID      string          `json:"id"`
}

// LayoutColumn is one column of a layout row. Width is a fraction like
// "1/2" or "1/3".
type LayoutColumn struct {
	Blocks Blocks `json:"blocks"`
	ID     string `json:"id"`
	Width  string `json:"width"`
}

// AllBlocks returns the blocks of every column in reading order
func (l Layout) AllBlocks() Blocks {
	var all Blocks
	for _, col := range l.Columns {
		all = append(all, col.Blocks...)
	}
	return all
}
