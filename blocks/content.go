package blocks

import (
	"encoding/json"
	"fmt"
)

// Default block types shipped with Kirby
const (
	TypeCode     = "code"
	TypeGallery  = "gallery"
	TypeHeading  = "heading"
	TypeImage    = "image"
	TypeLine     = "line"
	TypeList     = "list"
	TypeMarkdown = "markdown"
	TypeQuote    = "quote"
	TypeText     = "text"
	TypeVideo    = "video"
)

// CodeContent is the content of a code block
type CodeContent struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// GalleryContent is the content of a gallery block
type GalleryContent struct {
	Images []string `json:"images"`
}

// HeadingContent is the content of a heading block
type HeadingContent struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

// ImageContent is the content of an image block
type ImageContent struct {
	Location string   `json:"location"`
	Image    []string `json:"image"`
	Src      string   `json:"src"`
	Alt      string   `json:"alt"`
	Caption  string   `json:"caption"`
	Link     string   `json:"link"`
	Ratio    string   `json:"ratio"`
	Crop     bool     `json:"crop"`
}

// LineContent is the content of a line block; the block carries no fields
type LineContent struct{}

// ListContent is the content of a list block
type ListContent struct {
	Text string `json:"text"`
}

// MarkdownContent is the content of a markdown block
type MarkdownContent struct {
	Text string `json:"text"`
}

// QuoteContent is the content of a quote block
type QuoteContent struct {
	Text     string `json:"text"`
	Citation string `json:"citation"`
}

// TextContent is the content of a text block
type TextContent struct {
	Text string `json:"text"`
}

// VideoContent is the content of a video block
type VideoContent struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// DecodeContent decodes the block content into the typed struct for the
// block's type. Unknown types decode to a map[string]any so custom
// blocks pass through untouched.
func (b Block) DecodeContent() (any, error) {
	decode := func(v any) (any, error) {
		if err := json.Unmarshal(b.Content, v); err != nil {
			return nil, fmt.Errorf("failed to decode %s block content: %w", b.Type, err)
		}
		return v, nil
	}

	switch b.Type {
	case TypeCode:
		return decode(&CodeContent{})
	case TypeGallery:
		return decode(&GalleryContent{})
	case TypeHeading:
		return decode(&HeadingContent{})
	case TypeImage:
		return decode(&ImageContent{})
	case TypeLine:
		return decode(&LineContent{})
	case TypeList:
		return decode(&ListContent{})
	case TypeMarkdown:
		return decode(&MarkdownContent{})
	case TypeQuote:
		return decode(&QuoteContent{})
	case TypeText:
		return decode(&TextContent{})
	case TypeVideo:
		return decode(&VideoContent{})
	default:
		content := map[string]any{}
		if err := json.Unmarshal(b.Content, &content); err != nil {
			return nil, fmt.Errorf("failed to decode %s block content: %w", b.Type, err)
		}
		return content, nil
	}
}
