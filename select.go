package kql

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Select is the field-selection tree of a request. The wire format allows
// two shapes: a plain list of field names (`["title", "text"]`) or a map
// from field name to Selection (`{"title": true, "text": "page.text"}`).
// Exactly one of Fields and Map is set; marshalling preserves the shape
// the document used.
type Select struct {
	Fields []string
	Map    map[string]Selection
}

// SelectFields creates a list-form selection
func SelectFields(fields ...string) *Select {
	return &Select{Fields: fields}
}

// SelectMap creates a map-form selection
func SelectMap(m map[string]Selection) *Select {
	return &Select{Map: m}
}

// MarshalJSON implements json.Marshaler for Select
func (s Select) MarshalJSON() ([]byte, error) {
	if s.Fields != nil {
		return json.Marshal(s.Fields)
	}
	return json.Marshal(s.Map)
}

// UnmarshalJSON implements json.Unmarshaler for Select
func (s *Select) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("select: empty value")
	}

	switch trimmed[0] {
	case '[':
		s.Map = nil
		return json.Unmarshal(data, &s.Fields)
	case '{':
		s.Fields = nil
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		s.Map = make(map[string]Selection, len(raw))
		for name, value := range raw {
			var sel Selection
			if err := json.Unmarshal(value, &sel); err != nil {
				return fmt.Errorf("select field %q: %w", name, err)
			}
			s.Map[name] = sel
		}
		return nil
	default:
		return fmt.Errorf("select: expected array or object, got %s", preview(trimmed))
	}
}

// FieldNames returns the selected field names in sorted order, whichever
// shape the selection uses
func (s *Select) FieldNames() []string {
	if s.Fields != nil {
		names := make([]string, len(s.Fields))
		copy(names, s.Fields)
		sort.Strings(names)
		return names
	}
	names := make([]string, 0, len(s.Map))
	for name := range s.Map {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SelectionKind identifies the wire shape of a Selection
type SelectionKind int

const (
	// SelectionInclude is the boolean form: include the field as-is
	SelectionInclude SelectionKind = iota
	// SelectionQuery is the string form: a sub-query resolved for the field
	SelectionQuery
	// SelectionRequest is the object form: a nested request with its own
	// query, select and pagination
	SelectionRequest
)

// Selection is one value in a map-form Select. It is a union of the three
// shapes the wire format permits; Kind tells which member is meaningful.
type Selection struct {
	Kind    SelectionKind
	Include bool
	Query   string
	Request *Request
}

// Include creates a boolean selection
func Include(include bool) Selection {
	return Selection{Kind: SelectionInclude, Include: include}
}

// SubQuery creates a string sub-query selection
func SubQuery(query string) Selection {
	return Selection{Kind: SelectionQuery, Query: query}
}

// Nested creates a nested-request selection
func Nested(req *Request) Selection {
	return Selection{Kind: SelectionRequest, Request: req}
}

// MarshalJSON implements json.Marshaler for Selection
func (s Selection) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case SelectionInclude:
		return json.Marshal(s.Include)
	case SelectionQuery:
		return json.Marshal(s.Query)
	case SelectionRequest:
		return json.Marshal(s.Request)
	default:
		return nil, fmt.Errorf("selection: unknown kind %d", s.Kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler for Selection. Booleans,
// strings and objects are the supported wire shapes; numbers, arrays and
// null are rejected.
func (s *Selection) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("selection: empty value")
	}

	switch trimmed[0] {
	case 't', 'f':
		s.Kind = SelectionInclude
		return json.Unmarshal(data, &s.Include)
	case '"':
		s.Kind = SelectionQuery
		return json.Unmarshal(data, &s.Query)
	case '{':
		s.Kind = SelectionRequest
		s.Request = &Request{}
		return json.Unmarshal(data, s.Request)
	default:
		return fmt.Errorf("selection must be a boolean, string or object, got %s", preview(trimmed))
	}
}

// preview shortens a raw JSON value for error messages
func preview(data []byte) string {
	const max = 24
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
