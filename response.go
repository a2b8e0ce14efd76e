package kql

import (
	"encoding/json"
	"fmt"
)

// Response is the envelope a KQL execution service returns. Result holds
// the raw payload; its shape depends on the query, so it stays undecoded
// until the caller knows what to expect.
type Response struct {
	Code   int             `json:"code"`
	Status string          `json:"status"`
	Result json.RawMessage `json:"result,omitempty"`
}

// OK reports whether the envelope carries a successful status code
func (r *Response) OK() bool {
	return r.Code >= 200 && r.Code < 300
}

// PageInfo describes one page of a paginated collection result
type PageInfo struct {
	Page   int `json:"page"`
	Pages  int `json:"pages"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
	Total  int `json:"total"`
}

// PaginatedData is the result shape of a paginated query: the page's
// items plus the pagination block
type PaginatedData struct {
	Data       json.RawMessage `json:"data"`
	Pagination *PageInfo       `json:"pagination,omitempty"`
}

// Paginated decodes the response result as a paginated collection
func (r *Response) Paginated() (*PaginatedData, error) {
	if len(r.Result) == 0 {
		return nil, fmt.Errorf("response has no result")
	}
	var data PaginatedData
	if err := json.Unmarshal(r.Result, &data); err != nil {
		return nil, fmt.Errorf("failed to decode paginated result: %w", err)
	}
	return &data, nil
}

// DecodeResult decodes the response result into v
func (r *Response) DecodeResult(v any) error {
	if len(r.Result) == 0 {
		return fmt.Errorf("response has no result")
	}
	if err := json.Unmarshal(r.Result, v); err != nil {
		return fmt.Errorf("failed to decode result: %w", err)
	}
	return nil
}
