package kql

// Request is the body of a KQL query request. Select and Pagination are
// optional and omitted from the wire form when nil.
type Request struct {
	Query      string      `json:"query"`
	Select     *Select     `json:"select,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination narrows a request to one page of a collection result
type Pagination struct {
	Page  int `json:"page,omitempty"`
	Limit int `json:"limit,omitempty"`
}

// NewRequest creates a request for the given query string
func NewRequest(query string) *Request {
	return &Request{Query: query}
}
