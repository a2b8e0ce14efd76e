package query

import "fmt"

// ParseError describes why a query string was rejected. Malformed queries
// are an expected outcome at the boundary of user and config input, so
// they are reported as error values, never as panics.
type ParseError struct {
	Message string
	Column  int // 1-based rune offset into the query string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("query:%d: %s", e.Column, e.Message)
}
