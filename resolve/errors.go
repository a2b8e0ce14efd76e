package resolve

import "fmt"

// ResolveError describes why a query could not be evaluated against the
// resolver's data. Like parse failures, resolution failures are expected
// outcomes and travel as error values.
type ResolveError struct {
	Model   string
	Segment string // the segment that failed, or the model name itself
	Message string
}

// Error implements the error interface
func (e ResolveError) Error() string {
	if e.Segment == "" {
		return fmt.Sprintf("%s: %s", e.Model, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Model, e.Segment, e.Message)
}
