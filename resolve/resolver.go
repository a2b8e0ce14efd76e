// Package resolve evaluates parsed queries against in-memory content
// data. It is the local counterpart of a CMS backend's query engine:
// the caller supplies the content tree as plain maps and slices (decoded
// JSON or YAML fixtures) and the resolver walks query chains over it.
// Resolution is pure over its inputs and performs no I/O.
package resolve

import (
	"fmt"

	"github.com/johannschopplich/go-kql/query"
)

// Method is a caller-registered query method. It receives the value the
// chain has produced so far and the parsed arguments of the call.
type Method func(recv any, args []any) (any, error)

// Resolver evaluates queries against a fixed content tree. Model names
// resolve to top-level keys of the data map, so every model present in
// the data is queryable. Register custom methods before resolving;
// Resolve itself does not mutate the resolver.
type Resolver struct {
	data    map[string]any
	methods map[string]Method
}

// New creates a resolver over the given content tree
func New(data map[string]any) *Resolver {
	return &Resolver{
		data:    data,
		methods: make(map[string]Method),
	}
}

// Register makes a custom method available to query chains. On slice
// receivers, a builtin of the same name wins over a registered method.
func (r *Resolver) Register(name string, method Method) {
	r.methods[name] = method
}

// Models returns the model names the resolver's data exposes
func (r *Resolver) Models() []string {
	models := make([]string, 0, len(r.data))
	for name := range r.data {
		models = append(models, name)
	}
	return models
}

// Resolve walks the query chain over the content tree and returns the
// final value. Missing members and bad arguments yield a *ResolveError;
// resolution never panics on well-typed fixture data.
func (r *Resolver) Resolve(q *query.Query) (any, error) {
	value, ok := r.data[q.Model]
	if !ok {
		return nil, &ResolveError{Model: q.Model, Message: "no data for model"}
	}

	for i, seg := range q.Chain {
		var err error
		switch seg.Kind {
		case query.SegmentMethod:
			// A call absorbed into the model position dispatches with
			// the model's root value as receiver, like any other call.
			value, err = r.call(q.Model, value, seg)
		default:
			value, err = r.property(q.Model, value, seg)
		}
		if err != nil {
			return nil, err
		}
		if value == nil && i < len(q.Chain)-1 {
			next := q.Chain[i+1]
			return nil, &ResolveError{Model: q.Model, Segment: next.Name, Message: "resolved on nil value"}
		}
	}

	return value, nil
}

// property resolves a bare property segment: map-key lookup first, then
// the zero-arg builtin on slices (Kirby chains spell zero-arg calls
// without parentheses, e.g. `children.listed.first`), then registered
// methods.
func (r *Resolver) property(model string, recv any, seg query.Segment) (any, error) {
	if m, ok := recv.(map[string]any); ok {
		if value, ok := m[seg.Name]; ok {
			return value, nil
		}
	}

	if items, ok := recv.([]any); ok {
		if b, ok := builtins[seg.Name]; ok {
			return b(items, nil)
		}
	}

	if method, ok := r.methods[seg.Name]; ok {
		return method(recv, nil)
	}

	return nil, &ResolveError{Model: model, Segment: seg.Name, Message: "unknown property"}
}

// call resolves a method segment: arguments first, then builtin dispatch
// on slices, then registered methods.
func (r *Resolver) call(model string, recv any, seg query.Segment) (any, error) {
	args, err := parseArgs(seg.Params)
	if err != nil {
		return nil, &ResolveError{Model: model, Segment: seg.Name, Message: err.Error()}
	}

	if items, ok := recv.([]any); ok {
		if b, ok := builtins[seg.Name]; ok {
			result, err := b(items, args)
			if err != nil {
				return nil, &ResolveError{Model: model, Segment: seg.Name, Message: err.Error()}
			}
			return result, nil
		}
	}

	if method, ok := r.methods[seg.Name]; ok {
		result, err := method(recv, args)
		if err != nil {
			return nil, &ResolveError{Model: model, Segment: seg.Name, Message: err.Error()}
		}
		return result, nil
	}

	return nil, &ResolveError{Model: model, Segment: seg.Name, Message: fmt.Sprintf("unknown method with %d arguments", len(args))}
}
