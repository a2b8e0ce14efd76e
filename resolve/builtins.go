package resolve

import (
	"fmt"
	"sort"
)

// builtin is a collection operation available on []any values
type builtin func(items []any, args []any) (any, error)

// builtins are the collection methods Kirby chains use most; they operate
// on generic slices so fixture data needs no special types.
var builtins = map[string]builtin{
	"first":    builtinFirst,
	"last":     builtinLast,
	"count":    builtinCount,
	"nth":      builtinNth,
	"limit":    builtinLimit,
	"offset":   builtinOffset,
	"filterBy": builtinFilterBy,
	"sortBy":   builtinSortBy,
}

func builtinFirst(items []any, args []any) (any, error) {
	if err := wantArgs("first", args, 0); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}

func builtinLast(items []any, args []any) (any, error) {
	if err := wantArgs("last", args, 0); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[len(items)-1], nil
}

func builtinCount(items []any, args []any) (any, error) {
	if err := wantArgs("count", args, 0); err != nil {
		return nil, err
	}
	return len(items), nil
}

func builtinNth(items []any, args []any) (any, error) {
	if err := wantArgs("nth", args, 1); err != nil {
		return nil, err
	}
	n, ok := args[0].(int)
	if !ok {
		return nil, fmt.Errorf("nth expects an integer index, got %T", args[0])
	}
	if n < 0 || n >= len(items) {
		return nil, nil
	}
	return items[n], nil
}

func builtinLimit(items []any, args []any) (any, error) {
	if err := wantArgs("limit", args, 1); err != nil {
		return nil, err
	}
	n, ok := args[0].(int)
	if !ok {
		return nil, fmt.Errorf("limit expects an integer, got %T", args[0])
	}
	if n < 0 {
		return nil, fmt.Errorf("limit must not be negative, got %d", n)
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n], nil
}

func builtinOffset(items []any, args []any) (any, error) {
	if err := wantArgs("offset", args, 1); err != nil {
		return nil, err
	}
	n, ok := args[0].(int)
	if !ok {
		return nil, fmt.Errorf("offset expects an integer, got %T", args[0])
	}
	if n < 0 {
		return nil, fmt.Errorf("offset must not be negative, got %d", n)
	}
	if n > len(items) {
		n = len(items)
	}
	return items[n:], nil
}

func builtinFilterBy(items []any, args []any) (any, error) {
	if err := wantArgs("filterBy", args, 2); err != nil {
		return nil, err
	}
	field, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("filterBy expects a field name, got %T", args[0])
	}

	filtered := make([]any, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if equalValues(m[field], args[1]) {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func builtinSortBy(items []any, args []any) (any, error) {
	if len(args) != 1 && len(args) != 2 {
		return nil, fmt.Errorf("sortBy expects 1 or 2 arguments, got %d", len(args))
	}
	field, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("sortBy expects a field name, got %T", args[0])
	}

	descending := false
	if len(args) == 2 {
		dir, ok := args[1].(string)
		if !ok || (dir != "asc" && dir != "desc") {
			return nil, fmt.Errorf("sortBy direction must be \"asc\" or \"desc\", got %v", args[1])
		}
		descending = dir == "desc"
	}

	sorted := make([]any, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := fieldOf(sorted[i], field), fieldOf(sorted[j], field)
		if descending {
			return lessValues(b, a)
		}
		return lessValues(a, b)
	})
	return sorted, nil
}

// wantArgs checks an exact argument count
func wantArgs(name string, args []any, count int) error {
	if len(args) != count {
		return fmt.Errorf("%s expects %d arguments, got %d", name, count, len(args))
	}
	return nil
}

// fieldOf reads a field from a map item; non-map items sort as nil
func fieldOf(item any, field string) any {
	if m, ok := item.(map[string]any); ok {
		return m[field]
	}
	return nil
}

// equalValues compares field values across the numeric types JSON and
// argument parsing produce
func equalValues(a, b any) bool {
	if na, ok := toFloat(a); ok {
		if nb, ok := toFloat(b); ok {
			return na == nb
		}
		return false
	}
	return a == b
}

// lessValues orders field values: numbers numerically, strings
// lexicographically, mixed or missing values stay put
func lessValues(a, b any) bool {
	if na, ok := toFloat(a); ok {
		if nb, ok := toFloat(b); ok {
			return na < nb
		}
	}
	if sa, ok := a.(string); ok {
		if sb, ok := b.(string); ok {
			return sa < sb
		}
	}
	return false
}

// toFloat widens the numeric types seen in fixture data and arguments
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
