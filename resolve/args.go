package resolve

import (
	"fmt"
	"strconv"
	"strings"
)

// parseArgs turns the raw parameter text of a method segment into
// argument values. Arguments are split on top-level commas; commas inside
// quoted strings or nested parentheses do not split. Supported literals:
// single- or double-quoted strings, integers, floats, true, false, null.
func parseArgs(params string) ([]any, error) {
	if strings.TrimSpace(params) == "" {
		return nil, nil
	}

	parts, err := splitArgs(params)
	if err != nil {
		return nil, err
	}

	args := make([]any, 0, len(parts))
	for _, part := range parts {
		arg, err := parseLiteral(part)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// splitArgs splits parameter text on top-level commas
func splitArgs(params string) ([]string, error) {
	var parts []string
	var current strings.Builder
	depth := 0
	var quote rune // active quote character, 0 when outside strings

	for _, r := range params {
		switch {
		case quote != 0:
			current.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
			current.WriteRune(r)
		case r == '(':
			depth++
			current.WriteRune(r)
		case r == ')':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("unbalanced ')' in arguments %q", params)
			}
			current.WriteRune(r)
		case r == ',' && depth == 0:
			parts = append(parts, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated string in arguments %q", params)
	}
	if depth != 0 {
		return nil, fmt.Errorf("unbalanced '(' in arguments %q", params)
	}

	parts = append(parts, current.String())
	return parts, nil
}

// parseLiteral parses one trimmed argument into its Go value
func parseLiteral(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty argument")
	}

	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return text[1 : len(text)-1], nil
		}
	}

	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "null":
		return nil, nil
	}

	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return int(i), nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return f, nil
	}

	return nil, fmt.Errorf("unsupported argument literal %q", text)
}
