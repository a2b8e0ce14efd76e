package query

import (
	"fmt"
	"sort"
)

// Config controls how a Parser validates queries
type Config struct {
	// CustomModels extends the default model set with caller-defined
	// entry points. Entries are case-sensitive, like the defaults.
	CustomModels []string

	// Lenient preserves the looser acceptance of the historical
	// type-level validator: segment names may be empty (double or
	// trailing dots) and may contain any characters other than dots and
	// parentheses. Model gating and parenthesis balancing still apply.
	Lenient bool
}

// Parser validates and decomposes query strings. A Parser is immutable
// after construction and safe for concurrent use.
type Parser struct {
	models  map[string]struct{}
	lenient bool
}

// New creates a Parser that accepts the default models only
func New() *Parser {
	return NewWithConfig(Config{})
}

// NewWithConfig creates a Parser with custom models and strictness
func NewWithConfig(cfg Config) *Parser {
	models := make(map[string]struct{}, len(defaultModels)+len(cfg.CustomModels))
	for _, m := range defaultModels {
		models[m] = struct{}{}
	}
	for _, m := range cfg.CustomModels {
		models[m] = struct{}{}
	}
	return &Parser{models: models, lenient: cfg.Lenient}
}

// Models returns the sorted set of model names this parser accepts
func (p *Parser) Models() []string {
	models := make([]string, 0, len(p.models))
	for m := range p.models {
		models = append(models, m)
	}
	sort.Strings(models)
	return models
}

// Validate reports whether input is a valid query. It is a pure function
// of the input and the configured model set.
func (p *Parser) Validate(input string) bool {
	_, err := p.Parse(input)
	return err == nil
}

// Parse decomposes input into its model name and segment chain. Invalid
// input yields a *ParseError; parsing never panics, whatever the input.
func (p *Parser) Parse(input string) (*Query, error) {
	return p.parse(input, "")
}

// ParseAs parses input and confirms it addresses the given model. The
// model is treated as allowed for this call even when the parser was not
// configured with it.
func (p *Parser) ParseAs(model, input string) (*Query, error) {
	q, err := p.parse(input, model)
	if err != nil {
		return nil, err
	}
	if q.Model != model {
		return nil, &ParseError{Message: fmt.Sprintf("Expected model %q, got %q", model, q.Model), Column: 1}
	}
	return q, nil
}

// parse runs the lexer and walks the token stream
func (p *Parser) parse(input, extraModel string) (*Query, error) {
	tokens, err := newLexer(input, p.lenient).scan()
	if err != nil {
		return nil, err
	}

	c := &cursor{tokens: tokens}

	// A query always begins with exactly one model name.
	first := c.next()
	if first.typ == tokenEOF {
		return nil, &ParseError{Message: "Empty query", Column: 1}
	}
	if first.typ != tokenIdent {
		return nil, &ParseError{Message: "Query must start with a model name", Column: first.column}
	}
	if !p.allowedModel(first.lexeme, extraModel) {
		return nil, &ParseError{Message: fmt.Sprintf("Unknown model %q", first.lexeme), Column: first.column}
	}

	q := &Query{Model: first.lexeme}

	// A call directly after the model, with no separating dot, is
	// absorbed into a method segment named after the model.
	if c.check(tokenParams) {
		params := c.next()
		q.Chain = append(q.Chain, Segment{Kind: SegmentMethod, Name: q.Model, Params: params.lexeme})
	}

	for {
		t := c.next()
		switch t.typ {
		case tokenEOF:
			return q, nil
		case tokenDot:
			seg, err := p.parseSegment(c)
			if err != nil {
				return nil, err
			}
			q.Chain = append(q.Chain, seg)
		case tokenParams:
			return nil, &ParseError{Message: "Unexpected '(' after method call", Column: t.column}
		default:
			return nil, &ParseError{Message: "Expected '.' after method call", Column: t.column}
		}
	}
}

// parseSegment parses one `.property` or `.method(...)` chain step. The
// dot token is already consumed.
func (p *Parser) parseSegment(c *cursor) (Segment, error) {
	if !c.check(tokenIdent) {
		// Empty segment: double dot, trailing dot, or a nameless call
		// like `site.("about")`.
		if !p.lenient {
			return Segment{}, &ParseError{Message: "Expected property or method after '.'", Column: c.peek().column}
		}
		if c.check(tokenParams) {
			params := c.next()
			return Segment{Kind: SegmentMethod, Params: params.lexeme}, nil
		}
		return Segment{Kind: SegmentProperty}, nil
	}

	name := c.next()
	if c.check(tokenParams) {
		params := c.next()
		return Segment{Kind: SegmentMethod, Name: name.lexeme, Params: params.lexeme}, nil
	}
	return Segment{Kind: SegmentProperty, Name: name.lexeme}, nil
}

// allowedModel checks a candidate model name against the configured set
func (p *Parser) allowedModel(name, extra string) bool {
	if extra != "" && name == extra {
		return true
	}
	_, ok := p.models[name]
	return ok
}

// cursor tracks the parser's position in the token stream
type cursor struct {
	tokens  []token
	current int
}

// next consumes and returns the current token. The trailing EOF token is
// never consumed, so calling next past the end stays safe.
func (c *cursor) next() token {
	t := c.tokens[c.current]
	if t.typ != tokenEOF {
		c.current++
	}
	return t
}

// peek returns the current token without consuming it
func (c *cursor) peek() token {
	return c.tokens[c.current]
}

// check checks if the current token is of the given type
func (c *cursor) check(typ tokenType) bool {
	return c.peek().typ == typ
}
