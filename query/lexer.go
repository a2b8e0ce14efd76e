package query

import "fmt"

// lexer tokenizes a single query string
type lexer struct {
	source  []rune // query as runes so columns stay accurate for Unicode input
	start   int    // start position of current token
	current int    // current position in source
	lenient bool   // lenient mode accepts the looser historical segment charset
	tokens  []token
}

// newLexer creates a new lexer for the given query string
func newLexer(input string, lenient bool) *lexer {
	return &lexer{
		source:  []rune(input),
		lenient: lenient,
		tokens:  make([]token, 0, 8),
	}
}

// scan tokenizes the whole query. Queries are single-line values, so
// scanning stops at the first error rather than collecting a list.
func (l *lexer) scan() ([]token, error) {
	for !l.isAtEnd() {
		l.start = l.current
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.tokens = append(l.tokens, token{typ: tokenEOF, column: l.current + 1})
	return l.tokens, nil
}

// scanToken scans a single token
func (l *lexer) scanToken() error {
	r := l.advance()

	switch r {
	case '.':
		l.addToken(tokenDot)
		return nil
	case '(':
		return l.scanParams()
	case ')':
		return &ParseError{Message: "Unexpected ')'", Column: l.start + 1}
	default:
		return l.scanIdentifier(r)
	}
}

// scanParams consumes a balanced parenthesis span into a params token.
// Nesting is tracked with a depth counter; everything inside the span,
// quotes included, is opaque argument text.
func (l *lexer) scanParams() error {
	depth := 1
	for !l.isAtEnd() {
		switch l.advance() {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				l.tokens = append(l.tokens, token{
					typ:    tokenParams,
					lexeme: string(l.source[l.start+1 : l.current-1]),
					column: l.start + 1,
				})
				return nil
			}
		}
	}
	return &ParseError{Message: "Unterminated method call", Column: l.start + 1}
}

// scanIdentifier scans a property or method name. Strict mode enforces the
// [A-Za-z_][A-Za-z0-9_]* charset; lenient mode takes any run that is free
// of dots and parentheses, matching what the historical type-level
// validator let through.
func (l *lexer) scanIdentifier(first rune) error {
	if l.lenient {
		for !l.isAtEnd() && !isStructural(l.peek()) {
			l.advance()
		}
		l.addToken(tokenIdent)
		return nil
	}

	if !isAlpha(first) {
		return &ParseError{Message: fmt.Sprintf("Unexpected character %q", first), Column: l.start + 1}
	}
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	l.addToken(tokenIdent)
	return nil
}

// Helper methods

// isAtEnd checks if we've reached the end of the query
func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// advance consumes and returns the current rune
func (l *lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	r := l.source[l.current]
	l.current++
	return r
}

// peek returns the current rune without consuming it
func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

// addToken adds a token spanning from start to the current position
func (l *lexer) addToken(typ tokenType) {
	l.tokens = append(l.tokens, token{
		typ:    typ,
		lexeme: string(l.source[l.start:l.current]),
		column: l.start + 1,
	})
}

// isStructural checks if a rune separates query segments
func isStructural(r rune) bool {
	return r == '.' || r == '(' || r == ')'
}

// isAlpha checks if a rune starts an identifier
func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

// isAlphaNumeric checks if a rune continues an identifier
func isAlphaNumeric(r rune) bool {
	return isAlpha(r) || (r >= '0' && r <= '9')
}
