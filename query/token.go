package query

// tokenType identifies the lexical class of a query token
type tokenType int

const (
	tokenEOF tokenType = iota
	tokenIdent
	tokenDot
	tokenParams
)

// String returns a string representation of the token type
func (t tokenType) String() string {
	switch t {
	case tokenEOF:
		return "EOF"
	case tokenIdent:
		return "IDENT"
	case tokenDot:
		return "DOT"
	case tokenParams:
		return "PARAMS"
	default:
		return "UNKNOWN"
	}
}

// token is a single lexical unit of a query string. For tokenParams the
// lexeme holds the raw argument text between the outer parentheses,
// without the parentheses themselves.
type token struct {
	typ    tokenType
	lexeme string
	column int // 1-based rune column where the token starts
}
