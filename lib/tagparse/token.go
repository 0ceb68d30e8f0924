package tagparse

// TokenType classifies the lexical tokens a host tokenizer hands to the
// argument parser. The classes mirror what template tokenizers commonly emit
// for tag arguments; hosts with richer token sets fold them into these.
type TokenType int

const (
	// TokenString is a quoted string literal. Val keeps the surrounding
	// quotes so the captured argument stays valid expression source.
	TokenString TokenType = iota

	// TokenIdent is a bare identifier, including host keywords.
	TokenIdent

	// TokenNumber is a numeric literal.
	TokenNumber

	// TokenSymbol is punctuation: braces, brackets, colons, commas, dots.
	TokenSymbol
)

// Token is a single lexical token from the host tokenizer.
type Token struct {
	Type TokenType
	Val  string
}
