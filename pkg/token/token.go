// Package token implements lexical analysis for infix expressions.
//
// Tokenization is driven by an ordered scanner set: at each position the
// tokenizer tries every scanner in priority order and the first match wins.
// Priority matters because operator spellings overlap and because symbol
// names may shadow operator characters.
package token

// Kind classifies a lexical token.
type Kind uint8

const (
	// Literal is a numeric literal such as 42, 3.14 or 1e-10.
	Literal Kind = iota
	// Symbol is an identifier or an operator spelling.
	Symbol
	// OpenParen is "(".
	OpenParen
	// CloseParen is ")".
	CloseParen
	// Comma separates function arguments.
	Comma
	// Whitespace tokens are kept by the tokenizer and discarded by the
	// parser, so token positions stay aligned with the source.
	Whitespace
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "(literal)"
	case Symbol:
		return "(symbol)"
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case Comma:
		return ","
	case Whitespace:
		return "(whitespace)"
	default:
		return "(unknown)"
	}
}

// Token is a value object produced by the tokenizer.
type Token struct {
	Kind Kind
	Text string
	Pos  int // byte offset in the original input
}
