package token

// A Scanner matches a token at a fixed position in the input. Scan returns
// the end offset of the match, or -1 when the scanner does not match at
// start. Scanners never skip input: a match always begins exactly at start.
type Scanner struct {
	Kind Kind
	Scan func(src string, start int) int
}

// CharString returns a scanner that matches the exact character sequence s.
func CharString(kind Kind, s string) Scanner {
	return Scanner{
		Kind: kind,
		Scan: func(src string, start int) int {
			end := start + len(s)
			if end > len(src) || src[start:end] != s {
				return -1
			}
			return end
		},
	}
}

// Number returns a scanner for numeric literals:
//
//	digits ('.' digits)? (('e'|'E') ('+'|'-')? digits)?
//
// A trailing '.' or exponent marker without digits is not consumed.
func Number() Scanner {
	return Scanner{
		Kind: Literal,
		Scan: func(src string, start int) int {
			i := start
			n := len(src)
			digits := func() bool {
				from := i
				for i < n && isDigit(src[i]) {
					i++
				}
				return i > from
			}
			if !digits() {
				return -1
			}
			if i < n && src[i] == '.' {
				mark := i
				i++
				if !digits() {
					i = mark
				}
			}
			if i < n && (src[i] == 'e' || src[i] == 'E') {
				mark := i
				i++
				if i < n && (src[i] == '+' || src[i] == '-') {
					i++
				}
				if !digits() {
					i = mark
				}
			}
			return i
		},
	}
}

// Identifier returns a scanner for names: letter (letter|digit)*.
func Identifier() Scanner {
	return Scanner{
		Kind: Symbol,
		Scan: func(src string, start int) int {
			i := start
			n := len(src)
			if i >= n || !isLetter(src[i]) {
				return -1
			}
			i++
			for i < n && (isLetter(src[i]) || isDigit(src[i])) {
				i++
			}
			return i
		},
	}
}

// Spaces returns a scanner for runs of whitespace.
func Spaces() Scanner {
	return Scanner{
		Kind: Whitespace,
		Scan: func(src string, start int) int {
			i := start
			for i < len(src) && isSpace(src[i]) {
				i++
			}
			if i == start {
				return -1
			}
			return i
		},
	}
}

// Infix returns the standard scanner set for infix expressions, highest
// priority first. Literals and identifiers outrank the operator scanners
// so that names shadow operator characters.
func Infix() []Scanner {
	set := []Scanner{
		Number(),
		Identifier(),
	}
	for _, op := range []string{"+", "-", "*", "/", "%", "^", "!"} {
		set = append(set, CharString(Symbol, op))
	}
	set = append(set,
		CharString(OpenParen, "("),
		CharString(CloseParen, ")"),
		CharString(Comma, ","),
		Spaces(),
	)
	return set
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v':
		return true
	default:
		return false
	}
}
