package number

import (
	"math/big"
	"strings"
)

// DefaultSigFigs is the default cap on rendered decimal digits.
const DefaultSigFigs = 100

// maxLiteralLen caps the accepted length of a numeric literal. Longer
// literals are rejected as a format error rather than parsed.
const maxLiteralLen = 10000

// Formatter parses and renders numeric literals.
//
// Parsing accepts the grammar
//
//	digits ('.' digits)? (('e'|'E') ('+'|'-')? digits)?
//
// with no leading sign; unary minus belongs to the expression layer.
// Rendering produces plain decimal strings, exact when the value has a
// terminating decimal expansion and rounded to SigFigs decimal digits
// otherwise.
type Formatter struct {
	SigFigs int
}

// NewFormatter returns a formatter rendering at most sigFigs decimal digits.
func NewFormatter(sigFigs int) *Formatter {
	if sigFigs <= 0 {
		sigFigs = DefaultSigFigs
	}
	return &Formatter{SigFigs: sigFigs}
}

// Format parses a numeric literal. It returns false for anything outside
// the literal grammar, including empty input and oversized literals.
func (f *Formatter) Format(text string) (Number, bool) {
	if len(text) == 0 || len(text) > maxLiteralLen {
		return nil, false
	}
	if !validLiteral(text) {
		return nil, false
	}
	r, ok := new(big.Rat).SetString(text)
	if !ok {
		return nil, false
	}
	return FromRat(r), true
}

// FormatReal renders the real part of n.
func (f *Formatter) FormatReal(n Number) string {
	c := toComplex(n.Real())
	return f.formatRat(c.re)
}

// FormatImag renders the imaginary part of n.
func (f *Formatter) FormatImag(n Number) string {
	c := toComplex(n.Imag())
	return f.formatRat(c.re)
}

// FormatNumber renders a full complex value as "a", "bi" or "a±bi",
// with the special cases 1i -> "i" and -1i -> "-i".
func (f *Formatter) FormatNumber(n Number) string {
	realPart := f.FormatReal(n)
	imagPart := f.FormatImag(n)

	switch imagPart {
	case "0":
		return realPart
	case "1":
		imagPart = "i"
	case "-1":
		imagPart = "-i"
	default:
		imagPart += "i"
	}
	if realPart == "0" {
		return imagPart
	}
	if !strings.HasPrefix(imagPart, "-") {
		return realPart + "+" + imagPart
	}
	return realPart + imagPart
}

// formatRat renders a real rational in decimal.
func (f *Formatter) formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}
	if digits, ok := terminatingDigits(r); ok && digits <= f.SigFigs {
		return trimDecimal(r.FloatString(digits))
	}
	return trimDecimal(r.FloatString(f.SigFigs))
}

// terminatingDigits reports whether r has a terminating decimal expansion
// and, if so, how many digits after the point it needs.
func terminatingDigits(r *big.Rat) (int, bool) {
	den := new(big.Int).Set(r.Denom())
	two := big.NewInt(2)
	five := big.NewInt(5)
	rem := new(big.Int)
	count2, count5 := 0, 0
	for {
		q, m := new(big.Int).QuoRem(den, two, rem)
		if m.Sign() != 0 {
			break
		}
		den = q
		count2++
	}
	for {
		q, m := new(big.Int).QuoRem(den, five, rem)
		if m.Sign() != 0 {
			break
		}
		den = q
		count5++
	}
	if den.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}
	if count5 > count2 {
		return count5, true
	}
	return count2, true
}

// trimDecimal removes trailing zeros (and a trailing point) from a
// fixed-point decimal string.
func trimDecimal(s string) string {
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// validLiteral checks the literal grammar without allocating.
func validLiteral(s string) bool {
	i := 0
	n := len(s)
	digits := func() bool {
		start := i
		for i < n && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		return i > start
	}
	if !digits() {
		return false
	}
	if i < n && s[i] == '.' {
		i++
		if !digits() {
			return false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if !digits() {
			return false
		}
	}
	return i == n
}
