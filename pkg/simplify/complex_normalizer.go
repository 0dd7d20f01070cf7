package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
)

// complexNormalizer canonicalizes the symbolic imaginary unit: products of
// i collapse through i*i = -1, and sums are reordered so real terms come
// before imaginary ones.
type complexNormalizer struct {
	expr.Identity
}

func (p *complexNormalizer) Multiply(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	count := 0
	for _, c := range children {
		if isImaginaryUnit(c) {
			count++
		}
	}
	if count < 2 {
		return p.Identity.Multiply(orig, children)
	}

	rest := make([]*expr.Expr, 0, len(children))
	for _, c := range children {
		if !isImaginaryUnit(c) {
			rest = append(rest, c)
		}
	}
	if count%2 == 1 {
		rest = append(rest, p.B.Symbol("i"))
	}
	if (count/2)%2 == 1 {
		rest = p.mergeMinusOne(rest)
	}
	if len(rest) == 0 {
		return p.B.Literal(number.One())
	}
	return p.B.MultiplyN(canonicalOrder(rest))
}

// mergeMinusOne multiplies a factor list by -1, folding into an existing
// literal factor when there is one.
func (p *complexNormalizer) mergeMinusOne(factors []*expr.Expr) []*expr.Expr {
	for i, c := range factors {
		if c.Kind() == expr.Literal {
			out := append([]*expr.Expr(nil), factors...)
			out[i] = p.B.Literal(c.Num().Neg())
			return out
		}
	}
	return append([]*expr.Expr{p.B.Literal(number.MinusOne())}, factors...)
}

func (p *complexNormalizer) Add(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	// Stable partition into real terms followed by imaginary terms.
	ordered := true
	seenImag := false
	for _, c := range children {
		if hasImaginaryFactor(c) {
			seenImag = true
		} else if seenImag {
			ordered = false
			break
		}
	}
	if ordered {
		return p.Identity.Add(orig, children)
	}

	n := len(children)
	outChildren := make([]*expr.Expr, 0, n)
	outSigns := make([]expr.Sign, 0, n)
	for pass := 0; pass < 2; pass++ {
		wantImag := pass == 1
		for i, c := range children {
			if hasImaginaryFactor(c) == wantImag {
				outChildren = append(outChildren, c)
				outSigns = append(outSigns, orig.Sign(i))
			}
		}
	}
	return p.B.AddSigned(outChildren, outSigns)
}
