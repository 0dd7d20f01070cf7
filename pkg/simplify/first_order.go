package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
)

// firstOrderBasic applies the first-order identities:
// x+0 -> x, x*1 -> x, x*0 -> 0, x/1 -> x,
// x^0 -> 1, x^1 -> x, 0^x -> 0 (positive x), 1^x -> 1.
type firstOrderBasic struct {
	expr.Identity
}

func isLiteralZero(e *expr.Expr) bool {
	return e.Kind() == expr.Literal && e.Num().IsZero()
}

func isLiteralOne(e *expr.Expr) bool {
	return e.Kind() == expr.Literal && e.Num().IsOne()
}

func (p *firstOrderBasic) Add(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	zeros := 0
	for _, c := range children {
		if isLiteralZero(c) {
			zeros++
		}
	}
	if zeros == 0 {
		return p.Identity.Add(orig, children)
	}
	if zeros == len(children) {
		return p.B.Literal(number.Zero())
	}
	outChildren := make([]*expr.Expr, 0, len(children)-zeros)
	outSigns := make([]expr.Sign, 0, len(children)-zeros)
	for i, c := range children {
		if isLiteralZero(c) {
			continue
		}
		outChildren = append(outChildren, c)
		outSigns = append(outSigns, orig.Sign(i))
	}
	return p.B.AddSigned(outChildren, outSigns)
}

func (p *firstOrderBasic) Multiply(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	ones := 0
	for _, c := range children {
		if isLiteralZero(c) {
			return p.B.Literal(number.Zero())
		}
		if isLiteralOne(c) {
			ones++
		}
	}
	if ones == 0 {
		return p.Identity.Multiply(orig, children)
	}
	if ones == len(children) {
		return p.B.Literal(number.One())
	}
	out := make([]*expr.Expr, 0, len(children)-ones)
	for _, c := range children {
		if isLiteralOne(c) {
			continue
		}
		out = append(out, c)
	}
	return p.B.MultiplyN(out)
}

func (p *firstOrderBasic) Divide(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if isLiteralOne(children[1]) {
		return children[0]
	}
	return p.Identity.Divide(orig, children)
}

func (p *firstOrderBasic) Power(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	base, exponent := children[0], children[1]
	switch {
	case isLiteralZero(exponent) && !isLiteralZero(base):
		return p.B.Literal(number.One())
	case isLiteralOne(exponent):
		return base
	case isLiteralOne(base):
		return p.B.Literal(number.One())
	case isLiteralZero(base) &&
		exponent.Kind() == expr.Literal && exponent.Num().IsPositiveReal():
		return p.B.Literal(number.Zero())
	}
	return p.Identity.Power(orig, children)
}
