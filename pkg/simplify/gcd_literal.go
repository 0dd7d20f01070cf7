package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
)

// gcdLiteral folds the literal children of sums and products into a single
// canonicalized literal, and reduces literal fractions by their GCD.
type gcdLiteral struct {
	expr.Identity
}

func (p *gcdLiteral) Add(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	literals := 0
	for _, c := range children {
		if c.Kind() == expr.Literal {
			literals++
		}
	}
	if literals < 2 {
		return p.Identity.Add(orig, children)
	}

	sum := number.Number(number.Zero())
	rest := make([]*expr.Expr, 0, len(children)-literals+1)
	restSigns := make([]expr.Sign, 0, cap(rest))
	for i, c := range children {
		if c.Kind() != expr.Literal {
			rest = append(rest, c)
			restSigns = append(restSigns, orig.Sign(i))
			continue
		}
		if orig.Sign(i) == expr.Minus {
			sum = sum.Sub(c.Num())
		} else {
			sum = sum.Add(c.Num())
		}
	}

	// The folded literal leads, carrying its sign in the sign vector so
	// the literal payload stays non-negative.
	sign := expr.Plus
	if sum.IsReal() && !sum.IsPositiveReal() && !sum.IsZero() {
		sign = expr.Minus
		sum = sum.Neg()
	}
	outChildren := append([]*expr.Expr{p.B.Literal(sum)}, rest...)
	outSigns := append([]expr.Sign{sign}, restSigns...)
	return p.B.AddSigned(outChildren, outSigns)
}

func (p *gcdLiteral) Multiply(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	literals := 0
	for _, c := range children {
		if c.Kind() == expr.Literal {
			literals++
		}
	}
	if literals < 2 {
		return p.Identity.Multiply(orig, children)
	}

	product := number.Number(number.One())
	rest := make([]*expr.Expr, 0, len(children)-literals+1)
	for _, c := range children {
		if c.Kind() == expr.Literal {
			product = product.Mul(c.Num())
			continue
		}
		rest = append(rest, c)
	}
	outChildren := append([]*expr.Expr{p.B.Literal(product)}, rest...)
	return p.B.MultiplyN(outChildren)
}

func (p *gcdLiteral) Divide(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	top, bottom := children[0], children[1]
	if top.Kind() != expr.Literal || bottom.Kind() != expr.Literal {
		return p.Identity.Divide(orig, children)
	}
	tn, bn := top.Num(), bottom.Num()

	// Canonical form keeps the denominator positive.
	if bn.IsReal() && !bn.IsPositiveReal() && !bn.IsZero() {
		tn = tn.Neg()
		bn = bn.Neg()
		top = p.B.Literal(tn)
		bottom = p.B.Literal(bn)
	}

	g, ok := tn.GCD(bn)
	if ok && !g.IsOne() {
		rt, okT := tn.Div(g)
		rb, okB := bn.Div(g)
		if okT && okB {
			return p.B.Divide(p.B.Literal(rt), p.B.Literal(rb))
		}
	}
	if top == children[0] && bottom == children[1] {
		return p.Identity.Divide(orig, children)
	}
	return p.B.Divide(top, bottom)
}
