package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
)

// negatives canonicalizes negation: double negations cancel, negated
// literals fold into the literal, negation of a product folds into its
// literal factor, explicit negations inside a sum fold into the sign
// vector, and an all-negative sum becomes a negated all-positive sum.
type negatives struct {
	expr.Identity
}

func (p *negatives) Negate(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	child := children[0]
	switch child.Kind() {
	case expr.Negate:
		return child.Child(0)
	case expr.Literal:
		return p.B.Literal(child.Num().Neg())
	case expr.Multiply:
		for i, f := range child.Children() {
			if f.Kind() == expr.Literal {
				out := append([]*expr.Expr(nil), child.Children()...)
				out[i] = p.B.Literal(f.Num().Neg())
				return p.B.MultiplyN(out)
			}
		}
	}
	return p.Identity.Negate(orig, children)
}

func (p *negatives) Add(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	changed := false
	outChildren := make([]*expr.Expr, len(children))
	outSigns := make([]expr.Sign, len(children))
	for i, c := range children {
		sign := orig.Sign(i)
		if c.Kind() == expr.Negate {
			c = c.Child(0)
			sign = -sign
			changed = true
		}
		outChildren[i] = c
		outSigns[i] = sign
	}

	allNegative := true
	for _, s := range outSigns {
		if s != expr.Minus {
			allNegative = false
			break
		}
	}
	if allNegative {
		for i := range outSigns {
			outSigns[i] = expr.Plus
		}
		return p.B.Negate(p.B.AddSigned(outChildren, outSigns))
	}
	if !changed {
		return p.Identity.Add(orig, children)
	}
	return p.B.AddSigned(outChildren, outSigns)
}

func (p *negatives) Multiply(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	flips := 0
	outChildren := make([]*expr.Expr, len(children))
	for i, c := range children {
		if c.Kind() == expr.Negate {
			c = c.Child(0)
			flips++
		}
		outChildren[i] = c
	}
	if flips == 0 {
		return p.Identity.Multiply(orig, children)
	}
	product := p.B.MultiplyN(outChildren)
	if flips%2 == 1 {
		return p.Negate(p.B.Negate(product), []*expr.Expr{product})
	}
	return product
}
