package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
)

// numberReducer folds subtrees whose children are all literals into a
// single literal. Operations without an exact representable result are
// left untouched; in particular a literal fraction only folds when the
// quotient is an integer or one operand is already non-integral, so exact
// ratios like 3/4 stay in fraction form.
type numberReducer struct {
	expr.Identity
}

func allLiterals(children []*expr.Expr) bool {
	for _, c := range children {
		if c.Kind() != expr.Literal {
			return false
		}
	}
	return true
}

func (p *numberReducer) Add(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if !allLiterals(children) {
		return p.Identity.Add(orig, children)
	}
	sum := number.Number(number.Zero())
	for i, c := range children {
		if orig.Sign(i) == expr.Minus {
			sum = sum.Sub(c.Num())
		} else {
			sum = sum.Add(c.Num())
		}
	}
	return p.B.Literal(sum)
}

func (p *numberReducer) Multiply(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if !allLiterals(children) {
		return p.Identity.Multiply(orig, children)
	}
	product := number.Number(number.One())
	for _, c := range children {
		product = product.Mul(c.Num())
	}
	return p.B.Literal(product)
}

func (p *numberReducer) Divide(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if !allLiterals(children) {
		return p.Identity.Divide(orig, children)
	}
	top, bottom := children[0].Num(), children[1].Num()
	q, ok := top.Div(bottom)
	if !ok {
		return p.Identity.Divide(orig, children)
	}
	if q.IsInteger() || !top.IsInteger() || !bottom.IsInteger() {
		return p.B.Literal(q)
	}
	return p.Identity.Divide(orig, children)
}

func (p *numberReducer) Modulus(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if !allLiterals(children) {
		return p.Identity.Modulus(orig, children)
	}
	if m, ok := children[0].Num().Mod(children[1].Num()); ok {
		return p.B.Literal(m)
	}
	return p.Identity.Modulus(orig, children)
}

func (p *numberReducer) Power(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if !allLiterals(children) {
		return p.Identity.Power(orig, children)
	}
	if r, ok := children[0].Num().Pow(children[1].Num()); ok {
		return p.B.Literal(r)
	}
	return p.Identity.Power(orig, children)
}

func (p *numberReducer) Negate(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if children[0].Kind() != expr.Literal {
		return p.Identity.Negate(orig, children)
	}
	return p.B.Literal(children[0].Num().Neg())
}

func (p *numberReducer) Factorial(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if children[0].Kind() != expr.Literal {
		return p.Identity.Factorial(orig, children)
	}
	if f, ok := children[0].Num().Factorial(); ok {
		return p.B.Literal(f)
	}
	return p.Identity.Factorial(orig, children)
}
