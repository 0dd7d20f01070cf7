package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
)

// sizeOneArray collapses single-child sums and products to the child
// itself. A negatively-signed singleton sum becomes an explicit negation.
type sizeOneArray struct {
	expr.Identity
}

func (p *sizeOneArray) Add(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if len(children) != 1 {
		return p.Identity.Add(orig, children)
	}
	if orig.Sign(0) == expr.Minus {
		return p.B.Negate(children[0])
	}
	return children[0]
}

func (p *sizeOneArray) Multiply(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if len(children) != 1 {
		return p.Identity.Multiply(orig, children)
	}
	return children[0]
}

// selfNesting flattens the associative operators: a sum nested in a sum is
// inlined with its signs composed, and a product nested in a product is
// inlined directly.
type selfNesting struct {
	expr.Identity
}

func (p *selfNesting) Add(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	nested := false
	for _, c := range children {
		if c.Kind() == expr.Add {
			nested = true
			break
		}
	}
	if !nested {
		return p.Identity.Add(orig, children)
	}

	var outChildren []*expr.Expr
	var outSigns []expr.Sign
	for i, c := range children {
		outer := orig.Sign(i)
		if c.Kind() != expr.Add {
			outChildren = append(outChildren, c)
			outSigns = append(outSigns, outer)
			continue
		}
		for j, inner := range c.Children() {
			outChildren = append(outChildren, inner)
			outSigns = append(outSigns, outer*c.Sign(j))
		}
	}
	return p.B.AddSigned(outChildren, outSigns)
}

func (p *selfNesting) Multiply(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	nested := false
	for _, c := range children {
		if c.Kind() == expr.Multiply {
			nested = true
			break
		}
	}
	if !nested {
		return p.Identity.Multiply(orig, children)
	}

	var out []*expr.Expr
	for _, c := range children {
		if c.Kind() == expr.Multiply {
			out = append(out, c.Children()...)
			continue
		}
		out = append(out, c)
	}
	return p.B.MultiplyN(out)
}
