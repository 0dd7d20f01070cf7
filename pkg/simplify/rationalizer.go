package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
)

// rationalizer pushes divisions toward the top of the tree: nested
// fractions become a single Divide, and a product containing fractions
// becomes one fraction of products.
type rationalizer struct {
	expr.Identity
}

func (p *rationalizer) Divide(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	top, bottom := children[0], children[1]
	topNested := top.Kind() == expr.Divide
	bottomNested := bottom.Kind() == expr.Divide
	if !topNested && !bottomNested {
		return p.Identity.Divide(orig, children)
	}

	// (tn/td) / (bn/bd) -> (tn*bd) / (td*bn)
	tn, td := top, (*expr.Expr)(nil)
	if topNested {
		tn, td = top.Child(0), top.Child(1)
	}
	bn, bd := bottom, (*expr.Expr)(nil)
	if bottomNested {
		bn, bd = bottom.Child(0), bottom.Child(1)
	}

	num := tn
	if bd != nil {
		num = p.B.Multiply(tn, bd)
	}
	den := bn
	if td != nil {
		den = p.B.Multiply(td, bn)
	}
	return p.B.Divide(num, den)
}

func (p *rationalizer) Multiply(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	var nums, dens []*expr.Expr
	for _, c := range children {
		if c.Kind() == expr.Divide {
			nums = append(nums, c.Child(0))
			dens = append(dens, c.Child(1))
			continue
		}
		nums = append(nums, c)
	}
	if len(dens) == 0 {
		return p.Identity.Multiply(orig, children)
	}
	num := nums[0]
	if len(nums) > 1 {
		num = p.B.MultiplyN(nums)
	}
	den := dens[0]
	if len(dens) > 1 {
		den = p.B.MultiplyN(dens)
	}
	return p.B.Divide(num, den)
}
