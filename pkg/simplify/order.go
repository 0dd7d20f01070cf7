package simplify

import (
	"sort"

	"github.com/gocas/gocas/pkg/expr"
)

// childClass buckets children for canonical ordering: literals first
// (numeric order), then plain symbols (lexicographic), then composites in
// their input order. Passes that reorder children use this to stay
// deterministic.
func childClass(e *expr.Expr) int {
	switch {
	case e.Kind() == expr.Literal:
		return 0
	case e.Kind() == expr.Symbol && e.NumChildren() == 0:
		return 1
	default:
		return 2
	}
}

// canonicalOrder sorts children into the canonical bucket order. The sort
// is stable, so composites keep their relative input order.
func canonicalOrder(children []*expr.Expr) []*expr.Expr {
	out := append([]*expr.Expr(nil), children...)
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := childClass(out[i]), childClass(out[j])
		if ci != cj {
			return ci < cj
		}
		switch ci {
		case 0:
			return out[i].Num().Cmp(out[j].Num()) < 0
		case 1:
			return out[i].Name() < out[j].Name()
		default:
			return false
		}
	})
	return out
}

// isImaginaryUnit reports whether e is the bare symbol i.
func isImaginaryUnit(e *expr.Expr) bool {
	return e.IsSymbolNamed("i")
}

// hasImaginaryFactor reports whether e is i itself or a product with an
// i factor.
func hasImaginaryFactor(e *expr.Expr) bool {
	if isImaginaryUnit(e) {
		return true
	}
	if e.Kind() != expr.Multiply {
		return false
	}
	for _, c := range e.Children() {
		if isImaginaryUnit(c) {
			return true
		}
	}
	return false
}
