package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
)

// complexSplitter rewrites a non-real literal a+bi into
// a + b*i with a symbolic i, so every later pass can treat the imaginary
// unit structurally.
type complexSplitter struct {
	expr.Identity
}

func (p *complexSplitter) Literal(orig *expr.Expr, _ []*expr.Expr) *expr.Expr {
	n := orig.Num()
	if n.IsReal() {
		return orig
	}
	re := p.B.Literal(n.Real())
	im := p.B.MultiplyN([]*expr.Expr{p.B.Literal(n.Imag()), p.B.Symbol("i")})
	return p.B.Add(re, im)
}
