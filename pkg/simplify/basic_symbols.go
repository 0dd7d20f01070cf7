package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
)

// symbolAliases maps alternate spellings of named constants to their
// canonical symbol names.
var symbolAliases = map[string]string{
	"Pi": "pi",
	"PI": "pi",
}

// basicSymbols canonicalizes zero-argument symbolic constants so the later
// passes only ever see one spelling.
type basicSymbols struct {
	expr.Identity
}

func (p *basicSymbols) Symbol(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	if len(children) == 0 {
		if canonical, ok := symbolAliases[orig.Name()]; ok {
			return p.B.Symbol(canonical)
		}
	}
	return p.Identity.Symbol(orig, children)
}
