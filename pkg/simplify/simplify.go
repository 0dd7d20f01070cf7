// Package simplify implements the algebraic rewriting passes and the
// driver that composes them.
//
// Every pass is a [expr.Rewriter] built on expr.Identity: it overrides the
// node kinds it rewrites and inherits the post-order rebuild for the rest.
// Passes that cannot apply their rule leave the node unchanged, so the
// driver is total on well-formed trees.
package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
)

// DefaultMaxPasses bounds the fixed-point loop. A fixed point is not
// guaranteed to exist for every input, so the iteration must be capped.
const DefaultMaxPasses = 20

// Simplifier owns the pass pipeline. It holds only shared immutable state
// and is safe for concurrent use.
type Simplifier struct {
	maxPasses int

	basicSymbols      expr.Rewriter
	complexSplitter   expr.Rewriter
	rationalizer      expr.Rewriter
	complexNormalizer expr.Rewriter
	gcdLiteral        expr.Rewriter
	sizeOneArray      expr.Rewriter
	selfNesting       expr.Rewriter
	negatives         expr.Rewriter
	firstOrderBasic   expr.Rewriter
	numberReducer     expr.Rewriter
	complexExpander   expr.Rewriter
}

// NewSimplifier builds a pipeline around the given Builder. maxPasses
// bounds the inner fixed-point loop; values < 1 select the default.
func NewSimplifier(b *expr.Builder, maxPasses int) *Simplifier {
	if maxPasses < 1 {
		maxPasses = DefaultMaxPasses
	}
	id := expr.Identity{B: b}
	return &Simplifier{
		maxPasses:         maxPasses,
		basicSymbols:      &basicSymbols{Identity: id},
		complexSplitter:   &complexSplitter{Identity: id},
		rationalizer:      &rationalizer{Identity: id},
		complexNormalizer: &complexNormalizer{Identity: id},
		gcdLiteral:        &gcdLiteral{Identity: id},
		sizeOneArray:      &sizeOneArray{Identity: id},
		selfNesting:       &selfNesting{Identity: id},
		negatives:         &negatives{Identity: id},
		firstOrderBasic:   &firstOrderBasic{Identity: id},
		numberReducer:     &numberReducer{Identity: id},
		complexExpander:   &complexExpander{Identity: id},
	}
}

// Simplify normalizes root. The pass order is significant: symbol and
// complex-literal canonicalization first, then the bounded reduction loop,
// then distributive expansion followed by a final cleanup sweep.
func (s *Simplifier) Simplify(root *expr.Expr) *expr.Expr {
	res := expr.Rewrite(root, s.basicSymbols)
	res = expr.Rewrite(res, s.complexSplitter)
	res = expr.Rewrite(res, s.rationalizer)

	for k := 0; k < s.maxPasses; k++ {
		prev := res
		res = expr.Rewrite(res, s.complexNormalizer)
		res = expr.Rewrite(res, s.gcdLiteral)
		res = expr.Rewrite(res, s.sizeOneArray)
		res = expr.Rewrite(res, s.selfNesting)
		res = expr.Rewrite(res, s.negatives)
		res = expr.Rewrite(res, s.firstOrderBasic)
		res = expr.Rewrite(res, s.numberReducer)
		if expr.Equal(prev, res) {
			break
		}
	}

	res = expr.Rewrite(res, s.complexExpander)
	res = expr.Rewrite(res, s.complexSplitter)
	res = expr.Rewrite(res, s.complexNormalizer)
	res = expr.Rewrite(res, s.gcdLiteral)
	res = expr.Rewrite(res, s.sizeOneArray)
	res = expr.Rewrite(res, s.selfNesting)
	res = expr.Rewrite(res, s.negatives)
	return res
}
