package render

import (
	"strings"

	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
)

// Grid renders expressions to a two-dimensional character grid: fractions
// stack over a bar, exponents raise, and multi-row operands get tall
// parentheses. Parenthesization follows the same precedence rules as the
// one-line renderer, except that fractions never need them: the bar
// already shows the grouping.
type Grid struct {
	f *number.Formatter
}

// NewGrid returns a grid renderer using the given number formatter.
func NewGrid(f *number.Formatter) *Grid {
	return &Grid{f: f}
}

// Render returns the grid rendering of e.
func (r *Grid) Render(e *expr.Expr) *CharMap {
	switch e.Kind() {
	case expr.Literal:
		return NewCharMap(r.f.FormatNumber(e.Num()))

	case expr.Symbol:
		if e.NumChildren() == 0 {
			return NewCharMap(e.Name())
		}
		parts := make([]*CharMap, 0, 2*e.NumChildren()-1)
		for i, c := range e.Children() {
			if i > 0 {
				parts = append(parts, NewCharMap(","))
			}
			parts = append(parts, r.Render(c))
		}
		return Beside(NewCharMap(e.Name()), Parens(Beside(parts...)))

	case expr.Add:
		parts := make([]*CharMap, 0, 2*e.NumChildren())
		for i, c := range e.Children() {
			if i == 0 {
				if e.Sign(0) == expr.Minus {
					parts = append(parts, NewCharMap("-"), r.operand(c, 4, false, false))
				} else {
					parts = append(parts, r.operand(c, 2, false, false))
				}
				continue
			}
			sep := "+"
			if e.Sign(i) == expr.Minus {
				sep = "-"
			}
			parts = append(parts, NewCharMap(sep), r.operand(c, 2, true, true))
		}
		return Beside(parts...)

	case expr.Multiply:
		var parts []*CharMap
		children := e.Children()
		for i, c := range children {
			if i > 0 && !juxtaposed(children[i-1], c) {
				parts = append(parts, NewCharMap("*"))
			}
			parts = append(parts, r.operand(c, 3, i > 0, i > 0))
		}
		return Beside(parts...)

	case expr.Divide:
		return Over(r.Render(e.Child(0)), r.Render(e.Child(1)))

	case expr.Modulus:
		return Beside(
			r.operand(e.Child(0), 3, false, false),
			NewCharMap("%"),
			r.operand(e.Child(1), 3, true, true),
		)

	case expr.Power:
		return Raise(r.operand(e.Child(0), 5, true, true), r.Render(e.Child(1)))

	case expr.Negate:
		return Beside(NewCharMap("-"), r.operand(e.Child(0), 4, false, false))

	case expr.Factorial:
		return Beside(r.operand(e.Child(0), 6, false, true), NewCharMap("!"))

	default:
		panic("render: unknown node kind")
	}
}

// operand renders a child, wrapping it in (tall) parentheses under the
// same rules as the one-line renderer. Fractions are exempt: their bar
// makes the grouping visible.
func (r *Grid) operand(c *expr.Expr, parentPrec int, nonAssoc, guardMinus bool) *CharMap {
	m := r.Render(c)
	if c.Kind() == expr.Divide {
		return m
	}
	p := nodePrec(c)
	if p < parentPrec || (p == parentPrec && nonAssoc) ||
		(guardMinus && startsWithMinus(m)) {
		return Parens(m)
	}
	return m
}

// juxtaposed reports whether two adjacent product factors are written
// without an explicit multiplication sign, as in the coefficient of 2x.
func juxtaposed(prev, next *expr.Expr) bool {
	if prev.Kind() != expr.Literal || !prev.Num().IsReal() {
		return false
	}
	switch next.Kind() {
	case expr.Symbol:
		return next.NumChildren() == 0
	case expr.Power:
		base := next.Child(0)
		return base.Kind() == expr.Symbol && base.NumChildren() == 0
	default:
		return false
	}
}

func startsWithMinus(m *CharMap) bool {
	lines := m.Lines()
	if m.Baseline() >= len(lines) {
		return false
	}
	return strings.HasPrefix(strings.TrimLeft(lines[m.Baseline()], " "), "-")
}
