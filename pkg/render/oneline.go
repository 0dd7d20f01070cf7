// Package render turns expression trees back into text: a one-line infix
// string and a two-dimensional character grid with fractions and
// exponents laid out spatially.
package render

import (
	"strings"

	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
)

// nodePrec returns the precedence used for parenthesization decisions.
// Atoms rank highest. Complex literals rank like the expression their
// textual form spells: "2+3i" like a sum, "3i" like a product.
func nodePrec(e *expr.Expr) int {
	switch e.Kind() {
	case expr.Add:
		return 2
	case expr.Multiply, expr.Divide, expr.Modulus:
		return 3
	case expr.Negate:
		return 4
	case expr.Power:
		return 5
	case expr.Factorial:
		return 6
	case expr.Literal:
		n := e.Num()
		if n.IsReal() {
			return 7
		}
		if n.Real().IsZero() {
			return 3
		}
		return 2
	default:
		return 7
	}
}

// Infix renders expressions to a single line of infix text. Parentheses
// are inserted whenever a child binds looser than its parent, or equally
// tight on the non-associative side.
type Infix struct {
	f *number.Formatter
}

// NewInfix returns a one-line renderer using the given number formatter.
func NewInfix(f *number.Formatter) *Infix {
	return &Infix{f: f}
}

// Render returns the infix rendering of e.
func (r *Infix) Render(e *expr.Expr) string {
	switch e.Kind() {
	case expr.Literal:
		return r.f.FormatNumber(e.Num())

	case expr.Symbol:
		if e.NumChildren() == 0 {
			return e.Name()
		}
		args := make([]string, e.NumChildren())
		for i, c := range e.Children() {
			args[i] = r.Render(c)
		}
		return e.Name() + "(" + strings.Join(args, ",") + ")"

	case expr.Add:
		var sb strings.Builder
		for i, c := range e.Children() {
			if i == 0 {
				if e.Sign(0) == expr.Minus {
					sb.WriteByte('-')
					sb.WriteString(r.operand(c, 4, false, false))
				} else {
					sb.WriteString(r.operand(c, 2, false, false))
				}
				continue
			}
			if e.Sign(i) == expr.Minus {
				sb.WriteByte('-')
			} else {
				sb.WriteByte('+')
			}
			sb.WriteString(r.operand(c, 2, true, true))
		}
		return sb.String()

	case expr.Multiply:
		parts := make([]string, e.NumChildren())
		for i, c := range e.Children() {
			parts[i] = r.operand(c, 3, i > 0, i > 0)
		}
		return strings.Join(parts, "*")

	case expr.Divide:
		return r.operand(e.Child(0), 3, false, false) + "/" +
			r.operand(e.Child(1), 3, true, true)

	case expr.Modulus:
		return r.operand(e.Child(0), 3, false, false) + "%" +
			r.operand(e.Child(1), 3, true, true)

	case expr.Power:
		return r.operand(e.Child(0), 5, true, true) + "^" +
			r.operand(e.Child(1), 5, false, true)

	case expr.Negate:
		return "-" + r.operand(e.Child(0), 4, false, false)

	case expr.Factorial:
		return r.operand(e.Child(0), 6, false, true) + "!"

	default:
		panic("render: unknown node kind")
	}
}

// operand renders a child of an operator node, parenthesizing when its
// precedence demands it or when a leading minus would fuse with the
// surrounding operator.
func (r *Infix) operand(c *expr.Expr, parentPrec int, nonAssoc, guardMinus bool) string {
	s := r.Render(c)
	p := nodePrec(c)
	if p < parentPrec || (p == parentPrec && nonAssoc) ||
		(guardMinus && strings.HasPrefix(s, "-")) {
		return "(" + s + ")"
	}
	return s
}
