// Package eval folds fully-numeric expression trees into a single Number.
//
// Evaluation is all-or-nothing: any free symbol or any operation without
// an exact numeric result makes the whole evaluation fail.
package eval

import (
	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
	"github.com/gocas/gocas/pkg/types"
)

// Evaluate reduces root to a concrete Number. Recognized zero-argument
// symbols are the constants i, pi and e; pi and e evaluate to their
// decimal approximations.
func Evaluate(root *expr.Expr) (number.Number, error) {
	switch root.Kind() {
	case expr.Literal:
		return root.Num(), nil

	case expr.Symbol:
		if root.NumChildren() == 0 {
			switch root.Name() {
			case "i":
				return number.I(), nil
			case "pi":
				return number.Pi(), nil
			case "e":
				return number.E(), nil
			}
		}
		return nil, types.NewError(types.ErrNotNumeric,
			"expression is not numeric", -1).WithToken(root.Name())

	case expr.Add:
		sum := number.Number(number.Zero())
		for i, c := range root.Children() {
			v, err := Evaluate(c)
			if err != nil {
				return nil, err
			}
			if root.Sign(i) == expr.Minus {
				sum = sum.Sub(v)
			} else {
				sum = sum.Add(v)
			}
		}
		return sum, nil

	case expr.Multiply:
		product := number.Number(number.One())
		for _, c := range root.Children() {
			v, err := Evaluate(c)
			if err != nil {
				return nil, err
			}
			product = product.Mul(v)
		}
		return product, nil

	case expr.Negate:
		v, err := Evaluate(root.Child(0))
		if err != nil {
			return nil, err
		}
		return v.Neg(), nil

	case expr.Divide:
		top, bottom, err := evalPair(root)
		if err != nil {
			return nil, err
		}
		q, ok := top.Div(bottom)
		if !ok {
			return nil, types.NewError(types.ErrDivisionByZero,
				"division by zero", -1)
		}
		return q, nil

	case expr.Modulus:
		top, bottom, err := evalPair(root)
		if err != nil {
			return nil, err
		}
		m, ok := top.Mod(bottom)
		if !ok {
			if bottom.IsZero() {
				return nil, types.NewError(types.ErrDivisionByZero,
					"modulus by zero", -1)
			}
			return nil, types.NewError(types.ErrInexact,
				"modulus of non-integers", -1)
		}
		return m, nil

	case expr.Power:
		base, exponent, err := evalPair(root)
		if err != nil {
			return nil, err
		}
		r, ok := base.Pow(exponent)
		if !ok {
			return nil, types.NewError(types.ErrInexact,
				"power has no exact value", -1)
		}
		return r, nil

	case expr.Factorial:
		v, err := Evaluate(root.Child(0))
		if err != nil {
			return nil, err
		}
		f, ok := v.Factorial()
		if !ok {
			return nil, types.NewError(types.ErrInexact,
				"factorial undefined for this value", -1)
		}
		return f, nil

	default:
		panic("eval: unknown node kind")
	}
}

func evalPair(root *expr.Expr) (number.Number, number.Number, error) {
	l, err := Evaluate(root.Child(0))
	if err != nil {
		return nil, nil, err
	}
	r, err := Evaluate(root.Child(1))
	if err != nil {
		return nil, nil, err
	}
	return l, r, nil
}
