package render

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
)

var b = expr.NewBuilder()

func lit(n int64) *expr.Expr { return b.Literal(number.FromInt(n)) }

func complexLit(re, im int64) *expr.Expr {
	return b.Literal(number.FromParts(big.NewRat(re, 1), big.NewRat(im, 1)))
}

func TestInfixRender(t *testing.T) {
	r := NewInfix(number.NewFormatter(number.DefaultSigFigs))
	x, y, z := b.Symbol("x"), b.Symbol("y"), b.Symbol("z")

	tests := []struct {
		name string
		in   *expr.Expr
		want string
	}{
		{"literal", lit(3), "3"},
		{"negative literal", lit(-3), "-3"},
		{"fraction literal", b.Literal(number.FromParts(big.NewRat(3, 4), new(big.Rat))), "0.75"},
		{"complex literal", complexLit(2, 3), "2+3i"},
		{"pure imaginary literal", complexLit(0, 3), "3i"},
		{"variable", x, "x"},
		{"function call", b.Symbol("sin", x), "sin(x)"},
		{"two argument call", b.Symbol("f", x, y), "f(x,y)"},

		{"sum", b.Add(x, y), "x+y"},
		{"difference", b.Subtract(x, y), "x-y"},
		{"leading minus", b.AddSigned([]*expr.Expr{x, y}, []expr.Sign{expr.Minus, expr.Plus}), "-x+y"},
		{"negative addend is guarded", b.Add(x, lit(-2)), "x+(-2)"},
		{"sum of products needs no parens", b.Add(b.Multiply(x, y), z), "x*y+z"},

		{"product of sums", b.Multiply(b.Add(x, lit(1)), y), "(x+1)*y"},
		{"second factor parenthesized at equal precedence",
			b.Multiply(x, b.Divide(y, z)), "x*(y/z)"},
		{"coefficient", b.Multiply(lit(2), x), "2*x"},
		{"complex factor needs parens", b.Multiply(complexLit(2, 3), x), "(2+3i)*x"},
		{"imaginary factor at product level", b.Multiply(complexLit(0, 3), x), "3i*x"},

		{"quotient", b.Divide(x, y), "x/y"},
		{"sum numerator", b.Divide(b.Add(x, lit(1)), y), "(x+1)/y"},
		{"product denominator", b.Divide(x, b.Multiply(y, z)), "x/(y*z)"},
		{"modulus", b.Modulus(x, y), "x%y"},

		{"power", b.Power(x, lit(2)), "x^2"},
		{"power tower needs no parens", b.Power(x, b.Power(y, lit(2))), "x^y^2"},
		{"left nested power is parenthesized",
			b.Power(b.Power(x, lit(2)), lit(3)), "(x^2)^3"},
		{"negated base is parenthesized", b.Power(b.Negate(x), lit(2)), "(-x)^2"},

		{"negation", b.Negate(x), "-x"},
		{"negated sum", b.Negate(b.Add(x, lit(1))), "-(x+1)"},
		{"negated power binds fine", b.Negate(b.Power(x, lit(2))), "-x^2"},

		{"factorial", b.Factorial(lit(3)), "3!"},
		{"factorial of sum", b.Factorial(b.Add(x, lit(1))), "(x+1)!"},
		{"factorial of negative literal", b.Factorial(lit(-3)), "(-3)!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Render(tc.in))
		})
	}
}

func TestCharMapPrimitives(t *testing.T) {
	t.Run("single row", func(t *testing.T) {
		m := NewCharMap("abc")
		assert.Equal(t, 3, m.Width())
		assert.Equal(t, 1, m.Height())
		assert.Equal(t, 0, m.Baseline())
		assert.Equal(t, []string{"abc"}, m.Lines())
	})

	t.Run("beside aligns baselines", func(t *testing.T) {
		frac := Over(NewCharMap("1"), NewCharMap("2"))
		m := Beside(frac, NewCharMap("+"), NewCharMap("x"))
		assert.Equal(t, []string{
			" 1   ",
			"---+x",
			" 2   ",
		}, m.Lines())
		assert.Equal(t, 1, m.Baseline())
	})

	t.Run("over centers and overhangs", func(t *testing.T) {
		m := Over(NewCharMap("1"), NewCharMap("x+1"))
		assert.Equal(t, []string{
			"  1  ",
			"-----",
			" x+1 ",
		}, m.Lines())
		assert.Equal(t, 1, m.Baseline())
	})

	t.Run("raise puts the exponent on top", func(t *testing.T) {
		m := Raise(NewCharMap("x"), NewCharMap("2"))
		assert.Equal(t, []string{
			" 2",
			"x ",
		}, m.Lines())
		assert.Equal(t, 1, m.Baseline())
	})

	t.Run("parens stay flat on one row", func(t *testing.T) {
		m := Parens(NewCharMap("x+1"))
		assert.Equal(t, []string{"(x+1)"}, m.Lines())
	})

	t.Run("parens grow tall", func(t *testing.T) {
		frac := Over(NewCharMap("1"), NewCharMap("2"))
		m := Parens(frac)
		assert.Equal(t, []string{
			"/ 1 \\",
			"|---|",
			"\\ 2 /",
		}, m.Lines())
		assert.Equal(t, 1, m.Baseline())
	})
}

func TestGridRender(t *testing.T) {
	r := NewGrid(number.NewFormatter(number.DefaultSigFigs))
	x, y := b.Symbol("x"), b.Symbol("y")

	t.Run("flat expressions render like infix", func(t *testing.T) {
		tests := []struct {
			name string
			in   *expr.Expr
			want string
		}{
			{"literal", lit(42), "42"},
			{"sum", b.Add(x, y), "x+y"},
			{"difference", b.Subtract(x, y), "x-y"},
			{"explicit product", b.Multiply(x, y), "x*y"},
			{"modulus", b.Modulus(x, y), "x%y"},
			{"factorial", b.Factorial(lit(3)), "3!"},
			{"negation", b.Negate(x), "-x"},
			{"function call", b.Symbol("f", x, y), "f(x,y)"},
			{"product of sums", b.Multiply(b.Add(x, lit(1)), y), "(x+1)*y"},
		}
		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				m := r.Render(tc.in)
				require.Equal(t, 1, m.Height())
				assert.Equal(t, []string{tc.want}, m.Lines())
			})
		}
	})

	t.Run("coefficients juxtapose", func(t *testing.T) {
		assert.Equal(t, []string{"2x"}, r.Render(b.Multiply(lit(2), x)).Lines())
	})

	t.Run("coefficient of a power juxtaposes", func(t *testing.T) {
		m := r.Render(b.Multiply(lit(2), b.Power(x, lit(2))))
		assert.Equal(t, []string{
			"  2",
			"2x ",
		}, m.Lines())
	})

	t.Run("literal times literal keeps the star", func(t *testing.T) {
		assert.Equal(t, []string{"2*3"}, r.Render(b.Multiply(lit(2), lit(3))).Lines())
	})

	t.Run("fraction stacks", func(t *testing.T) {
		m := r.Render(b.Divide(lit(1), b.Add(x, lit(1))))
		assert.Equal(t, []string{
			"  1  ",
			"-----",
			" x+1 ",
		}, m.Lines())
	})

	t.Run("fraction needs no parens as an operand", func(t *testing.T) {
		m := r.Render(b.Add(b.Divide(lit(1), lit(2)), x))
		assert.Equal(t, []string{
			" 1   ",
			"---+x",
			" 2   ",
		}, m.Lines())
	})

	t.Run("power raises", func(t *testing.T) {
		m := r.Render(b.Power(x, lit(2)))
		assert.Equal(t, []string{
			" 2",
			"x ",
		}, m.Lines())
	})

	t.Run("tall operand gets tall parens", func(t *testing.T) {
		frac := b.Divide(lit(1), lit(2))
		m := r.Render(b.Multiply(b.Add(x, frac), y))
		assert.Equal(t, []string{
			"/   1 \\  ",
			"|x+---|*y",
			"\\   2 /  ",
		}, m.Lines())
	})

	t.Run("nested fraction", func(t *testing.T) {
		inner := b.Divide(lit(1), lit(2))
		m := r.Render(b.Divide(inner, x))
		assert.Equal(t, []string{
			"  1  ",
			" --- ",
			"  2  ",
			"-----",
			"  x  ",
		}, m.Lines())
	})
}
