package simplify

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

func sym(name string) *expr.Expr { return b.Symbol(name) }

func bigRat(n int64) *big.Rat { return big.NewRat(n, 1) }

func bigRatFrac(num, den int64) *big.Rat { return big.NewRat(num, den) }

func rewriteWith(r expr.Rewriter, e *expr.Expr) *expr.Expr {
	return expr.Rewrite(e, r)
}

func assertTree(t *testing.T, want, got *expr.Expr) {
	t.Helper()
	assert.True(t, expr.Equal(want, got), "want %s, got %s", want.Kind(), got.Kind())
}

func TestBasicSymbols(t *testing.T) {
	p := &basicSymbols{Identity: expr.Identity{B: b}}

	t.Run("aliases fold to canonical name", func(t *testing.T) {
		assertTree(t, sym("pi"), rewriteWith(p, sym("PI")))
		assertTree(t, sym("pi"), rewriteWith(p, sym("Pi")))
	})

	t.Run("canonical name unchanged", func(t *testing.T) {
		e := sym("pi")
		assert.Same(t, e, rewriteWith(p, e))
	})

	t.Run("function of the same name is not aliased", func(t *testing.T) {
		e := b.Symbol("Pi", sym("x"))
		assert.Same(t, e, rewriteWith(p, e))
	})
}

func TestComplexSplitter(t *testing.T) {
	p := &complexSplitter{Identity: expr.Identity{B: b}}

	t.Run("real literal untouched", func(t *testing.T) {
		e := lit(3)
		assert.Same(t, e, rewriteWith(p, e))
	})

	t.Run("complex literal splits", func(t *testing.T) {
		c := b.Literal(number.FromParts(bigRat(2), bigRat(3)))
		want := b.Add(lit(2), b.Multiply(lit(3), sym("i")))
		assertTree(t, want, rewriteWith(p, c))
	})

	t.Run("pure imaginary keeps zero real part", func(t *testing.T) {
		c := b.Literal(number.I())
		want := b.Add(lit(0), b.Multiply(lit(1), sym("i")))
		assertTree(t, want, rewriteWith(p, c))
	})
}

func TestRationalizer(t *testing.T) {
	p := &rationalizer{Identity: expr.Identity{B: b}}
	x, y, z := sym("x"), sym("y"), sym("z")

	t.Run("nested numerator", func(t *testing.T) {
		e := b.Divide(b.Divide(x, y), z)
		want := b.Divide(x, b.Multiply(y, z))
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("nested denominator", func(t *testing.T) {
		e := b.Divide(x, b.Divide(y, z))
		want := b.Divide(b.Multiply(x, z), y)
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("both nested", func(t *testing.T) {
		a, c, d := sym("a"), sym("c"), sym("d")
		e := b.Divide(b.Divide(a, x), b.Divide(c, d))
		want := b.Divide(b.Multiply(a, d), b.Multiply(x, c))
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("product with fractions becomes one fraction", func(t *testing.T) {
		e := b.MultiplyN([]*expr.Expr{x, b.Divide(y, z), sym("w")})
		want := b.Divide(b.MultiplyN([]*expr.Expr{x, y, sym("w")}), z)
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("plain product unchanged", func(t *testing.T) {
		e := b.Multiply(x, y)
		assert.Same(t, e, rewriteWith(p, e))
	})
}

func TestComplexNormalizer(t *testing.T) {
	p := &complexNormalizer{Identity: expr.Identity{B: b}}
	i := sym("i")

	t.Run("i squared becomes minus one", func(t *testing.T) {
		got := rewriteWith(p, b.Multiply(i, i))
		require.Equal(t, expr.Multiply, got.Kind())
		require.Equal(t, 1, got.NumChildren())
		assertTree(t, lit(-1), got.Child(0))
	})

	t.Run("i cubed keeps one i", func(t *testing.T) {
		e := b.MultiplyN([]*expr.Expr{i, i, i})
		want := b.Multiply(lit(-1), sym("i"))
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("i to the fourth is plus one", func(t *testing.T) {
		e := b.MultiplyN([]*expr.Expr{i, i, i, i})
		got := rewriteWith(p, e)
		assertTree(t, lit(1), got)
	})

	t.Run("minus one folds into an existing literal", func(t *testing.T) {
		e := b.MultiplyN([]*expr.Expr{lit(2), i, i})
		want := b.MultiplyN([]*expr.Expr{lit(-2)})
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("real terms move before imaginary terms", func(t *testing.T) {
		e := b.Add(b.Multiply(lit(2), i), lit(3))
		got := rewriteWith(p, e)
		require.Equal(t, expr.Add, got.Kind())
		assertTree(t, lit(3), got.Child(0))
	})

	t.Run("sign vector follows the reorder", func(t *testing.T) {
		e := b.Subtract(b.Multiply(lit(2), i), lit(3))
		got := rewriteWith(p, e)
		require.Equal(t, expr.Add, got.Kind())
		assert.Equal(t, []expr.Sign{expr.Minus, expr.Plus}, got.Signs())
	})
}

func TestGCDLiteral(t *testing.T) {
	p := &gcdLiteral{Identity: expr.Identity{B: b}}
	x := sym("x")

	t.Run("sum literals fold and lead", func(t *testing.T) {
		e := b.AddN([]*expr.Expr{lit(2), x, lit(3)})
		want := b.Add(lit(5), x)
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("negative fold keeps payload positive", func(t *testing.T) {
		e := b.AddSigned([]*expr.Expr{lit(2), x, lit(5)},
			[]expr.Sign{expr.Plus, expr.Plus, expr.Minus})
		want := b.AddSigned([]*expr.Expr{lit(3), x},
			[]expr.Sign{expr.Minus, expr.Plus})
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("product literals fold", func(t *testing.T) {
		e := b.MultiplyN([]*expr.Expr{lit(2), x, lit(3)})
		want := b.Multiply(lit(6), x)
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("fraction reduces by gcd", func(t *testing.T) {
		e := b.Divide(lit(6), lit(8))
		want := b.Divide(lit(3), lit(4))
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("negative denominator is normalized", func(t *testing.T) {
		e := b.Divide(lit(4), lit(-6))
		want := b.Divide(lit(-2), lit(3))
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("coprime fraction unchanged", func(t *testing.T) {
		e := b.Divide(lit(3), lit(4))
		assert.Same(t, e, rewriteWith(p, e))
	})

	t.Run("single literal sum unchanged", func(t *testing.T) {
		e := b.Add(lit(2), x)
		assert.Same(t, e, rewriteWith(p, e))
	})
}

func TestSizeOneArray(t *testing.T) {
	p := &sizeOneArray{Identity: expr.Identity{B: b}}
	x := sym("x")

	t.Run("positive singleton sum collapses", func(t *testing.T) {
		e := b.AddSigned([]*expr.Expr{x}, []expr.Sign{expr.Plus})
		assert.Same(t, x, rewriteWith(p, e))
	})

	t.Run("negative singleton sum becomes negation", func(t *testing.T) {
		e := b.AddSigned([]*expr.Expr{x}, []expr.Sign{expr.Minus})
		assertTree(t, b.Negate(x), rewriteWith(p, e))
	})

	t.Run("singleton product collapses", func(t *testing.T) {
		e := b.MultiplyN([]*expr.Expr{x})
		assert.Same(t, x, rewriteWith(p, e))
	})
}

func TestSelfNesting(t *testing.T) {
	p := &selfNesting{Identity: expr.Identity{B: b}}
	x, y, z := sym("x"), sym("y"), sym("z")

	t.Run("nested sum inlines", func(t *testing.T) {
		e := b.Add(b.Add(x, y), z)
		want := b.AddN([]*expr.Expr{x, y, z})
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("signs compose through the flattening", func(t *testing.T) {
		// x - (y - z) = x - y + z
		e := b.Subtract(x, b.Subtract(y, z))
		want := b.AddSigned([]*expr.Expr{x, y, z},
			[]expr.Sign{expr.Plus, expr.Minus, expr.Plus})
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("nested product inlines", func(t *testing.T) {
		e := b.Multiply(b.Multiply(x, y), z)
		want := b.MultiplyN([]*expr.Expr{x, y, z})
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("flat nodes unchanged", func(t *testing.T) {
		e := b.Add(x, y)
		assert.Same(t, e, rewriteWith(p, e))
	})
}

func TestNegatives(t *testing.T) {
	p := &negatives{Identity: expr.Identity{B: b}}
	x, y := sym("x"), sym("y")

	t.Run("double negation cancels", func(t *testing.T) {
		assert.Same(t, x, rewriteWith(p, b.Negate(b.Negate(x))))
	})

	t.Run("negated literal folds", func(t *testing.T) {
		assertTree(t, lit(-3), rewriteWith(p, b.Negate(lit(3))))
	})

	t.Run("negation folds into a product literal", func(t *testing.T) {
		e := b.Negate(b.Multiply(lit(2), x))
		want := b.Multiply(lit(-2), x)
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("negated addend folds into the sign vector", func(t *testing.T) {
		e := b.Add(x, b.Negate(y))
		want := b.Subtract(x, y)
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("all negative sum becomes negated sum", func(t *testing.T) {
		e := b.AddSigned([]*expr.Expr{x, y}, []expr.Sign{expr.Minus, expr.Minus})
		want := b.Negate(b.Add(x, y))
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("paired negations in a product cancel", func(t *testing.T) {
		e := b.Multiply(b.Negate(x), b.Negate(y))
		want := b.Multiply(x, y)
		assertTree(t, want, rewriteWith(p, e))
	})

	t.Run("odd negations surface on the product", func(t *testing.T) {
		e := b.Multiply(b.Negate(x), y)
		want := b.Negate(b.Multiply(x, y))
		assertTree(t, want, rewriteWith(p, e))
	})
}

func TestFirstOrderBasic(t *testing.T) {
	p := &firstOrderBasic{Identity: expr.Identity{B: b}}
	x := sym("x")

	tests := []struct {
		name string
		in   *expr.Expr
		want *expr.Expr
	}{
		{"additive identity", b.Add(x, lit(0)), b.AddSigned([]*expr.Expr{x}, []expr.Sign{expr.Plus})},
		{"sum of zeros", b.Add(lit(0), lit(0)), lit(0)},
		{"multiplicative identity", b.Multiply(x, lit(1)), b.MultiplyN([]*expr.Expr{x})},
		{"zero annihilates", b.Multiply(x, lit(0)), lit(0)},
		{"division by one", b.Divide(x, lit(1)), x},
		{"zeroth power", b.Power(x, lit(0)), lit(1)},
		{"first power", b.Power(x, lit(1)), x},
		{"one to anything", b.Power(lit(1), x), lit(1)},
		{"zero to a positive power", b.Power(lit(0), lit(2)), lit(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assertTree(t, tc.want, rewriteWith(p, tc.in))
		})
	}

	t.Run("zero to the zero is left alone", func(t *testing.T) {
		e := b.Power(lit(0), lit(0))
		assert.Same(t, e, rewriteWith(p, e))
	})

	t.Run("zero to a symbolic power is left alone", func(t *testing.T) {
		e := b.Power(lit(0), x)
		assert.Same(t, e, rewriteWith(p, e))
	})
}

func TestNumberReducer(t *testing.T) {
	p := &numberReducer{Identity: expr.Identity{B: b}}
	x := sym("x")

	t.Run("sum folds with signs", func(t *testing.T) {
		e := b.AddSigned([]*expr.Expr{lit(10), lit(3)},
			[]expr.Sign{expr.Plus, expr.Minus})
		assertTree(t, lit(7), rewriteWith(p, e))
	})

	t.Run("product folds", func(t *testing.T) {
		assertTree(t, lit(12), rewriteWith(p, b.Multiply(lit(3), lit(4))))
	})

	t.Run("integer quotient folds", func(t *testing.T) {
		assertTree(t, lit(2), rewriteWith(p, b.Divide(lit(6), lit(3))))
	})

	t.Run("proper fraction stays a fraction", func(t *testing.T) {
		e := b.Divide(lit(6), lit(8))
		assert.Same(t, e, rewriteWith(p, e))
	})

	t.Run("non integral operand folds anyway", func(t *testing.T) {
		half := b.Literal(number.FromParts(bigRatFrac(1, 2), bigRat(0)))
		e := b.Divide(half, lit(3))
		got := rewriteWith(p, e)
		require.Equal(t, expr.Literal, got.Kind())
		assert.True(t, got.Num().Equal(number.FromParts(bigRatFrac(1, 6), bigRat(0))))
	})

	t.Run("modulus folds", func(t *testing.T) {
		assertTree(t, lit(2), rewriteWith(p, b.Modulus(lit(17), lit(5))))
	})

	t.Run("power folds", func(t *testing.T) {
		assertTree(t, lit(1024), rewriteWith(p, b.Power(lit(2), lit(10))))
	})

	t.Run("inexact power left alone", func(t *testing.T) {
		half := b.Literal(number.FromParts(bigRatFrac(1, 2), bigRat(0)))
		e := b.Power(lit(2), half)
		assert.Same(t, e, rewriteWith(p, e))
	})

	t.Run("factorial folds", func(t *testing.T) {
		assertTree(t, lit(120), rewriteWith(p, b.Factorial(lit(5))))
	})

	t.Run("symbolic children block folding", func(t *testing.T) {
		e := b.Add(lit(1), x)
		assert.Same(t, e, rewriteWith(p, e))
	})
}

func TestComplexExpander(t *testing.T) {
	p := &complexExpander{Identity: expr.Identity{B: b}}
	x := sym("x")

	t.Run("binomial square", func(t *testing.T) {
		sum := b.Add(x, lit(1))
		got := rewriteWith(p, b.Multiply(sum, sum))
		want := b.AddN([]*expr.Expr{
			b.Power(x, lit(2)),
			b.Multiply(lit(2), x),
			lit(1),
		})
		assertTree(t, want, got)
	})

	t.Run("distinct binomials", func(t *testing.T) {
		got := rewriteWith(p, b.Multiply(b.Add(x, lit(2)), b.Add(x, lit(3))))
		want := b.AddN([]*expr.Expr{
			b.Power(x, lit(2)),
			b.Multiply(lit(5), x),
			lit(6),
		})
		assertTree(t, want, got)
	})

	t.Run("single distribution", func(t *testing.T) {
		y, z := sym("y"), sym("z")
		got := rewriteWith(p, b.Multiply(x, b.Add(y, z)))
		want := b.AddN([]*expr.Expr{b.Multiply(x, y), b.Multiply(x, z)})
		assertTree(t, want, got)
	})

	t.Run("difference of squares cancels the cross terms", func(t *testing.T) {
		// (x+1)(x-1) -> x^2 - 1
		got := rewriteWith(p, b.Multiply(b.Add(x, lit(1)), b.Subtract(x, lit(1))))
		want := b.AddSigned(
			[]*expr.Expr{b.Power(x, lit(2)), lit(1)},
			[]expr.Sign{expr.Plus, expr.Minus},
		)
		assertTree(t, want, got)
	})

	t.Run("negated sum distributes its sign", func(t *testing.T) {
		// x * -(y+1) -> -(x*y) - x, rebuilt with Minus signs
		y := sym("y")
		got := rewriteWith(p, b.Multiply(x, b.Negate(b.Add(y, lit(1)))))
		want := b.AddSigned(
			[]*expr.Expr{b.Multiply(x, y), x},
			[]expr.Sign{expr.Minus, expr.Minus},
		)
		assertTree(t, want, got)
	})

	t.Run("product without sums unchanged", func(t *testing.T) {
		e := b.Multiply(x, sym("y"))
		assert.Same(t, e, rewriteWith(p, e))
	})
}

func TestSimplifyDriver(t *testing.T) {
	s := NewSimplifier(b, DefaultMaxPasses)
	x := sym("x")

	t.Run("arithmetic folds to a literal", func(t *testing.T) {
		e := b.Add(lit(2), b.Multiply(lit(3), lit(4)))
		assertTree(t, lit(14), s.Simplify(e))
	})

	t.Run("fraction reduces but stays exact", func(t *testing.T) {
		assertTree(t, b.Divide(lit(3), lit(4)), s.Simplify(b.Divide(lit(6), lit(8))))
	})

	t.Run("double negation cancels", func(t *testing.T) {
		assert.Same(t, x, s.Simplify(b.Negate(b.Negate(x))))
	})

	t.Run("imaginary arithmetic", func(t *testing.T) {
		i := sym("i")
		e := b.Add(b.Multiply(i, i), lit(1))
		assertTree(t, lit(0), s.Simplify(e))
	})

	t.Run("binomial square expands", func(t *testing.T) {
		sum := b.Add(x, lit(1))
		got := s.Simplify(b.Multiply(sum, sum))
		want := b.AddN([]*expr.Expr{
			b.Power(x, lit(2)),
			b.Multiply(lit(2), x),
			lit(1),
		})
		assertTree(t, want, got)
	})

	t.Run("unknown functions survive untouched", func(t *testing.T) {
		e := b.Add(b.Symbol("sin", lit(0)), b.Symbol("cos", lit(0)))
		assertTree(t, e, s.Simplify(e))
	})

	t.Run("constant aliases canonicalize", func(t *testing.T) {
		assertTree(t, sym("pi"), s.Simplify(sym("PI")))
	})

	t.Run("complex literal splits symbolically", func(t *testing.T) {
		// 2+3i stays as a sum with a symbolic i.
		c := b.Literal(number.FromParts(bigRat(2), bigRat(3)))
		got := s.Simplify(c)
		want := b.Add(lit(2), b.Multiply(lit(3), sym("i")))
		assertTree(t, want, got)
	})

	t.Run("idempotent on normal forms", func(t *testing.T) {
		inputs := []*expr.Expr{
			b.Divide(lit(6), lit(8)),
			b.Multiply(b.Add(x, lit(1)), b.Add(x, lit(1))),
			b.Subtract(b.Power(x, lit(3)), b.Multiply(lit(2), x)),
			b.Add(b.Symbol("sin", x), sym("pi")),
		}
		for _, e := range inputs {
			once := s.Simplify(e)
			twice := s.Simplify(once)
			assertTree(t, once, twice)
		}
	})

	t.Run("deep negation chains collapse", func(t *testing.T) {
		even := x
		for i := 0; i < 100; i++ {
			even = b.Negate(even)
		}
		assertTree(t, x, s.Simplify(even))

		odd := b.Negate(even)
		assertTree(t, b.Negate(x), s.Simplify(odd))
	})

	t.Run("tight pass cap still terminates", func(t *testing.T) {
		tiny := NewSimplifier(b, 1)
		got := tiny.Simplify(b.Add(lit(2), b.Multiply(lit(3), lit(4))))
		assert.NotNil(t, got)
	})

	t.Run("default cap for out of range values", func(t *testing.T) {
		s := NewSimplifier(b, 0)
		assert.Equal(t, DefaultMaxPasses, s.maxPasses)
	})
}
