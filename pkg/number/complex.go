package number

import (
	"math/big"
)

// Operation guards. Results beyond these bounds are treated as inexact so
// a hostile input cannot stall the evaluator.
const (
	maxPowExponent  = 100000
	maxFactorialArg = 100000
)

// Complex is the exact complex-rational implementation of [Number].
// Both parts are arbitrary-precision rationals.
type Complex struct {
	re *big.Rat
	im *big.Rat
}

var (
	ratZero = big.NewRat(0, 1)
	ratOne  = big.NewRat(1, 1)
)

// FromRat returns the real number re.
// The rational is copied; the caller keeps ownership of its argument.
func FromRat(re *big.Rat) *Complex {
	return &Complex{re: new(big.Rat).Set(re), im: new(big.Rat)}
}

// FromParts returns re + im*i. Both rationals are copied.
func FromParts(re, im *big.Rat) *Complex {
	return &Complex{re: new(big.Rat).Set(re), im: new(big.Rat).Set(im)}
}

// FromInt returns the integer n as a Number.
func FromInt(n int64) *Complex {
	return &Complex{re: big.NewRat(n, 1), im: new(big.Rat)}
}

// Zero returns the additive identity.
func Zero() *Complex { return FromInt(0) }

// One returns the multiplicative identity.
func One() *Complex { return FromInt(1) }

// MinusOne returns -1.
func MinusOne() *Complex { return FromInt(-1) }

// I returns the imaginary unit.
func I() *Complex {
	return &Complex{re: new(big.Rat), im: big.NewRat(1, 1)}
}

func toComplex(n Number) *Complex {
	if c, ok := n.(*Complex); ok {
		return c
	}
	panic("number: foreign Number implementation")
}

// RatParts returns copies of the real and imaginary parts.
func (c *Complex) RatParts() (re, im *big.Rat) {
	return new(big.Rat).Set(c.re), new(big.Rat).Set(c.im)
}

// Add returns c + n.
func (c *Complex) Add(n Number) Number {
	o := toComplex(n)
	return &Complex{
		re: new(big.Rat).Add(c.re, o.re),
		im: new(big.Rat).Add(c.im, o.im),
	}
}

// Sub returns c - n.
func (c *Complex) Sub(n Number) Number {
	o := toComplex(n)
	return &Complex{
		re: new(big.Rat).Sub(c.re, o.re),
		im: new(big.Rat).Sub(c.im, o.im),
	}
}

// Mul returns c * n.
func (c *Complex) Mul(n Number) Number {
	o := toComplex(n)
	// (a+bi)(x+yi) = (ax - by) + (ay + bx)i
	ax := new(big.Rat).Mul(c.re, o.re)
	by := new(big.Rat).Mul(c.im, o.im)
	ay := new(big.Rat).Mul(c.re, o.im)
	bx := new(big.Rat).Mul(c.im, o.re)
	return &Complex{
		re: ax.Sub(ax, by),
		im: ay.Add(ay, bx),
	}
}

// Div returns c / n, or false when n is zero.
func (c *Complex) Div(n Number) (Number, bool) {
	o := toComplex(n)
	if o.IsZero() {
		return nil, false
	}
	// c/o = c * conj(o) / |o|^2
	norm := new(big.Rat).Mul(o.re, o.re)
	norm.Add(norm, new(big.Rat).Mul(o.im, o.im))
	conj := &Complex{re: new(big.Rat).Set(o.re), im: new(big.Rat).Neg(o.im)}
	num := toComplex(c.Mul(conj))
	return &Complex{
		re: num.re.Quo(num.re, norm),
		im: num.im.Quo(num.im, norm),
	}, true
}

// Mod returns the truncated remainder of c / n.
// Both operands must be real integers and n must be nonzero.
func (c *Complex) Mod(n Number) (Number, bool) {
	o := toComplex(n)
	if !c.IsInteger() || !o.IsInteger() || o.IsZero() {
		return nil, false
	}
	rem := new(big.Int).Rem(c.re.Num(), o.re.Num())
	return &Complex{re: new(big.Rat).SetInt(rem), im: new(big.Rat)}, true
}

// Pow returns c raised to n. The exponent must be a real integer with
// magnitude at most maxPowExponent; anything else is reported as inexact.
func (c *Complex) Pow(n Number) (Number, bool) {
	o := toComplex(n)
	if !o.IsInteger() {
		return nil, false
	}
	if !o.re.Num().IsInt64() {
		return nil, false
	}
	exp := o.re.Num().Int64()
	if exp > maxPowExponent || exp < -maxPowExponent {
		return nil, false
	}
	if exp == 0 {
		if c.IsZero() {
			return nil, false // 0^0 has no value
		}
		return One(), true
	}
	neg := exp < 0
	if neg {
		if c.IsZero() {
			return nil, false
		}
		exp = -exp
	}
	// Exponentiation by squaring.
	result := Number(One())
	base := Number(&Complex{re: new(big.Rat).Set(c.re), im: new(big.Rat).Set(c.im)})
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exp >>= 1
	}
	if neg {
		return One().Div(result)
	}
	return result, true
}

// Neg returns -c.
func (c *Complex) Neg() Number {
	return &Complex{
		re: new(big.Rat).Neg(c.re),
		im: new(big.Rat).Neg(c.im),
	}
}

// Factorial returns c!, defined here for non-negative real integers only.
func (c *Complex) Factorial() (Number, bool) {
	if !c.IsInteger() {
		return nil, false
	}
	num := c.re.Num()
	if num.Sign() < 0 || !num.IsInt64() || num.Int64() > maxFactorialArg {
		return nil, false
	}
	f := new(big.Int).MulRange(1, num.Int64())
	return &Complex{re: new(big.Rat).SetInt(f), im: new(big.Rat)}, true
}

// GCD returns the greatest common divisor of two real integers.
// gcd(a, 0) = |a|; gcd(0, 0) is undefined.
func (c *Complex) GCD(n Number) (Number, bool) {
	o := toComplex(n)
	if !c.IsInteger() || !o.IsInteger() {
		return nil, false
	}
	if c.IsZero() && o.IsZero() {
		return nil, false
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(c.re.Num()), new(big.Int).Abs(o.re.Num()))
	return &Complex{re: new(big.Rat).SetInt(g), im: new(big.Rat)}, true
}

// IsZero reports whether c == 0.
func (c *Complex) IsZero() bool {
	return c.re.Sign() == 0 && c.im.Sign() == 0
}

// IsOne reports whether c == 1.
func (c *Complex) IsOne() bool {
	return c.im.Sign() == 0 && c.re.Cmp(ratOne) == 0
}

// IsInteger reports whether c is a real integer.
func (c *Complex) IsInteger() bool {
	return c.im.Sign() == 0 && c.re.IsInt()
}

// IsReal reports whether the imaginary part is zero.
func (c *Complex) IsReal() bool {
	return c.im.Sign() == 0
}

// IsPositiveReal reports whether c is real and strictly positive.
func (c *Complex) IsPositiveReal() bool {
	return c.im.Sign() == 0 && c.re.Sign() > 0
}

// Real returns the real part as a real Number.
func (c *Complex) Real() Number {
	return &Complex{re: new(big.Rat).Set(c.re), im: new(big.Rat)}
}

// Imag returns the imaginary part as a real Number.
func (c *Complex) Imag() Number {
	return &Complex{re: new(big.Rat).Set(c.im), im: new(big.Rat)}
}

// SwapRealImag exchanges the real and imaginary parts.
func (c *Complex) SwapRealImag() Number {
	return &Complex{re: new(big.Rat).Set(c.im), im: new(big.Rat).Set(c.re)}
}

// RealOnly drops the imaginary part.
func (c *Complex) RealOnly() Number {
	return c.Real()
}

// Cmp orders by real part, then by imaginary part.
func (c *Complex) Cmp(n Number) int {
	o := toComplex(n)
	if r := c.re.Cmp(o.re); r != 0 {
		return r
	}
	return c.im.Cmp(o.im)
}

// Equal reports exact equality.
func (c *Complex) Equal(n Number) bool {
	return c.Cmp(n) == 0
}

// String returns a debug rendering such as "3", "-1/2" or "2+3i".
func (c *Complex) String() string {
	if c.im.Sign() == 0 {
		return c.re.RatString()
	}
	s := c.im.RatString() + "i"
	if c.re.Sign() == 0 {
		return s
	}
	if c.im.Sign() > 0 {
		return c.re.RatString() + "+" + s
	}
	return c.re.RatString() + s
}
