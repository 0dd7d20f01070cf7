// Package number implements the arbitrary-precision arithmetic consumed by
// the expression layer.
//
// The expression tree and the evaluator only ever speak to the [Number]
// interface; the concrete representation is [Complex], an exact
// complex-rational built on math/big. Operations that have no exact result
// (irrational powers, factorials of non-integers, division by zero) report
// failure instead of approximating, so the caller can leave the expression
// in symbolic form.
package number

// Number is an immutable arbitrary-precision real-or-complex value.
//
// All operations return new values; a Number is never mutated after
// construction. Operations returning (Number, bool) yield false when the
// result does not exist or cannot be represented exactly.
type Number interface {
	Add(Number) Number
	Sub(Number) Number
	Mul(Number) Number
	Div(Number) (Number, bool)
	Mod(Number) (Number, bool)
	Pow(Number) (Number, bool)
	Neg() Number
	Factorial() (Number, bool)
	GCD(Number) (Number, bool)

	IsZero() bool
	IsOne() bool
	IsInteger() bool
	IsReal() bool
	IsPositiveReal() bool

	// Real and Imag return the corresponding part as a real Number.
	Real() Number
	Imag() Number
	// SwapRealImag exchanges the real and imaginary parts.
	SwapRealImag() Number
	// RealOnly drops the imaginary part.
	RealOnly() Number

	// Cmp defines a deterministic total order: by real part, then by
	// imaginary part. It is used for canonical child ordering, not for
	// mathematical comparison of complex values.
	Cmp(Number) int
	Equal(Number) bool

	// String returns a plain decimal rendering, primarily for debugging.
	// User-facing output goes through Formatter.
	String() string
}
