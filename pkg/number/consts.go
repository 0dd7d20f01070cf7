package number

import "math/big"

// Decimal approximations of the classical constants, 100 digits after the
// point. They back the numeric evaluator only; the symbolic layer keeps
// pi and e as symbols.
const (
	piDigits = "3." +
		"14159265358979323846264338327950288419716939937510" +
		"58209749445923078164062862089986280348253421170679"
	eDigits = "2." +
		"71828182845904523536028747135266249775724709369995" +
		"95749669676277240766303535475945713821785251664274"
)

// Pi returns a rational approximation of pi.
func Pi() Number {
	r, _ := new(big.Rat).SetString(piDigits)
	return FromRat(r)
}

// E returns a rational approximation of Euler's number.
func E() Number {
	r, _ := new(big.Rat).SetString(eDigits)
	return FromRat(r)
}
