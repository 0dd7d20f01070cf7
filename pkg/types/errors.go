// Package types defines the shared error model for GoCAS.
//
// Every failure that can reach a caller is a *Error carrying a stable
// string code, a human-readable message and the byte offset in the
// original input where the problem was detected. Internal invariant
// violations are not represented here; those panic.
package types

import "fmt"

// ErrorCode identifies a class of failure.
type ErrorCode string

const (
	// Sxxx: tokenizer/parser errors
	ErrNoScannerMatch   ErrorCode = "S101" // no scanner matched at the stop position
	ErrUnexpectedEnd    ErrorCode = "S102" // input ended mid-expression
	ErrUnbalancedParen  ErrorCode = "S103" // unmatched open or close parenthesis
	ErrMisplacedToken   ErrorCode = "S104" // token not valid in this position
	ErrEmptyExpression  ErrorCode = "S105" // nothing to parse
	ErrTrailingGarbage  ErrorCode = "S106" // leftover operands after the build
	ErrUnknownOperator  ErrorCode = "S107" // builder rejected a command name
	ErrBadFunctionCall  ErrorCode = "S108" // malformed argument list

	// Nxxx: number formatting errors
	ErrNumberFormat ErrorCode = "N201" // literal rejected by the number formatter

	// Exxx: evaluation errors
	ErrNotNumeric     ErrorCode = "E301" // expression contains a free symbol
	ErrInexact        ErrorCode = "E302" // operation has no exact numeric result
	ErrDivisionByZero ErrorCode = "E303"
)

// Error is a structured GoCAS error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int // byte offset in the source input, -1 when not applicable
	Token    string
	Err      error
}

// NewError creates a new error with the given code, message and position.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("%s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithToken adds the offending token text to the error.
func (e *Error) WithToken(token string) *Error {
	e.Token = token
	return e
}

// WithCause wraps another error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}
