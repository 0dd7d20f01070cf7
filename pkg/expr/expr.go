// Package expr defines the immutable expression tree and the machinery
// that builds and rebuilds it.
//
// Expressions form a DAG: transformations produce new roots and reuse
// unchanged subtrees by reference, so a node may be shared by several
// parents. Nodes are never mutated after construction, which also makes
// cycles impossible (every node is built bottom-up from finished children).
package expr

import (
	"github.com/gocas/gocas/pkg/number"
)

// Kind identifies the type of an expression node.
type Kind uint8

const (
	Literal Kind = iota
	Symbol
	Add
	Multiply
	Negate
	Divide
	Modulus
	Power
	Factorial
)

// String returns a readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Symbol:
		return "symbol"
	case Add:
		return "add"
	case Multiply:
		return "multiply"
	case Negate:
		return "negate"
	case Divide:
		return "divide"
	case Modulus:
		return "modulus"
	case Power:
		return "power"
	case Factorial:
		return "factorial"
	default:
		return "unknown"
	}
}

// Sign is an entry of an Add node's sign vector. The numeric values make
// sign algebra arithmetic: multiplying two signs composes them.
type Sign int8

const (
	Plus  Sign = 1
	Minus Sign = -1
)

// Expr is an immutable expression node.
//
// Only Add nodes carry a sign vector, always the same length as the child
// list. Negate is reserved for the explicit unary minus produced by the
// parser and by sign-normalizing rewrites.
type Expr struct {
	kind     Kind
	num      number.Number // Literal payload
	name     string        // Symbol payload
	children []*Expr
	signs    []Sign // Add only
}

// Kind returns the node's kind tag.
func (e *Expr) Kind() Kind { return e.kind }

// Num returns the Literal payload, nil for other kinds.
func (e *Expr) Num() number.Number { return e.num }

// Name returns the Symbol payload, "" for other kinds.
func (e *Expr) Name() string { return e.name }

// NumChildren returns the child count.
func (e *Expr) NumChildren() int { return len(e.children) }

// Child returns the i-th child.
func (e *Expr) Child(i int) *Expr { return e.children[i] }

// Children returns the child slice. Callers must not modify it.
func (e *Expr) Children() []*Expr { return e.children }

// Signs returns an Add node's sign vector, nil for other kinds.
// Callers must not modify it.
func (e *Expr) Signs() []Sign { return e.signs }

// Sign returns the i-th sign of an Add node.
func (e *Expr) Sign(i int) Sign { return e.signs[i] }

// IsLiteral reports whether e is a literal, optionally matching a predicate.
func (e *Expr) IsLiteral() bool { return e.kind == Literal }

// IsSymbolNamed reports whether e is a zero-argument symbol with the given name.
func (e *Expr) IsSymbolNamed(name string) bool {
	return e.kind == Symbol && e.name == name && len(e.children) == 0
}

// Equal reports structural equality: same kind, same payload, same signs
// and pairwise-equal children. Shared subtrees compare equal by pointer
// first, which keeps comparisons of rebuilt trees cheap.
func Equal(a, b *Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.kind != b.kind || len(a.children) != len(b.children) {
		return false
	}
	switch a.kind {
	case Literal:
		if !a.num.Equal(b.num) {
			return false
		}
	case Symbol:
		if a.name != b.name {
			return false
		}
	case Add:
		for i := range a.signs {
			if a.signs[i] != b.signs[i] {
				return false
			}
		}
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
