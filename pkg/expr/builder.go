package expr

import (
	"fmt"

	"github.com/gocas/gocas/pkg/number"
	"github.com/gocas/gocas/pkg/types"
)

// Builder is the sole factory for expression nodes. It performs arity
// validation and nothing else; no simplification happens at build time.
//
// Arity violations through the typed constructors are programmer errors
// and panic. The generic Op entry point returns an error instead, because
// it is fed from parsed input.
type Builder struct{}

// NewBuilder returns a Builder. The Builder is stateless and safe to share.
func NewBuilder() *Builder {
	return &Builder{}
}

// Literal wraps a number in a leaf node.
func (b *Builder) Literal(n number.Number) *Expr {
	if n == nil {
		panic("expr: Literal(nil)")
	}
	return &Expr{kind: Literal, num: n}
}

// Symbol builds a free variable (no children), a named constant, or a
// function application (one or more argument children).
func (b *Builder) Symbol(name string, children ...*Expr) *Expr {
	if name == "" {
		panic("expr: Symbol with empty name")
	}
	return &Expr{kind: Symbol, name: name, children: copyChildren(children)}
}

// Add builds l + r.
func (b *Builder) Add(l, r *Expr) *Expr {
	return b.AddSigned([]*Expr{l, r}, []Sign{Plus, Plus})
}

// Subtract builds l - r.
func (b *Builder) Subtract(l, r *Expr) *Expr {
	return b.AddSigned([]*Expr{l, r}, []Sign{Plus, Minus})
}

// AddN builds an n-ary sum with all-positive signs.
func (b *Builder) AddN(children []*Expr) *Expr {
	signs := make([]Sign, len(children))
	for i := range signs {
		signs[i] = Plus
	}
	return b.AddSigned(children, signs)
}

// AddSigned builds an n-ary sum with an explicit sign vector. The vector
// is stored as provided; sign normalization belongs to the rewrite passes.
func (b *Builder) AddSigned(children []*Expr, signs []Sign) *Expr {
	if len(children) == 0 {
		panic("expr: Add with no children")
	}
	if len(children) != len(signs) {
		panic(fmt.Sprintf("expr: Add sign vector length %d != child count %d",
			len(signs), len(children)))
	}
	return &Expr{
		kind:     Add,
		children: copyChildren(children),
		signs:    append([]Sign(nil), signs...),
	}
}

// Negate builds -x.
func (b *Builder) Negate(x *Expr) *Expr {
	return &Expr{kind: Negate, children: []*Expr{x}}
}

// Multiply builds l * r.
func (b *Builder) Multiply(l, r *Expr) *Expr {
	return b.MultiplyN([]*Expr{l, r})
}

// MultiplyN builds an n-ary product.
func (b *Builder) MultiplyN(children []*Expr) *Expr {
	if len(children) == 0 {
		panic("expr: Multiply with no children")
	}
	return &Expr{kind: Multiply, children: copyChildren(children)}
}

// Divide builds top / bottom.
func (b *Builder) Divide(top, bottom *Expr) *Expr {
	return &Expr{kind: Divide, children: []*Expr{top, bottom}}
}

// Modulus builds top % bottom.
func (b *Builder) Modulus(top, bottom *Expr) *Expr {
	return &Expr{kind: Modulus, children: []*Expr{top, bottom}}
}

// Power builds base ^ exponent.
func (b *Builder) Power(base, exponent *Expr) *Expr {
	return &Expr{kind: Power, children: []*Expr{base, exponent}}
}

// Factorial builds x!.
func (b *Builder) Factorial(x *Expr) *Expr {
	return &Expr{kind: Factorial, children: []*Expr{x}}
}

// Op dispatches a command name to the corresponding constructor. The eight
// reserved names build algebraic nodes; any other name builds a Symbol
// with the given children. This uniform dispatch is what lets the parser
// emit every RPN command the same way.
func (b *Builder) Op(name string, children []*Expr) (*Expr, error) {
	switch name {
	case "+":
		if len(children) < 1 {
			return nil, opArityError(name, len(children))
		}
		return b.AddN(children), nil
	case "-":
		if len(children) != 2 {
			return nil, opArityError(name, len(children))
		}
		return b.Subtract(children[0], children[1]), nil
	case "*":
		if len(children) < 1 {
			return nil, opArityError(name, len(children))
		}
		return b.MultiplyN(children), nil
	case "/":
		if len(children) != 2 {
			return nil, opArityError(name, len(children))
		}
		return b.Divide(children[0], children[1]), nil
	case "%":
		if len(children) != 2 {
			return nil, opArityError(name, len(children))
		}
		return b.Modulus(children[0], children[1]), nil
	case "^":
		if len(children) != 2 {
			return nil, opArityError(name, len(children))
		}
		return b.Power(children[0], children[1]), nil
	case "!":
		if len(children) != 1 {
			return nil, opArityError(name, len(children))
		}
		return b.Factorial(children[0]), nil
	case "ng":
		if len(children) != 1 {
			return nil, opArityError(name, len(children))
		}
		return b.Negate(children[0]), nil
	default:
		return b.Symbol(name, children...), nil
	}
}

func opArityError(name string, n int) error {
	return types.NewError(types.ErrUnknownOperator,
		fmt.Sprintf("operator %q cannot take %d operands", name, n), -1)
}

func copyChildren(children []*Expr) []*Expr {
	for _, c := range children {
		if c == nil {
			panic("expr: nil child")
		}
	}
	return append([]*Expr(nil), children...)
}
