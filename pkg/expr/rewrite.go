package expr

// Rewriter receives one callback per node kind during a post-order
// traversal. Each callback gets the original node and the already-rewritten
// children (in source order) and must return the replacement node.
//
// A rewrite pass embeds [Identity], which rebuilds every node unchanged,
// and overrides only the kinds it cares about.
type Rewriter interface {
	Literal(orig *Expr, children []*Expr) *Expr
	Symbol(orig *Expr, children []*Expr) *Expr
	Add(orig *Expr, children []*Expr) *Expr
	Multiply(orig *Expr, children []*Expr) *Expr
	Divide(orig *Expr, children []*Expr) *Expr
	Modulus(orig *Expr, children []*Expr) *Expr
	Power(orig *Expr, children []*Expr) *Expr
	Negate(orig *Expr, children []*Expr) *Expr
	Factorial(orig *Expr, children []*Expr) *Expr
}

// Rewrite applies r to every node of root in post order, children left to
// right, and returns the new root. The input tree is left untouched.
func Rewrite(root *Expr, r Rewriter) *Expr {
	var children []*Expr
	if n := len(root.children); n > 0 {
		children = make([]*Expr, n)
		for i, c := range root.children {
			children[i] = Rewrite(c, r)
		}
	}
	switch root.kind {
	case Literal:
		return r.Literal(root, children)
	case Symbol:
		return r.Symbol(root, children)
	case Add:
		return r.Add(root, children)
	case Multiply:
		return r.Multiply(root, children)
	case Divide:
		return r.Divide(root, children)
	case Modulus:
		return r.Modulus(root, children)
	case Power:
		return r.Power(root, children)
	case Negate:
		return r.Negate(root, children)
	case Factorial:
		return r.Factorial(root, children)
	default:
		panic("expr: unknown node kind in Rewrite")
	}
}

// Identity is the default Rewriter: every callback rebuilds the node with
// the new children, reusing the original node when nothing changed.
type Identity struct {
	B *Builder
}

// Literal returns the original leaf; literals are immutable and shared.
func (id Identity) Literal(orig *Expr, _ []*Expr) *Expr {
	return orig
}

func (id Identity) Symbol(orig *Expr, children []*Expr) *Expr {
	if sameChildren(orig, children) {
		return orig
	}
	return id.B.Symbol(orig.name, children...)
}

func (id Identity) Add(orig *Expr, children []*Expr) *Expr {
	if sameChildren(orig, children) {
		return orig
	}
	return id.B.AddSigned(children, orig.signs)
}

func (id Identity) Multiply(orig *Expr, children []*Expr) *Expr {
	if sameChildren(orig, children) {
		return orig
	}
	return id.B.MultiplyN(children)
}

func (id Identity) Divide(orig *Expr, children []*Expr) *Expr {
	if sameChildren(orig, children) {
		return orig
	}
	return id.B.Divide(children[0], children[1])
}

func (id Identity) Modulus(orig *Expr, children []*Expr) *Expr {
	if sameChildren(orig, children) {
		return orig
	}
	return id.B.Modulus(children[0], children[1])
}

func (id Identity) Power(orig *Expr, children []*Expr) *Expr {
	if sameChildren(orig, children) {
		return orig
	}
	return id.B.Power(children[0], children[1])
}

func (id Identity) Negate(orig *Expr, children []*Expr) *Expr {
	if sameChildren(orig, children) {
		return orig
	}
	return id.B.Negate(children[0])
}

func (id Identity) Factorial(orig *Expr, children []*Expr) *Expr {
	if sameChildren(orig, children) {
		return orig
	}
	return id.B.Factorial(children[0])
}

// sameChildren reports whether the rewritten children are pointer-identical
// to the original ones, in which case the original node can be reused.
func sameChildren(orig *Expr, children []*Expr) bool {
	if len(orig.children) != len(children) {
		return false
	}
	for i := range children {
		if orig.children[i] != children[i] {
			return false
		}
	}
	return true
}
