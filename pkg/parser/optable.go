package parser

// opInfo describes one operator of the infix grammar.
type opInfo struct {
	name       string // command name emitted to the RPN stream
	arity      int
	prec       int // higher binds tighter
	rightAssoc bool
}

// Binary operator table. Implicit multiplication reuses the "*" entry.
var binaryOps = map[string]opInfo{
	"+": {name: "+", arity: 2, prec: 2},
	"-": {name: "-", arity: 2, prec: 2},
	"*": {name: "*", arity: 2, prec: 3},
	"/": {name: "/", arity: 2, prec: 3},
	"%": {name: "%", arity: 2, prec: 3},
	"^": {name: "^", arity: 2, prec: 5, rightAssoc: true},
}

// Unary minus. Unary plus is a no-op and has no table entry.
var unaryMinus = opInfo{name: "ng", arity: 1, prec: 4, rightAssoc: true}

// isOperatorText reports whether a symbol token spells an operator.
func isOperatorText(s string) bool {
	switch s {
	case "+", "-", "*", "/", "%", "^", "!":
		return true
	default:
		return false
	}
}
