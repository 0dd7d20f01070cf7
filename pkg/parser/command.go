package parser

// CommandType distinguishes the two RPN command shapes.
type CommandType uint8

const (
	// CmdLiteral pushes a parsed number. Arity is always 0.
	CmdLiteral CommandType = iota
	// CmdSymbol pops Arity operands and pushes the node built for Name.
	CmdSymbol
)

// Command is one entry of the Reverse-Polish stream the shunting-yard
// stage emits. Name is either an operator spelling ("+", "ng", ...) or a
// user identifier; the Builder dispatches on it.
type Command struct {
	Type  CommandType
	Name  string
	Arity int
	Pos   int // byte offset of the originating token
}
