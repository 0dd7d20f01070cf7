package parser

import (
	"github.com/gocas/gocas/pkg/token"
	"github.com/gocas/gocas/pkg/types"
)

// prevClass tracks what the previous significant token was. It drives
// unary/binary disambiguation and implicit multiplication.
type prevClass uint8

const (
	prevNone    prevClass = iota // start of input
	prevOperand                  // literal, variable, ")", "!"
	prevOperator
	prevOpen
	prevComma
)

type entryKind uint8

const (
	entryOp entryKind = iota
	entryParen
	entryFunc
)

// stackEntry is one element of the shunting-yard operator stack.
type stackEntry struct {
	kind entryKind
	op   opInfo
	name string // entryFunc
	args int    // commas seen inside an entryFunc
	pos  int
}

// shuntingYard converts a whitespace-free token stream into an RPN command
// stream, applying the operator table, unary/binary disambiguation,
// implicit multiplication and function calls.
func shuntingYard(tokens []token.Token, srcLen int) ([]Command, error) {
	var (
		output []Command
		stack  []stackEntry
		prev   = prevNone
	)

	emitTop := func() {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		output = append(output, Command{
			Type: CmdSymbol, Name: e.op.name, Arity: e.op.arity, Pos: e.pos,
		})
	}

	pushBinary := func(op opInfo, pos int) {
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if top.kind != entryOp {
				break
			}
			if top.op.prec > op.prec || (top.op.prec == op.prec && !op.rightAssoc) {
				emitTop()
				continue
			}
			break
		}
		stack = append(stack, stackEntry{kind: entryOp, op: op, pos: pos})
	}

	// Implicit multiplication has the same precedence as explicit "*".
	implicitMul := func(pos int) {
		pushBinary(binaryOps["*"], pos)
	}

	misplaced := func(t token.Token) error {
		return types.NewError(types.ErrMisplacedToken,
			"unexpected "+t.Kind.String(), t.Pos).WithToken(t.Text)
	}

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.Kind {
		case token.Literal:
			if prev == prevOperand {
				implicitMul(t.Pos)
			}
			output = append(output, Command{Type: CmdLiteral, Name: t.Text, Pos: t.Pos})
			prev = prevOperand

		case token.Symbol:
			if isOperatorText(t.Text) {
				var err error
				prev, err = handleOperator(t, prev, &output, &stack, pushBinary)
				if err != nil {
					return nil, err
				}
				continue
			}
			// Identifier: either a function call or a free variable.
			if prev == prevOperand {
				implicitMul(t.Pos)
			}
			if i+1 < len(tokens) && tokens[i+1].Kind == token.OpenParen {
				stack = append(stack, stackEntry{kind: entryFunc, name: t.Text, pos: t.Pos})
				i++ // consume the open paren
				prev = prevOpen
				continue
			}
			output = append(output, Command{Type: CmdSymbol, Name: t.Text, Pos: t.Pos})
			prev = prevOperand

		case token.OpenParen:
			if prev == prevOperand {
				implicitMul(t.Pos)
			}
			stack = append(stack, stackEntry{kind: entryParen, pos: t.Pos})
			prev = prevOpen

		case token.CloseParen:
			if prev == prevOperator || prev == prevComma {
				return nil, misplaced(t)
			}
			for len(stack) > 0 && stack[len(stack)-1].kind == entryOp {
				emitTop()
			}
			if len(stack) == 0 {
				return nil, types.NewError(types.ErrUnbalancedParen,
					"unmatched close parenthesis", t.Pos)
			}
			e := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			switch e.kind {
			case entryFunc:
				arity := 0
				if prev != prevOpen {
					arity = e.args + 1
				}
				output = append(output, Command{
					Type: CmdSymbol, Name: e.name, Arity: arity, Pos: e.pos,
				})
			case entryParen:
				if prev == prevOpen {
					return nil, types.NewError(types.ErrMisplacedToken,
						"empty parentheses", t.Pos)
				}
			}
			prev = prevOperand

		case token.Comma:
			if prev != prevOperand {
				return nil, misplaced(t)
			}
			for len(stack) > 0 && stack[len(stack)-1].kind == entryOp {
				emitTop()
			}
			if len(stack) == 0 || stack[len(stack)-1].kind != entryFunc {
				return nil, types.NewError(types.ErrBadFunctionCall,
					"comma outside function call", t.Pos)
			}
			stack[len(stack)-1].args++
			prev = prevComma

		case token.Whitespace:
			// Filtered by the caller; ignore defensively.

		default:
			return nil, misplaced(t)
		}
	}

	switch prev {
	case prevNone:
		return nil, types.NewError(types.ErrEmptyExpression, "empty input", 0)
	case prevOperator, prevComma, prevOpen:
		return nil, types.NewError(types.ErrUnexpectedEnd,
			"input ended mid-expression", srcLen)
	}

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		if e.kind != entryOp {
			return nil, types.NewError(types.ErrUnbalancedParen,
				"unmatched open parenthesis", srcLen)
		}
		emitTop()
	}
	return output, nil
}

// handleOperator processes one operator-spelling symbol token and returns
// the new previous-token class.
func handleOperator(t token.Token, prev prevClass, output *[]Command,
	stack *[]stackEntry, pushBinary func(opInfo, int)) (prevClass, error) {

	unaryPosition := prev == prevNone || prev == prevOpen ||
		prev == prevComma || prev == prevOperator

	switch t.Text {
	case "+", "-":
		if unaryPosition {
			// Unary plus is a no-op; unary minus becomes "ng".
			if t.Text == "-" {
				*stack = append(*stack, stackEntry{kind: entryOp, op: unaryMinus, pos: t.Pos})
			}
			return prevOperator, nil
		}
		pushBinary(binaryOps[t.Text], t.Pos)
		return prevOperator, nil

	case "!":
		// Postfix factorial binds tightest; nothing on the stack can
		// outrank it, so the command is emitted immediately.
		if prev != prevOperand {
			return prev, types.NewError(types.ErrMisplacedToken,
				"factorial needs an operand", t.Pos).WithToken(t.Text)
		}
		*output = append(*output, Command{Type: CmdSymbol, Name: "!", Arity: 1, Pos: t.Pos})
		return prevOperand, nil

	default: // "*", "/", "%", "^"
		if prev != prevOperand {
			return prev, types.NewError(types.ErrMisplacedToken,
				"operator needs a left operand", t.Pos).WithToken(t.Text)
		}
		pushBinary(binaryOps[t.Text], t.Pos)
		return prevOperator, nil
	}
}
