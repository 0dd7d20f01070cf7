// Package parser turns infix source text into an expression tree.
//
// Parsing happens in three stages:
//   - the tokenizer consumes the input against the infix scanner set
//   - a shunting-yard pass converts the token stream into a Reverse-Polish
//     command stream, resolving precedence, associativity, unary minus,
//     implicit multiplication and function calls
//   - a stack fold replays the commands through the expression Builder
//
// All failures carry the byte offset where parsing stopped.
package parser

import (
	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
	"github.com/gocas/gocas/pkg/token"
	"github.com/gocas/gocas/pkg/types"
)

// Parser parses infix expressions. It holds only shared immutable
// collaborators and is safe for concurrent use.
type Parser struct {
	tokenizer *token.Tokenizer
	scanners  []token.Scanner
	formatter *number.Formatter
	builder   *expr.Builder
}

// New creates a parser from its collaborators.
func New(t *token.Tokenizer, scanners []token.Scanner,
	f *number.Formatter, b *expr.Builder) *Parser {
	return &Parser{
		tokenizer: t,
		scanners:  scanners,
		formatter: f,
		builder:   b,
	}
}

// Default returns a parser wired with the standard infix scanner set and
// the default number formatter.
func Default() *Parser {
	return New(token.NewTokenizer(), token.Infix(),
		number.NewFormatter(number.DefaultSigFigs), expr.NewBuilder())
}

// Parse parses source text into an expression tree.
func (p *Parser) Parse(src string) (*expr.Expr, error) {
	commands, err := p.Commands(src)
	if err != nil {
		return nil, err
	}
	return p.build(commands, len(src))
}

// Commands runs the tokenizer and the shunting-yard stage only, returning
// the Reverse-Polish command stream.
func (p *Parser) Commands(src string) ([]Command, error) {
	tokens, err := p.tokenizer.Tokenize(src, p.scanners)
	if err != nil {
		return nil, err
	}
	significant := tokens[:0:0]
	for _, t := range tokens {
		if t.Kind != token.Whitespace {
			significant = append(significant, t)
		}
	}
	return shuntingYard(significant, len(src))
}

// build folds the command stream into a tree. The last value popped for a
// symbol command becomes the leftmost child, so children end up in source
// order.
func (p *Parser) build(commands []Command, srcLen int) (*expr.Expr, error) {
	var stack []*expr.Expr
	for _, c := range commands {
		switch c.Type {
		case CmdLiteral:
			n, ok := p.formatter.Format(c.Name)
			if !ok {
				return nil, types.NewError(types.ErrNumberFormat,
					"malformed numeric literal", c.Pos).WithToken(c.Name)
			}
			stack = append(stack, p.builder.Literal(n))
		case CmdSymbol:
			if len(stack) < c.Arity {
				return nil, types.NewError(types.ErrMisplacedToken,
					"missing operand", c.Pos).WithToken(c.Name)
			}
			children := stack[len(stack)-c.Arity:]
			node, err := p.builder.Op(c.Name, children)
			if err != nil {
				return nil, types.NewError(types.ErrUnknownOperator,
					"cannot build node", c.Pos).WithToken(c.Name).WithCause(err)
			}
			stack = append(stack[:len(stack)-c.Arity], node)
		}
	}
	if len(stack) != 1 {
		return nil, types.NewError(types.ErrTrailingGarbage,
			"expression did not reduce to a single value", srcLen)
	}
	return stack[0], nil
}
