// Package gocas is an exact symbolic algebra core.
//
// It parses infix expressions into immutable trees, normalizes them with a
// pipeline of algebraic rewriting passes, evaluates fully-numeric trees to
// exact complex rationals, and renders results both as one-line infix text
// and as a two-dimensional character grid with stacked fractions and
// raised exponents.
//
// # Quick Start
//
//	// Parse, simplify, render
//	e, err := gocas.Parse("(x+1)*(x+1)")
//	out := gocas.Render(gocas.Simplify(e))
//	fmt.Println(out.OneLine) // x^2+2*x+1
//
//	// One-shot pipeline
//	res, err := gocas.Submit("6/8")
//	fmt.Println(res.Output.OneLine) // 3/4
//
//	// With options
//	s := gocas.NewSession(gocas.WithSigFigs(20), gocas.WithMaxPasses(50))
//	e, err = s.Parse("2^100/3!")
//
// Arithmetic is exact: no floating point is involved anywhere. Operations
// without an exact result (irrational powers, modulus of fractions) fail
// rather than approximate.
//
// For detailed documentation, see:
//   - Parser: github.com/gocas/gocas/pkg/parser
//   - Expressions: github.com/gocas/gocas/pkg/expr
//   - Simplification: github.com/gocas/gocas/pkg/simplify
//   - Rendering: github.com/gocas/gocas/pkg/render
package gocas

import (
	"fmt"

	"github.com/gocas/gocas/pkg/eval"
	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
	"github.com/gocas/gocas/pkg/parser"
	"github.com/gocas/gocas/pkg/render"
	"github.com/gocas/gocas/pkg/simplify"
	"github.com/gocas/gocas/pkg/token"
)

// Version returns the current version of GoCAS.
func Version() string {
	return "v0.1.0-dev"
}

// Option configures a Session.
type Option func(*Session)

// WithSigFigs sets the number of significant digits used when rendering
// non-terminating decimal values. Values < 1 select the default (100).
func WithSigFigs(n int) Option {
	return func(s *Session) { s.sigFigs = n }
}

// WithMaxPasses bounds the simplifier's fixed-point loop. Values < 1
// select the default (20).
func WithMaxPasses(n int) Option {
	return func(s *Session) { s.maxPasses = n }
}

// Rendered is a rendering of an expression or number in both output
// forms. It is a plain value.
type Rendered struct {
	OneLine string   // single-line infix text
	Grid    []string // two-dimensional layout, one string per row
}

// Result is the outcome of Submit: the parsed input and its simplified
// form, both rendered, plus the numeric value when the simplified form
// is fully numeric.
type Result struct {
	Input  Rendered
	Output Rendered
	Value  *Rendered // nil when the output is not numeric
}

// Session bundles the pipeline's collaborators under one configuration.
// A Session is immutable after construction and safe for concurrent use.
type Session struct {
	sigFigs   int
	maxPasses int

	formatter  *number.Formatter
	builder    *expr.Builder
	parser     *parser.Parser
	simplifier *simplify.Simplifier
	oneline    *render.Infix
	grid       *render.Grid
}

// NewSession creates a Session with the given options.
func NewSession(opts ...Option) *Session {
	s := &Session{
		sigFigs:   number.DefaultSigFigs,
		maxPasses: simplify.DefaultMaxPasses,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.formatter = number.NewFormatter(s.sigFigs)
	s.builder = expr.NewBuilder()
	s.parser = parser.New(token.NewTokenizer(), token.Infix(), s.formatter, s.builder)
	s.simplifier = simplify.NewSimplifier(s.builder, s.maxPasses)
	s.oneline = render.NewInfix(s.formatter)
	s.grid = render.NewGrid(s.formatter)
	return s
}

// Parse parses infix source text into an expression tree.
func (s *Session) Parse(src string) (*expr.Expr, error) {
	return s.parser.Parse(src)
}

// MustParse is like Parse but panics on malformed input. It simplifies
// safe initialization of package-level expressions.
func (s *Session) MustParse(src string) *expr.Expr {
	e, err := s.Parse(src)
	if err != nil {
		panic(fmt.Sprintf("gocas: Parse(%q): %v", src, err))
	}
	return e
}

// Simplify normalizes e through the full rewriting pipeline.
func (s *Session) Simplify(e *expr.Expr) *expr.Expr {
	return s.simplifier.Simplify(e)
}

// Evaluate reduces e to an exact number. It fails when e contains free
// symbols or an operation without an exact result.
func (s *Session) Evaluate(e *expr.Expr) (number.Number, error) {
	return eval.Evaluate(e)
}

// Render renders e in both output forms.
func (s *Session) Render(e *expr.Expr) Rendered {
	return Rendered{
		OneLine: s.oneline.Render(e),
		Grid:    s.grid.Render(e).Lines(),
	}
}

// RenderNumber renders a bare number in both output forms.
func (s *Session) RenderNumber(n number.Number) Rendered {
	text := s.formatter.FormatNumber(n)
	return Rendered{OneLine: text, Grid: []string{text}}
}

// Submit runs the whole pipeline on one input line: parse, render the
// input, simplify, render the output, and evaluate when the simplified
// form is numeric.
func (s *Session) Submit(src string) (*Result, error) {
	e, err := s.Parse(src)
	if err != nil {
		return nil, err
	}
	res := &Result{Input: s.Render(e)}
	simplified := s.Simplify(e)
	res.Output = s.Render(simplified)
	if n, err := s.Evaluate(simplified); err == nil {
		v := s.RenderNumber(n)
		res.Value = &v
	}
	return res, nil
}

// defaultSession backs the package-level convenience functions.
var defaultSession = NewSession()

// Parse parses src using the default Session.
func Parse(src string) (*expr.Expr, error) { return defaultSession.Parse(src) }

// MustParse is like Parse but panics on malformed input.
func MustParse(src string) *expr.Expr { return defaultSession.MustParse(src) }

// Simplify normalizes e using the default Session.
func Simplify(e *expr.Expr) *expr.Expr { return defaultSession.Simplify(e) }

// Evaluate reduces e to an exact number using the default Session.
func Evaluate(e *expr.Expr) (number.Number, error) { return defaultSession.Evaluate(e) }

// Render renders e using the default Session.
func Render(e *expr.Expr) Rendered { return defaultSession.Render(e) }

// RenderNumber renders a bare number using the default Session.
func RenderNumber(n number.Number) Rendered { return defaultSession.RenderNumber(n) }

// Submit runs the whole pipeline on src using the default Session.
func Submit(src string) (*Result, error) { return defaultSession.Submit(src) }
