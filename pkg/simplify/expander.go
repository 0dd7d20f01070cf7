package simplify

import (
	"github.com/gocas/gocas/pkg/expr"
	"github.com/gocas/gocas/pkg/number"
)

// complexExpander distributes products over sums:
//
//	(a+b)*c -> a*c + b*c
//
// After distribution the resulting terms are canonicalized: repeated
// factors merge into powers (x*x -> x^2) and structurally equal terms
// merge by summing their numeric coefficients (x+x -> 2*x), so the
// expanded form is ready for the trailing cleanup passes.
type complexExpander struct {
	expr.Identity
}

// factorPower is one symbolic factor of a term with its collected exponent.
type factorPower struct {
	base *expr.Expr
	exp  number.Number
}

// term is a product in canonical form: a numeric coefficient and an
// ordered factor list.
type term struct {
	coef    number.Number
	factors []factorPower
}

func (p *complexExpander) Multiply(orig *expr.Expr, children []*expr.Expr) *expr.Expr {
	sums := 0
	for _, c := range children {
		if summands(c) != nil {
			sums++
		}
	}
	if sums == 0 {
		return p.Identity.Multiply(orig, children)
	}

	// Cross product of all children, distributing over every sum.
	terms := []term{{coef: number.One()}}
	for _, c := range children {
		parts := summands(c)
		if parts == nil {
			for i := range terms {
				terms[i] = mulInto(terms[i], c)
			}
			continue
		}
		var next []term
		for _, t := range terms {
			for _, part := range parts {
				nt := term{
					coef:    t.coef,
					factors: append([]factorPower(nil), t.factors...),
				}
				if part.sign == expr.Minus {
					nt.coef = nt.coef.Neg()
				}
				for _, f := range part.factors {
					nt = mulInto(nt, f)
				}
				next = append(next, nt)
			}
		}
		terms = next
	}

	return p.rebuildSum(collectTerms(terms))
}

// summand is one addend of a sum, decomposed into a sign and its factors.
type summand struct {
	sign    expr.Sign
	factors []*expr.Expr
}

// summands decomposes e into addends when e is a sum (or a negated sum);
// it returns nil when e is not distributable.
func summands(e *expr.Expr) []summand {
	flip := expr.Plus
	if e.Kind() == expr.Negate {
		flip = expr.Minus
		e = e.Child(0)
	}
	if e.Kind() != expr.Add {
		return nil
	}
	out := make([]summand, e.NumChildren())
	for i, c := range e.Children() {
		s := summand{sign: e.Sign(i) * flip}
		if c.Kind() == expr.Multiply {
			s.factors = c.Children()
		} else {
			s.factors = []*expr.Expr{c}
		}
		out[i] = s
	}
	return out
}

// mulInto multiplies a single factor into a term, folding literals into
// the coefficient and merging repeated bases into powers.
func mulInto(t term, f *expr.Expr) term {
	switch f.Kind() {
	case expr.Literal:
		t.coef = t.coef.Mul(f.Num())
		return t
	case expr.Negate:
		t.coef = t.coef.Neg()
		return mulInto(t, f.Child(0))
	}

	base := f
	exp := number.Number(number.One())
	if f.Kind() == expr.Power && f.Child(1).Kind() == expr.Literal {
		base = f.Child(0)
		exp = f.Child(1).Num()
	}
	for i := range t.factors {
		if expr.Equal(t.factors[i].base, base) {
			t.factors[i].exp = t.factors[i].exp.Add(exp)
			return t
		}
	}
	t.factors = append(t.factors, factorPower{base: base, exp: exp})
	return t
}

// collectTerms merges structurally equal terms by summing coefficients,
// preserving first-seen order and dropping cancelled terms.
func collectTerms(terms []term) []term {
	var out []term
outer:
	for _, t := range terms {
		for i := range out {
			if sameFactors(out[i].factors, t.factors) {
				out[i].coef = out[i].coef.Add(t.coef)
				continue outer
			}
		}
		out = append(out, t)
	}
	kept := out[:0]
	for _, t := range out {
		if !t.coef.IsZero() {
			kept = append(kept, t)
		}
	}
	return kept
}

func sameFactors(a, b []factorPower) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].exp.Equal(b[i].exp) || !expr.Equal(a[i].base, b[i].base) {
			return false
		}
	}
	return true
}

// rebuildSum turns collected terms back into an expression.
func (p *complexExpander) rebuildSum(terms []term) *expr.Expr {
	if len(terms) == 0 {
		return p.B.Literal(number.Zero())
	}
	children := make([]*expr.Expr, len(terms))
	signs := make([]expr.Sign, len(terms))
	for i, t := range terms {
		signs[i] = expr.Plus
		coef := t.coef
		if coef.IsReal() && !coef.IsPositiveReal() {
			signs[i] = expr.Minus
			coef = coef.Neg()
		}
		children[i] = p.rebuildTerm(coef, t.factors)
	}
	if len(children) == 1 && signs[0] == expr.Plus {
		return children[0]
	}
	if len(children) == 1 {
		return p.B.Negate(children[0])
	}
	return p.B.AddSigned(children, signs)
}

// rebuildTerm turns one canonical term back into an expression.
func (p *complexExpander) rebuildTerm(coef number.Number, factors []factorPower) *expr.Expr {
	var parts []*expr.Expr
	if !coef.IsOne() || len(factors) == 0 {
		parts = append(parts, p.B.Literal(coef))
	}
	for _, f := range factors {
		switch {
		case f.exp.IsZero():
			// x^0 contributes nothing to the product.
		case f.exp.IsOne():
			parts = append(parts, f.base)
		default:
			parts = append(parts, p.B.Power(f.base, p.B.Literal(f.exp)))
		}
	}
	if len(parts) == 0 {
		return p.B.Literal(number.One())
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return p.B.MultiplyN(parts)
}
