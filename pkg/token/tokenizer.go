package token

import (
	"github.com/gocas/gocas/pkg/types"
)

// Tokenizer consumes input left to right using an ordered scanner set.
// It is stateless and safe to share across calls.
type Tokenizer struct{}

// NewTokenizer returns a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits src into tokens. At each position the scanners are tried
// in priority order and the first match wins. If no scanner matches, the
// returned error carries the failing position.
func (t *Tokenizer) Tokenize(src string, scanners []Scanner) ([]Token, error) {
	var tokens []Token
	pos := 0
	for pos < len(src) {
		end := -1
		var kind Kind
		for _, s := range scanners {
			if e := s.Scan(src, pos); e > pos {
				end = e
				kind = s.Kind
				break
			}
		}
		if end < 0 {
			return tokens, types.NewError(types.ErrNoScannerMatch,
				"unrecognized input", pos).WithToken(src[pos : pos+1])
		}
		tokens = append(tokens, Token{Kind: kind, Text: src[pos:end], Pos: pos})
		pos = end
	}
	return tokens, nil
}
