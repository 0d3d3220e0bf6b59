package comugi

import (
	"github.com/higumax/comugi/internal/chardef"
	"github.com/higumax/comugi/internal/costmatrix"
	"github.com/higumax/comugi/internal/dat"
	"github.com/higumax/comugi/internal/vocab"
	"github.com/higumax/comugi/tokenizer"
)

// Config controls analyzer behavior; it is exactly tokenizer.Config,
// re-exported so callers never need to import the tokenizer package
// directly for the common case.
type Config = tokenizer.Config

// DefaultConfig returns the default configuration for New.
func DefaultConfig() Config {
	return tokenizer.DefaultConfig()
}

// Token is one segmented unit of output; see tokenizer.Token.
type Token = tokenizer.Token

// Comugi is the analyzer's public facade over a Tokenizer.
//
// A Comugi is safe to use concurrently from multiple goroutines: the
// underlying artifacts (DoubleArray, VocabStore, cost matrix, character
// category tables) are immutable after load, and each Tokenize call gets
// its own (or a pooled) Lattice instance.
//
// Example:
//
//	c := comugi.MustNew(da, vocabStore, surfaceIndex, costMatrix, charDef, comugi.DefaultConfig())
//	tokens, err := c.Tokenize("東京都", 1)
type Comugi struct {
	tok *tokenizer.Tokenizer
}

// New constructs an analyzer from prebuilt artifacts (spec.md §6): the
// double array, vocabulary store, surface index, cost matrix and
// character-category tables. Loading these artifacts from their source
// files is out of scope; callers obtain them from a separate dictionary
// loader and hand over already-parsed structures.
func New(da *dat.DoubleArray, vocabStore *vocab.Store, surfaceIndex vocab.SurfaceIndex, costMatrix *costmatrix.Matrix, charDef *chardef.CharDef, config Config) (*Comugi, error) {
	tok, err := tokenizer.New(da, vocabStore, surfaceIndex, costMatrix, charDef, config)
	if err != nil {
		return nil, err
	}
	return &Comugi{tok: tok}, nil
}

// MustNew is like New but panics if construction fails.
//
// Example:
//
//	var analyzer = comugi.MustNew(da, vocabStore, surfaceIndex, costMatrix, charDef, comugi.DefaultConfig())
func MustNew(da *dat.DoubleArray, vocabStore *vocab.Store, surfaceIndex vocab.SurfaceIndex, costMatrix *costmatrix.Matrix, charDef *chardef.CharDef, config Config) *Comugi {
	c, err := New(da, vocabStore, surfaceIndex, costMatrix, charDef, config)
	if err != nil {
		panic("comugi: New(...): " + err.Error())
	}
	return c
}

// Tokenize segments sentence into the n best (fewest-cost) segmentations.
// It returns 1..n results (fewer if fewer exist).
func (c *Comugi) Tokenize(sentence string, n int) ([][]Token, error) {
	return c.tok.Tokenize(sentence, n)
}
