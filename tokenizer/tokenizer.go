// Package tokenizer orchestrates the double array, vocabulary store, cost
// matrix and character-category tables into whole-sentence segmentation
// (spec.md §4.5). Tokenizer itself performs no I/O and issues no
// suspension points; it holds only immutable references to precompiled
// artifacts and dispatches each call to a fresh or pooled *lattice.Lattice
// (spec.md §5's reentrancy fix for the Python source's single shared
// Lattice).
package tokenizer

import (
	"sync"
	"unicode/utf8"

	"github.com/higumax/comugi/internal/chardef"
	"github.com/higumax/comugi/internal/costmatrix"
	"github.com/higumax/comugi/internal/dat"
	"github.com/higumax/comugi/internal/vocab"
	"github.com/higumax/comugi/lattice"
)

// Tokenizer segments Japanese text into dictionary-defined tokens with
// minimum-cost (or n-best) path search over the word lattice.
type Tokenizer struct {
	da           *dat.DoubleArray
	vocabStore   *vocab.Store
	surfaceIndex vocab.SurfaceIndex
	costMatrix   *costmatrix.Matrix
	charDef      *chardef.CharDef
	config       Config
	latticePool  sync.Pool
}

// New holds references to the given artifacts; it never mutates them.
// config is validated and an error returned if invalid.
func New(da *dat.DoubleArray, vocabStore *vocab.Store, surfaceIndex vocab.SurfaceIndex, costMatrix *costmatrix.Matrix, charDef *chardef.CharDef, config Config) (*Tokenizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	t := &Tokenizer{
		da:           da,
		vocabStore:   vocabStore,
		surfaceIndex: surfaceIndex,
		costMatrix:   costMatrix,
		charDef:      charDef,
		config:       config,
	}
	t.latticePool.New = func() any { return lattice.New() }
	return t, nil
}

// MustNew is like New but panics if config is invalid.
func MustNew(da *dat.DoubleArray, vocabStore *vocab.Store, surfaceIndex vocab.SurfaceIndex, costMatrix *costmatrix.Matrix, charDef *chardef.CharDef, config Config) *Tokenizer {
	t, err := New(da, vocabStore, surfaceIndex, costMatrix, charDef, config)
	if err != nil {
		panic("tokenizer: MustNew: " + err.Error())
	}
	return t
}

func (t *Tokenizer) acquireLattice() *lattice.Lattice {
	if !t.config.PoolLattices {
		return lattice.New()
	}
	return t.latticePool.Get().(*lattice.Lattice)
}

func (t *Tokenizer) releaseLattice(lat *lattice.Lattice) {
	if !t.config.PoolLattices {
		return
	}
	t.latticePool.Put(lat)
}

// Tokenize segments sentence into the n best (fewest-cost) segmentations,
// per spec.md §4.5. It returns 1..n results (fewer if fewer exist). A
// non-nil error alongside a non-nil result means n-best search stopped
// early (e.g. ErrHeapExhausted) with some completions already found.
func (t *Tokenizer) Tokenize(sentence string, n int) ([][]Token, error) {
	if n < 1 {
		return nil, &InvalidNError{N: n}
	}
	if !utf8.ValidString(sentence) {
		return nil, &EncodingError{Offset: invalidUTF8Offset(sentence)}
	}

	runes := []rune(sentence)
	length := len(runes)

	categories := make([]string, length)
	for i, r := range runes {
		cat, err := t.charDef.CategoryOf(r)
		if err != nil {
			return nil, err
		}
		categories[i] = cat
	}
	unkWordsList := t.charDef.UnknownCandidates(runes, categories)

	lat := t.acquireLattice()
	defer t.releaseLattice(lat)
	lat.Reset(length)

	for i := 0; i < length; i++ {
		cat := categories[i]
		policy := t.charDef.PolicyOf(cat)

		if policy.Invoke {
			t.registerUnknownWords(lat, i, unkWordsList[i], cat)
		}

		remainder := string(runes[i:])
		prefixes, err := t.da.Search(remainder)
		if err != nil {
			return nil, err
		}
		if len(prefixes) > 0 {
			t.registerKnownWords(lat, i, prefixes)
		} else if !policy.Invoke {
			t.registerUnknownWords(lat, i, unkWordsList[i], cat)
		}
	}

	if err := lat.Forward(t.costMatrix); err != nil {
		return nil, err
	}

	if n == 1 {
		return [][]Token{t.toTokens(lat.BestPath())}, nil
	}

	paths, err := lat.NBestPaths(t.costMatrix, n, t.config.MaxHeapSize)
	results := make([][]Token, len(paths))
	for i, p := range paths {
		results[i] = t.toTokens(p)
	}
	return results, err
}

func (t *Tokenizer) registerKnownWords(lat *lattice.Lattice, begin int, prefixes []string) {
	for _, p := range prefixes {
		ids, ok := t.surfaceIndex.Lookup(p)
		if !ok {
			continue
		}
		length := utf8.RuneCountInString(p)
		for _, id := range ids {
			entry := t.vocabStore.Get(id)
			lat.Insert(begin, &lattice.Node{
				EntryIndex: id,
				Surface:    p,
				LID:        entry.LID,
				RID:        entry.RID,
				EmCost:     entry.EmCost,
				Length:     length,
			})
		}
	}
}

func (t *Tokenizer) registerUnknownWords(lat *lattice.Lattice, begin int, words []string, category string) {
	ids, ok := t.surfaceIndex.Lookup(category)
	if !ok {
		return
	}
	for _, w := range words {
		length := utf8.RuneCountInString(w)
		for _, id := range ids {
			entry := t.vocabStore.Get(id)
			lat.Insert(begin, &lattice.Node{
				EntryIndex: id,
				Surface:    w,
				LID:        entry.LID,
				RID:        entry.RID,
				EmCost:     entry.EmCost,
				Length:     length,
			})
		}
	}
}

func (t *Tokenizer) toTokens(path []*lattice.Node) []Token {
	tokens := make([]Token, len(path))
	for i, node := range path {
		entry := t.vocabStore.Get(node.EntryIndex)
		tokens[i] = Token{
			Surface:       node.Surface,
			Pos:           entry.Pos,
			Pos1:          entry.Pos1,
			Base:          entry.Base,
			Pronunciation: entry.Pronunciation,
		}
	}
	return tokens
}

func invalidUTF8Offset(s string) int {
	for i, r := range s {
		if r == utf8.RuneError {
			_, size := utf8.DecodeRuneInString(s[i:])
			if size == 1 {
				return i
			}
		}
	}
	return len(s)
}
