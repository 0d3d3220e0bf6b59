// Package chardef classifies code points into dictionary-defined character
// categories and drives unknown-word candidate synthesis (spec.md §4.3).
// Parsing char.def-style source files is the dictionary loader's job and
// explicitly out of scope (spec.md §1); this package only holds the
// already-parsed range and policy tables.
package chardef

import (
	"sort"
	"sync"

	"github.com/higumax/comugi/internal/lru"
)

// FallbackCategory is the code point whose category every unmatched code
// point inherits, per spec.md §4.3: "If none matches, return the category
// of the ASCII character '#'."
const FallbackCategory = '#'

// categoryCacheSize is spec.md §9's suggested LRU size for CategoryOf
// memoization.
const categoryCacheSize = 2048

// Range is an inclusive code-point range [Lo, Hi].
type Range struct {
	Lo, Hi rune
}

// Policy governs unknown-word candidate synthesis for one category
// (spec.md §4.3).
type Policy struct {
	// Invoke: always generate unknown candidates at this category's
	// offsets, even when dictionary lookup succeeded.
	Invoke bool
	// Group: merge consecutive same-category characters into one
	// candidate instead of generating Length candidates of increasing size.
	Group bool
	// Length: generate candidates of lengths 1..Length when Group is false.
	Length int
}

// CharDef holds the category range and policy tables and memoizes
// CategoryOf lookups.
//
// The range and policy tables are read-only after construction. The LRU is
// mutated by every CategoryOf call and is guarded by a mutex, so one
// CharDef may be shared by concurrent Tokenize calls.
type CharDef struct {
	ranges   map[string][]Range
	policies map[string]Policy
	mu       sync.Mutex
	cache    *lru.Cache
}

// New returns a CharDef over the given category range and policy tables.
// The range table is copied, with each category's ranges sorted by Lo; the
// policy map is retained by reference (the loader hands over an
// already-parsed, logically-immutable structure per spec.md §1).
func New(ranges map[string][]Range, policies map[string]Policy) *CharDef {
	sorted := make(map[string][]Range, len(ranges))
	for name, rs := range ranges {
		cp := make([]Range, len(rs))
		copy(cp, rs)
		sort.Slice(cp, func(i, j int) bool { return cp[i].Lo < cp[j].Lo })
		sorted[name] = cp
	}
	return &CharDef{
		ranges:   sorted,
		policies: policies,
		cache:    lru.New(categoryCacheSize),
	}
}

// PolicyOf returns the policy for a category name.
func (c *CharDef) PolicyOf(category string) Policy {
	return c.policies[category]
}

// CategoryOf classifies a code point, returning the first category found
// with a range containing it (spec.md §4.3). Categories are visited in Go
// map iteration order, which is unspecified: when ranges of different
// categories overlap, which of those categories is returned is not
// defined. Falls back to the
// category of FallbackCategory if nothing matches; returns ErrNoCategory
// if even the fallback character has no category (spec.md's fatal
// DictionaryMiss — every dictionary observed provides a fallback, so this
// indicates a malformed char.def, not a normal runtime condition).
func (c *CharDef) CategoryOf(r rune) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if name, ok := c.cache.Get(r); ok {
		return name, nil
	}
	name, err := c.categoryOfUncached(r)
	if err != nil {
		return "", err
	}
	c.cache.Add(r, name)
	return name, nil
}

func (c *CharDef) categoryOfUncached(r rune) (string, error) {
	for name, ranges := range c.ranges {
		for _, rg := range ranges {
			if rg.Lo <= r && r <= rg.Hi {
				return name, nil
			}
		}
	}
	if r == FallbackCategory {
		return "", ErrNoCategory
	}
	return c.categoryOfUncached(FallbackCategory)
}

// UnknownCandidates is CategoryOf-aware sugar over the package-level
// UnknownCandidates, using this CharDef's own policy table.
func (c *CharDef) UnknownCandidates(sentence []rune, categories []string) [][]string {
	return UnknownCandidates(sentence, categories, c.policies)
}

// UnknownCandidates returns, for each start offset, the set of surface
// strings to try as unknown words starting there (spec.md §4.3). sentence
// is indexed by code point (runes); categories[i] must be
// CategoryOf(sentence[i]) for every i.
func UnknownCandidates(sentence []rune, categories []string, policies map[string]Policy) [][]string {
	out := make([][]string, len(sentence))
	for i := range sentence {
		cat := categories[i]
		policy := policies[cat]

		if policy.Group {
			j := i
			for j < len(sentence) && categories[j] == cat {
				j++
			}
			out[i] = []string{string(sentence[i:j])}
			continue
		}

		length := policy.Length
		var cands []string
		for t := 0; t < length && i+t < len(sentence) && categories[i+t] == cat; t++ {
			cands = append(cands, string(sentence[i:i+t+1]))
		}
		out[i] = cands
	}
	return out
}
