// Package vocab provides a frozen, index-addressable dictionary entry
// sequence (spec.md §4.2). A Store is built once at load time and never
// mutated afterward; tokenizer never writes through an Entry returned by
// Store.Get, which is the fix spec.md §9 calls for (the original Python
// source mutates a shared entry's surface when synthesizing unknown-word
// candidates — a hidden data race across concurrent tokenize calls).
package vocab

import "fmt"

// Entry is one dictionary entry, carried verbatim from the loader
// (spec.md §3/§6). Feature fields (Pos, Pos1, Base, Pronunciation) are
// opaque to this package; they pass through to the caller unexamined.
type Entry struct {
	Surface       string
	LID           uint16
	RID           uint16
	EmCost        int32
	Pos           string
	Pos1          string
	Base          string
	Pronunciation string
	Known         bool
}

// Store is an immutable, O(1)-indexable sequence of entries.
type Store struct {
	entries []Entry
}

// New returns a Store wrapping entries. The slice is copied so later
// mutation of the caller's backing array cannot reach through to the Store.
func New(entries []Entry) *Store {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Store{entries: cp}
}

// Len returns the number of entries in the store.
func (s *Store) Len() int { return len(s.entries) }

// Get returns the entry at index idx. It panics on an out-of-range index,
// the same contract Go slices themselves give — a malformed surface index
// pointing past the end of the store is an ArtifactLoadError-class bug the
// loader should have caught, not a runtime condition tokenize should have
// to recover from on every lookup.
func (s *Store) Get(idx int) Entry {
	return s.entries[idx]
}

// IndexError reports an out-of-range Store access without panicking, for
// callers (such as Tokenizer) that want to surface a recoverable error
// instead of trusting the surface index is well-formed.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vocab: index %d out of range [0,%d)", e.Index, e.Len)
}

// TryGet is the non-panicking counterpart to Get.
func (s *Store) TryGet(idx int) (Entry, error) {
	if idx < 0 || idx >= len(s.entries) {
		return Entry{}, &IndexError{Index: idx, Len: len(s.entries)}
	}
	return s.entries[idx], nil
}
