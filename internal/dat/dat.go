// Package dat implements a double-array trie: a compact, array-backed
// encoding of a byte-keyed trie that supports common-prefix search in time
// linear in the query length.
//
// The construction algorithm is the dynamic, incremental one described by
// spec.md §4.1: keys are inserted one at a time, byte by byte, from a
// shared root state; when two keys' paths would collide on the same cell,
// every outgoing edge of the colliding state is relocated to a fresh base
// offset. Build does not require a sorted key set for correctness, though
// Build sorts internally (shortest keys first) because it measurably
// reduces the number of relocations.
package dat

import (
	"sort"
)

// Sentinel values for the check/base cell semantics (spec.md §3).
const (
	// unused marks a free cell. This is the zero value so that freshly
	// grown array segments are unused without an explicit initialization
	// pass.
	unused int32 = 0

	// end marks a terminal state with no outgoing edges: the path to it is
	// a complete dictionary key, and nothing extends it. Distinguished
	// from "terminal with outgoing edges", which is encoded by negating
	// the (nonzero) base value instead.
	end int32 = -(1 << 30)

	// root is the starting state for every search/insert walk.
	root int32 = 1

	// defaultBlockSize is the array growth increment (spec.md §4.1).
	defaultBlockSize int32 = 65535

	// growthThreshold is the fraction of current capacity at which Build
	// extends the arrays by one more block (spec.md §4.1: "~90%").
	growthThreshold = 0.9
)

// DoubleArray is a byte-keyed trie encoded as two parallel arrays, base and
// check, per spec.md §3. The zero value is not ready to use: construct one
// with New or NewWithBlockSize and call Build, or obtain one from Load.
//
// A built DoubleArray is immutable and safe for concurrent Search calls
// from multiple goroutines (spec.md §5): Search only reads base/check and
// keeps no shared mutable state.
type DoubleArray struct {
	base  []int32
	check []int32

	blockSize  int32
	startPoint int32 // monotonically advancing free-cell search cursor

	built bool
	stats Stats
}

// Stats reports build-time counters for diagnostics, read back by the
// caller the way meta.Engine.Stats() is in the teacher package — comugi
// carries no logging dependency, so this is the channel for observability.
type Stats struct {
	Keys        int // number of distinct keys inserted
	States      int // highest state index reached by an insertion walk
	Relocations int // number of conflict relocations performed
	Grows       int // number of block-growth events
}

// New returns an empty DoubleArray using the default block size.
func New() *DoubleArray {
	return NewWithBlockSize(defaultBlockSize)
}

// NewWithBlockSize returns an empty DoubleArray that grows by blockSize
// cells at a time. Most callers should use New.
func NewWithBlockSize(blockSize int32) *DoubleArray {
	if blockSize <= 0 {
		blockSize = defaultBlockSize
	}
	return &DoubleArray{blockSize: blockSize}
}

// Stats returns a snapshot of build-time counters.
func (d *DoubleArray) Stats() Stats { return d.stats }

// Built reports whether Build (or Load) has succeeded on this instance.
func (d *DoubleArray) Built() bool { return d.built }

// Build constructs the trie over keys, mutating the receiver in place. It
// must be called on a freshly constructed instance (or one that has just
// been reset via a new New() call) — Build does not merge into an existing
// trie. Duplicate keys are idempotent: inserting the same key twice leaves
// the trie unchanged.
func (d *DoubleArray) Build(keys []string) error {
	sorted := make([]string, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) < len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	d.base = make([]int32, d.blockSize)
	d.check = make([]int32, d.blockSize)
	d.startPoint = root
	d.stats = Stats{}
	d.built = true

	var last string
	first := true
	for _, k := range sorted {
		if !first && k == last {
			continue // duplicate; idempotent per spec.md §4.1
		}
		first = false
		last = k
		if len(k) == 0 {
			return &BuildError{Key: k, Err: ErrEmptyKey}
		}
		d.insert(k)
		d.stats.Keys++
	}
	return nil
}

// ensureCapacity grows base/check (by whole blocks) until index idx is
// within bounds and below the growth threshold, per spec.md §4.1's
// representation policy.
func (d *DoubleArray) ensureCapacity(idx int32) {
	for idx >= int32(float64(len(d.base))*growthThreshold) {
		newLen := int32(len(d.base)) + d.blockSize
		grownBase := make([]int32, newLen)
		grownCheck := make([]int32, newLen)
		copy(grownBase, d.base)
		copy(grownCheck, d.check)
		d.base = grownBase
		d.check = grownCheck
		d.stats.Grows++
	}
}

func abs32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}

// insert walks key byte by byte from root, applying spec.md §4.1's
// insertion algorithm, then marks the final state terminal.
func (d *DoubleArray) insert(key string) {
	s := root
	for i := 0; i < len(key); i++ {
		b := int32(key[i])
		cur := d.base[s]

		if cur == unused || cur == end {
			x := d.findBase([]int32{b})
			if cur == end {
				d.base[s] = -x
			} else {
				d.base[s] = x
			}
			d.ensureCapacity(x + b)
			d.check[x+b] = s
			s = x + b
			if int(s) > d.stats.States {
				d.stats.States = int(s)
			}
			continue
		}

		t := abs32(cur) + b
		d.ensureCapacity(t)
		switch d.check[t] {
		case unused:
			d.check[t] = s
			s = t
		case s:
			s = t
		default:
			s = d.resolveConflict(s, b)
		}
		if int(s) > d.stats.States {
			d.stats.States = int(s)
		}
	}

	if d.base[s] == unused {
		d.base[s] = end
	} else {
		d.base[s] = -abs32(d.base[s])
	}
	if int(s) > d.stats.States {
		d.stats.States = int(s)
	}
}

// resolveConflict handles the case where state s wants to transition on
// byte b but the target cell is already claimed by a different predecessor.
// Every byte currently outgoing from s (the full conflict scan window,
// 0..255, per spec.md §4.1) is relocated to a fresh base offset alongside
// b, and every grandchild's check is rewritten to point at the new
// location. Returns the new state reached by transitioning on b.
func (d *DoubleArray) resolveConflict(s int32, b int32) int32 {
	curBase := d.base[s]
	curAbs := abs32(curBase)

	d.ensureCapacity(curAbs + 255)
	var outgoing []int32
	for bb := int32(0); bb < 256; bb++ {
		if d.check[curAbs+bb] == s {
			outgoing = append(outgoing, bb)
		}
	}
	combined := append(outgoing, b)

	x := d.findBase(combined)
	if curBase < 0 {
		d.base[s] = -x
	} else {
		d.base[s] = x
	}

	for _, bb := range outgoing {
		oldChild := curAbs + bb
		newChild := x + bb
		d.ensureCapacity(newChild)

		childBase := d.base[oldChild]
		d.base[newChild] = childBase
		d.check[newChild] = s

		if childBase != unused && childBase != end {
			gcAbs := abs32(childBase)
			d.ensureCapacity(gcAbs + 255)
			for gb := int32(0); gb < 256; gb++ {
				if d.check[gcAbs+gb] == oldChild {
					d.check[gcAbs+gb] = newChild
				}
			}
		}

		d.base[oldChild] = unused
		d.check[oldChild] = unused
	}

	d.ensureCapacity(x + b)
	d.check[x+b] = s
	d.stats.Relocations++
	return x + b
}

// findBase returns a base offset x (searched from the monotonically
// advancing startPoint cursor) such that check[x+p] is unused for every p
// in points. startPoint is never rewound: once-occupied cells near the
// start of the array are almost never reclaimed in practice, so rewinding
// would make every subsequent scan re-walk dead ground.
func (d *DoubleArray) findBase(points []int32) int32 {
	maxPoint := points[0]
	for _, p := range points[1:] {
		if p > maxPoint {
			maxPoint = p
		}
	}

	x := d.startPoint
	d.ensureCapacity(x + maxPoint)
	for !d.placeable(x, points) {
		x = firstUnusedFrom(d.check, x+1)
		d.ensureCapacity(x + maxPoint)
	}
	d.startPoint = x
	return x
}

func (d *DoubleArray) placeable(x int32, points []int32) bool {
	for _, p := range points {
		if d.check[x+p] != unused {
			return false
		}
	}
	return true
}

// Search returns every prefix of query that is a stored key, in increasing
// length order, as decoded strings (spec.md §4.1's common-prefix search).
func (d *DoubleArray) Search(query string) ([]string, error) {
	if !d.built {
		return nil, ErrNotBuilt
	}
	s := root
	var hits []string
	for i := 0; i < len(query); i++ {
		b := int32(query[i])
		t := abs32(d.base[s]) + b
		if t >= int32(len(d.check)) || d.check[t] != s {
			break
		}
		s = t
		if d.base[s] < 0 {
			hits = append(hits, query[:i+1])
			if d.base[s] == end {
				break
			}
		}
	}
	return hits, nil
}
