// Package lattice builds the per-sentence word graph and runs minimum-cost
// (and n-best) path search over it (spec.md §3/§4.4). A Lattice is owned
// by a single tokenize call and discarded on return — unlike the Python
// source, which shares one Lattice object across calls and so cannot be
// used reentrantly (spec.md §5), every Lattice here is either freshly
// allocated per call or drawn from a pool and Reset before use.
package lattice

import (
	"container/heap"
	"math"

	"github.com/higumax/comugi/internal/costmatrix"
)

// infinity stands in for the Python source's sys.maxsize: large enough
// that no real accumulated cost will reach it, small enough that summing
// a few of them during Forward never overflows int64.
const infinity = math.MaxInt64 / 4

// EntryBOS and EntryEOS are the sentinel EntryIndex values for the
// synthetic sentence-boundary nodes (spec.md §3's "entry index (or
// BOS/EOS sentinel)"), mirroring the Python source's ptr=-1/-2.
const (
	EntryBOS = -1
	EntryEOS = -2
)

// Node is one candidate token placement in the lattice. EntryIndex is
// EntryBOS, EntryEOS, or a valid vocab.Store index; Surface, LID, RID,
// EmCost and Length describe the placement itself; MinCost/MinPrev are
// the forward-DP fields mutated by Forward.
type Node struct {
	EntryIndex int
	Surface    string
	LID, RID   uint16
	EmCost     int32
	Length     int // in lattice position units (code points)

	MinCost int64
	MinPrev *Node

	// next chains a copied node to the node it was extended from during
	// NBestPaths' backward search, letting a completed partial path be
	// walked forward from BOS to EOS without touching MinPrev (which
	// still points the "real" way, toward BOS, on the shared lattice
	// nodes). Unused outside NBestPaths.
	next *Node
}

// copy returns a new Node with the same placement and DP fields but no
// next pointer, so NBestPaths' frontier never mutates a node shared
// between partial paths (spec.md §4.4/§9).
func (n *Node) copy() *Node {
	return &Node{
		EntryIndex: n.EntryIndex,
		Surface:    n.Surface,
		LID:        n.LID,
		RID:        n.RID,
		EmCost:     n.EmCost,
		Length:     n.Length,
		MinCost:    n.MinCost,
		MinPrev:    n.MinPrev,
	}
}

// Stats reports counters useful for diagnosing lattice construction and
// search, in place of a logging dependency (spec.md's ambient stack).
type Stats struct {
	Nodes         int
	ForwardRuns   int
	NBestSearches int
}

// Lattice holds the per-sentence node graph and forward-DP state.
type Lattice struct {
	length int
	begin  [][]*Node
	end    [][]*Node
	bos    *Node
	eos    *Node
	stats  Stats
}

// New returns an empty, unreset Lattice. Callers must call Reset before
// Insert or Forward.
func New() *Lattice {
	return &Lattice{}
}

// Stats returns a snapshot of this lattice's counters.
func (l *Lattice) Stats() Stats { return l.stats }

// Reset clears any previous sentence's nodes and prepares begin/end
// arrays of length sentenceLen+1 (spec.md §4.4), inserting the BOS node
// at end[0] and the EOS node at begin[sentenceLen].
func (l *Lattice) Reset(sentenceLen int) {
	l.length = sentenceLen
	l.begin = make([][]*Node, sentenceLen+1)
	l.end = make([][]*Node, sentenceLen+1)

	l.bos = &Node{EntryIndex: EntryBOS, MinCost: 0}
	l.eos = &Node{EntryIndex: EntryEOS, MinCost: infinity}

	l.end[0] = append(l.end[0], l.bos)
	l.begin[sentenceLen] = append(l.begin[sentenceLen], l.eos)

	l.stats = Stats{}
}

// Insert appends node to begin[beginPos] and to end[beginPos+node.Length]
// (spec.md §4.4), resetting its DP fields (MinCost to +∞, MinPrev to nil).
func (l *Lattice) Insert(beginPos int, node *Node) {
	node.MinCost = infinity
	node.MinPrev = nil
	l.begin[beginPos] = append(l.begin[beginPos], node)
	l.end[beginPos+node.Length] = append(l.end[beginPos+node.Length], node)
	l.stats.Nodes++
}

// Forward runs the forward minimum-cost DP over the lattice (spec.md
// §4.4): for every position p ascending, for every right-starting node r
// in begin[p] and every left-ending node l in end[p], relax r's MinCost
// through l. On equal cost, the first-arriving predecessor is kept (no
// overwrite on strict equality), matching spec.md's tie-break rule.
//
// A non-nil error means some node's lid/rid fell outside cm's declared
// dimensions (spec.md §7's "cost-matrix index out of range" runtime
// error); Forward stops at the first such mismatch rather than panicking,
// since the vocabulary and the cost matrix are independently loaded
// artifacts (spec.md §6) that can disagree.
func (l *Lattice) Forward(cm *costmatrix.Matrix) error {
	for p := 0; p <= l.length; p++ {
		for _, r := range l.begin[p] {
			for _, ln := range l.end[p] {
				cost, err := cm.TryAt(int(ln.LID), int(r.RID))
				if err != nil {
					return err
				}
				c := ln.MinCost + int64(cost) + int64(r.EmCost)
				if c < r.MinCost {
					r.MinCost = c
					r.MinPrev = ln
				}
			}
		}
	}
	l.stats.ForwardRuns++
	return nil
}

// BestPath returns the minimum-cost segmentation, following MinPrev back
// from EOS to BOS and reversing, with BOS/EOS stripped (spec.md §4.4).
func (l *Lattice) BestPath() []*Node {
	var rev []*Node
	for n := l.eos; n != nil; n = n.MinPrev {
		rev = append(rev, n)
	}
	path := make([]*Node, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		if rev[i].EntryIndex == EntryBOS || rev[i].EntryIndex == EntryEOS {
			continue
		}
		path = append(path, rev[i])
	}
	return path
}

// pathItem is one frontier entry in NBestPaths' A* search: a partial path
// ending (on the backward walk) at node, at lattice position pos, with
// accumulated backward cost and a stable insertion sequence for
// tie-breaking equal priorities.
type pathItem struct {
	priority int64
	backward int64
	pos      int
	seq      uint64
	node     *Node
}

type pathHeap []*pathItem

func (h pathHeap) Len() int { return len(h) }
func (h pathHeap) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}
func (h pathHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pathHeap) Push(x any)   { *h = append(*h, x.(*pathItem)) }
func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// NBestPaths returns up to n minimum-cost segmentations in increasing
// order of total cost, via A* backward search from EOS with the admissible
// heuristic forward_cost(x) = x.MinCost (spec.md §4.4). Forward must have
// been called first so every node's MinCost is the exact optimal tail
// cost from BOS. maxHeap caps the frontier size; once the frontier would
// grow past it, search stops and ErrHeapExhausted is returned alongside
// whatever completions were already found. A cost-matrix index outside
// cm's declared dimensions is reported the same way: whatever completions
// were already found are returned alongside the *costmatrix.RangeError.
func (l *Lattice) NBestPaths(cm *costmatrix.Matrix, n int, maxHeap int) ([][]*Node, error) {
	if n <= 0 {
		return nil, nil
	}
	l.stats.NBestSearches++

	h := &pathHeap{}
	heap.Init(h)
	var seq uint64
	heap.Push(h, &pathItem{priority: l.eos.MinCost, backward: 0, pos: l.length, seq: seq, node: l.eos})
	seq++

	var results [][]*Node
	for h.Len() > 0 {
		if maxHeap > 0 && h.Len() > maxHeap {
			return results, &ErrHeapExhausted{Cap: maxHeap}
		}
		item := heap.Pop(h).(*pathItem)
		node := item.node

		if node.EntryIndex == EntryBOS {
			var path []*Node
			for cur := node; cur != nil; cur = cur.next {
				if cur.EntryIndex != EntryBOS && cur.EntryIndex != EntryEOS {
					path = append(path, cur)
				}
			}
			results = append(results, path)
			if len(results) == n {
				return results, nil
			}
			continue
		}

		for _, ln := range l.end[item.pos] {
			cost, err := cm.TryAt(int(ln.LID), int(node.RID))
			if err != nil {
				return results, err
			}
			backward := item.backward + int64(cost) + int64(ln.EmCost)
			// ln.MinCost already includes ln's own emission cost, which
			// backward also carries; count it once.
			priority := ln.MinCost - int64(ln.EmCost) + backward

			extended := ln.copy()
			extended.next = node

			heap.Push(h, &pathItem{
				priority: priority,
				backward: backward,
				pos:      item.pos - ln.Length,
				seq:      seq,
				node:     extended,
			})
			seq++
		}
	}
	return results, nil
}
