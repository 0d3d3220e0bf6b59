package dat

import "golang.org/x/sys/cpu"

// hasAVX2 gates the word-at-a-time free-cell scan below. The scan itself is
// portable Go (no assembly) and correct on every platform; the dispatch
// mirrors the CPU-feature-gated strategy selection the teacher package uses
// for its SIMD memchr variants (golang.org/x/sys/cpu.X86.HasAVX2 reads as
// false, and the scalar path runs, on non-x86 targets).
var hasAVX2 = cpu.X86.HasAVX2

// firstUnusedFrom returns the smallest index >= from in check that holds
// UNUSED, or len(check) if none exists. It is the hot inner loop of
// findBase: spec.md notes the free-cell scan anchored by startPoint is the
// dominant cost of construction, so two strategies are offered.
func firstUnusedFrom(check []int32, from int32) int32 {
	if hasAVX2 {
		return firstUnusedFromWord(check, from)
	}
	return firstUnusedFromScalar(check, from)
}

// firstUnusedFromScalar is the straightforward byte-wise (cell-wise) scan.
func firstUnusedFromScalar(check []int32, from int32) int32 {
	n := int32(len(check))
	for i := from; i < n; i++ {
		if check[i] == unused {
			return i
		}
	}
	return n
}

// firstUnusedFromWord scans two cells per loop iteration instead of one,
// halving the loop-overhead and bounds-check cost on the (common) long run
// of free cells produced right after a block growth. Unlike the teacher's
// memchr variants this stays pure Go (no unsafe, no assembly) — see
// DESIGN.md for why a genuine packed-word compare was not pursued.
func firstUnusedFromWord(check []int32, from int32) int32 {
	n := int32(len(check))
	i := from
	// Align so the paired scan starts on an even index.
	if i%2 != 0 && i < n {
		if check[i] == unused {
			return i
		}
		i++
	}
	for i+1 < n {
		if check[i] == unused {
			return i
		}
		if check[i+1] == unused {
			return i + 1
		}
		i += 2
	}
	for ; i < n; i++ {
		if check[i] == unused {
			return i
		}
	}
	return n
}
