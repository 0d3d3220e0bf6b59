package costmatrix

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	m := New(2, 3, []int32{0, 1, 2, 3, 4, 5})
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("Rows()/Cols() = %d/%d, want 2/3", m.Rows(), m.Cols())
	}
}

func TestNewCopiesBackingSlice(t *testing.T) {
	data := []int32{0, 1, 2, 3}
	m := New(2, 2, data)

	data[0] = 99
	if got := m.At(0, 0); got != 0 {
		t.Fatalf("At(0,0) = %d after mutating caller's slice, want unaffected 0", got)
	}
}

func TestNewPanicsOnDimensionMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(2, 2, ...) with 3 entries did not panic")
		}
	}()
	New(2, 2, []int32{0, 1, 2})
}

func TestAt(t *testing.T) {
	m := New(2, 3, []int32{0, 1, 2, 3, 4, 5})
	if got := m.At(1, 2); got != 5 {
		t.Fatalf("At(1,2) = %d, want 5", got)
	}
}

func TestAtPanicsOutOfRange(t *testing.T) {
	m := New(2, 2, []int32{0, 0, 0, 0})
	defer func() {
		if recover() == nil {
			t.Fatal("At(5, 5) on a 2x2 matrix did not panic")
		}
	}()
	m.At(5, 5)
}

func TestTryAt(t *testing.T) {
	m := New(2, 3, []int32{0, 1, 2, 3, 4, 5})
	got, err := m.TryAt(1, 2)
	if err != nil {
		t.Fatalf("TryAt(1,2) error: %v", err)
	}
	if got != 5 {
		t.Fatalf("TryAt(1,2) = %d, want 5", got)
	}
}

func TestTryAtOutOfRange(t *testing.T) {
	m := New(2, 3, []int32{0, 1, 2, 3, 4, 5})

	cases := []struct{ lid, rid int }{
		{-1, 0},
		{0, -1},
		{2, 0},
		{0, 3},
	}
	for _, c := range cases {
		_, err := m.TryAt(c.lid, c.rid)
		var rangeErr *RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("TryAt(%d,%d) error = %v, want *RangeError", c.lid, c.rid, err)
		}
		if rangeErr.Rows != 2 || rangeErr.Cols != 3 {
			t.Fatalf("TryAt(%d,%d) error = %+v, want Rows=2 Cols=3", c.lid, c.rid, rangeErr)
		}
	}
}
