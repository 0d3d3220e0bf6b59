package lattice

import "fmt"

// ErrHeapExhausted reports that NBestPaths's A* frontier grew past its
// configured cap before n completions were found (spec.md §5/§7's
// ResourceExhausted class). The Python source has no such cap and simply
// keeps growing its heap forever; comugi bounds it and reports the
// condition as a value instead.
type ErrHeapExhausted struct {
	Cap int
}

func (e *ErrHeapExhausted) Error() string {
	return fmt.Sprintf("lattice: n-best search frontier exceeded cap of %d entries", e.Cap)
}
