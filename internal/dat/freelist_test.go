package dat

import "testing"

func TestFirstUnusedFromAgreesScalarAndWord(t *testing.T) {
	check := make([]int32, 200)
	for _, occupied := range []int32{0, 1, 5, 6, 7, 64, 65, 199} {
		check[occupied] = 42
	}

	for from := int32(0); from < int32(len(check)); from++ {
		scalar := firstUnusedFromScalar(check, from)
		word := firstUnusedFromWord(check, from)
		if scalar != word {
			t.Errorf("from=%d: scalar=%d word=%d disagree", from, scalar, word)
		}
	}
}

func TestFirstUnusedFromNotFound(t *testing.T) {
	check := make([]int32, 10)
	for i := range check {
		check[i] = 1
	}
	if got := firstUnusedFromScalar(check, 0); got != int32(len(check)) {
		t.Errorf("scalar: got %d, want %d", got, len(check))
	}
	if got := firstUnusedFromWord(check, 0); got != int32(len(check)) {
		t.Errorf("word: got %d, want %d", got, len(check))
	}
}
