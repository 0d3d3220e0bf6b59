package tokenizer

import "fmt"

// EncodingError reports a sentence that is not valid UTF-8 at a given
// byte offset (spec.md §7's EncodingError class).
type EncodingError struct {
	Offset int
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("tokenizer: invalid UTF-8 at byte offset %d", e.Offset)
}

// InvalidNError reports a non-positive n passed to Tokenize.
type InvalidNError struct {
	N int
}

func (e *InvalidNError) Error() string {
	return fmt.Sprintf("tokenizer: n must be >= 1, got %d", e.N)
}
