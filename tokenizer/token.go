package tokenizer

import "strings"

// Token is one segmented unit of output, exposing exactly the fields
// spec.md §4.5 step 5 calls out: surface, pos, pos1, base, pronunciation.
// BOS/EOS sentinels never appear here; Tokenize strips them before
// returning.
type Token struct {
	Surface       string
	Pos           string
	Pos1          string
	Base          string
	Pronunciation string
}

// Format renders a token the way the original source's CLI output did:
// "surface\tpos,pos1,base,pronunciation". Supplemented from
// original_source (the distilled spec never prescribes an output format,
// only the fields to expose).
func (t Token) Format() string {
	return t.Surface + "\t" + strings.Join([]string{t.Pos, t.Pos1, t.Base, t.Pronunciation}, ",")
}

// FormatTokens renders a full segmentation, one Format() line per token,
// newline-joined.
func FormatTokens(tokens []Token) string {
	lines := make([]string, len(tokens))
	for i, t := range tokens {
		lines[i] = t.Format()
	}
	return strings.Join(lines, "\n")
}
