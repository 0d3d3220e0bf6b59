package dat

import (
	"testing"

	"github.com/coregx/ahocorasick"
)

// buildOracle constructs an independent multi-pattern automaton over the
// same key set, used as a differential oracle for Search. This plays the
// same "second independent engine, trusted against the primary one" role
// ahocorasick.Automaton plays in the teacher package's meta.Engine (there,
// as a production strategy for large literal alternations; here, as a test
// oracle, since spec.md mandates the double array as the production
// common-prefix search path).
func buildOracle(t *testing.T, keys []string) *ahocorasick.Automaton {
	t.Helper()
	builder := ahocorasick.NewBuilder()
	for _, k := range keys {
		builder.AddPattern([]byte(k))
	}
	auto, err := builder.Build()
	if err != nil {
		t.Fatalf("ahocorasick build failed: %v", err)
	}
	return auto
}

// TestSearchAgreesWithAhoCorasickAtOffsetZero checks that "some key is a
// prefix of haystack" (as reported by DoubleArray.Search returning at
// least one hit) agrees with "the independent Aho-Corasick automaton finds
// a match starting at offset 0" for a battery of haystacks built from the
// key set plus adversarial near-misses.
func TestSearchAgreesWithAhoCorasickAtOffsetZero(t *testing.T) {
	keys := []string{
		"a", "ab", "abc", "ad", "ba", "band", "bandana",
		"東京", "東京都", "京都", "すもも", "すもももももももものうち",
	}

	d := New()
	if err := d.Build(keys); err != nil {
		t.Fatalf("Build: %v", err)
	}
	oracle := buildOracle(t, keys)

	haystacks := []string{
		"abcdxyz", "abd", "a", "ax", "adx", "z", "bandanaz", "band",
		"東京都庁", "京都市", "東", "すもももも", "もも", "",
	}

	for _, h := range haystacks {
		daHits, err := d.Search(h)
		if err != nil {
			t.Fatalf("Search(%q): %v", h, err)
		}
		wantMatch := len(daHits) > 0

		m := oracle.Find([]byte(h), 0)
		gotMatch := m != nil && m.Start == 0

		if gotMatch != wantMatch {
			t.Errorf("haystack %q: DoubleArray hits-at-zero=%v, ahocorasick match-at-zero=%v (hits=%v)",
				h, wantMatch, gotMatch, daHits)
		}
	}
}
