package comugi

import (
	"testing"

	"github.com/higumax/comugi/internal/chardef"
	"github.com/higumax/comugi/internal/costmatrix"
	"github.com/higumax/comugi/internal/dat"
	"github.com/higumax/comugi/internal/vocab"
)

func buildTinyAnalyzer(t *testing.T) *Comugi {
	t.Helper()

	da := dat.New()
	if err := da.Build([]string{"東京", "東京都", "都"}); err != nil {
		t.Fatalf("Build: %v", err)
	}

	entries := []vocab.Entry{
		{Surface: "東京", LID: 1, RID: 1, EmCost: 2, Pos: "NOUN", Pos1: "place", Base: "東京", Pronunciation: "トウキョウ"},
		{Surface: "東京都", LID: 1, RID: 1, EmCost: 3, Pos: "NOUN", Pos1: "place", Base: "東京都", Pronunciation: "トウキョウト"},
		{Surface: "都", LID: 2, RID: 2, EmCost: 2, Pos: "NOUN", Pos1: "suffix", Base: "都", Pronunciation: "ト"},
	}
	store := vocab.New(entries)

	surfaceIndex := vocab.SurfaceIndex{
		"東京":  {0},
		"東京都": {1},
		"都":   {2},
	}

	cm := costmatrix.New(3, 3, make([]int32, 9))

	ranges := map[string][]chardef.Range{"DEFAULT": {{Lo: 0x0000, Hi: 0x10FFFF}}}
	policies := map[string]chardef.Policy{"DEFAULT": {Invoke: false, Group: true}}
	cd := chardef.New(ranges, policies)

	c, err := New(da, store, surfaceIndex, cm, cd, DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestComugiTokenize(t *testing.T) {
	c := buildTinyAnalyzer(t)

	results, err := c.Tokenize("東京都", 1)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(results) != 1 || len(results[0]) != 1 || results[0][0].Surface != "東京都" {
		t.Fatalf("Tokenize(東京都) = %v, want single token [東京都] (cheapest single entry)", results)
	}
}

func TestMustNewPanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustNew with invalid config did not panic")
		}
	}()
	da := dat.New()
	_ = da.Build([]string{"a"})
	store := vocab.New([]vocab.Entry{{Surface: "a"}})
	cm := costmatrix.New(1, 1, []int32{0})
	cd := chardef.New(nil, nil)

	bad := DefaultConfig()
	bad.MaxHeapSize = -5
	MustNew(da, store, vocab.SurfaceIndex{"a": {0}}, cm, cd, bad)
}
