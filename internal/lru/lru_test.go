package lru

import "testing"

func TestGetMiss(t *testing.T) {
	c := New(2)
	if _, ok := c.Get('a'); ok {
		t.Fatal("expected miss on empty cache")
	}
}

func TestAddAndGet(t *testing.T) {
	c := New(2)
	c.Add('a', "HIRAGANA")
	v, ok := c.Get('a')
	if !ok || v != "HIRAGANA" {
		t.Fatalf("Get('a') = %q, %v; want HIRAGANA, true", v, ok)
	}
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New(2)
	c.Add('a', "A")
	c.Add('b', "B")
	c.Get('a') // touch a, making b the LRU entry
	c.Add('c', "C")

	if _, ok := c.Get('b'); ok {
		t.Error("expected 'b' to be evicted")
	}
	if v, ok := c.Get('a'); !ok || v != "A" {
		t.Errorf("Get('a') = %q, %v; want A, true", v, ok)
	}
	if v, ok := c.Get('c'); !ok || v != "C" {
		t.Errorf("Get('c') = %q, %v; want C, true", v, ok)
	}
}

func TestLen(t *testing.T) {
	c := New(3)
	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}
	c.Add('a', "A")
	c.Add('a', "A2")
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after re-adding same key", c.Len())
	}
	if v, _ := c.Get('a'); v != "A2" {
		t.Errorf("Get('a') = %q, want updated value A2", v)
	}
}
