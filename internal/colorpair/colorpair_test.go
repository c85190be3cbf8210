package colorpair

import "testing"

func TestInternReusesExistingPair(t *testing.T) {
	var tbl Table
	a := tbl.Intern(1, 2)
	b := tbl.Intern(1, 2)
	if a != b {
		t.Fatalf("expected repeated (fg,bg) to reuse the same index, got %d and %d", a, b)
	}
}

func TestInternDistinctPairsGetDistinctIndices(t *testing.T) {
	var tbl Table
	a := tbl.Intern(1, 2)
	b := tbl.Intern(3, 4)
	if a == b {
		t.Fatalf("expected distinct pairs to get distinct indices")
	}
}

func TestLookupRoundTrip(t *testing.T) {
	var tbl Table
	idx := tbl.Intern(5, 6)
	fg, bg, ok := tbl.Lookup(idx)
	if !ok || fg != 5 || bg != 6 {
		t.Fatalf("Lookup(%d) = (%d, %d, %v), want (5, 6, true)", idx, fg, bg, ok)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	var tbl Table
	if _, _, ok := tbl.Lookup(MaxTable); ok {
		t.Fatalf("expected out-of-range lookup to fail")
	}
	if _, _, ok := tbl.Lookup(-1); ok {
		t.Fatalf("expected negative lookup to fail")
	}
}

func TestInternEvictsLeastRecentlyUsedWhenFull(t *testing.T) {
	var tbl Table
	for i := 0; i < MaxTable; i++ {
		tbl.Intern(i, i)
	}
	// Touch every pair except the first so it becomes the LRU entry.
	for i := 1; i < MaxTable; i++ {
		tbl.Intern(i, i)
	}
	evicted := tbl.Intern(1000, 1000)
	if fg, bg, ok := tbl.Lookup(0); ok && fg == 0 && bg == 0 {
		t.Fatalf("expected the least-recently-used pair at slot 0 to be evicted")
	}
	if fg, bg, ok := tbl.Lookup(evicted); !ok || fg != 1000 || bg != 1000 {
		t.Fatalf("expected the new pair to occupy the evicted slot")
	}
}

func TestRGBRoundTripsStandardColors(t *testing.T) {
	r, g, b := RGB(1) // standard red
	if r == 0 && g == 0 && b == 0 {
		t.Fatalf("expected a non-black RGB for palette index 1")
	}
}

func TestRGBOutOfRange(t *testing.T) {
	r, g, b := RGB(-1)
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("expected (0,0,0) for an out-of-range index")
	}
}

func TestNearestFindsExactMatch(t *testing.T) {
	r, g, b := RGB(1)
	if got := Nearest(r, g, b); got != 1 {
		t.Fatalf("Nearest(%d,%d,%d) = %d, want 1 (exact match)", r, g, b, got)
	}
}
