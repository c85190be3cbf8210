package charset

import "testing"

func TestTranslateASCIIIsIdentity(t *testing.T) {
	if got := Translate(ASCII, 'A'); got != 'A' {
		t.Fatalf("expected 'A', got %q", got)
	}
}

func TestTranslateUKPound(t *testing.T) {
	if got := Translate(UK, '#'); got != '£' {
		t.Fatalf("expected pound sign, got %q", got)
	}
	if got := Translate(UK, 'x'); got != 'x' {
		t.Fatalf("expected 'x' unchanged, got %q", got)
	}
}

func TestTranslateDECGraphics(t *testing.T) {
	if got := Translate(DECGraphics, 'q'); got != '─' {
		t.Fatalf("expected horizontal line, got %q", got)
	}
	if got := Translate(DECGraphics, 'A'); got != 'A' {
		t.Fatalf("out-of-range byte should pass through, got %q", got)
	}
}

func TestForDesignator(t *testing.T) {
	cases := []struct {
		final rune
		want  ID
		ok    bool
	}{
		{'B', ASCII, true},
		{'A', UK, true},
		{'0', DECGraphics, true},
		{'1', DECGraphics, true},
		{'z', ASCII, false},
	}
	for _, c := range cases {
		got, ok := ForDesignator(c.final)
		if got != c.want || ok != c.ok {
			t.Fatalf("ForDesignator(%q) = (%v, %v), want (%v, %v)", c.final, got, ok, c.want, c.ok)
		}
	}
}

func TestMapLockingShift(t *testing.T) {
	m := NewMap()
	if m.Active() != ASCII {
		t.Fatalf("expected initial active charset to be ASCII")
	}
	m.Designate(1, DECGraphics)
	m.ShiftOut()
	if m.Active() != DECGraphics {
		t.Fatalf("expected G1 (DECGraphics) active after ShiftOut")
	}
	m.ShiftIn()
	if m.Active() != ASCII {
		t.Fatalf("expected G0 (ASCII) active after ShiftIn")
	}
}

func TestMapSingleShift(t *testing.T) {
	m := NewMap()
	m.Designate(2, DECGraphics)
	m.SingleShift(2)
	if m.Active() != DECGraphics {
		t.Fatalf("expected G2 active under pending single-shift")
	}
	m.ClearPending()
	if m.Active() != ASCII {
		t.Fatalf("expected locked shift restored after ClearPending")
	}
}
