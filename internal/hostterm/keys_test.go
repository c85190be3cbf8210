package hostterm

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslateKeyArrowsRespectAppCursor(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	if got, want := string(TranslateKey(ev, false, false, true)), "\033[A"; got != want {
		t.Fatalf("normal cursor mode: got %q, want %q", got, want)
	}
	if got, want := string(TranslateKey(ev, true, false, true)), "\033OA"; got != want {
		t.Fatalf("app cursor mode: got %q, want %q", got, want)
	}
}

func TestTranslateKeyEnterRespectsLNM(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	if got, want := string(TranslateKey(ev, false, false, true)), "\r"; got != want {
		t.Fatalf("LNM off: got %q, want %q", got, want)
	}
	if got, want := string(TranslateKey(ev, false, true, true)), "\r\n"; got != want {
		t.Fatalf("LNM on: got %q, want %q", got, want)
	}
}

func TestTranslateKeyBackspaceRespectsFlag(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	if got, want := string(TranslateKey(ev, false, false, true)), "\177"; got != want {
		t.Fatalf("DEL mode: got %q, want %q", got, want)
	}
	if got, want := string(TranslateKey(ev, false, false, false)), "\010"; got != want {
		t.Fatalf("^H mode: got %q, want %q", got, want)
	}
}

func TestTranslateKeyRunePassthrough(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)
	if got, want := string(TranslateKey(ev, false, false, true)), "a"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTranslateKeyAltPrefixesEscape(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModAlt)
	if got, want := string(TranslateKey(ev, false, false, true)), "\033a"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTranslateKeyCtrlLetters(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyCtrlA, 0, tcell.ModCtrl)
	got := TranslateKey(ev, false, false, true)
	if len(got) != 1 || got[0] != byte(tcell.KeyCtrlA) {
		t.Fatalf("got %v, want a single byte %d", got, byte(tcell.KeyCtrlA))
	}
}

func TestTranslateKeyFunctionKeys(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)
	if got, want := string(TranslateKey(ev, false, false, true)), "\033OP"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

// EncodeMouse scenario 5 from spec.md §8: left-button press/release at
// host-cell (y=5,x=10) in a view with SGR mouse mode, origin (0,0).
func TestEncodeMouseSGRPressAndRelease(t *testing.T) {
	press := EncodeMouse(MouseLeft, false, false, 5, 10, true)
	if got, want := string(press), "\033[<0;11;6M"; got != want {
		t.Fatalf("press: got %q, want %q", got, want)
	}
	release := EncodeMouse(MouseLeft, true, false, 5, 10, true)
	if got, want := string(release), "\033[<0;11;6m"; got != want {
		t.Fatalf("release: got %q, want %q", got, want)
	}
}

func TestEncodeMouseX10LegacyBiasAndClamp(t *testing.T) {
	b := EncodeMouse(MouseLeft, false, false, 0, 0, false)
	want := []byte{0x1b, '[', 'M', byte(0 + 32), byte(1 + 32), byte(1 + 32)}
	if string(b) != string(want) {
		t.Fatalf("got %v, want %v", b, want)
	}

	far := EncodeMouse(MouseLeft, false, false, 500, 500, false)
	if far[4] != 223 || far[5] != 223 {
		t.Fatalf("expected coordinates clamped at 223, got %v", far)
	}
}

func TestEncodeMouseWheel(t *testing.T) {
	b := EncodeMouse(MouseWheelUp, false, false, 0, 0, true)
	if got, want := string(b), "\033[<64;1;1M"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
