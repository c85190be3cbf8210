package eventloop

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"mtm/internal/hostterm"
)

func TestDecodeMouseButtonsPress(t *testing.T) {
	cases := []struct {
		buttons  tcell.ButtonMask
		wantBtn  hostterm.MouseButton
		wantRel  bool
	}{
		{tcell.Button1, hostterm.MouseLeft, false},
		{tcell.Button2, hostterm.MouseMiddle, false},
		{tcell.Button3, hostterm.MouseRight, false},
		{tcell.WheelUp, hostterm.MouseWheelUp, false},
		{tcell.WheelDown, hostterm.MouseWheelDown, false},
		{tcell.ButtonNone, hostterm.MouseNone, true},
	}
	for _, c := range cases {
		btn, released := decodeMouseButtons(c.buttons)
		if btn != c.wantBtn || released != c.wantRel {
			t.Fatalf("decodeMouseButtons(%v) = (%v, %v), want (%v, %v)", c.buttons, btn, released, c.wantBtn, c.wantRel)
		}
	}
}

func TestDefaultCommandKeyIsCtrlG(t *testing.T) {
	if got, want := DefaultCommandKey, rune('g'&0x1f); got != want {
		t.Fatalf("DefaultCommandKey = %v, want %v", got, want)
	}
}
