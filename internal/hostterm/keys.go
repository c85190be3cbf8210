package hostterm

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

func setenvTerm(termType string) error {
	return os.Setenv("TERM", termType)
}

// TranslateKey converts a host key event into the bytes to send to the
// focused child's PTY, per deadpixi/mtm's handlechar() translation
// switch. appCursor selects the SS3 (\033O) forms used when the child has
// set DECCKM (application cursor keys); lnm selects CRLF for Enter when
// the child has set LNM.
func TranslateKey(ev *tcell.EventKey, appCursor, lnm, backspaceSendsDEL bool) []byte {
	mod := ev.Modifiers()
	alt := mod&tcell.ModAlt != 0

	var s []byte
	switch ev.Key() {
	case tcell.KeyUp:
		s = cursorSeq('A', appCursor)
	case tcell.KeyDown:
		s = cursorSeq('B', appCursor)
	case tcell.KeyRight:
		s = cursorSeq('C', appCursor)
	case tcell.KeyLeft:
		s = cursorSeq('D', appCursor)
	case tcell.KeyHome:
		s = []byte("\033[1~")
	case tcell.KeyEnd:
		s = []byte("\033[4~")
	case tcell.KeyPgUp:
		s = []byte("\033[5~")
	case tcell.KeyPgDn:
		s = []byte("\033[6~")
	case tcell.KeyInsert:
		s = []byte("\033[2~")
	case tcell.KeyDelete:
		s = []byte("\177")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if backspaceSendsDEL {
			s = []byte("\177")
		} else {
			s = []byte("\010")
		}
	case tcell.KeyEnter:
		if lnm {
			s = []byte("\r\n")
		} else {
			s = []byte("\r")
		}
	case tcell.KeyTab:
		s = []byte("\t")
	case tcell.KeyEscape:
		s = []byte("\033")
	case tcell.KeyF1, tcell.KeyF2, tcell.KeyF3, tcell.KeyF4, tcell.KeyF5,
		tcell.KeyF6, tcell.KeyF7, tcell.KeyF8, tcell.KeyF9, tcell.KeyF10,
		tcell.KeyF11, tcell.KeyF12:
		s = functionKeySeq(ev.Key())
	case tcell.KeyCtrlSpace:
		s = []byte{0}
	default:
		if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
			s = []byte{byte(ev.Key())}
		} else if ev.Rune() != 0 {
			s = []byte(string(ev.Rune()))
		}
	}

	if alt && len(s) > 0 {
		out := make([]byte, 0, len(s)+1)
		out = append(out, 0x1b)
		out = append(out, s...)
		return out
	}
	return s
}

func cursorSeq(final byte, appCursor bool) []byte {
	if appCursor {
		return []byte{0x1b, 'O', final}
	}
	return []byte{0x1b, '[', final}
}

func functionKeySeq(k tcell.Key) []byte {
	codes := map[tcell.Key]string{
		tcell.KeyF1: "\033OP", tcell.KeyF2: "\033OQ", tcell.KeyF3: "\033OR", tcell.KeyF4: "\033OS",
		tcell.KeyF5: "\033[15~", tcell.KeyF6: "\033[17~", tcell.KeyF7: "\033[18~", tcell.KeyF8: "\033[19~",
		tcell.KeyF9: "\033[20~", tcell.KeyF10: "\033[21~", tcell.KeyF11: "\033[23~", tcell.KeyF12: "\033[24~",
	}
	return []byte(codes[k])
}

// MouseButton mirrors spec.md §4.4's three encodable buttons, plus the
// wheel events DEC mice report as buttons 4/5.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// EncodeMouse renders a mouse event as either legacy X10 (CSI M Cb Cx Cy,
// values biased by +32 and capped at 223 per spec.md §4.4) or SGR (CSI <
// Cb ; Cx ; Cy M/m) encoding, matching whichever the child last requested
// via DECSET 1000/1002 + 1006.
func EncodeMouse(btn MouseButton, released, motion bool, row, col int, sgr bool) []byte {
	cb := mouseButtonCode(btn, motion)
	if sgr {
		final := byte('M')
		if released {
			final = 'm'
		}
		return []byte(fmt.Sprintf("\033[<%d;%d;%d%c", cb, col+1, row+1, final))
	}
	cx := clampMouseCoord(col + 1 + 32)
	cy := clampMouseCoord(row + 1 + 32)
	if released {
		cb = 3
	}
	return []byte{0x1b, '[', 'M', byte(cb + 32), byte(cx), byte(cy)}
}

func mouseButtonCode(btn MouseButton, motion bool) int {
	code := 0
	switch btn {
	case MouseLeft:
		code = 0
	case MouseMiddle:
		code = 1
	case MouseRight:
		code = 2
	case MouseWheelUp:
		return 64
	case MouseWheelDown:
		return 65
	}
	if motion {
		code |= 32
	}
	return code
}

func clampMouseCoord(v int) int {
	if v > 223 {
		return 223
	}
	return v
}
