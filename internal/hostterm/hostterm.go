// Package hostterm is the only part of the program that talks to the real
// terminal: it owns the tcell.Screen, translates tcell key/mouse events
// into the bytes a child process expects, and renders a screen.Grid into
// the host's cells.
//
// Grounded on deadpixi/mtm's curses usage (wgetch, KEY_UP/KEY_BACKSPACE
// translation switch in handlechar(), draw()'s cell-by-cell blit) adapted
// to the retrieval pack's gdamore/tcell/v2 usage for the drawing-library
// side, since spec.md calls for a "host adaptor" decoupled from the
// emulator core.
package hostterm

import (
	"github.com/gdamore/tcell/v2"

	"mtm/internal/colorpair"
	"mtm/internal/screen"
)

// Terminal wraps a tcell.Screen plus a color-pair table. The table is not
// consulted when building styles: style maps screen.Color palette indices
// straight to RGB via colorpair.RGB.
type Terminal struct {
	screen tcell.Screen
	colors colorpair.Table
	kbs    bool // true if the host's backspace key sends ^H, not DEL
}

// New initializes a tcell.Screen for termType (empty uses $TERM), entering
// alternate-screen/raw mode on the real terminal.
func New(termType string) (*Terminal, error) {
	if termType != "" {
		// tcell reads $TERM itself, so a non-empty termType replaces it
		// before Init (cliapp.Run passes the -t advertised type here).
		if err := setenvTerm(termType); err != nil {
			return nil, err
		}
	}
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.EnableMouse(tcell.MouseButtonEvents, tcell.MouseMotionEvents)
	t := &Terminal{screen: s}
	t.kbs = detectBackspace(s)
	return t, nil
}

// Size returns the host terminal's current size in (rows, cols).
func (t *Terminal) Size() (rows, cols int) {
	cols, rows = t.screen.Size()
	return rows, cols
}

// PollEvent blocks for the host terminal's next raw event; callers poll it
// in a dedicated goroutine (spec.md's "The host terminal driver" input
// side), and translate resulting events with TranslateKey/EncodeMouse.
func (t *Terminal) PollEvent() tcell.Event { return t.screen.PollEvent() }

// PostEvent injects an event into tcell's event queue (used to unblock
// PollEvent from another goroutine, e.g. on shutdown).
func (t *Terminal) PostEvent(ev tcell.Event) error { return t.screen.PostEvent(ev) }

// Fini releases the host terminal, restoring cooked mode.
func (t *Terminal) Fini() { t.screen.Fini() }

// Beep rings the host terminal's bell.
func (t *Terminal) Beep() { _ = t.screen.Beep() }

// SetTitle sets the host terminal's window title via OSC, when supported.
func (t *Terminal) SetTitle(title string) { t.screen.SetTitle(title) }

// Present flushes all buffered SetContent calls to the host terminal.
func (t *Terminal) Present() { t.screen.Show() }

// Sync forces a full repaint, clearing any assumptions about prior
// content (used after a resize or external corruption).
func (t *Terminal) Sync() { t.screen.Sync() }

// SetCell writes a single cell at host coordinates (x, y). A zero Ch is a
// wide-char continuation cell and is skipped (already drawn by its
// leader), per spec.md's wide-character convention.
func (t *Terminal) SetCell(x, y int, cell screen.Cell) {
	if cell.Ch == 0 {
		return
	}
	t.screen.SetContent(x, y, cell.Ch, nil, t.style(cell.Attrs))
}

// ShowCursorAt places the hardware cursor at host coordinates (x, y).
func (t *Terminal) ShowCursorAt(x, y int) { t.screen.ShowCursor(x, y) }

// HideCursor removes the hardware cursor (DECTCEM reset).
func (t *Terminal) HideCursor() { t.screen.HideCursor() }

// DrawSeparator fills a 1-cell-wide or 1-cell-tall strip with a divider
// glyph, per spec.md §4.3's draw order ("left child, separator, right
// child").
func (t *Terminal) DrawSeparator(vertical bool, y, x, h, w int) {
	style := tcell.StyleDefault
	glyph := '│'
	if !vertical {
		glyph = '─'
	}
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			t.screen.SetContent(x+c, y+r, glyph, nil, style)
		}
	}
}

func (t *Terminal) style(a screen.Attrs) tcell.Style {
	st := tcell.StyleDefault
	st = st.Bold(a.Bold).Dim(a.Dim).Underline(a.Underline).
		Blink(a.Blink).Reverse(a.Reverse).Italic(a.Italic)
	if a.Fg != screen.ColorDefault {
		r, g, b := colorpair.RGB(int(a.Fg))
		st = st.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	if a.Bg != screen.ColorDefault {
		r, g, b := colorpair.RGB(int(a.Bg))
		st = st.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	return st
}

// KbdBackspaceSendsDEL reports which byte the host's Backspace key should
// be translated to, mirroring mtm.c's `kbs` flag (from terminfo's kbs
// capability: some terminals send ^H, most modern ones expect DEL).
func (t *Terminal) KbdBackspaceSendsDEL() bool { return !t.kbs }

func detectBackspace(s tcell.Screen) bool {
	// tcell normalizes Backspace to tcell.KeyBackspace/KeyBackspace2
	// regardless of the host's terminfo kbs entry, so both arrive as a
	// single well-known key; we always translate to DEL (0x7f) as mtm.c's
	// default build (without a kbs terminfo match) does.
	return false
}
