package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"mtm/internal/charset"
)

// ActiveBuffer selects which grid is live, per spec.md's `active: enum{
// Primary, Alternate}`.
type ActiveBuffer int

const (
	Primary ActiveBuffer = iota
	Alternate
)

// MouseMode mirrors View.mouse_mode from spec.md §3.
type MouseMode int

const (
	MouseOff MouseMode = iota
	MouseButtonOnly
	MouseButtonMotion
)

// Saved holds DECSC-saved state, restored by DECRC (spec.md §3 Saved).
type Saved struct {
	Cursor      Point
	Attrs       Attrs
	PendingWrap bool
	Charsets    charset.Map
}

// Screen is the per-view terminal state: grid, cursor, attributes, scroll
// region, tabs, flags, alternate screen, and optional scrollback, per
// spec.md §3.
type Screen struct {
	Rows, Cols int

	Cursor      Point
	Attrs       Attrs
	PendingWrap bool

	Saved *Saved

	Top, Bot int // scroll region, half-open [Top, Bot)
	Tabs     []bool

	AutoWrap, Origin, Insert, LNM, AppCursor, Visible bool

	Primary   *Grid
	alternate *Grid
	Active    ActiveBuffer

	Charsets charset.Map

	MouseMode MouseMode
	SGRMouse  bool

	Title string

	ScrollbackOffset int
	Scrollback       *Scrollback

	lastPrint      rune
	lastPrintValid bool

	// onReply is invoked with bytes the emulator wants sent back to the
	// child (DA/DSR/DECREQTPARM/ACK replies).
	onReply func([]byte)
	// onTitle is invoked when OSC 0/1/2 sets the window title.
	onTitle func(string)
	// onBell is invoked on BEL (0x07); nil means "no host notification".
	onBell func()
}

// SetOnBell installs the callback invoked when the child rings the bell.
func (s *Screen) SetOnBell(f func()) { s.onBell = f }

// New creates a screen of the given size with a scrollback of scrollback
// lines (0 disables scrollback, per spec.md's "Treat scrollback as
// optional").
func New(rows, cols, scrollback int, onReply func([]byte), onTitle func(string)) *Screen {
	s := &Screen{
		Rows: rows, Cols: cols,
		Primary:  NewGrid(rows, cols),
		Top:      0, Bot: rows,
		AutoWrap: true, Visible: true,
		Charsets: charset.NewMap(),
		onReply:  onReply,
		onTitle:  onTitle,
	}
	if scrollback > 0 {
		s.Scrollback = NewScrollback(scrollback, cols)
	}
	s.Tabs = defaultTabs(cols)
	return s
}

func defaultTabs(cols int) []bool {
	t := make([]bool, cols)
	for i := range t {
		t[i] = i%8 == 0
	}
	if cols > 0 {
		t[0] = true
		t[cols-1] = true
	}
	return t
}

// grid returns the currently active grid.
func (s *Screen) grid() *Grid {
	if s.Active == Alternate && s.alternate != nil {
		return s.alternate
	}
	return s.Primary
}

// ActiveGrid exposes the currently visible grid (primary or alternate) for
// a host adaptor to read while composing a frame.
func (s *Screen) ActiveGrid() *Grid { return s.grid() }

func (s *Screen) reply(format string, args ...interface{}) {
	if s.onReply != nil {
		s.onReply([]byte(fmt.Sprintf(format, args...)))
	}
}

// Resize changes the screen dimensions, resizing both grids, clamping the
// cursor and scroll region, and extending tab stops (new columns beyond
// the old width default to every-8th, per spec.md §4.3 reshape).
func (s *Screen) Resize(rows, cols int) {
	if rows == s.Rows && cols == s.Cols {
		return
	}
	oldCols := s.Cols
	s.Primary = s.Primary.Resized(rows, cols, s.Attrs)
	if s.alternate != nil {
		s.alternate = s.alternate.Resized(rows, cols, s.Attrs)
	}
	if cols != oldCols {
		nt := make([]bool, cols)
		copy(nt, s.Tabs)
		for i := oldCols; i < cols; i++ {
			nt[i] = i%8 == 0
		}
		if cols > 0 {
			nt[cols-1] = true
		}
		s.Tabs = nt
	}
	if s.Bot == s.Rows || s.Bot > rows {
		s.Bot = rows
	}
	if s.Top >= s.Bot {
		s.Top = 0
	}
	s.Rows, s.Cols = rows, cols
	s.Cursor = s.clampCursor(s.Cursor)
	s.PendingWrap = false
	if s.Scrollback != nil {
		s.Scrollback.Resize(cols)
	}
}

func (s *Screen) clampCursor(p Point) Point {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= s.Rows {
		p.Row = s.Rows - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if p.Col >= s.Cols {
		p.Col = s.Cols - 1
	}
	return p
}

// Width reports the display width of a code point, treating combining
// marks as zero width (spec.md's Printing rule step 1) and using wcwidth
// semantics via go-runewidth.
func Width(w rune) int { return runewidth.RuneWidth(w) }
