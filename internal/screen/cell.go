// Package screen implements the per-view grid, cursor, SGR attributes,
// scroll region, tab stops, character sets, alternate screen, and optional
// scrollback described in spec.md §3 (Screen) and the ~80 ECMA-48/DEC
// handlers of §4.2, grounded on deadpixi/mtm's tmt.c/mtm.c.
package screen

// Color is either ColorDefault or an indexed palette value 0..255.
type Color int

// ColorDefault represents "the terminal's default color", matching
// spec.md's Color::Default and mtm.c's use of -1 for unset fg/bg.
const ColorDefault Color = -1

// Attrs are the SGR-controlled rendering attributes of a cell, per
// spec.md §3.
type Attrs struct {
	Fg, Bg Color
	Bold, Dim, Underline, Blink, Reverse, Invisible, Italic bool
}

// DefaultAttrs is the SGR-reset state (SGR 0 / RIS).
var DefaultAttrs = Attrs{Fg: ColorDefault, Bg: ColorDefault}

// Cell is a single grid position: a code point plus the attributes it was
// written with.
type Cell struct {
	Ch    rune
	Attrs Attrs
}

// blank is what ED/EL/scroll fill with: a space in the current attributes.
func blank(a Attrs) Cell { return Cell{Ch: ' ', Attrs: a} }

// Point is a (row, col) cursor position, both 0-based.
type Point struct {
	Row, Col int
}
