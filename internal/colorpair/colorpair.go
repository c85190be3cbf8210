// Package colorpair interns (foreground, background) color pairs the way
// mtm.c's pair.c does for curses' limited COLOR_PAIRS table, adapted to
// tcell's Style cache. Spec.md §2 calls this component out explicitly
// (~3% of core): "interns (foreground, background) pairs into the limited
// set of pair indices the drawing library supports, reusing prior
// allocations."
package colorpair

import "github.com/lucasb-eyer/go-colorful"

// MaxTable mirrors mtm.c's MAXCTABLE (72): the fixed-size table pair.c
// scans linearly before giving up and reusing the oldest entry.
const MaxTable = 72

// entry is one interned pair, matching pair.c's COLORTABLE {used, f, b}.
type entry struct {
	used    bool
	fg, bg  int
	serial  uint64 // monotonically increasing "last used" stamp for eviction
}

// Default is the fg/bg value meaning the terminal's default color
// (spec.md's Color::Default); 0-255 are indexed palette values.
const Default = -1

// Table interns (fg,bg) pairs into stable small indices, reusing a prior
// allocation for a repeated pair as pair.c does, and evicting the
// least-recently-used entry once full (pair.c has no eviction).
type Table struct {
	entries [MaxTable]entry
	clock   uint64
}

// Intern returns a stable index in [0, MaxTable) for the (fg, bg) pair,
// reusing a previous allocation if one exists.
func (t *Table) Intern(fg, bg int) int {
	t.clock++
	for i := range t.entries {
		e := &t.entries[i]
		if e.used && e.fg == fg && e.bg == bg {
			e.serial = t.clock
			return i
		}
	}
	// Look for an unused slot first.
	for i := range t.entries {
		if !t.entries[i].used {
			t.entries[i] = entry{used: true, fg: fg, bg: bg, serial: t.clock}
			return i
		}
	}
	// Table full: evict the least-recently-used pair (pair.c instead just
	// refuses new allocations past MAXCTABLE; we take the more permissive
	// LRU-reuse reading documented in SPEC_FULL.md's supplemented-features
	// section so long-running sessions with many distinct colors don't
	// freeze their palette).
	oldest := 0
	for i := range t.entries {
		if t.entries[i].serial < t.entries[oldest].serial {
			oldest = i
		}
	}
	t.entries[oldest] = entry{used: true, fg: fg, bg: bg, serial: t.clock}
	return oldest
}

// Lookup returns the (fg, bg) pair interned at index, if any.
func (t *Table) Lookup(index int) (fg, bg int, ok bool) {
	if index < 0 || index >= MaxTable || !t.entries[index].used {
		return 0, 0, false
	}
	e := t.entries[index]
	return e.fg, e.bg, true
}

// xterm256 is the standard 256-color xterm palette expressed as RGB, used
// to translate an indexed Color into an RGB triple for hosts that only
// expose truecolor (tcell.NewRGBColor), or to find the nearest palette
// entry for hosts that don't.
var xterm256 = buildXterm256()

func buildXterm256() [256]colorful.Color {
	var t [256]colorful.Color
	// 0-15: the standard/bright ANSI colors (xterm's default cube corners).
	base := [16][3]uint8{
		{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
		{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
		{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
		{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
	}
	for i, c := range base {
		t[i] = colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}
	}
	// 16-231: a 6x6x6 color cube.
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				t[i] = colorful.Color{
					R: float64(steps[r]) / 255,
					G: float64(steps[g]) / 255,
					B: float64(steps[b]) / 255,
				}
				i++
			}
		}
	}
	// 232-255: grayscale ramp.
	for g := 0; g < 24; g++ {
		v := uint8(8 + g*10)
		t[232+g] = colorful.Color{R: float64(v) / 255, G: float64(v) / 255, B: float64(v) / 255}
	}
	return t
}

// RGB returns the (r, g, b) bytes for an indexed xterm-256 color.
func RGB(index int) (r, g, b uint8) {
	if index < 0 || index > 255 {
		return 0, 0, 0
	}
	c := xterm256[index]
	cr, cg, cb := c.RGB255()
	return cr, cg, cb
}

// Nearest returns the xterm-256 palette index closest (by Lab distance) to
// an arbitrary RGB triple, used to fold an SGR 38;2 / 48;2 truecolor
// request into the screen's indexed color model.
func Nearest(r, g, b uint8) int {
	target := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	best, bestDist := 0, 1e9
	for i, c := range xterm256 {
		d := target.DistanceLab(c)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}
