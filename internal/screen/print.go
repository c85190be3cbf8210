package screen

import "mtm/internal/charset"

// printOne implements the Printing rule of spec.md §4.2 for a single
// (already charset-untranslated) code point.
func (s *Screen) printOne(w rune) {
	width := Width(w)
	if width < 0 {
		return
	}
	if width == 0 {
		return // combining character; no combining support (Non-goal).
	}

	if s.Insert {
		s.ICH(width)
	}

	if s.PendingWrap {
		s.PendingWrap = false
		if s.AutoWrap {
			s.NEL()
		}
	}

	glyph := s.translatePrint(w)

	row := s.grid().Row(s.Cursor.Row)
	c := s.Cursor.Col
	row[c] = Cell{Ch: glyph, Attrs: s.Attrs}
	if width == 2 && c+1 < s.Cols {
		row[c+1] = Cell{Ch: 0, Attrs: s.Attrs} // wide-char continuation cell
	}

	if c+width >= s.Cols {
		s.Cursor.Col = s.Cols - 1
		s.PendingWrap = true
	} else {
		s.Cursor.Col = c + width
	}

	s.Charsets.ClearPending()

	s.lastPrint = w
	s.lastPrintValid = true
}

func (s *Screen) translatePrint(w rune) rune {
	return charset.Translate(s.Charsets.Active(), w)
}

// Print is the vtparser.Handler entry point for a printable code point.
func (s *Screen) Print(w rune) { s.printOne(w) }
