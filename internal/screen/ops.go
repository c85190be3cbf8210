package screen

import "mtm/internal/charset"

// Cursor motion ---------------------------------------------------------

// moveTo sets the cursor absolutely (already resolved to screen
// coordinates, i.e. origin-mode translation already applied by the
// caller) and clears PendingWrap, per spec.md: "Any motion clears
// pending_wrap."
func (s *Screen) moveTo(row, col int) {
	s.PendingWrap = false
	s.Cursor = s.clampCursor(Point{Row: row, Col: col})
}

// homeRow returns the row CUP/HVP/mode-6 should treat as "row 1", which is
// the scroll region top when origin mode is set.
func (s *Screen) homeRow() int {
	if s.Origin {
		return s.Top
	}
	return 0
}

func (s *Screen) clampRow(r int) int {
	lo, hi := 0, s.Rows-1
	if s.Origin {
		lo, hi = s.Top, s.Bot-1
	}
	if r < lo {
		r = lo
	}
	if r > hi {
		r = hi
	}
	return r
}

// CUU/CUD/CUF/CUB move the cursor, clamped to the scroll region (vertical)
// or screen edges (horizontal), per spec.md.
func (s *Screen) CUU(n int) {
	top := 0
	if s.Cursor.Row >= s.Top {
		top = s.Top
	}
	s.moveTo(max0(s.Cursor.Row-n, top), s.Cursor.Col)
}

func (s *Screen) CUD(n int) {
	bot := s.Rows - 1
	if s.Cursor.Row < s.Bot {
		bot = s.Bot - 1
	}
	s.moveTo(min0(s.Cursor.Row+n, bot), s.Cursor.Col)
}

func (s *Screen) CUF(n int) { s.moveTo(s.Cursor.Row, min0(s.Cursor.Col+n, s.Cols-1)) }
func (s *Screen) CUB(n int) { s.moveTo(s.Cursor.Row, max0(s.Cursor.Col-n, 0)) }

// CUP/HVP: 1-based (row, col), clamped, origin-mode-relative.
func (s *Screen) CUP(row, col int) {
	s.moveTo(s.clampRow(s.homeRow()+row-1), clampCol(col-1, s.Cols))
}

// CNL/CPL move to column 0 then down/up n rows.
func (s *Screen) CNL(n int) { s.moveTo(min0(s.Cursor.Row+n, s.Rows-1), 0) }
func (s *Screen) CPL(n int) { s.moveTo(max0(s.Cursor.Row-n, 0), 0) }

// HPA/VPA set absolute column/row; HPR/VPR move relative.
func (s *Screen) HPA(col int) { s.moveTo(s.Cursor.Row, clampCol(col-1, s.Cols)) }
func (s *Screen) VPA(row int) { s.moveTo(s.clampRow(s.homeRow()+row-1), s.Cursor.Col) }
func (s *Screen) HPR(n int)   { s.CUF(n) }
func (s *Screen) VPR(n int)   { s.CUD(n) }

func clampCol(c, cols int) int {
	if c < 0 {
		return 0
	}
	if c >= cols {
		return cols - 1
	}
	return c
}

func max0(a, b int) int {
	if a > b {
		return a
	}
	return b
}
func min0(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Editing -----------------------------------------------------------------

// ICH inserts n cells at the cursor, shifting the remainder of the line
// right and dropping cells that fall off the right edge.
func (s *Screen) ICH(n int) {
	row := s.grid().Row(s.Cursor.Row)
	c := s.Cursor.Col
	if n > s.Cols-c {
		n = s.Cols - c
	}
	copy(row[c+n:], row[c:s.Cols-n])
	for i := c; i < c+n; i++ {
		row[i] = blank(s.Attrs)
	}
}

// DCH deletes n cells at the cursor, shifting the remainder of the line
// left and padding with blanks at the right.
func (s *Screen) DCH(n int) {
	row := s.grid().Row(s.Cursor.Row)
	c := s.Cursor.Col
	if n > s.Cols-c {
		n = s.Cols - c
	}
	copy(row[c:], row[c+n:])
	for i := s.Cols - n; i < s.Cols; i++ {
		row[i] = blank(s.Attrs)
	}
}

// ECH erases n cells starting at the cursor (in place, no shifting).
func (s *Screen) ECH(n int) {
	row := s.grid().Row(s.Cursor.Row)
	c := s.Cursor.Col
	end := min0(c+n, s.Cols)
	for i := c; i < end; i++ {
		row[i] = blank(s.Attrs)
	}
}

// IL inserts n blank lines at the cursor row, within the scroll region.
func (s *Screen) IL(n int) {
	if s.Cursor.Row < s.Top || s.Cursor.Row >= s.Bot {
		return
	}
	s.grid().ScrollDown(s.Cursor.Row, s.Bot, n, s.Attrs)
}

// DL deletes n lines at the cursor row, within the scroll region.
func (s *Screen) DL(n int) {
	if s.Cursor.Row < s.Top || s.Cursor.Row >= s.Bot {
		return
	}
	s.grid().ScrollUp(s.Cursor.Row, s.Bot, n, s.Attrs)
}

// EL: 0 = cursor to end of line, 1 = start of line to cursor, 2 = whole line.
func (s *Screen) EL(mode int) {
	row := s.grid().Row(s.Cursor.Row)
	switch mode {
	case 0:
		for i := s.Cursor.Col; i < s.Cols; i++ {
			row[i] = blank(s.Attrs)
		}
	case 1:
		for i := 0; i <= s.Cursor.Col && i < s.Cols; i++ {
			row[i] = blank(s.Attrs)
		}
	case 2:
		for i := 0; i < s.Cols; i++ {
			row[i] = blank(s.Attrs)
		}
	}
}

// ED: 0 = cursor to end of screen, 1 = top to cursor, 2 = whole screen,
// 3 = whole screen plus clear scrollback.
func (s *Screen) ED(mode int) {
	g := s.grid()
	switch mode {
	case 0:
		s.EL(0)
		g.ClearRect(s.Cursor.Row+1, 0, s.Rows, s.Cols, s.Attrs)
	case 1:
		g.ClearRect(0, 0, s.Cursor.Row, s.Cols, s.Attrs)
		s.EL(1)
	case 2:
		g.Clear(s.Attrs)
	case 3:
		g.Clear(s.Attrs)
		if s.Scrollback != nil {
			s.Scrollback.Clear()
		}
	}
}

// Scrolling ---------------------------------------------------------------

func (s *Screen) pushScrollback(row []Cell) {
	if s.Scrollback != nil && s.Top == 0 {
		s.Scrollback.Push(row)
	}
}

// SU scrolls the region up by n (content moves up, new blank lines appear
// at the bottom).
func (s *Screen) SU(n int) {
	g := s.grid()
	if s.Top == 0 {
		for i := 0; i < n && i < s.Bot-s.Top; i++ {
			s.pushScrollback(append([]Cell(nil), g.Row(s.Top+i)...))
		}
	}
	g.ScrollUp(s.Top, s.Bot, n, s.Attrs)
}

// SD scrolls the region down by n.
func (s *Screen) SD(n int) { s.grid().ScrollDown(s.Top, s.Bot, n, s.Attrs) }

// IND (Index): move down one row, scrolling the region if already at the
// bottom margin.
func (s *Screen) IND() {
	if s.Cursor.Row == s.Bot-1 {
		s.SU(1)
	} else {
		s.moveTo(s.Cursor.Row+1, s.Cursor.Col)
	}
}

// RI (Reverse Index): move up one row, scrolling the region if already at
// the top margin.
func (s *Screen) RI() {
	if s.Cursor.Row == s.Top {
		s.SD(1)
	} else {
		s.moveTo(s.Cursor.Row-1, s.Cursor.Col)
	}
}

// NEL (Next Line): carriage return then IND.
func (s *Screen) NEL() {
	s.moveTo(s.Cursor.Row, 0)
	s.IND()
}

// LF/VT/FF: IND, plus CR if LNM is set (spec.md's pnl/newline semantics).
func (s *Screen) LineFeed() {
	s.IND()
	if s.LNM {
		s.moveTo(s.Cursor.Row, 0)
	}
}

// DECSTBM sets the scroll region to [top-1, bot) (0-based, half-open),
// rejecting an empty/inverted region. On acceptance the cursor moves to
// (0,0), or (top,0) in origin mode; on rejection, both the region and the
// cursor are left unchanged (spec.md's Open Question decision, recorded in
// DESIGN.md).
func (s *Screen) DECSTBM(top, bot int) {
	t := top - 1
	if t < 0 {
		t = 0
	}
	b := bot
	if b == 0 || b > s.Rows {
		b = s.Rows
	}
	if t >= b {
		return
	}
	s.Top, s.Bot = t, b
	if s.Origin {
		s.moveTo(s.Top, 0)
	} else {
		s.moveTo(0, 0)
	}
}

// Tabs ----------------------------------------------------------------

// HT moves forward to the next tab stop, or the right margin if none.
func (s *Screen) HT() {
	for i := s.Cursor.Col + 1; i < s.Cols; i++ {
		if s.Tabs[i] {
			s.moveTo(s.Cursor.Row, i)
			return
		}
	}
	s.moveTo(s.Cursor.Row, s.Cols-1)
}

// CBT (back tab) moves backward to the previous tab stop, or column 0.
func (s *Screen) CBT(n int) {
	for ; n > 0; n-- {
		moved := false
		for i := s.Cursor.Col - 1; i >= 0; i-- {
			if s.Tabs[i] {
				s.moveTo(s.Cursor.Row, i)
				moved = true
				break
			}
		}
		if !moved {
			s.moveTo(s.Cursor.Row, 0)
			return
		}
	}
}

// HTS sets a tab stop at the current column.
func (s *Screen) HTS() {
	if s.Cursor.Col >= 0 && s.Cursor.Col < s.Cols {
		s.Tabs[s.Cursor.Col] = true
	}
}

// TBC: 0 = clear tab at cursor, 3 = clear all tab stops.
func (s *Screen) TBC(mode int) {
	switch mode {
	case 0:
		if s.Cursor.Col < s.Cols {
			s.Tabs[s.Cursor.Col] = false
		}
	case 3:
		for i := range s.Tabs {
			s.Tabs[i] = false
		}
	}
}

// REP repeats the last printed code point n times; never repeats a
// control. Spec.md's Open Question decision: cleared by any non-Print
// dispatch.
func (s *Screen) REP(n int) {
	if !s.lastPrintValid {
		return
	}
	for i := 0; i < n; i++ {
		s.printOne(s.lastPrint)
	}
}

// Save/restore cursor (DECSC/DECRC) -----------------------------------

func (s *Screen) SaveCursor() {
	s.Saved = &Saved{
		Cursor:      s.Cursor,
		Attrs:       s.Attrs,
		PendingWrap: s.PendingWrap,
		Charsets:    s.Charsets,
	}
}

func (s *Screen) RestoreCursor() {
	if s.Saved == nil {
		return
	}
	s.Cursor = s.clampCursor(s.Saved.Cursor)
	s.Attrs = s.Saved.Attrs
	s.PendingWrap = s.Saved.PendingWrap
	s.Charsets = s.Saved.Charsets
}

// DECALN fills the screen with 'E' in default attrs, used for alignment
// testing.
func (s *Screen) DECALN() {
	g := s.grid()
	for r := 0; r < s.Rows; r++ {
		row := g.Row(r)
		for c := 0; c < s.Cols; c++ {
			row[c] = Cell{Ch: 'E', Attrs: DefaultAttrs}
		}
	}
}

// Alternate screen -----------------------------------------------------

// EnterAlternate switches to the alternate screen. The primary grid is
// untouched (spec.md: "does not alter the primary grid").
func (s *Screen) EnterAlternate(clear bool) {
	if s.Active == Alternate {
		return
	}
	if s.alternate == nil {
		s.alternate = NewGrid(s.Rows, s.Cols)
	} else if clear {
		s.alternate.Clear(s.Attrs)
	}
	s.Active = Alternate
}

// LeaveAlternate switches back to the primary screen, unchanged (spec.md:
// "switching back restores it unchanged").
func (s *Screen) LeaveAlternate() {
	s.Active = Primary
}

// RIS resets all screen state: attributes, tabs, cursor, primary buffer,
// default character sets (spec.md §4.2 "Erase / reset").
func (s *Screen) RIS() {
	s.Attrs = DefaultAttrs
	s.Primary.Clear(s.Attrs)
	s.alternate = nil
	s.Active = Primary
	s.Cursor = Point{}
	s.PendingWrap = false
	s.Insert = false
	s.Origin = false
	s.AutoWrap = true
	s.LNM = false
	s.Top, s.Bot = 0, s.Rows
	s.Tabs = defaultTabs(s.Cols)
	s.Charsets = charset.NewMap()
	s.Saved = nil
	s.lastPrintValid = false
	s.Visible = true
}
