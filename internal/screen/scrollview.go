package screen

// ScrollView moves the scrollback viewport by delta lines (positive scrolls
// back into history, negative scrolls toward the live screen), clamping to
// [0, len(scrollback)]. A zero Scrollback makes this a no-op, matching
// spec.md's "Treat scrollback as optional".
func (s *Screen) ScrollView(delta int) {
	if s.Scrollback == nil {
		return
	}
	s.ScrollbackOffset += delta
	if s.ScrollbackOffset < 0 {
		s.ScrollbackOffset = 0
	}
	if max := s.Scrollback.Len(); s.ScrollbackOffset > max {
		s.ScrollbackOffset = max
	}
}

// ScrollToLive resets the scrollback viewport to the live screen (the
// "End" key recenter binding).
func (s *Screen) ScrollToLive() { s.ScrollbackOffset = 0 }

// ViewRow returns the row to display at visual row r, sourcing from
// scrollback history when the viewport is scrolled back, and from the
// active grid otherwise.
func (s *Screen) ViewRow(r int) []Cell {
	if s.ScrollbackOffset == 0 || s.Scrollback == nil {
		return s.grid().Row(r)
	}
	histLen := s.Scrollback.Len()
	// Row 0 of the viewport shows the oldest visible history line; rows
	// beyond history fall through to the live grid.
	histStart := histLen - s.ScrollbackOffset
	idx := histStart + r
	if idx >= 0 && idx < histLen {
		return s.Scrollback.Line(idx)
	}
	liveRow := idx - histLen
	return s.grid().Row(liveRow)
}
