package screen

import "mtm/internal/charset"

// ShiftOut/ShiftIn implement SO (0x0E, lock into G1) / SI (0x0F, lock into
// G0), per spec.md §4.2 "Character sets".
func (s *Screen) ShiftOut() { s.Charsets.ShiftOut() }
func (s *Screen) ShiftIn()  { s.Charsets.ShiftIn() }

// SingleShift arms a one-character shift into G2 (ESC N) or G3 (ESC O).
func (s *Screen) SingleShift(idx int) { s.Charsets.SingleShift(idx) }

// Designate assigns the charset named by final to Gn, from `ESC ( final`
// (n=0), `ESC ) final` (n=1), `ESC * final` (n=2), `ESC + final` (n=3).
func (s *Screen) Designate(n int, final rune) {
	if id, ok := charset.ForDesignator(final); ok {
		s.Charsets.Designate(n, id)
	}
}

// SetTitle records the OSC 0/1/2 window title and notifies the host.
func (s *Screen) SetTitle(title string) {
	s.Title = title
	if s.onTitle != nil {
		s.onTitle(title)
	}
}
