package screen

// DA answers a primary (CSI c) or secondary (CSI > c) Device Attributes
// request. The exact reply strings are taken verbatim from deadpixi/mtm's
// decid handler, per SPEC_FULL.md's "supplemented features".
func (s *Screen) DA(secondary bool) {
	if secondary {
		s.reply("\033[>1;10;0c")
	} else {
		s.reply("\033[?1;2c")
	}
}

// DSR answers a Device Status Report: 5 = status OK, 6 = cursor position
// (origin-mode aware), per spec.md.
func (s *Screen) DSR(mode int) {
	switch mode {
	case 5:
		s.reply("\033[0n")
	case 6:
		row := s.Cursor.Row + 1
		if s.Origin {
			row = s.Cursor.Row - s.Top + 1
		}
		s.reply("\033[%d;%dR", row, s.Cursor.Col+1)
	}
}

// DECREQTPARM answers a fixed parameter report, per deadpixi/mtm.
func (s *Screen) DECREQTPARM(solicited int) {
	if solicited != 0 {
		s.reply("\033[3;1;2;120;1;0x")
	} else {
		s.reply("\033[2;1;2;120;128;1;0x")
	}
}

// ACK answers ENQ (0x05).
func (s *Screen) ACK() { s.reply("\x06") }
