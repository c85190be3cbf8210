package screen

// SetMode applies ANSI (non-private) modes from CSI h/l, per spec.md's
// "Modes" — currently only LNM (20) is a standard-mode toggle the spec
// names; others are DEC-private and go through SetPrivateMode.
func (s *Screen) SetMode(param int, set bool) {
	switch param {
	case 20:
		s.LNM = set
	}
}

// SetPrivateMode applies DECSET/DECRST (`CSI ? Pm h/l`) per spec.md's
// "Modes" table.
func (s *Screen) SetPrivateMode(param int, set bool) {
	switch param {
	case 1:
		s.AppCursor = set // DECCKM, application cursor keys
	case 3:
		s.ED(2) // 132/80 column mode effect: clear screen
	case 6:
		s.Origin = set
		if set {
			s.moveTo(s.Top, 0)
		} else {
			s.moveTo(0, 0)
		}
	case 7:
		s.AutoWrap = set
	case 12:
		// SRM (send/receive mode); no local echo concept here, accepted
		// and ignored like mtm's blanket-ignored private modes.
	case 25:
		s.Visible = set
	case 1000:
		if set {
			s.MouseMode = MouseButtonOnly
		} else {
			s.MouseMode = MouseOff
		}
	case 1002:
		if set {
			s.MouseMode = MouseButtonMotion
		} else {
			s.MouseMode = MouseOff
		}
	case 1006:
		s.SGRMouse = set
	case 1047:
		if set {
			s.EnterAlternate(true)
		} else {
			s.LeaveAlternate()
		}
	case 1048:
		if set {
			s.SaveCursor()
		} else {
			s.RestoreCursor()
		}
	case 1049:
		if set {
			s.SaveCursor()
			s.EnterAlternate(true)
		} else {
			s.LeaveAlternate()
			s.RestoreCursor()
		}
	}
}
