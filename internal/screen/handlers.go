package screen

import "strings"

// Screen implements vtparser.Handler: parser events drive emulator state
// changes directly, one call per dispatched event (spec.md §4.2).

func p0(params []int, i int) int {
	if i >= len(params) {
		return 0
	}
	return params[i]
}

func p1(params []int, i int) int {
	if v := p0(params, i); v != 0 {
		return v
	}
	return 1
}

// Control handles a single C0 control byte.
func (s *Screen) Control(c rune) {
	switch c {
	case 0x05:
		s.ACK()
	case 0x07:
		s.bell()
	case 0x08:
		s.CUB(1)
	case 0x09:
		s.HT()
	case 0x0a, 0x0b, 0x0c:
		s.LineFeed()
	case 0x0d:
		s.moveTo(s.Cursor.Row, 0)
	case 0x0e:
		s.ShiftOut()
	case 0x0f:
		s.ShiftIn()
	}
	s.lastPrintValid = false
}

func (s *Screen) bell() {
	if s.onBell != nil {
		s.onBell()
	}
}

// Escape handles a completed ESC sequence. intermediate is 0 if none was
// collected.
func (s *Screen) Escape(final, intermediate rune) {
	switch {
	case intermediate == '(':
		s.Designate(0, final)
	case intermediate == ')':
		s.Designate(1, final)
	case intermediate == '*':
		s.Designate(2, final)
	case intermediate == '+':
		s.Designate(3, final)
	case intermediate == '#' && final == '8':
		s.DECALN()
	case intermediate == 0:
		switch final {
		case '7':
			s.SaveCursor()
		case '8':
			s.RestoreCursor()
		case 'c':
			s.RIS()
		case 'D':
			s.IND()
		case 'E':
			s.NEL()
		case 'H':
			s.HTS()
		case 'M':
			s.RI()
		case 'N':
			s.SingleShift(2)
		case 'O':
			s.SingleShift(3)
		case 'Z':
			s.DA(false)
		}
	}
	s.lastPrintValid = false
}

// Csi handles a completed CSI sequence. intermediate carries collected
// intermediate bytes, including DEC private markers (<=>?), per spec.md's
// "first byte seen wins" collection rule.
func (s *Screen) Csi(final, intermediate rune, params []int) {
	if final == 'b' {
		s.REP(p1(params, 0))
		return
	}

	private := intermediate == '?'
	switch final {
	case 'A':
		s.CUU(p1(params, 0))
	case 'B':
		s.CUD(p1(params, 0))
	case 'C':
		s.CUF(p1(params, 0))
	case 'D':
		s.CUB(p1(params, 0))
	case 'E':
		s.CNL(p1(params, 0))
	case 'F':
		s.CPL(p1(params, 0))
	case 'G', '`':
		s.HPA(p1(params, 0))
	case 'd':
		s.VPA(p1(params, 0))
	case 'a':
		s.HPR(p1(params, 0))
	case 'e':
		s.VPR(p1(params, 0))
	case 'H', 'f':
		s.CUP(p1(params, 0), p1(params, 1))
	case 'I':
		for i := 0; i < p1(params, 0); i++ {
			s.HT()
		}
	case 'Z':
		s.CBT(p1(params, 0))
	case '@':
		s.ICH(p1(params, 0))
	case 'P':
		s.DCH(p1(params, 0))
	case 'X':
		s.ECH(p1(params, 0))
	case 'L':
		s.IL(p1(params, 0))
	case 'M':
		s.DL(p1(params, 0))
	case 'K':
		s.EL(p0(params, 0))
	case 'J':
		s.ED(p0(params, 0))
	case 'S':
		s.SU(p1(params, 0))
	case 'T':
		s.SD(p1(params, 0))
	case 'g':
		s.TBC(p0(params, 0))
	case 'r':
		s.DECSTBM(p1(params, 0), p0(params, 1))
	case 'm':
		s.SGR(params)
	case 'c':
		s.DA(intermediate == '>')
	case 'n':
		if !private {
			s.DSR(p0(params, 0))
		}
	case 'x':
		s.DECREQTPARM(p0(params, 0))
	case 'h', 'l':
		set := final == 'h'
		for _, pm := range nonZeroOrFirst(params) {
			if private {
				s.SetPrivateMode(pm, set)
			} else {
				s.SetMode(pm, set)
			}
		}
	}
	s.lastPrintValid = false
}

// nonZeroOrFirst returns params as given, or a single implied 0 if the
// list is empty (CSI h/l with no parameter is a no-op in practice, but we
// still walk at least one iteration for symmetry with PD/P0 semantics).
func nonZeroOrFirst(params []int) []int {
	if len(params) == 0 {
		return []int{0}
	}
	return params
}

// Osc handles a complete OSC payload: `Ps ; Pt` where Ps selects the
// command (0/1/2 set the window title) per spec.md §4.1/§GLOSSARY.
func (s *Screen) Osc(payload []rune) {
	str := string(payload)
	idx := strings.IndexByte(str, ';')
	if idx < 0 {
		s.lastPrintValid = false
		return
	}
	ps, text := str[:idx], str[idx+1:]
	switch ps {
	case "0", "1", "2":
		s.SetTitle(text)
	}
	s.lastPrintValid = false
}
