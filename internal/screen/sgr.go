package screen

import "mtm/internal/colorpair"

// SGR applies a Select Graphic Rendition parameter list, per spec.md
// §4.2. No parameter means reset (SGR 0).
func (s *Screen) SGR(params []int) {
	if len(params) == 0 {
		s.Attrs = DefaultAttrs
		return
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			s.Attrs = DefaultAttrs
		case p == 1:
			s.Attrs.Bold = true
		case p == 2:
			s.Attrs.Dim = true
		case p == 3:
			s.Attrs.Italic = true
		case p == 4:
			s.Attrs.Underline = true
		case p == 5:
			s.Attrs.Blink = true
		case p == 7:
			s.Attrs.Reverse = true
		case p == 8:
			s.Attrs.Invisible = true
		case p == 22:
			s.Attrs.Bold, s.Attrs.Dim = false, false
		case p == 23:
			s.Attrs.Italic = false
		case p == 24:
			s.Attrs.Underline = false
		case p == 25:
			s.Attrs.Blink = false
		case p == 27:
			s.Attrs.Reverse = false
		case p == 28:
			s.Attrs.Invisible = false
		case p >= 30 && p <= 37:
			s.Attrs.Fg = Color(p - 30)
		case p == 38:
			if n, adv := s.sgrExtendedColor(params[i+1:]); adv > 0 {
				s.Attrs.Fg = n
				i += adv
			}
		case p == 39:
			s.Attrs.Fg = ColorDefault
		case p >= 40 && p <= 47:
			s.Attrs.Bg = Color(p - 40)
		case p == 48:
			if n, adv := s.sgrExtendedColor(params[i+1:]); adv > 0 {
				s.Attrs.Bg = n
				i += adv
			}
		case p == 49:
			s.Attrs.Bg = ColorDefault
		case p >= 90 && p <= 97:
			s.Attrs.Fg = Color(p - 90 + 8)
		case p >= 100 && p <= 107:
			s.Attrs.Bg = Color(p - 100 + 8)
		}
	}
}

// sgrExtendedColor parses the `5;N` (256-color) or `2;R;G;B` (truecolor,
// downsampled to the nearest 256-color index for our indexed Color model)
// form following a 38/48 introducer, returning the color and how many
// extra parameters it consumed.
func (s *Screen) sgrExtendedColor(rest []int) (Color, int) {
	if len(rest) == 0 {
		return ColorDefault, 0
	}
	switch rest[0] {
	case 5:
		if len(rest) >= 2 {
			return Color(rest[1]), 2
		}
	case 2:
		if len(rest) >= 4 {
			return Color(colorpair.Nearest(uint8(rest[1]), uint8(rest[2]), uint8(rest[3]))), 4
		}
	}
	return ColorDefault, 0
}
