package eventloop

import (
	"mtm/internal/layout"
	"mtm/internal/view"
)

// renderAll reshapes the tree to the host terminal's current size (if it
// changed), composes every view's screen into the host terminal, draws
// separators, places the hardware cursor over the focused view, and
// presents the frame.
func (l *Loop) renderAll() {
	rows, cols := l.term.Size()
	_, _, h, w := l.tree.Rect(l.tree.Root())
	if h != rows || w != cols {
		l.tree.Reshape(l.tree.Root(), 0, 0, rows, cols)
	}

	l.tree.Compose(layout.Visitor{
		ViewRect:  l.drawView,
		Separator: func(o layout.Orientation, y, x, h, w int) { l.term.DrawSeparator(o == layout.Horizontal, y, x, h, w) },
	})

	l.placeCursor()
	l.term.Present()
}

func (l *Loop) drawView(id layout.ID, y, x, h, w int) {
	v := l.viewAt(id)
	v.Mu.Lock()
	defer v.Mu.Unlock()

	s := v.Screen
	for r := 0; r < h; r++ {
		row := s.ViewRow(r)
		for c := 0; c < w && c < len(row); c++ {
			l.term.SetCell(x+c, y+r, row[c])
		}
	}
}

func (l *Loop) placeCursor() {
	id := l.tree.Focused()
	v := l.viewAt(id)
	v.Mu.Lock()
	s := v.Screen
	visible := s.Visible && s.ScrollbackOffset == 0
	row, col := s.Cursor.Row, s.Cursor.Col
	v.Mu.Unlock()

	if !visible {
		l.term.HideCursor()
		return
	}
	y, x, _, _ := l.tree.Rect(id)
	l.term.ShowCursorAt(x+col, y+row)
}

func (l *Loop) viewAt(id layout.ID) *view.View {
	return l.tree.Leaf(id).(*view.View)
}
