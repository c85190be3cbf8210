package eventloop

import (
	"github.com/gdamore/tcell/v2"

	"mtm/internal/hostterm"
	"mtm/internal/layout"
	"mtm/internal/screen"
)

// handleHostEvent dispatches one host terminal event. It returns true when
// the program should exit (the root view was just deleted).
func (l *Loop) handleHostEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return l.handleKey(e)
	case *tcell.EventMouse:
		l.handleMouse(e)
	case *tcell.EventResize:
		// tcell's Size() already reflects the new dimensions; renderAll
		// picks it up on the next pass.
	}
	return false
}

// handleKey implements the command-key prefix state machine from
// deadpixi/mtm's handlechar(): while cmdPending is set, the next key is
// looked up in the binding table; any key that doesn't match a binding
// (including the command key itself, pressed twice) falls through and is
// sent to the focused child verbatim, matching mtm.c's fallback `SEND`.
// Returns true when the last view was just deleted and the program
// should exit.
func (l *Loop) handleKey(ev *tcell.EventKey) bool {
	fv := l.focusedView()

	// The command key is always a control character (it's derived as
	// CTL(x) = x & 0x1f), so tcell always reports it as a named Key, never
	// as KeyRune.
	if !l.cmdPending && ev.Key() != tcell.KeyRune && rune(ev.Key()) == l.commandKey {
		l.cmdPending = true
		return false
	}

	if l.cmdPending {
		l.cmdPending = false
		consumed, quit := l.handleCommand(ev)
		if quit {
			return true
		}
		if consumed {
			return false
		}
	}

	fv.Mu.Lock()
	appCursor := fv.Screen.AppCursor
	lnm := fv.Screen.LNM
	fv.Mu.Unlock()

	bs := l.term.KbdBackspaceSendsDEL()
	b := hostterm.TranslateKey(ev, appCursor, lnm, bs)
	if len(b) == 0 {
		return false
	}
	_, _ = fv.Write(b)
	return false
}

// handleCommand runs the binding table mtm.c's handlechar() applies while
// cmd is true: directional focus on the arrow keys, h/v splits, w delete,
// l full redraw, o focus-previous, and (spec.md's scrollback supplement)
// PageUp/PageDown/End. Reports whether the key was consumed, and whether
// it deleted the last remaining view.
func (l *Loop) handleCommand(ev *tcell.EventKey) (consumed, quit bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		l.tree.DirectionalFocus(layout.DirUp)
		return true, false
	case tcell.KeyDown:
		l.tree.DirectionalFocus(layout.DirDown)
		return true, false
	case tcell.KeyLeft:
		l.tree.DirectionalFocus(layout.DirLeft)
		return true, false
	case tcell.KeyRight:
		l.tree.DirectionalFocus(layout.DirRight)
		return true, false
	case tcell.KeyPgUp:
		l.scrollFocused(1)
		return true, false
	case tcell.KeyPgDn:
		l.scrollFocused(-1)
		return true, false
	case tcell.KeyEnd:
		l.scrollFocusedToLive()
		return true, false
	}

	if ev.Key() != tcell.KeyRune {
		return false, false
	}
	switch ev.Rune() {
	case 'h':
		l.split(layout.Horizontal)
	case 'v':
		l.split(layout.Vertical)
	case 'w':
		return true, l.deleteFocused()
	case 'l':
		l.term.Sync()
	case 'o':
		l.tree.FocusLast()
	default:
		return false, false
	}
	return true, false
}

func (l *Loop) scrollFocused(pages int) {
	v := l.focusedView()
	v.Mu.Lock()
	defer v.Mu.Unlock()
	v.Screen.ScrollView(pages * v.Screen.Rows)
}

func (l *Loop) scrollFocusedToLive() {
	v := l.focusedView()
	v.Mu.Lock()
	defer v.Mu.Unlock()
	v.Screen.ScrollToLive()
}

func (l *Loop) split(o layout.Orientation) {
	focused := l.tree.Focused()
	factory := l.leafFactory(l.shell, l.shellArgs)
	if _, err := l.tree.Split(focused, o, factory); err != nil {
		// ErrTooSmall: spec.md says such splits "fail silently".
		return
	}
}

// deleteFocused closes and removes the focused view. It reports true when
// that view was the last one remaining, so the caller can stop the loop
// the same way reapExited does for a process that exits on its own.
func (l *Loop) deleteFocused() bool {
	focused := l.tree.Focused()
	v := l.viewAt(focused)
	_ = v.Close()
	return l.tree.Delete(focused) != nil // ErrRootDeleted: that was the last view
}

// handleMouse translates a host mouse event into the wire protocol the
// focused view's screen has requested (X10 or SGR encoding), per spec.md
// §4.4, and also moves focus to the pane the click landed in.
func (l *Loop) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if id, ok := l.tree.Find(y, x); ok {
		l.tree.Focus(id)
	}

	fv := l.focusedView()
	fv.Mu.Lock()
	mode := fv.Screen.MouseMode
	sgr := fv.Screen.SGRMouse
	fv.Mu.Unlock()
	if mode == screen.MouseOff {
		return
	}

	buttons := ev.Buttons()
	motion := buttons != tcell.ButtonNone && buttons == l.prevMouseBtns
	l.prevMouseBtns = buttons
	if motion && mode != screen.MouseButtonMotion {
		return
	}

	fy, fx, _, _ := l.tree.Rect(l.tree.Focused())
	btn, released := decodeMouseButtons(buttons)
	b := hostterm.EncodeMouse(btn, released, motion, y-fy, x-fx, sgr)
	_, _ = fv.Write(b)
}

func decodeMouseButtons(buttons tcell.ButtonMask) (btn hostterm.MouseButton, released bool) {
	switch {
	case buttons&tcell.Button1 != 0:
		return hostterm.MouseLeft, false
	case buttons&tcell.Button2 != 0:
		return hostterm.MouseMiddle, false
	case buttons&tcell.Button3 != 0:
		return hostterm.MouseRight, false
	case buttons&tcell.WheelUp != 0:
		return hostterm.MouseWheelUp, false
	case buttons&tcell.WheelDown != 0:
		return hostterm.MouseWheelDown, false
	default:
		return hostterm.MouseNone, true
	}
}
