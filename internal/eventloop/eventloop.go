// Package eventloop drives the program: it polls the host terminal for
// input, dispatches the command-key prefix state machine, feeds plain
// keys/mouse events to the focused child, and renders the layout tree
// after every event.
//
// Grounded on deadpixi/mtm's run()/handlechar() (the select-loop-plus-
// prefix-key dispatch, reproduced here as a goroutine-plus-channel select
// since Go has no portable raw multi-fd select/poll the way C does), with
// SIGWINCH handling delegated to tcell's own EventResize (the teacher's
// PipeOutput goroutine-per-reader pattern covers per-view PTY output).
package eventloop

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"mtm/internal/hostterm"
	"mtm/internal/layout"
	"mtm/internal/view"
)

// DefaultCommandKey is mtm.c's CTL('g') (config.def.h's COMMAND_KEY 'g'),
// the prefix key before a directional focus move, split, delete, or
// redraw binding.
const DefaultCommandKey = 'g' & 0x1f

// Loop owns the layout tree, the host terminal, and the command-prefix
// state machine.
type Loop struct {
	term       *hostterm.Terminal
	tree       *layout.Tree
	commandKey rune

	cmdPending    bool
	redraw        chan struct{}
	scrollback    int
	shell         string
	shellArgs     []string
	extraEnv      []string
	prevMouseBtns tcell.ButtonMask
}

// Config carries the knobs needed to start a Loop.
type Config struct {
	Term       *hostterm.Terminal
	CommandKey rune // 0 selects DefaultCommandKey
	Shell      string
	ShellArgs  []string
	ExtraEnv   []string // appended to each child's environment, e.g. TERM, MTM
	Scrollback int
}

// New builds the root view and its layout tree, sized to the host
// terminal's current dimensions.
func New(cfg Config) (*Loop, error) {
	l := &Loop{
		term:       cfg.Term,
		commandKey: cfg.CommandKey,
		redraw:     make(chan struct{}, 1),
		scrollback: cfg.Scrollback,
		shell:      cfg.Shell,
		shellArgs:  cfg.ShellArgs,
		extraEnv:   cfg.ExtraEnv,
	}
	if l.commandKey == 0 {
		l.commandKey = DefaultCommandKey
	}

	rows, cols := cfg.Term.Size()
	factory := l.leafFactory(cfg.Shell, cfg.ShellArgs)
	tree, err := layout.New(rows, cols, factory)
	if err != nil {
		return nil, err
	}
	l.tree = tree
	return l, nil
}

func (l *Loop) leafFactory(shell string, args []string) layout.LeafFactory {
	return func(y, x, h, w int) (layout.Leaf, error) {
		return view.New(view.Config{
			Rows: h, Cols: w,
			Scrollback: l.scrollback,
			Command:    shell,
			Args:       args,
			ExtraEnv:   l.extraEnv,
			OnData:     l.requestRedraw,
			OnBell:     l.term.Beep,
			OnTitle:    l.term.SetTitle,
		})
	}
}

func (l *Loop) requestRedraw() {
	select {
	case l.redraw <- struct{}{}:
	default:
	}
}

// Run polls the host terminal and the views until the last view exits or
// the host closes its event stream.
func (l *Loop) Run() error {
	hostEvents := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := l.term.PollEvent()
			if ev == nil {
				close(hostEvents)
				return
			}
			hostEvents <- ev
		}
	}()

	l.renderAll()
	reapTick := time.NewTicker(200 * time.Millisecond)
	defer reapTick.Stop()

	for {
		select {
		case ev, ok := <-hostEvents:
			if !ok {
				return nil
			}
			if l.handleHostEvent(ev) {
				return nil
			}
			l.renderAll()
		case <-l.redraw:
			l.renderAll()
		case <-reapTick.C:
			if l.reapExited() {
				return nil
			}
			l.renderAll()
		}
	}
}

// reapExited removes views whose child process has exited, per spec.md/
// mtm.c's deletenode-on-EOF behavior. Returns true once the root view
// itself has exited, meaning the whole program should stop.
func (l *Loop) reapExited() bool {
	for _, id := range l.tree.Views() {
		v := l.viewAt(id)
		if exited, _ := v.Exited(); !exited {
			continue
		}
		if err := l.tree.Delete(id); err != nil {
			return true // ErrRootDeleted: the last view exited
		}
	}
	return false
}

func (l *Loop) focusedView() *view.View {
	return l.viewAt(l.tree.Focused())
}
