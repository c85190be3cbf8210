// Package view owns a single pane's child process: the PTY, the VT parser
// feeding it, and the screen buffer the parser drives. It implements
// layout.Leaf so the layout tree can resize it directly.
//
// Grounded on deadpixi/mtm's NODE (pt/pid/vterm fields, SIGCHLD-ignore
// reaping) and the teacher's virtualterminal.VT (StartPTY, PipeOutput,
// Resize, WritePTY-with-timeout): the shape of the lifecycle is the
// teacher's, the terminal semantics inside it are our own vtparser/screen
// packages instead of the teacher's vito/midterm.
package view

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/creack/pty"

	"mtm/internal/screen"
	"mtm/internal/vtparser"
)

// ErrWriteTimeout is returned by Write when the child is not reading its
// stdin and the PTY write buffer is full.
var ErrWriteTimeout = errors.New("view: pty write timed out")

const writeTimeout = 5 * time.Second

// View is one pane: a child process attached to a PTY, parsed into a
// Screen. All mutating access goes through the exported methods, which
// take Mu internally; callers needing atomic read-then-render sequences
// should hold Mu for the duration.
type View struct {
	Mu sync.Mutex

	Screen *screen.Screen
	parser vtparser.Parser

	ptm *os.File
	cmd *exec.Cmd

	onData func()
	onBell func()

	exited    bool
	exitErr   error
	waitGroup sync.WaitGroup
}

// Config carries the knobs used to create a View.
type Config struct {
	Rows, Cols int
	Scrollback int
	Command    string
	Args       []string
	ExtraEnv   []string    // appended to os.Environ() for the child, e.g. TERM, MTM
	OnData     func()      // invoked after each PTY read is applied to Screen
	OnBell     func()      // invoked when the child rings the bell
	OnTitle    func(string) // invoked when the child sets its title via OSC
}

// New starts command as a child process attached to a new PTY sized
// rows x cols, and wires its output through a VT parser into a Screen.
func New(cfg Config) (*View, error) {
	v := &View{onData: cfg.OnData, onBell: cfg.OnBell}

	v.Screen = screen.New(cfg.Rows, cfg.Cols, cfg.Scrollback, v.reply, cfg.OnTitle)
	v.Screen.SetOnBell(func() {
		if v.onBell != nil {
			v.onBell()
		}
	})

	v.cmd = exec.Command(cfg.Command, cfg.Args...)
	v.cmd.Env = append(os.Environ(), cfg.ExtraEnv...)

	ptm, err := pty.StartWithSize(v.cmd, &pty.Winsize{
		Rows: uint16(cfg.Rows),
		Cols: uint16(cfg.Cols),
	})
	if err != nil {
		return nil, fmt.Errorf("view: start command: %w", err)
	}
	v.ptm = ptm

	v.waitGroup.Add(1)
	go v.pipeOutput()

	return v, nil
}

// reply is the Screen's onReply callback: bytes the emulator wants sent
// back to the child (DA/DSR/DECREQTPARM/ACK replies).
func (v *View) reply(b []byte) {
	_, _ = v.ptm.Write(b)
}

// pipeOutput reads child PTY output and feeds it through the VT parser
// into Screen until the PTY closes (child exit or read error), per the
// teacher's VT.PipeOutput.
func (v *View) pipeOutput() {
	defer v.waitGroup.Done()
	buf := make([]byte, 4096)
	for {
		n, err := v.ptm.Read(buf)
		if n > 0 {
			v.Mu.Lock()
			v.parser.Write(buf[:n], v.Screen)
			v.Mu.Unlock()
			if v.onData != nil {
				v.onData()
			}
		}
		if err != nil {
			v.Mu.Lock()
			v.exited = true
			v.exitErr = v.cmd.Wait()
			v.Mu.Unlock()
			if v.onData != nil {
				v.onData()
			}
			return
		}
	}
}

// Write sends input bytes to the child, giving up after writeTimeout if
// the child isn't reading its stdin (its PTY buffer is full), mirroring
// the teacher's VT.WritePTY.
func (v *View) Write(p []byte) (int, error) {
	type result struct {
		n   int
		err error
	}
	ch := make(chan result, 1)
	go func() {
		n, err := v.ptm.Write(p)
		ch <- result{n, err}
	}()
	timer := time.NewTimer(writeTimeout)
	defer timer.Stop()
	select {
	case r := <-ch:
		return r.n, r.err
	case <-timer.C:
		return 0, ErrWriteTimeout
	}
}

// Reshape implements layout.Leaf: it resizes the screen buffer and the
// PTY's window size together.
func (v *View) Reshape(y, x, h, w int) {
	v.Mu.Lock()
	defer v.Mu.Unlock()
	v.Screen.Resize(h, w)
	_ = pty.Setsize(v.ptm, &pty.Winsize{Rows: uint16(h), Cols: uint16(w)})
}

// Exited reports whether the child process has terminated, and its exit
// error if any (nil on a clean exit).
func (v *View) Exited() (bool, error) {
	v.Mu.Lock()
	defer v.Mu.Unlock()
	return v.exited, v.exitErr
}

// Close terminates the child process and releases the PTY.
func (v *View) Close() error {
	if v.cmd.Process != nil {
		_ = v.cmd.Process.Kill()
	}
	err := v.ptm.Close()
	v.waitGroup.Wait()
	return err
}

// Pid returns the child process's PID, for diagnostics.
func (v *View) Pid() int {
	if v.cmd.Process == nil {
		return -1
	}
	return v.cmd.Process.Pid
}
