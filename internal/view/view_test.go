package view

import (
	"os"
	"testing"
	"time"

	"mtm/internal/screen"
)

// newPipeView builds a View around an os.Pipe instead of a real PTY, the
// way the teacher's vt_test.go exercises VT.WritePTY without forking a
// child, to test Write's timeout behavior in isolation.
func newPipeView(t *testing.T) (*View, *os.File) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { w.Close() })
	v := &View{ptm: w}
	v.Screen = screen.New(24, 80, 0, v.reply, nil)
	return v, r
}

func TestWriteSucceedsWhenReaderDrains(t *testing.T) {
	v, r := newPipeView(t)
	defer r.Close()
	go func() {
		buf := make([]byte, 1024)
		for {
			if _, err := r.Read(buf); err != nil {
				return
			}
		}
	}()

	n, err := v.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Fatalf("expected n=5, got %d", n)
	}
}

func TestWriteTimesOutWhenBufferFull(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	chunk := make([]byte, 4096)
	for {
		_ = w.SetWriteDeadline(time.Now().Add(50 * time.Millisecond))
		if _, err := w.Write(chunk); err != nil {
			break
		}
	}
	_ = w.SetWriteDeadline(time.Time{})

	v := &View{ptm: w}
	v.Screen = screen.New(24, 80, 0, v.reply, nil)

	start := time.Now()
	_, err = v.Write([]byte("x"))
	elapsed := time.Since(start)

	if err != ErrWriteTimeout {
		t.Fatalf("expected ErrWriteTimeout, got %v", err)
	}
	if elapsed < writeTimeout {
		t.Fatalf("returned too fast (%v), timeout may not be working", elapsed)
	}
}

func TestReshapeResizesScreen(t *testing.T) {
	v, r := newPipeView(t)
	defer r.Close()

	// Reshape calls pty.Setsize, which requires a real PTY fd; ptm here is
	// a pipe, so Setsize fails and its error is discarded (Reshape doesn't
	// propagate it), but the Screen resize must still take effect.
	v.Reshape(0, 0, 10, 40)
	if v.Screen.Rows != 10 || v.Screen.Cols != 40 {
		t.Fatalf("expected screen resized to 10x40, got %dx%d", v.Screen.Rows, v.Screen.Cols)
	}
}

func TestExitedReportsFalseBeforeExit(t *testing.T) {
	v, r := newPipeView(t)
	defer r.Close()

	exited, err := v.Exited()
	if exited {
		t.Fatalf("expected exited=false before any read error, got err=%v", err)
	}
}
