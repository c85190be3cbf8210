package vtparser

import "testing"

type event struct {
	kind  string
	c     rune
	final rune
	inter rune
	args  []int
	osc   []rune
}

type recorder struct {
	events []event
}

func (r *recorder) Control(c rune) { r.events = append(r.events, event{kind: "control", c: c}) }
func (r *recorder) Escape(final, intermediate rune) {
	r.events = append(r.events, event{kind: "escape", final: final, inter: intermediate})
}
func (r *recorder) Csi(final, intermediate rune, params []int) {
	r.events = append(r.events, event{kind: "csi", final: final, inter: intermediate, args: params})
}
func (r *recorder) Osc(payload []rune) {
	r.events = append(r.events, event{kind: "osc", osc: payload})
}
func (r *recorder) Print(w rune) { r.events = append(r.events, event{kind: "print", c: w}) }

func TestPrintGroundChars(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte("AB"), &r)
	if len(r.events) != 2 || r.events[0].kind != "print" || r.events[0].c != 'A' {
		t.Fatalf("unexpected events: %+v", r.events)
	}
}

func TestControlByte(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte("\x07"), &r)
	if len(r.events) != 1 || r.events[0].kind != "control" || r.events[0].c != 0x07 {
		t.Fatalf("expected a single BEL control event, got %+v", r.events)
	}
}

// A control byte arriving mid-CSI dispatches Control() without disturbing
// the sequence in progress, matching vtparser.c's MAKESTATE common rows
// (present in every state's ACTION table, not just ground's).
func TestControlByteMidCSIDoesNotAbortSequence(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte("\x1b[5\x08;10H"), &r)
	if len(r.events) != 2 {
		t.Fatalf("expected a control event and a csi event, got %d: %+v", len(r.events), r.events)
	}
	if r.events[0].kind != "control" || r.events[0].c != 0x08 {
		t.Fatalf("expected a BS control event, got %+v", r.events[0])
	}
	e := r.events[1]
	if e.kind != "csi" || e.final != 'H' || len(e.args) != 2 || e.args[0] != 5 || e.args[1] != 10 {
		t.Fatalf("expected the CSI sequence to complete undisturbed, got %+v", e)
	}
}

func TestCsiCursorPositionParams(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte("\x1b[5;10H"), &r)
	if len(r.events) != 1 {
		t.Fatalf("expected 1 event, got %d: %+v", len(r.events), r.events)
	}
	e := r.events[0]
	if e.kind != "csi" || e.final != 'H' || len(e.args) != 2 || e.args[0] != 5 || e.args[1] != 10 {
		t.Fatalf("unexpected CSI event: %+v", e)
	}
}

func TestCsiPrivateMarker(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte("\x1b[?1049h"), &r)
	if len(r.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(r.events))
	}
	e := r.events[0]
	if e.final != 'h' || e.inter != '?' || len(e.args) != 1 || e.args[0] != 1049 {
		t.Fatalf("unexpected CSI event: %+v", e)
	}
}

func TestEscapeSequence(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte("\x1bD"), &r)
	if len(r.events) != 1 || r.events[0].kind != "escape" || r.events[0].final != 'D' {
		t.Fatalf("unexpected events: %+v", r.events)
	}
}

func TestOscPayloadTerminatedByBEL(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte("\x1b]0;title\x07"), &r)
	if len(r.events) != 1 || r.events[0].kind != "osc" {
		t.Fatalf("unexpected events: %+v", r.events)
	}
	if string(r.events[0].osc) != "0;title" {
		t.Fatalf("unexpected OSC payload: %q", string(r.events[0].osc))
	}
}

// An ESC byte inside an OSC string aborts the OSC (matching vtparser.c's
// common 0x1b prelude, which re-enters Escape from any state); only BEL
// terminates an OSC payload here. The trailing '\' then dispatches as its
// own Escape event rather than completing the OSC as `ST` would.
func TestEscapeInsideOscAbortsOsc(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte("\x1b]2;hello\x1b\\"), &r)
	for _, e := range r.events {
		if e.kind == "osc" {
			t.Fatalf("expected the OSC to be aborted, not dispatched: %+v", r.events)
		}
	}
	if len(r.events) != 1 || r.events[0].kind != "escape" || r.events[0].final != '\\' {
		t.Fatalf("expected a single Escape('\\\\') event, got %+v", r.events)
	}
}

func TestParamClampedAt9999(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte("\x1b[99999999H"), &r)
	e := r.events[0]
	if e.args[0] != MaxParamValue {
		t.Fatalf("expected param clamped to %d, got %d", MaxParamValue, e.args[0])
	}
}

func TestInvalidUTF8SubstitutesBadChar(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte{0xff, 'A'}, &r)
	if len(r.events) != 2 {
		t.Fatalf("expected 2 events, got %d: %+v", len(r.events), r.events)
	}
	if r.events[0].kind != "print" || r.events[0].c != 0xFFFD {
		t.Fatalf("expected bad-char sentinel, got %+v", r.events[0])
	}
	if r.events[1].c != 'A' {
		t.Fatalf("expected 'A' to still print, got %+v", r.events[1])
	}
}

func TestTruncatedMultibyteBuffersAcrossWrites(t *testing.T) {
	var p Parser
	var r recorder
	// U+00E9 'é' encoded as 0xC3 0xA9; split the write mid-sequence.
	p.Write([]byte{0xc3}, &r)
	if len(r.events) != 0 {
		t.Fatalf("expected no event yet, got %+v", r.events)
	}
	p.Write([]byte{0xa9}, &r)
	if len(r.events) != 1 || r.events[0].c != 'é' {
		t.Fatalf("expected the completed rune to print, got %+v", r.events)
	}
}

func TestResetReturnsToGround(t *testing.T) {
	var p Parser
	var r recorder
	p.Write([]byte("\x1b["), &r) // enter CsiEntry, nothing dispatched yet
	p.Reset()
	p.Write([]byte("A"), &r)
	if len(r.events) != 1 || r.events[0].kind != "print" || r.events[0].c != 'A' {
		t.Fatalf("expected Reset to return to Ground, got %+v", r.events)
	}
}
