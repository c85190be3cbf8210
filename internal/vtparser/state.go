package vtparser

// state is one node of the reduced DEC ANSI parser, after Paul Flo
// Williams's state chart (http://vt100.net/emu/dec_ansi_parser). Each state
// owns an ordered list of byte-range transitions; the first matching range
// wins, mirroring the original's linear scan over ACTION arrays.
type state int

const (
	stateGround state = iota
	stateEscape
	stateEscapeIntermediate
	stateCsiEntry
	stateCsiParam
	stateCsiIntermediate
	stateCsiIgnore
	stateOscString
)

// action identifies what to do with the current code point before
// transitioning. Kept as a small enum dispatched through a switch in
// Parser.step rather than stored function pointers, per the "avoid function
// pointer sea" guidance: states are data, behavior lives in one place.
type action int

const (
	actIgnore action = iota
	actPrint
	actControl
	actCollect
	actCollectOSC
	actParam
	actEscDispatch
	actCsiDispatch
	actOscDispatch
)

// transition is one (lo,hi) -> (action, next) rule within a state's table.
type transition struct {
	lo, hi rune
	act    action
	next   state
	hasNxt bool
}

// clearOnEntry reports whether entering this state resets the
// intermediate/param/OSC accumulators, matching the `reset` entry action
// wired onto escape/csi_entry/osc_string in vtparser.c's MAKESTATE calls.
func clearOnEntry(s state) bool {
	switch s {
	case stateEscape, stateCsiEntry, stateOscString:
		return true
	default:
		return false
	}
}

// commonControlRows are the control-byte rows vtparser.c's MAKESTATE macro
// appends to every state's ACTION array (0x01-0x06, 0x08-0x17, 0x19,
// 0x1c-0x1f unconditionally, plus a trailing 0x07 that only fires where a
// state hasn't already claimed BEL for something else, e.g. osc_string's own
// terminator row). None of these transitions change state, so a control
// byte arriving mid-escape/CSI/OSC sequence dispatches Control() without
// disturbing the sequence in progress.
func commonControlRows() []transition {
	return []transition{
		{0x01, 0x06, actControl, 0, false},
		{0x08, 0x17, actControl, 0, false},
		{0x19, 0x19, actControl, 0, false},
		{0x1c, 0x1f, actControl, 0, false},
		{0x07, 0x07, actControl, 0, false},
	}
}

// table returns the transition list for state s. Built by hand from
// vtparser.c's MAKESTATE macro expansions; every state implicitly also
// handles 0x18/0x1A (execute, -> ground) and 0x1B (-> escape) via the
// common prelude in Parser.step, so those are not repeated here.
// commonControlRows is appended last so per-state BEL handling (osc_string)
// still wins the first-match scan.
func table(s state) []transition {
	switch s {
	case stateGround:
		return append([]transition{
			{0x20, maxRune, actPrint, 0, false},
		}, commonControlRows()...)
	case stateEscape:
		return append([]transition{
			{0x21, 0x21, actIgnore, stateOscString, true},
			{0x20, 0x2f, actCollect, stateEscapeIntermediate, true},
			{0x30, 0x4f, actEscDispatch, stateGround, true},
			{0x51, 0x57, actEscDispatch, stateGround, true},
			{0x59, 0x59, actEscDispatch, stateGround, true},
			{0x5a, 0x5a, actEscDispatch, stateGround, true},
			{0x5c, 0x5c, actEscDispatch, stateGround, true},
			{0x6b, 0x6b, actIgnore, stateOscString, true},
			{0x60, 0x7e, actEscDispatch, stateGround, true},
			{0x5b, 0x5b, actIgnore, stateCsiEntry, true},
			{0x5d, 0x5d, actIgnore, stateOscString, true},
			{0x5e, 0x5e, actIgnore, stateOscString, true},
			{0x50, 0x50, actIgnore, stateOscString, true},
			{0x5f, 0x5f, actIgnore, stateOscString, true},
		}, commonControlRows()...)
	case stateEscapeIntermediate:
		return append([]transition{
			{0x20, 0x2f, actCollect, 0, false},
			{0x30, 0x7e, actEscDispatch, stateGround, true},
		}, commonControlRows()...)
	case stateCsiEntry:
		return append([]transition{
			{0x20, 0x2f, actCollect, stateCsiIntermediate, true},
			{0x3a, 0x3a, actIgnore, stateCsiIgnore, true},
			{0x30, 0x39, actParam, stateCsiParam, true},
			{0x3b, 0x3b, actParam, stateCsiParam, true},
			{0x3c, 0x3f, actCollect, stateCsiParam, true},
			{0x40, 0x7e, actCsiDispatch, stateGround, true},
		}, commonControlRows()...)
	case stateCsiIgnore:
		return append([]transition{
			{0x20, 0x3f, actIgnore, 0, false},
			{0x40, 0x7e, actIgnore, stateGround, true},
		}, commonControlRows()...)
	case stateCsiParam:
		return append([]transition{
			{0x30, 0x39, actParam, 0, false},
			{0x3b, 0x3b, actParam, 0, false},
			{0x3a, 0x3a, actIgnore, stateCsiIgnore, true},
			{0x3c, 0x3f, actIgnore, stateCsiIgnore, true},
			{0x20, 0x2f, actCollect, stateCsiIntermediate, true},
			{0x40, 0x7e, actCsiDispatch, stateGround, true},
		}, commonControlRows()...)
	case stateCsiIntermediate:
		return append([]transition{
			{0x20, 0x2f, actCollect, 0, false},
			{0x30, 0x3f, actIgnore, stateCsiIgnore, true},
			{0x40, 0x7e, actCsiDispatch, stateGround, true},
		}, commonControlRows()...)
	case stateOscString:
		return append([]transition{
			{0x07, 0x07, actOscDispatch, stateGround, true},
			{0x20, 0x7f, actCollectOSC, 0, false},
		}, commonControlRows()...)
	}
	return nil
}

const maxRune = 0x10FFFF
