package cliapp

import (
	"fmt"
	"os"

	"mtm/internal/eventloop"
	"mtm/internal/hostterm"
	"mtm/internal/shellresolve"
)

// Options are the resolved flag values Run acts on.
type Options struct {
	TermEnv    string // -T: TERM set in spawned children (empty picks TermType)
	TermType   string // -t: advertised terminal type (empty picks defaultTermType())
	CommandKey rune   // -c: already folded to KEY & 0x1F
}

// Run initializes the host terminal, spawns the root view running the
// user's shell, and drives the event loop until the last view exits,
// mirroring deadpixi/mtm's main(): getopt, newterm/initscr equivalent,
// newview(root), run().
func Run(opts Options) (err error) {
	termType := opts.TermType
	if termType == "" {
		termType = defaultTermType()
	}
	termEnv := opts.TermEnv
	if termEnv == "" {
		termEnv = termType
	}

	term, err := hostterm.New(termType)
	if err != nil {
		return fmt.Errorf("mtm: terminal init: %w", err)
	}
	defer term.Fini()

	shell := shellresolve.Default()

	loop, err := eventloop.New(eventloop.Config{
		Term:       term,
		CommandKey: opts.CommandKey,
		Shell:      shell,
		ExtraEnv: []string{
			"TERM=" + termEnv,
			fmt.Sprintf("MTM=%d", os.Getpid()),
		},
		Scrollback: defaultScrollback,
	})
	if err != nil {
		return fmt.Errorf("mtm: create root view: %w", err)
	}

	return loop.Run()
}

// defaultScrollback is the number of history lines kept per view, enough
// for casual scrollback without unbounded memory growth.
const defaultScrollback = 2000
