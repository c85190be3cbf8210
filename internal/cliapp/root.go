// Package cliapp wires the command line together: flag parsing, TTY guard,
// terminal-type selection, and shell discovery, then hands off to the host
// terminal and event loop.
//
// Grounded on dcosson-h2's internal/cmd/root.go (a single cobra.Command with
// no subcommands here, since mtm exposes one operation) and run.go's flag
// pattern; TTY/color detection follows term_colors.go's use of
// golang.org/x/term and github.com/muesli/termenv.
package cliapp

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"mtm/internal/version"
)

// NewRootCmd builds the mtm command: `mtm [-T NAME] [-t NAME] [-c KEY]`.
func NewRootCmd() *cobra.Command {
	var termEnv string
	var termType string
	var commandKeyFlag string

	cmd := &cobra.Command{
		Use:           "mtm",
		Short:         "A tiling terminal multiplexer",
		Long:          "mtm partitions the terminal into a tree of panes, each running its own shell, and multiplexes keyboard/mouse input between them.",
		Version:       version.DisplayVersion(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("mtm: stdin is not a terminal")
			}

			commandKey, err := parseCommandKey(commandKeyFlag)
			if err != nil {
				return err
			}

			return Run(Options{
				TermEnv:    termEnv,
				TermType:   termType,
				CommandKey: commandKey,
			})
		},
	}

	cmd.Flags().StringVarP(&termEnv, "term-env", "T", "", "TERM value set in spawned children (default: advertised terminal type)")
	cmd.Flags().StringVarP(&termType, "term-type", "t", "", "advertised terminal type (default: implementation-selected)")
	cmd.Flags().StringVarP(&commandKeyFlag, "command-key", "c", "g", "command-prefix key character, stored as KEY & 0x1F")

	return cmd
}

// Execute runs the mtm command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func parseCommandKey(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("mtm: -c wants a single character, got %q", s)
	}
	return runes[0] & 0x1f, nil
}

// defaultTermType picks screen-256color when the host's color profile
// supports at least 256 colors, falling back to screen-bce otherwise, per
// spec.md §6's "-t NAME: advertised terminal type (default
// implementation-selected; e.g., screen-bce or a 256-color variant...)".
func defaultTermType() string {
	profile := termenv.EnvColorProfile()
	if profile == termenv.ANSI256 || profile == termenv.TrueColor {
		return "screen-256color"
	}
	return "screen-bce"
}
