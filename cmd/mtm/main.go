// Command mtm is a tiling terminal multiplexer.
package main

import (
	"fmt"
	"os"

	"mtm/internal/cliapp"
)

func main() {
	if err := cliapp.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
