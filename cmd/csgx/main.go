// Command csgx is the host binary around the csgx interpreter CORE:
// it owns file I/O, CLI flag parsing and the interactive line loop,
// none of which the CORE package touches itself.
package main

import (
	"fmt"
	"os"

	"csgx/cmd/csgx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
