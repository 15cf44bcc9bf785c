// perch-fs drives the Perch mutation engine from the command line: recursive
// mkdir, copy, move and remove against the real filesystem. It is the
// engine's standalone surface; the interactive browser embeds the engine
// directly.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
