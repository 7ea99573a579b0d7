// Command hashlife loads a pattern file and either runs it headless,
// renders a snapshot to PNG, or opens the live terminal viewer.
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
