// Command approx runs the numerical approximation routines from the command
// line.
package main

import (
	"os"

	"github.com/katalvlaran/approx/cmd/approx/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
