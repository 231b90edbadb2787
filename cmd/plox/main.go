// Command plox is the tree-walking Lox interpreter's CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/jakobknauer/plox/cmd/plox/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.UsageErrorCode)
	}
	os.Exit(cmd.ExitCode)
}
