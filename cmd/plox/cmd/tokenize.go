package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jakobknauer/plox/internal/diagnostics"
	"github.com/jakobknauer/plox/internal/scanner"
)

// tokenizeCmd is a debugging aid exposing the scanner stage on its own,
// without parsing/resolving/interpreting the result.
var tokenizeCmd = &cobra.Command{
	Use:   "tokenize <path>",
	Short: "Print the token stream for a Lox script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ExitCode = tokenize(args[0], !noColor)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func tokenize(path string, colors bool) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file '%s'.\n", path)
		return exitUsageError
	}

	reporter := diagnostics.New(os.Stderr, colors)
	tokens := scanner.New(string(content), reporter.Lexical).Scan()
	for _, tok := range tokens {
		fmt.Println(tok.String())
	}

	if reporter.HadError() {
		return exitDataError
	}
	return exitOK
}
