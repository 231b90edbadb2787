package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags; mirrors CWBudde-go-dws's
// cmd/dwscript/cmd/root.go version-reporting convention.
var Version = "0.1.0-dev"

var (
	noColor bool
	dumpAST bool
)

// UsageErrorCode is the exit code for invocations Cobra itself rejects
// (unknown flag, etc.) before any RunE runs, matching the same usage-error
// code spec §6 assigns to plox's own argument-count check.
const UsageErrorCode = exitUsageError

// ExitCode is set by whichever RunE handled the invocation. Execute returns
// plain nil/err to Cobra (which only distinguishes zero from nonzero), so
// the precise spec §6 exit code is threaded out through this package
// variable instead and read by cmd/plox/main.go.
var ExitCode int

var rootCmd = &cobra.Command{
	Use:     "plox [script]",
	Short:   "A tree-walking interpreter for Lox",
	Version: Version,
	Long: `plox is a tree-walking interpreter for Lox, the teaching language from
Crafting Interpreters.

Run with no arguments to start an interactive REPL, or pass a single script
path to execute it.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			ExitCode = runREPL(!noColor, dumpAST)
		case 1:
			ExitCode = runFile(args[0], !noColor, dumpAST)
		default:
			fmt.Fprintln(os.Stderr, "Usage: plox [script]")
			ExitCode = exitUsageError
		}
		return nil
	},
}

// Execute runs the root command. On a nil return the caller should exit
// with ExitCode; a non-nil error means Cobra rejected the invocation (a
// flag/usage error) before any RunE ran, and the caller exits with
// UsageErrorCode instead.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostic output")
	rootCmd.PersistentFlags().BoolVar(&dumpAST, "ast", false, "print the parsed AST before executing")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}
