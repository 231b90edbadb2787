package cmd

import "github.com/spf13/cobra"

var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Execute a Lox script file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ExitCode = runFile(args[0], !noColor, dumpAST)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
