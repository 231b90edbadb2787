package cmd

import "github.com/spf13/cobra"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive Lox prompt",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ExitCode = runREPL(!noColor, dumpAST)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
