package cmd

import "testing"

func TestRootCmdTooManyArgsIsUsageError(t *testing.T) {
	ExitCode = -1
	if err := rootCmd.RunE(rootCmd, []string{"a", "b"}); err != nil {
		t.Fatalf("RunE returned error: %v", err)
	}
	if ExitCode != exitUsageError {
		t.Fatalf("ExitCode = %d, want %d", ExitCode, exitUsageError)
	}
}

func TestRootCmdSingleArgRunsFile(t *testing.T) {
	path := writeScript(t, `print "ok";`)

	ExitCode = -1
	out := captureStdout(t, func() {
		if err := rootCmd.RunE(rootCmd, []string{path}); err != nil {
			t.Fatalf("RunE returned error: %v", err)
		}
	})

	if ExitCode != exitOK {
		t.Fatalf("ExitCode = %d, want %d", ExitCode, exitOK)
	}
	if out != "ok\n" {
		t.Fatalf("output = %q", out)
	}
}
