package interpreter_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/jakobknauer/plox/internal/builtins"
	"github.com/jakobknauer/plox/internal/interpreter"
	"github.com/jakobknauer/plox/internal/parser"
	"github.com/jakobknauer/plox/internal/resolver"
	"github.com/jakobknauer/plox/internal/scanner"
	"github.com/jakobknauer/plox/internal/token"
)

// TestFixtures runs every testdata/*.lox script through the full
// pipeline and snapshots its stdout, catching regressions across the
// scanner/parser/resolver/interpreter/builtins boundary as a whole rather
// than one stage at a time. Grounded on the teacher's comparison harness in
// test/ (which diffs a reference interpreter's stdout against this one) and
// CWBudde-go-dws's internal/interp/fixture_test.go, which runs a directory
// of source fixtures through go-snaps instead of hand-written expectations.
func TestFixtures(t *testing.T) {
	files, err := filepath.Glob("../../testdata/*.lox")
	if err != nil {
		t.Fatalf("glob testdata: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no fixtures found under testdata/")
	}

	for _, file := range files {
		file := file
		t.Run(strings.TrimSuffix(filepath.Base(file), ".lox"), func(t *testing.T) {
			source, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("read %s: %v", file, err)
			}

			var out strings.Builder
			var errs []string

			tokens := scanner.New(string(source), func(line int, msg string) {
				errs = append(errs, msg)
			}).Scan()

			stmts := parser.New(tokens, func(tok token.Token, msg string) {
				errs = append(errs, msg)
			}).Parse()

			locals := resolver.New(func(tok token.Token, msg string) {
				errs = append(errs, msg)
			}).Resolve(stmts)

			if len(errs) > 0 {
				t.Fatalf("%s: unexpected static errors: %v", file, errs)
			}

			in := interpreter.New(
				func(line int, msg string) { errs = append(errs, msg) },
				interpreter.WithStdout(func(s string) { out.WriteString(s + "\n") }),
			)
			builtins.Install(in)
			in.Interpret(stmts, locals)

			if len(errs) > 0 {
				t.Fatalf("%s: unexpected runtime error: %v", file, errs)
			}

			snaps.MatchSnapshot(t, out.String())
		})
	}
}
