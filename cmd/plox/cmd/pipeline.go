// Pipeline glue: wires scanner -> parser -> resolver -> interpreter through
// an internal/diagnostics.Reporter and maps the result onto spec §6's exit
// codes. Grounded on the teacher's codecrafters/cmd/main.go (which strings
// the same four stages together, but writes straight to os.Stderr and calls
// os.Exit mid-stream); this version threads a Reporter through instead so
// the REPL can reset had_error between lines without tearing the process
// down, the way original_source/plox/plox.py's module-level run()/run_file()/
// run_prompt() do it.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/jakobknauer/plox/internal/builtins"
	"github.com/jakobknauer/plox/internal/diagnostics"
	"github.com/jakobknauer/plox/internal/interpreter"
	"github.com/jakobknauer/plox/internal/parser"
	"github.com/jakobknauer/plox/internal/resolver"
	"github.com/jakobknauer/plox/internal/scanner"
)

const (
	exitOK          = 0
	exitUsageError  = 64
	exitDataError   = 65
	exitRuntimeFail = 70
)

// session bundles a Reporter and an Interpreter that stay alive across
// multiple run calls, so the REPL's globals (and had_runtime_error) persist
// across lines while had_error is reset per line.
type session struct {
	reporter *diagnostics.Reporter
	in       *interpreter.Interpreter
	dumpAST  bool
}

func newSession(out io.Writer, colors, dumpAST bool, stdin stdinFunc) *session {
	reporter := diagnostics.New(out, colors)
	in := interpreter.New(
		reporter.Runtime,
		interpreter.WithStdout(func(s string) { fmt.Fprintln(out, s) }),
		interpreter.WithStdin(func() string { return stdin() }),
	)
	builtins.Install(in)
	return &session{reporter: reporter, in: in, dumpAST: dumpAST}
}

// run scans, parses, resolves, and interprets source, short-circuiting
// after any stage that set had_error (spec §7's "pipeline checks had_error;
// if set, the next stage is skipped"). It reports whether a static error
// occurred, independent of the reporter's own accumulated had_runtime_error.
func (s *session) run(source string) (hadStaticError bool) {
	tokens := scanner.New(source, s.reporter.Lexical).Scan()
	if s.reporter.HadError() {
		return true
	}

	stmts := parser.New(tokens, s.reporter.AtToken).Parse()
	if s.reporter.HadError() {
		return true
	}

	locals := resolver.New(s.reporter.AtToken).Resolve(stmts)
	if s.reporter.HadError() {
		return true
	}

	if s.dumpAST {
		for _, stmt := range stmts {
			fmt.Fprintln(os.Stdout, stmt.String())
		}
	}

	s.in.Interpret(stmts, locals)
	return false
}

// runFile executes the file at path to completion and returns the process
// exit code it earns under spec §6.
func runFile(path string, colors, dumpAST bool) int {
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file '%s'.\n", path)
		return exitUsageError
	}

	scan := bufio.NewScanner(os.Stdin)
	s := newSession(os.Stdout, colors, dumpAST, stdinReader(scan))
	s.run(string(content))

	switch {
	case s.reporter.HadError():
		return exitDataError
	case s.reporter.HadRuntimeError():
		return exitRuntimeFail
	default:
		return exitOK
	}
}

// runREPL implements spec §6's interactive loop: prompt "> ", one line per
// iteration, empty input terminates, and the error flag is reset between
// lines so one bad line doesn't poison the next.
func runREPL(colors, dumpAST bool) int {
	scan := bufio.NewScanner(os.Stdin)
	s := newSession(os.Stdout, colors, dumpAST, stdinReader(scan))

	for {
		fmt.Print("> ")
		if !scan.Scan() {
			break
		}
		line := scan.Text()
		if line == "" {
			break
		}
		s.run(line)
		s.reporter.Reset()
	}

	if s.reporter.HadRuntimeError() {
		return exitRuntimeFail
	}
	return exitOK
}

// stdinFunc is the `input()` built-in's line source.
type stdinFunc func() string

// stdinReader backs `input()` with the same *bufio.Scanner the caller reads
// REPL prompt lines or is otherwise driving, so the two interleave over a
// single buffered view of os.Stdin instead of racing two independent ones.
func stdinReader(scan *bufio.Scanner) stdinFunc {
	return func() string {
		if !scan.Scan() {
			return ""
		}
		return scan.Text()
	}
}
