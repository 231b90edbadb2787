// Package diagnostics formats and accumulates the plox pipeline's errors.
//
// The teacher writes straight to os.Stderr and calls os.Exit from inside the
// scanner/parser/interpreter; that makes the REPL's per-line error-flag reset
// impossible to express and ties every stage to the process. Reporter
// decouples that: it only accumulates had_error/had_runtime_error and writes
// through an io.Writer, the way the original Python plox.py's module-level
// error/report functions do, and callers (cmd/plox) decide what to do with
// the flags afterward.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jakobknauer/plox/internal/token"
)

// Reporter accumulates diagnostics from every pipeline stage and formats
// them per spec §6's diagnostic format.
type Reporter struct {
	out    io.Writer
	colors bool

	hadError        bool
	hadRuntimeError bool
}

// New creates a Reporter writing to out. Set colors to false for --no-color
// or non-TTY output.
func New(out io.Writer, colors bool) *Reporter {
	return &Reporter{out: out, colors: colors}
}

// HadError reports whether any lexical, syntactic, or static-semantic error
// has been reported since the last Reset.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error has been reported.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// Reset clears had_error for the next REPL line. had_runtime_error is
// process-scoped and is never reset by this method (spec §7, §3 REPL notes).
func (r *Reporter) Reset() {
	r.hadError = false
}

// Lexical reports a scanner-stage error: `[line L] Error: <msg>`.
func (r *Reporter) Lexical(line int, message string) {
	r.hadError = true
	r.printf("[line %d] Error: %s\n", line, message)
}

// AtToken reports a parser/resolver-stage error anchored to tok:
// `[line L] Error at '<lexeme>': <msg>`, or `... Error at end: <msg>` for EOF.
func (r *Reporter) AtToken(tok token.Token, message string) {
	r.hadError = true
	if tok.Type == token.EOF {
		r.printf("[line %d] Error at end: %s\n", tok.Line, message)
		return
	}
	r.printf("[line %d] Error at '%s': %s\n", tok.Line, tok.Lexeme, message)
}

// Runtime reports a runtime error: `<msg>\n[line L]`.
func (r *Reporter) Runtime(line int, message string) {
	r.hadRuntimeError = true
	r.printf("%s\n[line %d]\n", message, line)
}

func (r *Reporter) printf(format string, args ...any) {
	if r.colors {
		color.New(color.FgRed).Fprintf(r.out, format, args...)
		return
	}
	fmt.Fprintf(r.out, format, args...)
}
