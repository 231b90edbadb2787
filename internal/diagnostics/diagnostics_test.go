package diagnostics_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jakobknauer/plox/internal/diagnostics"
	"github.com/jakobknauer/plox/internal/token"
)

func TestLexicalSetsHadError(t *testing.T) {
	var buf bytes.Buffer
	r := diagnostics.New(&buf, false)
	r.Lexical(3, "Unterminated string.")

	if !r.HadError() {
		t.Fatal("expected HadError to be true")
	}
	if got := buf.String(); got != "[line 3] Error: Unterminated string.\n" {
		t.Fatalf("got %q", got)
	}
}

func TestAtTokenEOF(t *testing.T) {
	var buf bytes.Buffer
	r := diagnostics.New(&buf, false)
	r.AtToken(token.New(token.EOF, "", nil, 7), "Expect expression.")

	if !strings.Contains(buf.String(), "Error at end: Expect expression.") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestAtTokenLexeme(t *testing.T) {
	var buf bytes.Buffer
	r := diagnostics.New(&buf, false)
	r.AtToken(token.New(token.Identifier, "foo", nil, 2), "bad thing")

	want := "[line 2] Error at 'foo': bad thing\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRuntimeSetsHadRuntimeErrorAndFormatsMessageFirst(t *testing.T) {
	var buf bytes.Buffer
	r := diagnostics.New(&buf, false)
	r.Runtime(5, "Undefined variable 'x'.")

	if !r.HadRuntimeError() {
		t.Fatal("expected HadRuntimeError to be true")
	}
	want := "Undefined variable 'x'.\n[line 5]\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResetClearsHadErrorNotRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	r := diagnostics.New(&buf, false)
	r.Lexical(1, "x")
	r.Runtime(1, "y")

	r.Reset()

	if r.HadError() {
		t.Fatal("expected HadError cleared after Reset")
	}
	if !r.HadRuntimeError() {
		t.Fatal("expected HadRuntimeError to remain set (process-scoped)")
	}
}
