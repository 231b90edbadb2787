package scanner_test

import (
	"reflect"
	"testing"

	"github.com/jakobknauer/plox/internal/scanner"
	"github.com/jakobknauer/plox/internal/token"
)

func types(tokens []token.Token) []token.Type {
	out := make([]token.Type, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestScanEmpty(t *testing.T) {
	tokens := scanner.New("", nil).Scan()
	want := []token.Type{token.EOF}
	if !reflect.DeepEqual(types(tokens), want) {
		t.Fatalf("got %v, want %v", types(tokens), want)
	}
}

func TestScanArithmetic(t *testing.T) {
	tokens := scanner.New("2 + 4 * (3 - 1)", nil).Scan()
	want := []token.Type{
		token.Number, token.Plus, token.Number, token.Star,
		token.LeftParen, token.Number, token.Minus, token.Number, token.RightParen,
		token.EOF,
	}
	if !reflect.DeepEqual(types(tokens), want) {
		t.Fatalf("got %v, want %v", types(tokens), want)
	}
	if tokens[0].Literal.(float64) != 2.0 {
		t.Fatalf("expected numeric literal 2.0, got %v", tokens[0].Literal)
	}
}

func TestScanStringLiteralExcludesQuotes(t *testing.T) {
	tokens := scanner.New(`"hi"`, nil).Scan()
	if tokens[0].Type != token.String || tokens[0].Literal != "hi" {
		t.Fatalf("got %+v", tokens[0])
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens := scanner.New("var x = foreach class this super", nil).Scan()
	want := []token.Type{
		token.Var, token.Identifier, token.Equal, token.Foreach,
		token.Class, token.This, token.Super, token.EOF,
	}
	if !reflect.DeepEqual(types(tokens), want) {
		t.Fatalf("got %v, want %v", types(tokens), want)
	}
}

func TestScanCommentsAreSkipped(t *testing.T) {
	tokens := scanner.New("1 // a comment\n2", nil).Scan()
	want := []token.Type{token.Number, token.Number, token.EOF}
	if !reflect.DeepEqual(types(tokens), want) {
		t.Fatalf("got %v, want %v", types(tokens), want)
	}
	if tokens[1].Line != 2 {
		t.Fatalf("expected second number on line 2, got %d", tokens[1].Line)
	}
}

func TestScanUnterminatedStringReportsError(t *testing.T) {
	var gotLine int
	var gotMsg string
	s := scanner.New(`"unterminated`, func(line int, msg string) {
		gotLine, gotMsg = line, msg
	})
	s.Scan()
	if !s.HadError() {
		t.Fatalf("expected HadError to be true")
	}
	if gotLine != 1 || gotMsg != "Unterminated string." {
		t.Fatalf("got line=%d msg=%q", gotLine, gotMsg)
	}
}

func TestScanUnexpectedCharacterContinues(t *testing.T) {
	tokens := scanner.New("1 @ 2", func(int, string) {}).Scan()
	want := []token.Type{token.Number, token.Number, token.EOF}
	if !reflect.DeepEqual(types(tokens), want) {
		t.Fatalf("got %v, want %v", types(tokens), want)
	}
}

func TestEOFLineIsLastSourceLine(t *testing.T) {
	tokens := scanner.New("1\n2\n3", nil).Scan()
	last := tokens[len(tokens)-1]
	if last.Type != token.EOF || last.Line != 3 {
		t.Fatalf("got %+v", last)
	}
}
