package gocalc

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	toks, err := Tokenize(strings.NewReader("val x; (1+23)^-4 $"))
	if err != nil {
		t.Fatal(err)
	}
	want := []Token{
		{Kind: TokenVal, Text: "val", Pos: 0},
		{Kind: TokenIdent, Text: "x", Pos: 4},
		{Kind: TokenSemi, Text: ";", Pos: 5},
		{Kind: TokenLParen, Text: "(", Pos: 7},
		{Kind: TokenInt, Text: "1", Pos: 8},
		{Kind: TokenPlus, Text: "+", Pos: 9},
		{Kind: TokenInt, Text: "23", Pos: 10},
		{Kind: TokenRParen, Text: ")", Pos: 12},
		{Kind: TokenCaret, Text: "^", Pos: 13},
		{Kind: TokenMinus, Text: "-", Pos: 14},
		{Kind: TokenInt, Text: "4", Pos: 15},
		{Kind: TokenError, Text: "$", Pos: 17},
		{Kind: TokenEOF, Pos: 18},
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeComment(t *testing.T) {
	toks, err := Tokenize(strings.NewReader("# header\n1 * 2; # tail"))
	if err != nil {
		t.Fatal(err)
	}
	var kinds []TokenKind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	want := []TokenKind{TokenInt, TokenStar, TokenInt, TokenSemi, TokenEOF}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenString(t *testing.T) {
	if got := (Token{Kind: TokenInt, Text: "42"}).String(); got != `INT("42")` {
		t.Errorf("got %q", got)
	}
	if got := TokenKind(99).String(); got != "TokenKind(99)" {
		t.Errorf("got %q", got)
	}
}
