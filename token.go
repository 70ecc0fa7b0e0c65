package gocalc

import "fmt"

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenInt
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenCaret
	TokenLParen
	TokenRParen
	TokenSemi
	TokenVal
	TokenIdent
)

var tokenNames = [...]string{
	TokenEOF:    "EOF",
	TokenError:  "ERROR",
	TokenInt:    "INT",
	TokenPlus:   "PLUS",
	TokenMinus:  "MINUS",
	TokenStar:   "STAR",
	TokenSlash:  "SLASH",
	TokenCaret:  "CARET",
	TokenLParen: "LPAREN",
	TokenRParen: "RPAREN",
	TokenSemi:   "SEMI",
	TokenVal:    "VAL",
	TokenIdent:  "IDENT",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenNames[k]
}

// Token is a lexeme with its kind and the byte offset it starts at.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (t Token) String() string {
	if t.Kind == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%v(%q)", t.Kind, t.Text)
}
