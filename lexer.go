package gocalc

import (
	"bufio"
	"bytes"
	"io"
	"unicode"
)

type Lexer struct {
	buf  *bufio.Reader
	pos  int
	last int
}

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		buf: bufio.NewReader(r),
	}
}

// Tokenize reads r to the end and returns its tokens. The last token is
// always EOF unless an error is returned.
func Tokenize(r io.Reader) ([]Token, error) {
	l := NewLexer(r)
	var toks []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) readRune() (rune, error) {
	r, n, err := l.buf.ReadRune()
	l.pos += n
	l.last = n
	return r, err
}

func (l *Lexer) unreadRune() {
	if l.buf.UnreadRune() == nil {
		l.pos -= l.last
	}
}

func (l *Lexer) skipWhite() error {
	for {
		r, err := l.readRune()
		if err != nil {
			return err
		}
		if r == '#' {
			for {
				r, err = l.readRune()
				if err != nil {
					return err
				}
				if r == '\n' {
					break
				}
			}
			continue
		}
		if !unicode.IsSpace(r) {
			l.unreadRune()
			return nil
		}
	}
}

var punct = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'^': TokenCaret,
	'(': TokenLParen,
	')': TokenRParen,
	';': TokenSemi,
}

// Next returns the next token. Input that matches no rule comes back as a
// TokenError carrying the offending rune; only reader failures are errors.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipWhite(); err != nil {
		if err == io.EOF {
			return Token{Kind: TokenEOF, Pos: l.pos}, nil
		}
		return Token{}, err
	}
	start := l.pos
	r, err := l.readRune()
	if err != nil {
		return Token{}, err
	}

	if kind, ok := punct[r]; ok {
		return Token{Kind: kind, Text: string(r), Pos: start}, nil
	}
	if isDigit(r) {
		l.unreadRune()
		s, err := l.readWhile(isDigit)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenInt, Text: s, Pos: start}, nil
	}
	if isIdentStart(r) {
		l.unreadRune()
		s, err := l.readWhile(isIdentPart)
		if err != nil {
			return Token{}, err
		}
		if s == "val" {
			return Token{Kind: TokenVal, Text: s, Pos: start}, nil
		}
		return Token{Kind: TokenIdent, Text: s, Pos: start}, nil
	}
	return Token{Kind: TokenError, Text: string(r), Pos: start}, nil
}

func (l *Lexer) readWhile(accept func(rune) bool) (string, error) {
	var buf bytes.Buffer
	for {
		r, err := l.readRune()
		if err != nil {
			if err == io.EOF {
				break
			}
			return "", err
		}
		if !accept(r) {
			l.unreadRune()
			break
		}
		buf.WriteRune(r)
	}
	return buf.String(), nil
}

// INT is decimal ASCII digits only; unicode.IsDigit would admit other scripts
// that strconv cannot parse.
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}
