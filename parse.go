package gocalc

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SyntaxError reports input that does not match the grammar.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

type Parser struct {
	lex *Lexer
	tok Token
	err error
}

func NewParser(r io.Reader) *Parser {
	p := &Parser{
		lex: NewLexer(r),
	}
	p.advance()
	return p
}

func ParseString(s string) (*Program, error) {
	return NewParser(strings.NewReader(s)).Parse()
}

func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	tok, err := p.lex.Next()
	if err != nil {
		p.err = err
		tok = Token{Kind: TokenEOF, Pos: p.lex.Pos()}
	}
	p.tok = tok
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	if p.err != nil {
		return p.err
	}
	return &SyntaxError{Pos: p.tok.Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) unexpected(want string) error {
	switch p.tok.Kind {
	case TokenEOF:
		return p.errorf("unexpected end of input, expected %s", want)
	case TokenError:
		return p.errorf("invalid token: '%s'", p.tok.Text)
	}
	return p.errorf("unexpected %v, expected %s", p.tok, want)
}

func (p *Parser) expect(kind TokenKind, want string) error {
	if p.tok.Kind != kind {
		return p.unexpected(want)
	}
	p.advance()
	return nil
}

// Parse reads statements until EOF.
func (p *Parser) Parse() (*Program, error) {
	prog := &Program{}
	for p.tok.Kind != TokenEOF {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	if p.err != nil {
		return nil, p.err
	}
	return prog, nil
}

// ParseStatement parses a single statement including its terminating ';'.
func (p *Parser) ParseStatement() (*Statement, error) {
	if p.tok.Kind == TokenVal {
		p.advance()
		stmt := &Statement{Val: true}
		if p.tok.Kind == TokenIdent {
			stmt.Ident = p.tok.Text
			p.advance()
		}
		if err := p.expect(TokenSemi, "';'"); err != nil {
			return nil, err
		}
		return stmt, nil
	}

	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenSemi, "';'"); err != nil {
		return nil, err
	}
	return &Statement{Expr: e}, nil
}

func (p *Parser) parseExpr() (Expr, error) {
	first, err := p.parseMultExpr()
	if err != nil {
		return nil, err
	}
	var rest []SumTerm
	for p.tok.Kind == TokenPlus || p.tok.Kind == TokenMinus {
		op := OpAdd
		if p.tok.Kind == TokenMinus {
			op = OpSub
		}
		p.advance()
		operand, err := p.parseMultExpr()
		if err != nil {
			return nil, err
		}
		rest = append(rest, SumTerm{Op: op, Operand: operand})
	}
	if len(rest) == 0 {
		return first, nil
	}
	return &Sum{First: first, Rest: rest}, nil
}

func (p *Parser) parseMultExpr() (Expr, error) {
	first, err := p.parsePowExpr()
	if err != nil {
		return nil, err
	}
	var rest []ProductTerm
	for p.tok.Kind == TokenStar || p.tok.Kind == TokenSlash {
		op := OpMul
		if p.tok.Kind == TokenSlash {
			op = OpDiv
		}
		p.advance()
		operand, err := p.parsePowExpr()
		if err != nil {
			return nil, err
		}
		rest = append(rest, ProductTerm{Op: op, Operand: operand})
	}
	if len(rest) == 0 {
		return first, nil
	}
	return &Product{First: first, Rest: rest}, nil
}

func (p *Parser) parsePowExpr() (Expr, error) {
	base, err := p.parseSignedAtom()
	if err != nil {
		return nil, err
	}
	var operands []Expr
	for p.tok.Kind == TokenCaret {
		p.advance()
		operand, err := p.parseSignedAtom()
		if err != nil {
			return nil, err
		}
		operands = append(operands, operand)
	}
	if len(operands) == 0 {
		return base, nil
	}
	return &Power{Base: base, Operands: operands}, nil
}

func (p *Parser) parseSignedAtom() (Expr, error) {
	switch p.tok.Kind {
	case TokenPlus:
		p.advance()
		operand, err := p.parseSignedAtom()
		if err != nil {
			return nil, err
		}
		return &UnaryPlus{Operand: operand}, nil
	case TokenMinus:
		p.advance()
		operand, err := p.parseSignedAtom()
		if err != nil {
			return nil, err
		}
		return &UnaryMinus{Operand: operand}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (Expr, error) {
	switch p.tok.Kind {
	case TokenInt:
		v, err := strconv.Atoi(p.tok.Text)
		if err != nil {
			return nil, p.errorf("integer literal out of range: %s", p.tok.Text)
		}
		p.advance()
		return &IntLiteral{Value: v}, nil
	case TokenLParen:
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen, "')'"); err != nil {
			return nil, err
		}
		return &Parenthesized{Inner: inner}, nil
	}
	return nil, p.unexpected("expression")
}
