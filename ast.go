package gocalc

import (
	"bytes"
	"fmt"
)

// Expr is one of *IntLiteral, *Parenthesized, *UnaryPlus, *UnaryMinus,
// *Power, *Product or *Sum.
type Expr interface {
	fmt.Stringer
	exprNode()
}

type IntLiteral struct {
	Value int
}

type Parenthesized struct {
	Inner Expr
}

type UnaryPlus struct {
	Operand Expr
}

type UnaryMinus struct {
	Operand Expr
}

// Power is base ^ operands[0] ^ operands[1] ...
type Power struct {
	Base     Expr
	Operands []Expr
}

type MulOp int

const (
	OpMul MulOp = iota
	OpDiv
)

type ProductTerm struct {
	Op      MulOp
	Operand Expr
}

type Product struct {
	First Expr
	Rest  []ProductTerm
}

type AddOp int

const (
	OpAdd AddOp = iota
	OpSub
)

type SumTerm struct {
	Op      AddOp
	Operand Expr
}

type Sum struct {
	First Expr
	Rest  []SumTerm
}

func (*IntLiteral) exprNode()    {}
func (*Parenthesized) exprNode() {}
func (*UnaryPlus) exprNode()     {}
func (*UnaryMinus) exprNode()    {}
func (*Power) exprNode()         {}
func (*Product) exprNode()       {}
func (*Sum) exprNode()           {}

// Statement is either an expression statement or, when Val is set, an inert
// val statement. Ident is the optional name after val.
type Statement struct {
	Expr  Expr
	Val   bool
	Ident string
}

type Program struct {
	Statements []*Statement
}

func (op MulOp) String() string {
	if op == OpMul {
		return "*"
	}
	return "/"
}

func (op AddOp) String() string {
	if op == OpAdd {
		return "+"
	}
	return "-"
}

func nodeString(n Expr) string {
	if n == nil {
		return "nil"
	}
	return n.String()
}

func (n *IntLiteral) String() string {
	return fmt.Sprintf("(int %d)", n.Value)
}

func (n *Parenthesized) String() string {
	return fmt.Sprintf("(paren %v)", nodeString(n.Inner))
}

func (n *UnaryPlus) String() string {
	return fmt.Sprintf("(+ %v)", nodeString(n.Operand))
}

func (n *UnaryMinus) String() string {
	return fmt.Sprintf("(- %v)", nodeString(n.Operand))
}

func (n *Power) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(pow %v", nodeString(n.Base))
	for _, o := range n.Operands {
		fmt.Fprintf(&buf, " ^ %v", nodeString(o))
	}
	fmt.Fprint(&buf, ")")
	return buf.String()
}

func (n *Product) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(product %v", nodeString(n.First))
	for _, t := range n.Rest {
		fmt.Fprintf(&buf, " %v %v", t.Op, nodeString(t.Operand))
	}
	fmt.Fprint(&buf, ")")
	return buf.String()
}

func (n *Sum) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "(sum %v", nodeString(n.First))
	for _, t := range n.Rest {
		fmt.Fprintf(&buf, " %v %v", t.Op, nodeString(t.Operand))
	}
	fmt.Fprint(&buf, ")")
	return buf.String()
}

func (s *Statement) String() string {
	switch {
	case s == nil:
		return "nil"
	case s.Val && s.Ident != "":
		return fmt.Sprintf("(val %s)", s.Ident)
	case s.Val:
		return "(val)"
	default:
		return fmt.Sprintf("(stat %v)", nodeString(s.Expr))
	}
}

func (p *Program) String() string {
	var buf bytes.Buffer
	fmt.Fprint(&buf, "(program")
	for _, s := range p.Statements {
		fmt.Fprintf(&buf, " %v", s)
	}
	fmt.Fprint(&buf, ")")
	return buf.String()
}
