package gocalc

import (
	"log"
	"strconv"
	"strings"
)

const (
	// DefaultResult is the value of a val statement and of an empty program.
	DefaultResult = 1009
	// DefaultAtom is the value of an atom slot that holds no expression.
	DefaultAtom = 97
)

// Evaluator reduces a parsed program to integers. The zero value is ready
// to use. An Evaluator holds no state between calls and may be shared.
type Evaluator struct {
	// Logger, if set, receives a line for every node visited and every
	// value returned.
	Logger *log.Logger
}

var defaultEvaluator Evaluator

// Evaluate returns the result of the last statement of prog.
func Evaluate(prog *Program) (int, error) {
	return defaultEvaluator.Evaluate(prog)
}

// EvaluateAll returns the result of every statement of prog in order.
func EvaluateAll(prog *Program) ([]int, error) {
	return defaultEvaluator.EvaluateAll(prog)
}

// Calc parses and evaluates src.
func Calc(src string) (int, error) {
	prog, err := ParseString(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(prog)
}

func (e *Evaluator) trace(format string, args ...interface{}) {
	if e.Logger != nil {
		e.Logger.Printf(format, args...)
	}
}

func (e *Evaluator) Evaluate(prog *Program) (int, error) {
	if prog == nil {
		return 0, malformed("nil program")
	}
	e.trace("visiting program")
	ret := DefaultResult
	for _, stmt := range prog.Statements {
		v, err := e.EvalStatement(stmt)
		if err != nil {
			return 0, err
		}
		ret = v
	}
	e.trace("returning %d from program", ret)
	return ret, nil
}

func (e *Evaluator) EvaluateAll(prog *Program) ([]int, error) {
	if prog == nil {
		return nil, malformed("nil program")
	}
	e.trace("visiting program")
	ret := make([]int, 0, len(prog.Statements))
	for _, stmt := range prog.Statements {
		v, err := e.EvalStatement(stmt)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func (e *Evaluator) EvalStatement(stmt *Statement) (int, error) {
	e.trace("visiting statement")
	switch {
	case stmt == nil:
		return 0, malformed("nil statement")
	case stmt.Val:
		e.trace("returning %d from val statement", DefaultResult)
		return DefaultResult, nil
	case stmt.Expr == nil:
		return 0, malformed("statement has no expression")
	}
	return e.EvalExpr(stmt.Expr)
}

// EvalExpr evaluates a single expression tree.
func (e *Evaluator) EvalExpr(n Expr) (int, error) {
	switch n := n.(type) {
	case nil:
		e.trace("returning %d from empty atom", DefaultAtom)
		return DefaultAtom, nil
	case *IntLiteral:
		e.trace("returning %d from int", n.Value)
		return n.Value, nil
	case *Parenthesized:
		e.trace("visiting parenthesized")
		return e.EvalExpr(n.Inner)
	case *UnaryPlus:
		e.trace("visiting unary plus")
		return e.EvalExpr(n.Operand)
	case *UnaryMinus:
		e.trace("visiting unary minus")
		v, err := e.EvalExpr(n.Operand)
		if err != nil {
			return 0, err
		}
		e.trace("returning %d from unary minus", -v)
		return -v, nil
	case *Power:
		return e.evalPower(n)
	case *Product:
		return e.evalProduct(n)
	case *Sum:
		return e.evalSum(n)
	}
	return 0, malformed("unknown node %T", n)
}

// evalOperand is EvalExpr for positions that must hold an expression.
func (e *Evaluator) evalOperand(where string, n Expr) (int, error) {
	if n == nil {
		return 0, malformed("%s: missing operand", where)
	}
	return e.EvalExpr(n)
}

func (e *Evaluator) evalPower(n *Power) (int, error) {
	e.trace("visiting power")
	vals := make([]int, 0, len(n.Operands)+1)
	for _, o := range append([]Expr{n.Base}, n.Operands...) {
		v, err := e.evalOperand("power", o)
		if err != nil {
			return 0, err
		}
		vals = append(vals, v)
	}

	// Folds left: 2 ^ 3 ^ 2 is (2 ^ 3) ^ 2.
	ret := vals[0]
	for _, v := range vals[1:] {
		var err error
		ret, err = ipow(ret, v)
		if err != nil {
			return 0, err
		}
	}
	e.trace("returning %d from power", ret)
	return ret, nil
}

// ipow is base**exp truncated toward zero. Overflow wraps.
func ipow(base, exp int) (int, error) {
	if exp < 0 {
		switch base {
		case 0:
			return 0, &ArithmeticError{Op: "^", Msg: "zero to a negative power"}
		case 1:
			return 1, nil
		case -1:
			if exp%2 == 0 {
				return 1, nil
			}
			return -1, nil
		}
		return 0, nil
	}
	ret := 1
	for exp > 0 {
		if exp&1 == 1 {
			ret *= base
		}
		base *= base
		exp >>= 1
	}
	return ret, nil
}

// evalProduct picks one operator for the whole chain: multiplication if any
// '*' appears in it, division otherwise.
func (e *Evaluator) evalProduct(n *Product) (int, error) {
	e.trace("visiting product")
	mul := false
	for _, t := range n.Rest {
		if t.Op == OpMul {
			mul = true
			break
		}
	}

	ret, err := e.evalOperand("product", n.First)
	if err != nil {
		return 0, err
	}
	for _, t := range n.Rest {
		v, err := e.evalOperand("product", t.Operand)
		if err != nil {
			return 0, err
		}
		if mul {
			ret *= v
			continue
		}
		if v == 0 {
			return 0, &ArithmeticError{Op: "/", Msg: "division by zero"}
		}
		ret /= v
	}
	e.trace("returning %d from product", ret)
	return ret, nil
}

// evalSum picks one operator for the whole chain: addition if any '+'
// appears in it, subtraction otherwise.
func (e *Evaluator) evalSum(n *Sum) (int, error) {
	e.trace("visiting sum")
	add := false
	for _, t := range n.Rest {
		if t.Op == OpAdd {
			add = true
			break
		}
	}

	ret, err := e.evalOperand("sum", n.First)
	if err != nil {
		return 0, err
	}
	for _, t := range n.Rest {
		v, err := e.evalOperand("sum", t.Operand)
		if err != nil {
			return 0, err
		}
		if add {
			ret += v
		} else {
			ret -= v
		}
	}
	e.trace("returning %d from sum", ret)
	return ret, nil
}

// FormatResults renders results one per line, the way the CLI prints them.
func FormatResults(results []int) string {
	var sb strings.Builder
	for _, v := range results {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte('\n')
	}
	return sb.String()
}
