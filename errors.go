package gocalc

import (
	"errors"
	"fmt"
)

var (
	ErrArithmetic    = errors.New("arithmetic error")
	ErrMalformedTree = errors.New("malformed tree")
)

// ArithmeticError is returned for operations with no integer result, such
// as division by zero.
type ArithmeticError struct {
	Op  string
	Msg string
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error: %s: %s", e.Op, e.Msg)
}

func (e *ArithmeticError) Unwrap() error {
	return ErrArithmetic
}

// MalformedTreeError means the tree handed to the evaluator could not have
// come from the parser.
type MalformedTreeError struct {
	Msg string
}

func (e *MalformedTreeError) Error() string {
	return "malformed tree: " + e.Msg
}

func (e *MalformedTreeError) Unwrap() error {
	return ErrMalformedTree
}

func malformed(format string, args ...interface{}) error {
	return &MalformedTreeError{Msg: fmt.Sprintf(format, args...)}
}
