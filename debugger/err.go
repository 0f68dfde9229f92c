package debugger

import (
	"errors"

	"github.com/ezrec/bfdb/translate"
)

var f = translate.From

var (
	// Command errors
	ErrCommandUnknown = errors.New(f("unknown command"))
	ErrCommandNumber  = errors.New(f("number out of range"))
	ErrCellRange      = errors.New(f("cell out of tape range"))
)

// ErrCommand is a rejected debugger command line.
type ErrCommand struct {
	Line string
	Err  error
}

func (err *ErrCommand) Error() string {
	return f("%v '%v'", err.Err, err.Line)
}

func (err *ErrCommand) Unwrap() error {
	return err.Err
}

// ErrExpression is an expression that could not be evaluated.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("p %v: %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
