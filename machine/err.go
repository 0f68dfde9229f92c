package machine

import (
	"errors"
	"strconv"

	"github.com/ezrec/bfdb/translate"
)

var f = translate.From

var (
	// Lexer errors
	ErrBracketUnbalanced = errors.New(f("unbalanced brackets: '[' without ']'"))
	ErrBracketUnopened   = errors.New(f("unbalanced brackets: ']' without '['"))

	// Machine errors
	ErrPointerRange = errors.New(f("data pointer out of tape range"))
	ErrProgramEnd   = errors.New(f("instruction pointer past end of program"))
)

// ErrSyntax locates a lexer error in the source text.
type ErrSyntax struct {
	Line   int // 1-based line of the offending bracket.
	Column int // 1-based column of the offending bracket.
	Offset int // 0-based byte offset of the offending bracket.
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %v column %v %v", strconv.Itoa(err.Line), strconv.Itoa(err.Column), err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrRuntime indicates the instruction that failed to execute.
type ErrRuntime struct {
	Ip          int
	Instruction Instruction
	Err         error
}

func (err *ErrRuntime) Error() string {
	inst := err.Instruction
	return f("ip %v '%v' (line %v column %v) %v", strconv.Itoa(err.Ip), inst.Opcode, strconv.Itoa(inst.Line), strconv.Itoa(inst.Column), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
