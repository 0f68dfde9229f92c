// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strings"
)

// Parser is a single pass lexer and bracket resolver.
type Parser struct {
	Logger *slog.Logger // If set, logs the resolved brackets at debug level.

	brackets bracketStack // Pending '[' instructions.
}

// Parse lexes source text into a Program.
func Parse(text string) (prog *Program, err error) {
	parser := &Parser{}
	return parser.Parse(strings.NewReader(text))
}

// Parse lexes an input stream into a Program.
//
// Every character other than the eight instruction characters is
// ignored. Each '[' receives the index of its ']' as operand, and each
// ']' the index of its '['. Bracket errors are returned as *ErrSyntax;
// read errors of input are returned as-is.
func (ps *Parser) Parse(input io.Reader) (prog *Program, err error) {
	reader := bufio.NewReader(input)

	var out []Instruction
	line := 1
	column := 0
	offset := -1

	ps.brackets.Reset()

	for {
		var c byte
		c, err = reader.ReadByte()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			return
		}

		offset++
		column++
		if c == '\n' {
			line++
			column = 0
			continue
		}

		op, ok := opcodeMap[c]
		if !ok {
			continue
		}

		inst := Instruction{Opcode: op, Line: line, Column: column}

		switch op {
		case OP_JUMP_ZERO:
			ps.brackets.Push(opening{index: len(out), line: line, column: column, offset: offset})
		case OP_JUMP_BACK:
			open, ok := ps.brackets.Pop()
			if !ok {
				err = &ErrSyntax{Line: line, Column: column, Offset: offset, Err: ErrBracketUnopened}
				return
			}
			out[open.index].Operand = len(out)
			inst.Operand = open.index
			if ps.Logger != nil {
				ps.Logger.Debug("bracket", "open", open.index, "close", len(out), "line", line, "column", column)
			}
		}

		out = append(out, inst)
	}

	if open, ok := ps.brackets.Peek(); ok {
		// Report the innermost unclosed '['.
		err = &ErrSyntax{Line: open.line, Column: open.column, Offset: open.offset, Err: ErrBracketUnbalanced}
		return
	}

	prog = &Program{Instructions: out}

	return
}
