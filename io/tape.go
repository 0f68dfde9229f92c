// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package io

import (
	"bufio"
	"errors"
	"io"
)

// Tape provides the stream I/O of a run. Input skips whitespace and
// delivers one byte per read; output writes one byte per cell.
type Tape struct {
	Input  io.Reader // Input stream. A *bufio.Reader is used as-is.
	Output io.Writer // Output stream.
	Eof    EofMode   // End of input behaviour.

	reader *bufio.Reader
	source io.Reader
}

var _ CellReader = (*Tape)(nil)
var _ CellWriter = (*Tape)(nil)

// flusher is satisfied by buffered output streams.
type flusher interface {
	Flush() error
}

// isSpace matches the C locale isspace() set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Rewind drops any buffered input, so that the next read starts
// from the current position of Input.
func (tc *Tape) Rewind() {
	tc.reader = nil
	tc.source = nil
}

// byteReader returns the buffered view of Input, creating it on demand.
func (tc *Tape) byteReader() *bufio.Reader {
	if tc.source != tc.Input || tc.reader == nil {
		tc.source = tc.Input
		if br, ok := tc.Input.(*bufio.Reader); ok {
			tc.reader = br
		} else {
			tc.reader = bufio.NewReader(tc.Input)
		}
	}

	return tc.reader
}

// ReadCell reads the next non-whitespace byte from Input into cell.
// Pending output is flushed first, so prompts are visible before a
// blocking read.
func (tc *Tape) ReadCell(cell *byte) (err error) {
	if fl, ok := tc.Output.(flusher); ok {
		err = fl.Flush()
		if err != nil {
			return
		}
	}

	if tc.Input == nil {
		return tc.Eof.apply(cell)
	}

	br := tc.byteReader()
	for {
		var c byte
		c, err = br.ReadByte()
		if errors.Is(err, io.EOF) {
			return tc.Eof.apply(cell)
		}
		if err != nil {
			return
		}
		if !isSpace(c) {
			*cell = c
			return
		}
	}
}

// WriteCell writes the cell value to Output.
// A nil Output discards the value.
func (tc *Tape) WriteCell(cell byte) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{cell})
	return
}
