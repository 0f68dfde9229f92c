package io

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_ReadCell(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader(" \t\na\r\n b\v\fc")}

	var cell byte
	for _, expected := range []byte("abc") {
		err := tape.ReadCell(&cell)
		assert.NoError(err)
		assert.Equal(expected, cell)
	}
}

func TestTape_ReadCell_Eof(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mode  EofMode
		cell  byte
		err   error
		value byte
	}){
		{EOF_MAX, 7, nil, 0xff},
		{EOF_ZERO, 7, nil, 0},
		{EOF_KEEP, 7, nil, 7},
		{EOF_ERROR, 7, ErrInputEnd, 7},
	}

	for _, entry := range table {
		tape := &Tape{Input: strings.NewReader("  \n"), Eof: entry.mode}
		cell := entry.cell
		err := tape.ReadCell(&cell)
		if entry.err == nil {
			assert.NoError(err, entry.mode.String())
		} else {
			assert.ErrorIs(err, entry.err, entry.mode.String())
		}
		assert.Equal(entry.value, cell, entry.mode.String())
	}
}

func TestTape_ReadCell_NilInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Eof: EOF_ERROR}
	var cell byte = 3
	err := tape.ReadCell(&cell)
	assert.ErrorIs(err, ErrInputEnd)
	assert.Equal(byte(3), cell)
}

type failReader struct{}

var errFail = errors.New("fail")

func (failReader) Read([]byte) (int, error) {
	return 0, errFail
}

func TestTape_ReadCell_Error(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: failReader{}}
	var cell byte = 9
	err := tape.ReadCell(&cell)
	assert.ErrorIs(err, errFail)
	assert.Equal(byte(9), cell)
}

func TestTape_ReadCell_Shared(t *testing.T) {
	assert := assert.New(t)

	// A shared bufio.Reader keeps the line reader and the tape in step.
	br := bufio.NewReader(strings.NewReader("jmp 1\nx\nq\n"))

	tape := &Tape{Input: br}

	line, err := br.ReadString('\n')
	assert.NoError(err)
	assert.Equal("jmp 1\n", line)

	var cell byte
	err = tape.ReadCell(&cell)
	assert.NoError(err)
	assert.Equal(byte('x'), cell)

	line, err = br.ReadString('\n')
	assert.NoError(err)
	assert.Equal("\n", line)
}

func TestTape_ReadCell_Flush(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	bw := bufio.NewWriter(out)
	tape := &Tape{Input: strings.NewReader("y"), Output: bw}

	assert.NoError(tape.WriteCell('?'))
	assert.Equal(0, out.Len())

	var cell byte
	assert.NoError(tape.ReadCell(&cell))
	assert.Equal("?", out.String())
}

func TestTape_Rewind(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("a")}
	var cell byte
	assert.NoError(tape.ReadCell(&cell))
	assert.Equal(byte('a'), cell)

	tape.Input = strings.NewReader("b")
	assert.NoError(tape.ReadCell(&cell))
	assert.Equal(byte('b'), cell)

	tape.Rewind()
	tape.Eof = EOF_ZERO
	assert.NoError(tape.ReadCell(&cell))
	assert.Equal(byte(0), cell)
}

func TestTape_WriteCell(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	tape := &Tape{Output: out}

	for _, c := range []byte{0, 1, 2, 'A'} {
		assert.NoError(tape.WriteCell(c))
	}
	assert.Equal([]byte{0, 1, 2, 'A'}, out.Bytes())

	discard := &Tape{}
	assert.NoError(discard.WriteCell('z'))
}

func TestParseEofMode(t *testing.T) {
	assert := assert.New(t)

	for _, mode := range []EofMode{EOF_MAX, EOF_ZERO, EOF_KEEP, EOF_ERROR} {
		parsed, err := ParseEofMode(mode.String())
		assert.NoError(err)
		assert.Equal(mode, parsed)
	}

	_, err := ParseEofMode("never")
	assert.ErrorIs(err, ErrEofMode)
}
