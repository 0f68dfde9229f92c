package debugger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line  string
		kind  CommandKind
		count int
		expr  string
	}){
		{"", CMD_STEP, 1, ""},
		{"jmp 3", CMD_JUMP, 3, ""},
		{"jmp 0", CMD_JUMP, 0, ""},
		{"goto 12", CMD_GOTO, 12, ""},
		{"c:7", CMD_CELL, 7, ""},
		{"i", CMD_IP, 0, ""},
		{"q", CMD_QUIT, 0, ""},
		{"h", CMD_HELP, 0, ""},
		{"help", CMD_HELP, 0, ""},
		{"p cell(dp) + 1", CMD_PRINT, 0, "cell(dp) + 1"},
	}

	for _, entry := range table {
		cmd, err := ParseCommand(entry.line)
		assert.NoError(err, entry.line)
		assert.Equal(entry.kind, cmd.Kind, entry.line)
		assert.Equal(entry.count, cmd.Count, entry.line)
		assert.Equal(entry.expr, cmd.Expr, entry.line)
		assert.Equal(entry.line, cmd.Line, entry.line)
	}
}

func TestParseCommand_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		line string
		err  error
	}){
		{"x", ErrCommandUnknown},
		{" ", ErrCommandUnknown},
		{"jmp", ErrCommandUnknown},
		{"jmp -1", ErrCommandUnknown},
		{"jmp 1 ", ErrCommandUnknown},
		{"goto x", ErrCommandUnknown},
		{"c: 1", ErrCommandUnknown},
		{"c:", ErrCommandUnknown},
		{"Q", ErrCommandUnknown},
		{"p", ErrCommandUnknown},
		{"jmp 99999999999999999999999", ErrCommandNumber},
		{"c:99999999999999999999999", ErrCommandNumber},
	}

	for _, entry := range table {
		_, err := ParseCommand(entry.line)
		assert.ErrorIs(err, entry.err, entry.line)

		var cmdErr *ErrCommand
		if assert.True(errors.As(err, &cmdErr), entry.line) {
			assert.Equal(entry.line, cmdErr.Line)
		}
	}
}

func TestCommandKind_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("step", CMD_STEP.String())
	assert.Equal("goto", CMD_GOTO.String())
	assert.Equal("h", CMD_HELP.String())
	assert.Equal("CommandKind(8)", CommandKind(8).String())
}

func TestHelp(t *testing.T) {
	assert := assert.New(t)

	help := Help()
	for _, cmd := range []string{"<enter>", "i ", "c:<uint>", "goto <uint>", "jmp <uint>", "p <expr>", "q "} {
		assert.Contains(help, cmd)
	}
}
