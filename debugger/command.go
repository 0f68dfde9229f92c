package debugger

import (
	"regexp"
	"strconv"
)

// CommandKind is the type of a debugger command.
type CommandKind int

//go:generate go tool stringer -linecomment -type=CommandKind
const (
	CMD_STEP  = CommandKind(0) // step
	CMD_JUMP  = CommandKind(1) // jmp
	CMD_GOTO  = CommandKind(2) // goto
	CMD_CELL  = CommandKind(3) // c
	CMD_IP    = CommandKind(4) // i
	CMD_QUIT  = CommandKind(5) // q
	CMD_PRINT = CommandKind(6) // p
	CMD_HELP  = CommandKind(7) // h
)

// Command is a single parsed debugger command line.
type Command struct {
	Kind  CommandKind
	Count int    // Step count, goto address, or cell index.
	Expr  string // Expression for CMD_PRINT.
	Line  string // Original command line.
}

var (
	reCell  = regexp.MustCompile(`^c:([0-9]+)$`)
	reJump  = regexp.MustCompile(`^jmp ([0-9]+)$`)
	reGoto  = regexp.MustCompile(`^goto ([0-9]+)$`)
	rePrint = regexp.MustCompile(`^p (.+)$`)
)

// ParseCommand parses a single command line, without its line ending.
func ParseCommand(line string) (cmd Command, err error) {
	cmd.Line = line

	defer func() {
		if err != nil {
			err = &ErrCommand{Line: line, Err: err}
		}
	}()

	number := func(text string) (value int) {
		value, err = strconv.Atoi(text)
		if err != nil {
			err = ErrCommandNumber
		}
		return
	}

	switch line {
	case "":
		cmd.Kind = CMD_STEP
		cmd.Count = 1
		return
	case "i":
		cmd.Kind = CMD_IP
		return
	case "q":
		cmd.Kind = CMD_QUIT
		return
	case "h", "help":
		cmd.Kind = CMD_HELP
		return
	}

	if match := reCell.FindStringSubmatch(line); match != nil {
		cmd.Kind = CMD_CELL
		cmd.Count = number(match[1])
		return
	}

	if match := reJump.FindStringSubmatch(line); match != nil {
		cmd.Kind = CMD_JUMP
		cmd.Count = number(match[1])
		return
	}

	if match := reGoto.FindStringSubmatch(line); match != nil {
		cmd.Kind = CMD_GOTO
		cmd.Count = number(match[1])
		return
	}

	if match := rePrint.FindStringSubmatch(line); match != nil {
		cmd.Kind = CMD_PRINT
		cmd.Expr = match[1]
		return
	}

	err = ErrCommandUnknown
	return
}

// Help returns the command summary.
func Help() string {
	return f(`Commands:
	<enter>     : advance one instruction
	i           : print the instruction pointer
	c:<uint>    : print the value of cell <uint>
	goto <uint> : advance until the instruction pointer is <uint>, or the program ends
	jmp <uint>  : advance <uint> instructions
	p <expr>    : print an expression of ip, dp, size, output, program, and cell(n)
	h           : print this help
	q           : quit
`)
}
