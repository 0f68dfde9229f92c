// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package debugger implements the interactive stepping debugger.
//
// A session renders the tape and instruction windows, then reads
// commands until one of them advances execution. Output of the program
// is buffered and shown in each render rather than streamed.
package debugger

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	bfio "github.com/ezrec/bfdb/io"
	"github.com/ezrec/bfdb/machine"
)

// Debugger is the state of one debugging session.
type Debugger struct {
	Config
	Logger *slog.Logger // If set, logs each accepted command.

	Machine *machine.Machine // Tape, data pointer, and program.
	Ip      int              // Instruction pointer.
	Output  bfio.Buffer      // Buffered program output.
	Input   bfio.Tape        // Program input for the ',' instruction.

	Commands io.Reader // Command line source. A *bufio.Reader is used as-is.
	Display  io.Writer // Render and diagnostic sink.

	commands   *bufio.Reader
	displayErr error
	notes      []string // Diagnostics shown after the next render.
	steps      int
}

// New creates a debugging session for a program.
func New(prog *machine.Program, cfg Config) (dbg *Debugger) {
	dbg = &Debugger{
		Config:  cfg,
		Machine: machine.NewMachine(prog, cfg.TapeSize),
	}

	dbg.Machine.Input = &dbg.Input
	dbg.Machine.Output = &dbg.Output

	return
}

// Done returns true once the instruction pointer has passed the end
// of the program.
func (dbg *Debugger) Done() bool {
	return dbg.Ip >= dbg.Machine.Program.Len()
}

// Steps returns the count of instructions executed in the session.
func (dbg *Debugger) Steps() int {
	return dbg.steps
}

// print writes text to the display, remembering the first failure.
func (dbg *Debugger) print(text string) {
	if dbg.Display == nil || dbg.displayErr != nil {
		return
	}

	_, dbg.displayErr = io.WriteString(dbg.Display, text)
}

// errorText formats a non-fatal error diagnostic.
func (dbg *Debugger) errorText(err error) string {
	return dbg.paint(colorRed, f("ERROR: %v", err)) + "\n"
}

// warningText formats a non-fatal warning.
func (dbg *Debugger) warningText(text string) string {
	return dbg.paint(colorYellow, f("WARNING: %v", text)) + "\n"
}

// report writes a non-fatal error diagnostic.
func (dbg *Debugger) report(err error) {
	dbg.print(dbg.errorText(err))
}

// note queues a diagnostic for the next render, so a screen clear
// does not hide it.
func (dbg *Debugger) note(text string) {
	dbg.notes = append(dbg.notes, text)
}

// flushNotes writes the queued diagnostics.
func (dbg *Debugger) flushNotes() {
	for _, note := range dbg.notes {
		dbg.print(note)
	}
	dbg.notes = dbg.notes[:0]
}

// readLine reads the next command line. ok is false at end of input.
func (dbg *Debugger) readLine() (line string, ok bool, err error) {
	if dbg.Commands == nil {
		return
	}

	if dbg.commands == nil {
		if br, isBuffered := dbg.Commands.(*bufio.Reader); isBuffered {
			dbg.commands = br
		} else {
			dbg.commands = bufio.NewReader(dbg.Commands)
		}
	}

	line, err = dbg.commands.ReadString('\n')
	if errors.Is(err, io.EOF) {
		err = nil
		if len(line) == 0 {
			return
		}
	}
	if err != nil {
		return
	}

	line = strings.TrimRight(line, "\r\n")
	ok = true
	return
}

// Step executes one instruction and advances the IP.
// On error, the IP stays on the failing instruction.
func (dbg *Debugger) Step() (err error) {
	err = dbg.Machine.Step(&dbg.Ip)
	if err != nil {
		return
	}

	dbg.Ip++
	dbg.steps++

	return
}

// Jump executes count steps, stopping early at the end of the program
// or at the first error.
func (dbg *Debugger) Jump(count int) (err error) {
	for range count {
		if dbg.Done() {
			break
		}
		err = dbg.Step()
		if err != nil {
			return
		}
	}

	return
}

// Goto steps until the IP equals target. ended is true when the program
// ran off its end first. A backward jump taken along the way can land on
// a target behind the starting IP.
func (dbg *Debugger) Goto(target int) (ended bool, err error) {
	for dbg.Ip != target {
		err = dbg.Step()
		if err != nil {
			return
		}
		if dbg.Done() {
			ended = true
			return
		}
	}

	return
}

// showIp prints the IP and its source location, and for a bracket
// the IP of its partner.
func (dbg *Debugger) showIp() {
	inst, ok := dbg.Machine.Program.At(dbg.Ip)
	if !ok {
		dbg.print(strconv.Itoa(dbg.Ip) + "\n")
		return
	}

	text := f("%v (line %v, column %v)", strconv.Itoa(dbg.Ip), strconv.Itoa(inst.Line), strconv.Itoa(inst.Column))
	if inst.Opcode.IsJump() {
		text += f(" '%v' pairs with %v", inst.Opcode, strconv.Itoa(inst.Operand))
	}

	dbg.print(text + "\n")
}

// showCell prints the value of a tape cell.
func (dbg *Debugger) showCell(cmd Command) {
	value, err := dbg.Machine.Cell(cmd.Count)
	if err != nil {
		dbg.report(&ErrCommand{Line: cmd.Line, Err: ErrCellRange})
		return
	}

	dbg.print(dbg.renderCell(cmd.Count, value))
}

// prompt reads commands until one advances execution or ends the session.
func (dbg *Debugger) prompt() (quit bool, err error) {
	for {
		dbg.print("> ")

		var line string
		var ok bool
		line, ok, err = dbg.readLine()
		if err != nil || !ok {
			quit = true
			return
		}

		cmd, cmdErr := ParseCommand(line)
		if cmdErr != nil {
			dbg.report(cmdErr)
			continue
		}

		if dbg.Logger != nil {
			dbg.Logger.Debug("command", "kind", cmd.Kind.String(), "count", cmd.Count, "ip", dbg.Ip)
		}

		switch cmd.Kind {
		case CMD_STEP, CMD_JUMP:
			if stepErr := dbg.Jump(cmd.Count); stepErr != nil {
				dbg.note(dbg.errorText(stepErr))
			}
			return
		case CMD_GOTO:
			if cmd.Count < dbg.Ip {
				dbg.note(dbg.warningText(f("address '%v' is before the current instruction pointer, so it might not be reached", strconv.Itoa(cmd.Count))))
			}
			var stepErr error
			quit, stepErr = dbg.Goto(cmd.Count)
			if stepErr != nil {
				dbg.note(dbg.errorText(stepErr))
			}
			return
		case CMD_CELL:
			dbg.showCell(cmd)
		case CMD_IP:
			dbg.showIp()
		case CMD_PRINT:
			value, evalErr := dbg.Eval(cmd.Expr)
			if evalErr != nil {
				dbg.report(evalErr)
			} else {
				dbg.print(value + "\n")
			}
		case CMD_HELP:
			dbg.print(Help())
		case CMD_QUIT:
			quit = true
			return
		}
	}
}

// Run the debugging session until the program ends, or the user quits.
// End of the command input is the same as 'q'.
func (dbg *Debugger) Run() (err error) {
	dbg.Machine.Logger = dbg.Logger

	if dbg.Logger != nil {
		dbg.Logger.Info("debug", "instructions", dbg.Machine.Program.Len(), "tape", len(dbg.Machine.Tape))
		defer func() {
			dbg.Logger.Info("done", "steps", dbg.steps, "ip", dbg.Ip, "error", err)
		}()
	}

	for {
		dbg.Render()
		if dbg.displayErr != nil || dbg.Done() {
			break
		}

		var quit bool
		quit, err = dbg.prompt()
		if err != nil || quit {
			// A session ending without a render still shows its diagnostics.
			dbg.flushNotes()
			break
		}
	}

	if err == nil {
		err = dbg.displayErr
	}

	return
}
