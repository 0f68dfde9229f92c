// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package interpreter runs a program headless, from start to end,
// streaming its input and output.
package interpreter

import (
	"context"
	"log/slog"

	"github.com/ezrec/bfdb/io"
	"github.com/ezrec/bfdb/machine"
)

// Interpreter state. Machine + instruction pointer + IO tape.
type Interpreter struct {
	Logger           *slog.Logger // If set, logs run progress.
	*machine.Machine              // Reference to the machine simulation.

	Ip   int     // Instruction pointer.
	Tape io.Tape // Input and output streams.

	steps int
}

// NewInterpreter creates a new interpreter with a tape of size cells.
// A size of 0 selects machine.TAPE_SIZE.
func NewInterpreter(prog *machine.Program, size int) (in *Interpreter) {
	in = &Interpreter{
		Machine: machine.NewMachine(prog, size),
	}

	in.Machine.Input = &in.Tape
	in.Machine.Output = &in.Tape

	return
}

// Reset the interpreter to the start of the program, with a zeroed tape.
func (in *Interpreter) Reset() {
	in.Machine.Reset()
	in.Machine.Logger = in.Logger
	in.Tape.Rewind()
	in.Ip = 0
	in.steps = 0
}

// Steps returns the total steps since a reset.
func (in *Interpreter) Steps() int {
	return in.steps
}

// Done returns true once the instruction pointer has passed the end
// of the program.
func (in *Interpreter) Done() bool {
	return in.Ip >= in.Program.Len()
}

// Tick performs a single step of the interpreter.
func (in *Interpreter) Tick() (done bool, err error) {
	if in.Done() {
		done = true
		return
	}

	err = in.Machine.Step(&in.Ip)
	if err != nil {
		return
	}

	in.Ip++
	in.steps++

	done = in.Done()
	return
}

// Run ticks the interpreter until the program ends, an error occurs,
// or the context is cancelled. Cancellation is only noticed between
// steps, never during a blocking input read.
func (in *Interpreter) Run(ctx context.Context) (err error) {
	in.Reset()

	if in.Logger != nil {
		in.Logger.Info("run", "instructions", in.Program.Len(), "tape", len(in.Machine.Tape))
		defer func() {
			in.Logger.Info("done", "steps", in.steps, "ip", in.Ip, "error", err)
		}()
	}

	for done := in.Done(); !done; {
		if err = ctx.Err(); err != nil {
			return
		}

		done, err = in.Tick()
		if err != nil {
			return
		}
	}

	return
}
