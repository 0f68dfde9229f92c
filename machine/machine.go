// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
	"log/slog"

	"github.com/ezrec/bfdb/io"
)

const (
	TAPE_SIZE = 30000 // Default count of tape cells.
)

// Machine is the execution context of one run: the tape memory, the
// data pointer, and the program it executes.
type Machine struct {
	Logger *slog.Logger // If set, logs each step at debug level.

	Program *Program      // Program being executed.
	Tape    []byte        // Tape memory.
	Pointer int           // Data pointer, always inside Tape.
	Input   io.CellReader // Source for the ',' instruction.
	Output  io.CellWriter // Sink for the '.' instruction.
}

// NewMachine creates a machine with a zeroed tape of size cells.
// A size of 0 selects TAPE_SIZE.
func NewMachine(prog *Program, size int) (m *Machine) {
	if size <= 0 {
		size = TAPE_SIZE
	}

	if prog == nil {
		prog = &Program{}
	}

	m = &Machine{
		Program: prog,
		Tape:    make([]byte, size),
	}

	return
}

// Reset zeros the tape and the data pointer.
func (m *Machine) Reset() {
	clear(m.Tape)
	m.Pointer = 0
}

// Cell returns the value of the tape cell at index.
func (m *Machine) Cell(index int) (value byte, err error) {
	if index < 0 || index >= len(m.Tape) {
		err = fmt.Errorf("%w: cell %d", ErrPointerRange, index)
		return
	}

	value = m.Tape[index]
	return
}

// Current returns the value of the cell under the data pointer.
func (m *Machine) Current() byte {
	return m.Tape[m.Pointer]
}

// Step executes the instruction at *ip.
//
// The bracket instructions reassign *ip; all others leave it alone.
// Either way the caller advances *ip by one afterwards. '[' with a zero
// cell moves *ip to its ']', so the advance continues past the loop.
// ']' moves *ip to just before its '[', so the advance lands on the '['
// and the loop condition is tested again.
//
// On error, the tape, data pointer, and *ip are unchanged.
func (m *Machine) Step(ip *int) (err error) {
	inst, ok := m.Program.At(*ip)
	if !ok {
		return ErrProgramEnd
	}

	here := *ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: here, Instruction: inst, Err: err}
		}
	}()

	if m.Logger != nil {
		m.Logger.Debug("step", "ip", here, "op", inst.Opcode.String(), "dp", m.Pointer, "cell", m.Tape[m.Pointer])
	}

	cell := &m.Tape[m.Pointer]

	switch inst.Opcode {
	case OP_INCREMENT:
		*cell++
	case OP_DECREMENT:
		*cell--
	case OP_LEFT:
		if m.Pointer == 0 {
			err = ErrPointerRange
			return
		}
		m.Pointer--
	case OP_RIGHT:
		if m.Pointer+1 >= len(m.Tape) {
			err = ErrPointerRange
			return
		}
		m.Pointer++
	case OP_OUTPUT:
		if m.Output != nil {
			err = m.Output.WriteCell(*cell)
		}
	case OP_INPUT:
		if m.Input == nil {
			err = io.ErrInputEnd
			return
		}
		err = m.Input.ReadCell(cell)
	case OP_JUMP_ZERO:
		if *cell == 0 {
			*ip = inst.Operand
		}
	case OP_JUMP_BACK:
		*ip = inst.Operand - 1
	default:
		panic(fmt.Sprintf("unknown opcode %v", inst.Opcode))
	}

	return
}
