package machine

import (
	"iter"
	"strings"

	"github.com/ezrec/bfdb/internal"
)

// Program is the immutable, jump resolved instruction sequence.
type Program struct {
	Instructions []Instruction
}

// Len returns the count of instructions.
func (prog *Program) Len() int {
	return len(prog.Instructions)
}

// At returns the instruction at ip, if ip is inside the program.
func (prog *Program) At(ip int) (inst Instruction, ok bool) {
	if ip < 0 || ip >= len(prog.Instructions) {
		return
	}

	return prog.Instructions[ip], true
}

// Window returns an iterator over at most 2*radius instructions
// surrounding ip.
func (prog *Program) Window(ip int, radius int) iter.Seq2[int, Instruction] {
	return func(yield func(ip int, inst Instruction) bool) {
		for n := range internal.WindowSeq(ip, radius, len(prog.Instructions)) {
			if !yield(n, prog.Instructions[n]) {
				return
			}
		}
	}
}

// String returns the canonical source text of the program.
func (prog *Program) String() string {
	var text strings.Builder

	text.Grow(len(prog.Instructions))
	for _, inst := range prog.Instructions {
		text.WriteString(inst.Opcode.String())
	}

	return text.String()
}
