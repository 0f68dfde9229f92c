package machine

// Opcode is one of the eight primitive operations.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_INCREMENT = Opcode(0) // +
	OP_DECREMENT = Opcode(1) // -
	OP_LEFT      = Opcode(2) // <
	OP_RIGHT     = Opcode(3) // >
	OP_OUTPUT    = Opcode(4) // .
	OP_INPUT     = Opcode(5) // ,
	OP_JUMP_ZERO = Opcode(6) // [
	OP_JUMP_BACK = Opcode(7) // ]
)

// opcodeMap maps source characters to opcodes.
var opcodeMap = map[byte]Opcode{
	'+': OP_INCREMENT,
	'-': OP_DECREMENT,
	'<': OP_LEFT,
	'>': OP_RIGHT,
	'.': OP_OUTPUT,
	',': OP_INPUT,
	'[': OP_JUMP_ZERO,
	']': OP_JUMP_BACK,
}

// IsJump returns true for the two bracket opcodes.
func (op Opcode) IsJump() bool {
	return op == OP_JUMP_ZERO || op == OP_JUMP_BACK
}

// Instruction is a single lexed opcode with its resolved operand and
// source location.
type Instruction struct {
	Opcode  Opcode
	Operand int // Index of the matching bracket; 0 for non-jumps.
	Line    int // 1-based source line.
	Column  int // 1-based source column.
}

// String returns the source character of the instruction.
func (inst Instruction) String() string {
	return inst.Opcode.String()
}
