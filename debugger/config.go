package debugger

const (
	CELL_RANGE = 9  // Default cells shown on each side of the data pointer.
	INST_RANGE = 15 // Default instructions shown on each side of the IP.
)

// Config of a debugger session.
type Config struct {
	CellRange int  // Tape cells rendered on each side of the data pointer.
	InstRange int  // Instructions rendered on each side of the IP.
	TapeSize  int  // Tape cells; 0 selects machine.TAPE_SIZE.
	Color     bool // Decorate the display with ANSI colors.
	Clear     bool // Clear the screen before each render.
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{
		CellRange: CELL_RANGE,
		InstRange: INST_RANGE,
	}
}
