package io

import (
	"fmt"
)

// EofMode selects what the Input instruction does at end of input.
type EofMode int

//go:generate go tool stringer -linecomment -type=EofMode
const (
	EOF_MAX   = EofMode(0) // max
	EOF_ZERO  = EofMode(1) // zero
	EOF_KEEP  = EofMode(2) // keep
	EOF_ERROR = EofMode(3) // error
)

// ParseEofMode converts an EofMode name back to its value.
func ParseEofMode(name string) (mode EofMode, err error) {
	for mode = EOF_MAX; mode <= EOF_ERROR; mode++ {
		if mode.String() == name {
			return
		}
	}

	mode = EOF_MAX
	err = fmt.Errorf("%w: %q", ErrEofMode, name)
	return
}

// apply stores the end of input value for the mode into cell.
func (mode EofMode) apply(cell *byte) (err error) {
	switch mode {
	case EOF_MAX:
		*cell = 0xff
	case EOF_ZERO:
		*cell = 0
	case EOF_KEEP:
		// unchanged
	default:
		err = ErrInputEnd
	}

	return
}
