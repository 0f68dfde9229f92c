// Package io provides the byte-level cell I/O used by the ',' and '.'
// instructions. It includes the stream backed Tape used by the headless
// interpreter, and the accumulating Buffer used by the debugger.
package io

// CellReader supplies values to the Input instruction.
type CellReader interface {
	// ReadCell stores the next input value into cell.
	// On error, cell is left unchanged.
	ReadCell(cell *byte) error
}

// CellWriter receives values from the Output instruction.
type CellWriter interface {
	// WriteCell emits a single cell value.
	WriteCell(cell byte) error
}
