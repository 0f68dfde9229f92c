// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ezrec/bfdb/internal"
)

// ANSI display decorations.
const (
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorDefault = "\033[39m"
	clearScreen  = "\033[H\033[2J"
)

// paint decorates text with color, if colors are enabled.
func (dbg *Debugger) paint(color string, text string) string {
	if !dbg.Color || len(text) == 0 {
		return text
	}

	return color + text + colorDefault
}

// mark highlights text when it is the current cell or instruction.
func (dbg *Debugger) mark(current bool, text string) string {
	if !current {
		return text
	}

	return dbg.paint(colorGreen, text)
}

// renderCells draws the tape window around the data pointer:
//
//	0     1
//	+-----+-----+
//	| 255 |   0 |
//	+-----+-----+
func (dbg *Debugger) renderCells(out *strings.Builder) {
	m := dbg.Machine
	dp := m.Pointer
	first, last := internal.Window(dp, dbg.CellRange, len(m.Tape))

	for n := first; n < last; n++ {
		index := strconv.Itoa(n)
		out.WriteString(dbg.mark(n == dp, index))
		out.WriteString(strings.Repeat(" ", max(1, 6-len(index))))
	}
	out.WriteString("\n")

	// The current cell draws both of its edges, so the cell to its
	// right omits its left edge.
	row := func(body func(n int) string, edge string) {
		for n := first; n < last; n++ {
			var text string
			if n != dp+1 {
				text = edge
			}
			text += body(n)
			if n == dp || n == last-1 {
				text += edge
			}
			out.WriteString(dbg.mark(n == dp, text))
		}
		out.WriteString("\n")
	}

	border := func(n int) string { return "-----" }
	value := func(n int) string { return fmt.Sprintf("%4d ", m.Tape[n]) }

	row(border, "+")
	row(value, "|")
	row(border, "+")
}

// renderInstructions draws the instruction window around the IP.
func (dbg *Debugger) renderInstructions(out *strings.Builder) {
	for ip, inst := range dbg.Machine.Program.Window(dbg.Ip, dbg.InstRange) {
		out.WriteString(dbg.mark(ip == dbg.Ip, inst.String()))
	}
}

// renderCell draws a single cell as a box.
func (dbg *Debugger) renderCell(index int, value byte) string {
	box := fmt.Sprintf("+-----+\n|%4d |\n+-----+", value)
	if index == dbg.Machine.Pointer {
		box = dbg.paint(colorGreen, box)
	}

	return box + "\n"
}

// Render writes the tape window, instruction window, and buffered output
// to the display.
func (dbg *Debugger) Render() {
	var out strings.Builder

	if dbg.Clear {
		out.WriteString(clearScreen)
	}

	out.WriteString(dbg.paint(colorYellow, f("\t-- DEBUGGER --")))
	out.WriteString("\n\n")

	dbg.renderCells(&out)

	out.WriteString("\n")
	out.WriteString(dbg.paint(colorYellow, f("\tIP: %v\nOPS: ", strconv.Itoa(dbg.Ip))))
	dbg.renderInstructions(&out)

	out.WriteString("\n\n")
	out.WriteString(dbg.paint(colorYellow, f("OUTPUT:")))
	out.WriteString("\n")
	out.WriteString(dbg.Output.String())
	out.WriteString("\n\n")

	dbg.print(out.String())
	dbg.flushNotes()
}
