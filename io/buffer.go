package io

// Buffer accumulates output cells instead of streaming them.
// The debugger displays its contents between steps.
type Buffer struct {
	Data []byte
}

var _ CellWriter = (*Buffer)(nil)

// WriteCell appends the cell value to the buffer.
func (buf *Buffer) WriteCell(cell byte) (err error) {
	buf.Data = append(buf.Data, cell)
	return
}

// Bytes returns the accumulated output.
func (buf *Buffer) Bytes() []byte {
	return buf.Data
}

// String returns the accumulated output as text.
func (buf *Buffer) String() string {
	return string(buf.Data)
}

// Len is the count of accumulated cells.
func (buf *Buffer) Len() int {
	return len(buf.Data)
}

// Reset discards the accumulated output.
func (buf *Buffer) Reset() {
	if len(buf.Data) > 0 {
		buf.Data = buf.Data[:0]
	}
}
