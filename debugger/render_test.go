package debugger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/bfdb/machine"
)

func newRender(t *testing.T, source string, cfg Config) (dbg *Debugger, out *bytes.Buffer) {
	prog, err := machine.Parse(source)
	require.NoError(t, err)

	dbg = New(prog, cfg)
	out = &bytes.Buffer{}
	dbg.Display = out

	return
}

func TestRender(t *testing.T) {
	assert := assert.New(t)

	dbg, out := newRender(t, "+>++", Config{CellRange: 2, InstRange: 2})
	dbg.Render()

	expect := "\t-- DEBUGGER --\n\n" +
		"0     1     2     3     \n" +
		"+-----+-----+-----+-----+\n" +
		"|   0 |   0 |   0 |   0 |\n" +
		"+-----+-----+-----+-----+\n" +
		"\n" +
		"\tIP: 0\nOPS: +>++" +
		"\n\n" +
		"OUTPUT:\n" +
		"\n\n"

	assert.Equal(expect, out.String())
}

func TestRender_Moved(t *testing.T) {
	assert := assert.New(t)

	dbg, out := newRender(t, "+>+++", Config{CellRange: 1, InstRange: 1, TapeSize: 3})
	assert.NoError(dbg.Jump(3))
	dbg.Render()

	expect := "\t-- DEBUGGER --\n\n" +
		"0     1     \n" +
		"+-----+-----+\n" +
		"|   1 |   1 |\n" +
		"+-----+-----+\n" +
		"\n" +
		"\tIP: 3\nOPS: ++" +
		"\n\n" +
		"OUTPUT:\n" +
		"\n\n"

	assert.Equal(expect, out.String())
}

func TestRender_WideIndex(t *testing.T) {
	assert := assert.New(t)

	dbg, out := newRender(t, "+", Config{CellRange: 1, InstRange: 1, TapeSize: 200000})
	dbg.Machine.Pointer = 123456
	dbg.Render()

	assert.Contains(out.String(), "123455 123456 \n")
}

func TestRender_Color(t *testing.T) {
	assert := assert.New(t)

	dbg, out := newRender(t, "+>++", Config{CellRange: 2, InstRange: 2, Color: true})
	dbg.Render()

	display := out.String()
	assert.Contains(display, colorGreen+"0"+colorDefault)
	assert.Contains(display, colorGreen+"+-----+"+colorDefault)
	assert.Contains(display, colorGreen+"+"+colorDefault+">++")
	assert.Contains(display, colorYellow)
}

func TestRender_Clear(t *testing.T) {
	assert := assert.New(t)

	dbg, out := newRender(t, "+", DefaultConfig())
	dbg.Clear = true
	dbg.Render()
	dbg.Render()

	display := out.String()
	assert.True(strings.HasPrefix(display, clearScreen))
	assert.Equal(2, strings.Count(display, clearScreen))
}

func TestRender_Notes(t *testing.T) {
	assert := assert.New(t)

	dbg, out := newRender(t, "+", DefaultConfig())
	dbg.note(dbg.warningText("careful"))
	dbg.Render()
	assert.True(strings.HasSuffix(out.String(), "OUTPUT:\n\n\nWARNING: careful\n"))

	out.Reset()
	dbg.Render()
	assert.NotContains(out.String(), "WARNING")
}

func TestRenderCell(t *testing.T) {
	assert := assert.New(t)

	dbg, _ := newRender(t, "+", Config{Color: true})
	assert.Equal(colorGreen+"+-----+\n| 255 |\n+-----+"+colorDefault+"\n", dbg.renderCell(0, 255))
	assert.Equal("+-----+\n|   7 |\n+-----+\n", dbg.renderCell(1, 7))
}
