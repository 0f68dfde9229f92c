// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/tebeka/atexit"
	"golang.org/x/term"

	"github.com/ezrec/bfdb/debugger"
	"github.com/ezrec/bfdb/interpreter"
	bfio "github.com/ezrec/bfdb/io"
	"github.com/ezrec/bfdb/logs"
	"github.com/ezrec/bfdb/machine"
	"github.com/ezrec/bfdb/translate"
)

var f = translate.From

var ErrColorMode = errors.New(f("unknown color mode"))

// load reads and parses a program file.
func load(path string, logger *slog.Logger) (prog *machine.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	ps := &machine.Parser{Logger: logger}
	prog, err = ps.Parse(inf)
	return
}

// decorate decides whether the display gets colors and screen clears.
func decorate(mode string, terminal bool) (enable bool, err error) {
	switch mode {
	case "auto":
		enable = terminal
	case "always":
		enable = true
	case "never":
		enable = false
	default:
		err = ErrColorMode
	}

	return
}

func usage() {
	out := flag.CommandLine.Output()
	translate.Fprintf(out, "Usage: %v [flags] <file>\n\nFlags:\n", os.Args[0])
	flag.PrintDefaults()
	translate.Fprintf(out, "\nDebugger %v", debugger.Help())
}

func main() {
	var debug bool
	var cellRange uint
	var instRange uint
	var tapeSize uint
	var eof string
	var input string
	var output string
	var color string
	var verbose bool
	var journal bool

	flag.BoolVar(&debug, "d", false, "Run in the interactive debugger")
	flag.UintVar(&cellRange, "cr", debugger.CELL_RANGE, "Debugger cells shown on each side of the data pointer")
	flag.UintVar(&instRange, "ir", debugger.INST_RANGE, "Debugger instructions shown on each side of the IP")
	flag.UintVar(&tapeSize, "t", machine.TAPE_SIZE, "Tape size in cells")
	flag.StringVar(&eof, "eof", bfio.EOF_MAX.String(), "End of input behaviour: max, zero, keep, or error")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.StringVar(&color, "color", "auto", "Debugger colors and screen clearing: auto, always, or never")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&journal, "journal", false, "Also log to the systemd journal")
	flag.Usage = usage

	flag.Parse()

	logger := logs.New(logs.Options{
		Writer:  os.Stderr,
		Verbose: verbose,
		Journal: journal,
	})

	switch {
	case flag.NArg() == 0:
		flag.Usage()
		atexit.Exit(2)
	case flag.NArg() > 1:
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args()[1:])
	}

	source := flag.Arg(0)

	eofMode, err := bfio.ParseEofMode(eof)
	if err != nil {
		atexit.Fatalf("-eof %v: %v", eof, err)
	}

	terminal := term.IsTerminal(int(os.Stdout.Fd()))
	decorated, err := decorate(color, terminal)
	if err != nil {
		atexit.Fatalf("-color %v: %v", color, err)
	}

	prog, err := load(source, logger)
	if err != nil {
		var syntaxErr *machine.ErrSyntax
		if errors.As(err, &syntaxErr) {
			atexit.Fatalf("%v:%d:%d: %v", source, syntaxErr.Line, syntaxErr.Column, syntaxErr.Err)
		}
		atexit.Fatalf("%v: %v", source, err)
	}

	if prog.Len() == 0 {
		logger.Warn(f("empty program, nothing to run"), "file", source)
		atexit.Exit(0)
	}

	// Commands and program input share one buffered stdin.
	stdin := bufio.NewReader(os.Stdin)

	tape := bfio.Tape{Eof: eofMode, Input: stdin}
	if input != "-" {
		inf, err := os.Open(input)
		if err != nil {
			atexit.Fatalf("%v: %v", input, err)
		}
		atexit.Register(func() { inf.Close() })
		tape.Input = inf
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			atexit.Fatalf("%v: %v", output, err)
		}
	}
	stdout := bufio.NewWriter(ouf)
	atexit.Register(func() {
		stdout.Flush()
		if ouf != os.Stdout {
			ouf.Close()
		}
	})

	if debug {
		cfg := debugger.Config{
			CellRange: int(cellRange),
			InstRange: int(instRange),
			TapeSize:  int(tapeSize),
			Color:     decorated,
			Clear:     decorated,
		}

		dbg := debugger.New(prog, cfg)
		dbg.Logger = logger
		dbg.Input = tape
		dbg.Commands = stdin
		dbg.Display = os.Stdout

		err = dbg.Run()
		if err != nil {
			atexit.Fatalf("%v: %v", source, err)
		}

		// The session display already showed the output on stdout.
		if output != "-" {
			_, err = stdout.Write(dbg.Output.Bytes())
			if err != nil {
				atexit.Fatalf("%v: %v", output, err)
			}
		}

		atexit.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	atexit.Register(stop)

	in := interpreter.NewInterpreter(prog, int(tapeSize))
	in.Logger = logger
	in.Tape = tape
	in.Tape.Output = stdout

	err = in.Run(ctx)
	if err != nil {
		atexit.Fatalf("%v: %v", source, err)
	}

	atexit.Exit(0)
}
