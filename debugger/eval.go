package debugger

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const (
	EVAL_STEP_LIMIT = 1_000_000 // Maximum Starlark steps for one expression.
)

// Eval evaluates a Starlark expression against the session state.
//
// Predeclared are ip, dp, size (the tape length), output (the buffered
// output text), program (the program text), and cell(n).
func (dbg *Debugger) Eval(expr string) (value string, err error) {
	defer func() {
		if err != nil {
			err = &ErrExpression{Expr: expr, Err: err}
		}
	}()

	m := dbg.Machine

	cell := starlark.NewBuiltin("cell", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var index int
		err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &index)
		if err != nil {
			return nil, err
		}
		value, err := m.Cell(index)
		if err != nil {
			return nil, err
		}
		return starlark.MakeInt(int(value)), nil
	})

	pred := starlark.StringDict{
		"ip":      starlark.MakeInt(dbg.Ip),
		"dp":      starlark.MakeInt(m.Pointer),
		"size":    starlark.MakeInt(len(m.Tape)),
		"output":  starlark.String(dbg.Output.String()),
		"program": starlark.String(m.Program.String()),
		"cell":    cell,
	}

	thread := &starlark.Thread{Name: "p"}
	thread.SetMaxExecutionSteps(EVAL_STEP_LIMIT)
	opts := syntax.FileOptions{}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, thread, "expr", prog, pred)
	if err != nil {
		return
	}

	rc, ok := dict["rc"]
	if !ok {
		err = ErrCommandUnknown
		return
	}

	if str, ok := rc.(starlark.String); ok {
		value = str.GoString()
	} else {
		value = rc.String()
	}

	return
}
