// Package lang registers the control-flow and procedure commands. The
// engine itself ships no commands at all; everything here, including if,
// while and for, is an ordinary command built from the five-signal
// protocol, with no special support from the evaluator.
package lang

import (
	"github.com/pickle-lang/pickle/pkg/pickle"
	"github.com/pickle-lang/pickle/pkg/pickle/errs"
)

// Register installs the language commands into an interpreter.
func Register(in *pickle.Interp) error {
	cmds := map[string]pickle.CmdFunc{
		"set":      cmdSet,
		"unset":    cmdUnset,
		"incr":     cmdIncr,
		"proc":     cmdProc,
		"apply":    cmdApply,
		"return":   cmdReturn,
		"break":    cmdBreak,
		"continue": cmdContinue,
		"if":       cmdIf,
		"while":    cmdWhile,
		"for":      cmdFor,
		"catch":    cmdCatch,
		"error":    cmdError,
		"eval":     cmdEval,
		"upvar":    cmdUpvar,
		"uplevel":  cmdUplevel,
		"rename":   cmdRename,
		"command":  cmdCommand,
	}
	for name, fn := range cmds {
		if err := in.Register(name, fn, nil); err != nil {
			return err
		}
	}
	return nil
}

func cmdSet(in *pickle.Interp, argv []string, _ any) pickle.Status {
	switch len(argv) {
	case 2:
		v, err := in.Var(argv[1])
		if err != nil {
			return in.Fail(err)
		}
		return in.SetResult(v)
	case 3:
		if err := in.SetVar(argv[1], argv[2]); err != nil {
			return in.Fail(err)
		}
		return in.SetResult(argv[2])
	}
	return in.FailArity(3, argv)
}

func cmdUnset(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 2 {
		return in.FailArity(2, argv)
	}
	if err := in.UnsetVar(argv[1]); err != nil {
		return in.Fail(err)
	}
	return in.SetResult("")
}

func cmdIncr(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 2 && len(argv) != 3 {
		return in.FailArity(3, argv)
	}
	delta := int64(1)
	if len(argv) == 3 {
		d, err := pickle.ParseInt(argv[2])
		if err != nil {
			return in.Fail(err)
		}
		delta = d
	}
	v, err := in.VarInt(argv[1])
	if err != nil {
		return in.Fail(err)
	}
	if err := in.SetVarInt(argv[1], v+delta); err != nil {
		return in.Fail(err)
	}
	return in.SetResultInt(v + delta)
}

func cmdProc(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 4 {
		return in.FailArity(4, argv)
	}
	if err := in.RegisterProc(argv[1], argv[2], argv[3]); err != nil {
		return in.Fail(err)
	}
	return in.SetResult("")
}

func cmdApply(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) < 2 {
		return in.FailArity(2, argv)
	}
	lambda, err := pickle.ParseList(argv[1])
	if err != nil || len(lambda) != 2 {
		return in.Errorf("invalid lambda: %s", argv[1])
	}
	return in.CallLambda(lambda[0], lambda[1], argv[2:])
}

func cmdReturn(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) > 3 {
		return in.FailArity(3, argv)
	}
	val := ""
	if len(argv) >= 2 {
		val = argv[1]
	}
	status := pickle.Return
	if len(argv) == 3 {
		// An explicit status code turns return into any signal; the
		// conventional error procedure is "return $msg -1".
		code, err := pickle.ParseInt(argv[2])
		if err != nil || code < int64(pickle.Error) || code > int64(pickle.Continue) {
			return in.Errorf("invalid return code: %s", argv[2])
		}
		status = pickle.Status(code)
	}
	if s := in.SetResult(val); s != pickle.OK {
		return s
	}
	return status
}

func cmdBreak(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 1 {
		return in.FailArity(1, argv)
	}
	return pickle.Break
}

func cmdContinue(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 1 {
		return in.FailArity(1, argv)
	}
	return pickle.Continue
}

// cond evaluates a condition script and interprets its result as a strict
// integer, zero being false.
func cond(in *pickle.Interp, script string) (bool, pickle.Status) {
	if s := in.Eval(script); s != pickle.OK {
		return false, s
	}
	v, err := pickle.ParseInt(in.Result())
	if err != nil {
		return false, in.Fail(err)
	}
	return v != 0, pickle.OK
}

func cmdIf(in *pickle.Interp, argv []string, _ any) pickle.Status {
	// if cond body ?elseif cond body ...? ?else body?
	i := 1
	for {
		if i+1 >= len(argv) {
			return in.FailArity(3, argv)
		}
		ok, s := cond(in, argv[i])
		if s != pickle.OK {
			return s
		}
		if ok {
			return in.Eval(argv[i+1])
		}
		i += 2
		if i >= len(argv) {
			return in.SetResult("")
		}
		switch argv[i] {
		case "elseif":
			i++
		case "else":
			if i+1 != len(argv)-1 {
				return in.FailArity(3, argv)
			}
			return in.Eval(argv[i+1])
		default:
			return in.Errorf("expected elseif or else, got %q", argv[i])
		}
	}
}

func cmdWhile(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 3 {
		return in.FailArity(3, argv)
	}
	for {
		ok, s := cond(in, argv[1])
		if s != pickle.OK {
			return s
		}
		if !ok {
			return in.SetResult("")
		}
		switch s := in.Eval(argv[2]); s {
		case pickle.OK, pickle.Continue:
		case pickle.Break:
			return in.SetResult("")
		default:
			return s
		}
	}
}

func cmdFor(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 5 {
		return in.FailArity(5, argv)
	}
	if s := in.Eval(argv[1]); s != pickle.OK {
		return s
	}
	for {
		ok, s := cond(in, argv[2])
		if s != pickle.OK {
			return s
		}
		if !ok {
			return in.SetResult("")
		}
		switch s := in.Eval(argv[4]); s {
		case pickle.OK, pickle.Continue:
		case pickle.Break:
			return in.SetResult("")
		default:
			return s
		}
		if s := in.Eval(argv[3]); s != pickle.OK {
			return s
		}
	}
}

func cmdCatch(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 2 && len(argv) != 3 {
		return in.FailArity(3, argv)
	}
	s := in.Eval(argv[1])
	if len(argv) == 3 {
		if err := in.SetVar(argv[2], in.Result()); err != nil {
			return in.Fail(err)
		}
	}
	return in.SetResultInt(int64(s))
}

func cmdError(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 2 {
		return in.FailArity(2, argv)
	}
	return in.Errorf("%s", argv[1])
}

func cmdEval(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) < 2 {
		return in.FailArity(2, argv)
	}
	script := argv[1]
	for _, a := range argv[2:] {
		script += " " + a
	}
	return in.Eval(script)
}

func cmdUpvar(in *pickle.Interp, argv []string, _ any) pickle.Status {
	// upvar ?level? other mine, level defaulting to 1.
	level, other, mine := "1", "", ""
	switch len(argv) {
	case 3:
		other, mine = argv[1], argv[2]
	case 4:
		level, other, mine = argv[1], argv[2], argv[3]
	default:
		return in.FailArity(4, argv)
	}
	if err := in.LinkVar(level, other, mine); err != nil {
		return in.Fail(err)
	}
	return in.SetResult("")
}

func cmdUplevel(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 3 {
		return in.FailArity(3, argv)
	}
	return in.EvalAtLevel(argv[1], argv[2])
}

func cmdRename(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 3 {
		return in.FailArity(3, argv)
	}
	if err := in.Rename(argv[1], argv[2]); err != nil {
		return in.Fail(err)
	}
	return in.SetResult("")
}

// cmdCommand is the command-table introspection: with no arguments it
// reports the number of commands; "command name|args|body N" reports the
// fields of the N-th command in insertion order.
func cmdCommand(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) == 1 {
		return in.SetResultInt(int64(in.NumCommands()))
	}
	if len(argv) != 3 {
		return in.FailArity(3, argv)
	}
	i, err := pickle.ParseInt(argv[2])
	if err != nil {
		return in.Fail(err)
	}
	c, ok := in.CommandAt(int(i))
	if !ok {
		return in.Fail(errs.OutOfRange{
			What: "command index", Low: 0, Hi: in.NumCommands() - 1, Actual: argv[2],
		})
	}
	switch argv[1] {
	case "name":
		return in.SetResult(c.Name)
	case "args":
		return in.SetResult(c.Args)
	case "body":
		return in.SetResult(c.Body)
	}
	return in.Errorf("expected name, args or body, got %q", argv[1])
}
