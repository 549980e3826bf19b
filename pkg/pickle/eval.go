package pickle

import (
	"github.com/pickle-lang/pickle/pkg/pickle/errs"
)

// Eval evaluates a script in the active frame and returns the final signal.
// At the outermost level the signal protocol is closed off: a Return
// converts to OK, and a Break or Continue that escaped every loop is an
// error in its own right.
func (in *Interp) Eval(script string) Status {
	top := in.depth == 0
	s := in.evalScript(script)
	if top {
		switch s {
		case Return:
			s = OK
		case Break, Continue:
			s = in.Errorf("invoked %q outside of a loop", s.String())
		}
	}
	return s
}

// evalScript is the re-entrant core of the evaluator: it parses one command
// at a time, substitutes its words into an argument vector and dispatches
// it, stopping at the first non-OK signal. Every nested evaluation (command
// substitution, procedure body, uplevel, the eval command) funnels through
// here and shares the recursion counter.
func (in *Interp) evalScript(script string) Status {
	if in.depth >= in.limits.MaxRecursion {
		return in.Fail(errs.LimitExceeded{What: "recursion", Limit: in.limits.MaxRecursion})
	}
	in.depth++
	defer func() { in.depth-- }()

	in.result = ""
	p := newParser(script, in.limits)
	for {
		words, err := p.nextCommand()
		if err != nil {
			in.line = ErrorLine(err)
			return in.Fail(err)
		}
		if words == nil {
			return OK
		}
		in.line = words[0].line
		argv := make([]string, 0, len(words))
		for _, w := range words {
			if s := in.substWord(w); s != OK {
				return s
			}
			argv = append(argv, in.result)
		}
		if s := in.dispatch(argv); s != OK {
			return s
		}
	}
}

// dispatch resolves argv[0] and invokes the command. An unresolved name is
// handed to the unknown handler, when one is registered, with the original
// argument vector formatted as a single list argument.
func (in *Interp) dispatch(argv []string) Status {
	c, ok := in.lookup(argv[0])
	if !ok {
		u, hasUnknown := in.lookup("unknown")
		if !hasUnknown {
			return in.Fail(errs.CommandNotFound{Name: argv[0]})
		}
		argv = []string{"unknown", FormatList(argv)}
		c = u
	}
	switch b := c.body.(type) {
	case nativeCmd:
		return b.fn(in, argv, b.priv)
	case procCmd:
		return in.callProc(b, argv)
	}
	return in.Errorf("command %q has no body", argv[0])
}

// callProc pushes a frame, binds parameters positionally, and evaluates the
// body as a script in the new frame. A Return from the body converts to OK
// at this boundary; Break and Continue propagate to the caller's loops.
func (in *Interp) callProc(p procCmd, argv []string) Status {
	args := argv[1:]
	if p.variadic == "" {
		if len(args) != len(p.params) {
			return in.FailArity(len(p.params)+1, argv)
		}
	} else if len(args) < len(p.params) {
		return in.FailArity(len(p.params)+1, argv)
	}

	if p.scope >= 0 {
		// Lambdas resolve upvar links against their defining scope rather
		// than the frame stack top.
		saved := in.active
		in.active = p.scope
		defer func() { in.active = saved }()
	}
	h, prev := in.pushFrame()
	defer in.popFrame(h, prev)

	for i, param := range p.params {
		if err := in.SetVar(param, args[i]); err != nil {
			return in.Fail(err)
		}
	}
	if p.variadic != "" {
		if err := in.SetVar(p.variadic, FormatList(args[len(p.params):])); err != nil {
			return in.Fail(err)
		}
	}

	s := in.evalScript(p.body)
	if s == Return {
		s = OK
	}
	return s
}

// CallLambda applies an anonymous {params body} pair to args in a frame
// whose parent is the applying frame.
func (in *Interp) CallLambda(params, body string, args []string) Status {
	p, variadic, err := parseParams(params)
	if err != nil {
		return in.Fail(err)
	}
	lambda := procCmd{params: p, variadic: variadic, body: body, scope: in.active}
	argv := append([]string{"apply"}, args...)
	return in.callProc(lambda, argv)
}
