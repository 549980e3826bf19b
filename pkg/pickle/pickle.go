// Package pickle implements the engine of a small TCL-family command
// language: every value is a byte string, every statement is a command
// invocation, and control structures are themselves ordinary commands.
//
// The engine ships no built-in commands at all. A host constructs an
// interpreter with New, registers commands with Register, and runs scripts
// with Eval; the standard command set lives in the pkg/mods subpackages and
// is registered the same way a host extension would be.
package pickle

import (
	"fmt"
	"strconv"

	"github.com/pickle-lang/pickle/pkg/pickle/errs"
)

// Status is the signal returned by every command and every evaluation step.
// Error aborts the enclosing script until caught, Return unwinds exactly one
// procedure call, and Break/Continue propagate to the nearest enclosing loop
// command.
type Status int

// The five signals, in the order of the wire protocol (Error is negative so
// that OK is the zero value).
const (
	Error Status = iota - 1
	OK
	Return
	Break
	Continue
)

// String returns the conventional lower-case name of the signal.
func (s Status) String() string {
	switch s {
	case Error:
		return "error"
	case OK:
		return "ok"
	case Return:
		return "return"
	case Break:
		return "break"
	case Continue:
		return "continue"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// CmdFunc is the signature of a native command. It receives the interpreter,
// the fully substituted argument vector (argv[0] is the command name), and
// the opaque private datum supplied at registration. It reports its outcome
// by setting the interpreter result and returning a Status.
type CmdFunc func(in *Interp, argv []string, priv any) Status

// Limits are the resource policy knobs of one interpreter, fixed at
// construction. Exceeding any of them is a reported error, never a panic.
type Limits struct {
	MaxString    int // longest value, in bytes
	MaxRecursion int // deepest nested evaluation
	MaxArgs      int // most words in one command
}

// DefaultLimits matches the original engine's compile-time configuration.
var DefaultLimits = Limits{MaxString: 512, MaxRecursion: 128, MaxArgs: 128}

// Cmd describes one entry of the command table, as reported by CommandAt.
type Cmd struct {
	Name   string
	Args   string // canonical parameter list; "built-in" for native commands
	Body   string // procedure body; empty for native commands
	Native bool
}

// cmdBody is either nativeCmd or procCmd, dispatched by type switch.
type cmdBody interface{ isCmdBody() }

type nativeCmd struct {
	fn   CmdFunc
	priv any
}

type procCmd struct {
	params   []string
	variadic string // name of the trailing catch-all parameter, or ""
	body     string
	scope    int // defining frame for lambdas; -1 to use the caller
}

func (nativeCmd) isCmdBody() {}
func (procCmd) isCmdBody()   {}

type command struct {
	name string
	body cmdBody
}

// Interp is one interpreter instance: a command table, a call-frame stack, a
// current result value and the evaluation bookkeeping. Instances are fully
// independent of each other; one instance must only be used from one
// goroutine at a time.
type Interp struct {
	limits Limits

	// Insertion-ordered command table. Deleting a command shifts later
	// entries down one slot; renaming keeps the slot.
	cmds  []command
	index map[string]int

	// Frame stack; frames[0] is the root/global frame. active is the frame
	// commands currently resolve variables against, and is only distinct
	// from the top of the stack while an uplevel is in flight.
	frames []frame
	active int

	result string
	depth  int
	line   int
}

// New creates an empty interpreter with the given limits. A nil limits uses
// DefaultLimits.
func New(limits *Limits) *Interp {
	l := DefaultLimits
	if limits != nil {
		l = *limits
	}
	in := &Interp{
		limits: l,
		index:  make(map[string]int),
		frames: []frame{newFrame(-1)},
	}
	return in
}

// Limits returns the resource policy the interpreter was built with.
func (in *Interp) Limits() Limits { return in.limits }

// Result returns the current result value.
func (in *Interp) Result() string { return in.result }

// Line returns the line number (1-based) the evaluator most recently
// consumed, for error display by hosts.
func (in *Interp) Line() int { return in.line }

// SetResult sets the result value, enforcing the string length limit.
func (in *Interp) SetResult(s string) Status {
	if len(s) > in.limits.MaxString {
		in.result = errs.LimitExceeded{What: "string length", Limit: in.limits.MaxString}.Error()
		return Error
	}
	in.result = s
	return OK
}

// SetResultf formats the result value.
func (in *Interp) SetResultf(format string, args ...any) Status {
	return in.SetResult(fmt.Sprintf(format, args...))
}

// SetResultInt sets the result to the canonical decimal form of v.
func (in *Interp) SetResultInt(v int64) Status {
	return in.SetResult(strconv.FormatInt(v, 10))
}

// Errorf sets a formatted error message as the result and returns Error.
// This is the single channel every failure is reported through.
func (in *Interp) Errorf(format string, args ...any) Status {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > in.limits.MaxString {
		msg = msg[:in.limits.MaxString]
	}
	in.result = msg
	return Error
}

// Fail reports err through the result channel and returns Error.
func (in *Interp) Fail(err error) Status {
	return in.Errorf("%s", err.Error())
}

// FailArity reports the conventional arity error for argv, of the shape
// "expected N arguments, got M".
func (in *Interp) FailArity(expected int, argv []string) Status {
	return in.Fail(errs.ArityMismatch{
		Expected: expected, Got: len(argv), What: FormatList(argv)})
}

// Register adds a native command, replacing any existing command of the same
// name in place.
func (in *Interp) Register(name string, fn CmdFunc, priv any) error {
	if fn == nil {
		return fmt.Errorf("nil command function for %q", name)
	}
	return in.install(name, nativeCmd{fn, priv})
}

// RegisterProc defines a procedure. The parameter list is parsed with the
// list grammar; a final parameter named "args" captures any trailing
// arguments as a list.
func (in *Interp) RegisterProc(name, params, body string) error {
	p, variadic, err := parseParams(params)
	if err != nil {
		return err
	}
	return in.install(name, procCmd{params: p, variadic: variadic, body: body, scope: -1})
}

func parseParams(params string) ([]string, string, error) {
	p, err := ParseList(params)
	if err != nil {
		return nil, "", fmt.Errorf("invalid parameter list: %w", err)
	}
	variadic := ""
	if n := len(p); n > 0 && p[n-1] == "args" {
		variadic = "args"
		p = p[:n-1]
	}
	for _, name := range p {
		if name == "" {
			return nil, "", fmt.Errorf("empty parameter name")
		}
	}
	return p, variadic, nil
}

func (in *Interp) install(name string, body cmdBody) error {
	if i, ok := in.index[name]; ok {
		in.cmds[i].body = body
		return nil
	}
	in.index[name] = len(in.cmds)
	in.cmds = append(in.cmds, command{name, body})
	return nil
}

// Rename changes the name of the command src to dst, keeping its position in
// the table. An empty dst deletes the command instead; later commands shift
// down one position.
func (in *Interp) Rename(src, dst string) error {
	i, ok := in.index[src]
	if !ok {
		return errs.CommandNotFound{Name: src}
	}
	if dst == "" {
		delete(in.index, src)
		in.cmds = append(in.cmds[:i], in.cmds[i+1:]...)
		for j := i; j < len(in.cmds); j++ {
			in.index[in.cmds[j].name] = j
		}
		return nil
	}
	if j, exists := in.index[dst]; exists && j != i {
		return fmt.Errorf("command already exists: %s", dst)
	}
	delete(in.index, src)
	in.cmds[i].name = dst
	in.index[dst] = i
	return nil
}

// NumCommands returns the number of registered commands.
func (in *Interp) NumCommands() int { return len(in.cmds) }

// CommandAt reports the i-th command in insertion order.
func (in *Interp) CommandAt(i int) (Cmd, bool) {
	if i < 0 || i >= len(in.cmds) {
		return Cmd{}, false
	}
	c := in.cmds[i]
	switch b := c.body.(type) {
	case procCmd:
		params := b.params
		if b.variadic != "" {
			params = append(append([]string{}, params...), b.variadic)
		}
		return Cmd{Name: c.name, Args: FormatList(params), Body: b.body}, true
	default:
		return Cmd{Name: c.name, Args: "built-in", Native: true}, true
	}
}

func (in *Interp) lookup(name string) (command, bool) {
	i, ok := in.index[name]
	if !ok {
		return command{}, false
	}
	return in.cmds[i], true
}

// ParseInt parses s as a strict decimal integer: an optional sign followed
// by one or more digits, nothing else. Partial parses and empty strings are
// errors, never silently zero.
func ParseInt(s string) (int64, error) {
	t := s
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	if len(t) == 0 {
		return 0, fmt.Errorf("expected integer, got %q", s)
	}
	for i := 0; i < len(t); i++ {
		if t[i] < '0' || t[i] > '9' {
			return 0, fmt.Errorf("expected integer, got %q", s)
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("integer out of range: %q", s)
	}
	return v, nil
}
