package pickle

import (
	"fmt"
	"strconv"

	"github.com/pickle-lang/pickle/pkg/pickle/errs"
)

// frame is one lexical scope. Frames live in the interpreter's frame stack
// and refer to each other by index, never by pointer, so that alias records
// stay valid as the stack grows and shrinks underneath them.
type frame struct {
	parent int // index of the parent frame; -1 for the root
	vars   map[string]variable
}

// variable is either a value or an alias record created by upvar. An alias
// redirects reads and writes to target's binding of targetName.
type variable struct {
	alias      bool
	val        string
	target     int
	targetName string
}

func newFrame(parent int) frame {
	return frame{parent: parent, vars: make(map[string]variable)}
}

// pushFrame appends a frame whose parent is the currently active frame and
// makes it active. The returned token restores the previous state and must
// be handed to popFrame on every exit path.
func (in *Interp) pushFrame() (handle, prevActive int) {
	h := len(in.frames)
	in.frames = append(in.frames, newFrame(in.active))
	prev := in.active
	in.active = h
	return h, prev
}

func (in *Interp) popFrame(handle, prevActive int) {
	in.frames = in.frames[:handle]
	in.active = prevActive
}

// resolveVar follows alias records from the active frame to the frame and
// name that actually hold the binding. Aliases created by repeated upvar
// calls may chain; a cycle is reported rather than looped on.
func (in *Interp) resolveVar(name string) (int, string, bool) {
	f, n := in.active, name
	for hops := 0; ; hops++ {
		v, ok := in.frames[f].vars[n]
		if !ok {
			return f, n, false
		}
		if !v.alias {
			return f, n, true
		}
		if hops > len(in.frames) {
			return f, n, false
		}
		f, n = v.target, v.targetName
	}
}

// Var returns the value of name resolved against the active frame.
func (in *Interp) Var(name string) (string, error) {
	f, n, ok := in.resolveVar(name)
	if !ok {
		return "", errs.VarNotFound{Name: name}
	}
	return in.frames[f].vars[n].val, nil
}

// VarInt returns the value of name parsed as a strict integer.
func (in *Interp) VarInt(name string) (int64, error) {
	s, err := in.Var(name)
	if err != nil {
		return 0, err
	}
	return ParseInt(s)
}

// SetVar binds name to val in the active frame, writing through any alias.
func (in *Interp) SetVar(name, val string) error {
	if len(val) > in.limits.MaxString {
		return errs.LimitExceeded{What: "string length", Limit: in.limits.MaxString}
	}
	f, n, ok := in.resolveVar(name)
	if !ok {
		f, n = in.active, name
	}
	in.frames[f].vars[n] = variable{val: val}
	return nil
}

// SetVarInt binds name to the canonical decimal form of v.
func (in *Interp) SetVarInt(name string, v int64) error {
	return in.SetVar(name, strconv.FormatInt(v, 10))
}

// UnsetVar removes the binding of name (value or alias record) from the
// current frame only; an aliased target keeps its own binding.
func (in *Interp) UnsetVar(name string) error {
	if _, ok := in.frames[in.active].vars[name]; !ok {
		return errs.VarNotFound{Name: name}
	}
	delete(in.frames[in.active].vars, name)
	return nil
}

// frameAt resolves a level spec against the active frame: a decimal N walks
// N parent links, and the spelling "#0" jumps to the root frame regardless
// of depth.
func (in *Interp) frameAt(level string) (int, error) {
	if level == "#0" {
		return 0, nil
	}
	n, err := ParseInt(level)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid level %q", level)
	}
	f := in.active
	for i := int64(0); i < n; i++ {
		if in.frames[f].parent < 0 {
			return 0, errs.OutOfRange{What: "level", Low: 0, Hi: int(i), Actual: level}
		}
		f = in.frames[f].parent
	}
	return f, nil
}

// LinkVar implements upvar: it creates, in the current frame, a binding for
// mine that redirects to other in the frame level links up. Re-linking an
// existing alias rebinds it.
func (in *Interp) LinkVar(level, other, mine string) error {
	target, err := in.frameAt(level)
	if err != nil {
		return err
	}
	if target == in.active && other == mine {
		return fmt.Errorf("cannot alias %q to itself", mine)
	}
	in.frames[in.active].vars[mine] = variable{alias: true, target: target, targetName: other}
	return nil
}

// EvalAtLevel implements uplevel: it evaluates script with the active frame
// temporarily repointed to the frame level links up, restoring the original
// active frame on every exit path.
func (in *Interp) EvalAtLevel(level, script string) Status {
	target, err := in.frameAt(level)
	if err != nil {
		return in.Fail(err)
	}
	saved := in.active
	in.active = target
	s := in.evalScript(script)
	in.active = saved
	return s
}

// GlobalLevel reports how many frames lie below the active one; the root
// frame is at level 0.
func (in *Interp) GlobalLevel() int {
	n := 0
	for f := in.active; in.frames[f].parent >= 0; f = in.frames[f].parent {
		n++
	}
	return n
}
