// Package list registers the list command family over the engine's list
// grammar. Commands that build lists always produce canonical lists, so
// their output parses back to exactly the same elements.
package list

import (
	"strings"

	"github.com/pickle-lang/pickle/pkg/glob"
	"github.com/pickle-lang/pickle/pkg/pickle"
)

// Register installs the list commands into an interpreter.
func Register(in *pickle.Interp) error {
	cmds := map[string]pickle.CmdFunc{
		"list":     cmdList,
		"llength":  cmdLlength,
		"lindex":   cmdLindex,
		"lappend":  cmdLappend,
		"linsert":  cmdLinsert,
		"lreplace": cmdLreplace,
		"lrange":   cmdLrange,
		"lsearch":  cmdLsearch,
		"lsort":    cmdLsort,
		"concat":   cmdConcat,
	}
	for name, fn := range cmds {
		if err := in.Register(name, fn, nil); err != nil {
			return err
		}
	}
	return nil
}

func cmdList(in *pickle.Interp, argv []string, _ any) pickle.Status {
	return in.SetResult(pickle.FormatList(argv[1:]))
}

func cmdLlength(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 2 {
		return in.FailArity(2, argv)
	}
	elems, err := pickle.ParseList(argv[1])
	if err != nil {
		return in.Fail(err)
	}
	return in.SetResultInt(int64(len(elems)))
}

// cmdLindex returns the i-th element, or the empty string when the index
// is out of range.
func cmdLindex(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 3 {
		return in.FailArity(3, argv)
	}
	elems, err := pickle.ParseList(argv[1])
	if err != nil {
		return in.Fail(err)
	}
	i, err := pickle.ParseInt(argv[2])
	if err != nil {
		return in.Fail(err)
	}
	if i < 0 || int(i) >= len(elems) {
		return in.SetResult("")
	}
	return in.SetResult(elems[i])
}

func cmdLappend(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) < 2 {
		return in.FailArity(2, argv)
	}
	cur, err := in.Var(argv[1])
	if err != nil {
		// lappend creates the variable when missing.
		cur = ""
	}
	elems, err := pickle.ParseList(cur)
	if err != nil {
		return in.Fail(err)
	}
	elems = append(elems, argv[2:]...)
	out := pickle.FormatList(elems)
	if err := in.SetVar(argv[1], out); err != nil {
		return in.Fail(err)
	}
	return in.SetResult(out)
}

// Insertion index clamping: an index at or below zero prepends, one at or
// beyond the length appends.
func cmdLinsert(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) < 3 {
		return in.FailArity(4, argv)
	}
	elems, err := pickle.ParseList(argv[1])
	if err != nil {
		return in.Fail(err)
	}
	i, err := pickle.ParseInt(argv[2])
	if err != nil {
		return in.Fail(err)
	}
	at := clamp(int(i), 0, len(elems))
	out := make([]string, 0, len(elems)+len(argv)-3)
	out = append(out, elems[:at]...)
	out = append(out, argv[3:]...)
	out = append(out, elems[at:]...)
	return in.SetResult(pickle.FormatList(out))
}

// lreplace clamps first to [0, len] and last to [first-1, len-1]; when
// last ends up below first nothing is removed and the call is a pure
// insertion at first.
func cmdLreplace(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) < 4 {
		return in.FailArity(4, argv)
	}
	elems, err := pickle.ParseList(argv[1])
	if err != nil {
		return in.Fail(err)
	}
	first, err := pickle.ParseInt(argv[2])
	if err != nil {
		return in.Fail(err)
	}
	last, err := pickle.ParseInt(argv[3])
	if err != nil {
		return in.Fail(err)
	}
	lo := clamp(int(first), 0, len(elems))
	hi := clamp(int(last), lo-1, len(elems)-1)
	out := make([]string, 0, len(elems))
	out = append(out, elems[:lo]...)
	out = append(out, argv[4:]...)
	if hi+1 < len(elems) {
		out = append(out, elems[hi+1:]...)
	}
	return in.SetResult(pickle.FormatList(out))
}

func cmdLrange(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 4 {
		return in.FailArity(4, argv)
	}
	elems, err := pickle.ParseList(argv[1])
	if err != nil {
		return in.Fail(err)
	}
	first, err := pickle.ParseInt(argv[2])
	if err != nil {
		return in.Fail(err)
	}
	last, err := pickle.ParseInt(argv[3])
	if err != nil {
		return in.Fail(err)
	}
	lo := clamp(int(first), 0, len(elems))
	hi := clamp(int(last)+1, lo, len(elems))
	return in.SetResult(pickle.FormatList(elems[lo:hi]))
}

// cmdLsearch finds the first element matching the pattern, by glob match
// unless -exact is given, and returns its index or -1.
func cmdLsearch(in *pickle.Interp, argv []string, _ any) pickle.Status {
	exact := false
	args := argv[1:]
	for len(args) > 0 && strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "-exact":
			exact = true
		case "-glob":
			exact = false
		default:
			return in.Errorf("unknown lsearch option: %s", args[0])
		}
		args = args[1:]
	}
	if len(args) != 2 {
		return in.FailArity(3, argv)
	}
	elems, err := pickle.ParseList(args[0])
	if err != nil {
		return in.Fail(err)
	}
	for i, e := range elems {
		if exact && e == args[1] || !exact && glob.Match(args[1], e) {
			return in.SetResultInt(int64(i))
		}
	}
	return in.SetResultInt(-1)
}

// cmdLsort sorts with a stable insertion sort, comparing bytewise by
// default or numerically under -integer, ascending unless -decreasing.
func cmdLsort(in *pickle.Interp, argv []string, _ any) pickle.Status {
	numeric, decreasing := false, false
	args := argv[1:]
	for len(args) > 0 && strings.HasPrefix(args[0], "-") {
		switch args[0] {
		case "-integer":
			numeric = true
		case "-ascii":
			numeric = false
		case "-increasing":
			decreasing = false
		case "-decreasing":
			decreasing = true
		default:
			return in.Errorf("unknown lsort option: %s", args[0])
		}
		args = args[1:]
	}
	if len(args) != 1 {
		return in.FailArity(2, argv)
	}
	elems, err := pickle.ParseList(args[0])
	if err != nil {
		return in.Fail(err)
	}

	less := func(a, b string) (bool, error) { return a < b, nil }
	if numeric {
		less = func(a, b string) (bool, error) {
			x, err := pickle.ParseInt(a)
			if err != nil {
				return false, err
			}
			y, err := pickle.ParseInt(b)
			if err != nil {
				return false, err
			}
			return x < y, nil
		}
	}

	// Insertion sort keeps equal elements in their original order.
	for i := 1; i < len(elems); i++ {
		for j := i; j > 0; j-- {
			before, err := less(elems[j], elems[j-1])
			if err != nil {
				return in.Fail(err)
			}
			if decreasing {
				before, err = less(elems[j-1], elems[j])
				if err != nil {
					return in.Fail(err)
				}
			}
			if !before {
				break
			}
			elems[j], elems[j-1] = elems[j-1], elems[j]
		}
	}
	return in.SetResult(pickle.FormatList(elems))
}

// cmdConcat joins its arguments, each treated as a list, into one list.
func cmdConcat(in *pickle.Interp, argv []string, _ any) pickle.Status {
	var out []string
	for _, a := range argv[1:] {
		elems, err := pickle.ParseList(a)
		if err != nil {
			return in.Fail(err)
		}
		out = append(out, elems...)
	}
	return in.SetResult(pickle.FormatList(out))
}

func clamp(i, lo, hi int) int {
	if i < lo {
		return lo
	}
	if i > hi {
		return hi
	}
	return i
}
