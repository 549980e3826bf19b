// Package str registers the string command family, plus split and join.
// All operations are byte-oriented.
package str

import (
	"strings"

	"github.com/pickle-lang/pickle/pkg/glob"
	"github.com/pickle-lang/pickle/pkg/pickle"
)

// Register installs the string commands into an interpreter.
func Register(in *pickle.Interp) error {
	if err := in.Register("string", cmdString, nil); err != nil {
		return err
	}
	if err := in.Register("split", cmdSplit, nil); err != nil {
		return err
	}
	return in.Register("join", cmdJoin, nil)
}

func cmdString(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) < 3 {
		return in.FailArity(3, argv)
	}
	sub, s := argv[1], argv[2]
	rest := argv[3:]
	switch sub {
	case "length":
		return in.SetResultInt(int64(len(s)))
	case "index":
		if len(rest) != 1 {
			return in.FailArity(4, argv)
		}
		i, err := pickle.ParseInt(rest[0])
		if err != nil {
			return in.Fail(err)
		}
		if s == "" {
			return in.SetResult("")
		}
		return in.SetResult(string(s[clamp(int(i), 0, len(s)-1)]))
	case "range":
		if len(rest) != 2 {
			return in.FailArity(5, argv)
		}
		first, err := pickle.ParseInt(rest[0])
		if err != nil {
			return in.Fail(err)
		}
		last, err := pickle.ParseInt(rest[1])
		if err != nil {
			return in.Fail(err)
		}
		lo := clamp(int(first), 0, len(s))
		hi := clamp(int(last)+1, lo, len(s))
		return in.SetResult(s[lo:hi])
	case "match":
		if len(rest) != 1 {
			return in.FailArity(4, argv)
		}
		return boolean(in, glob.Match(s, rest[0]))
	case "trim", "trimleft", "trimright":
		cutset := " \t\n\r"
		if len(rest) == 1 {
			cutset = rest[0]
		} else if len(rest) > 1 {
			return in.FailArity(4, argv)
		}
		switch sub {
		case "trim":
			return in.SetResult(strings.Trim(s, cutset))
		case "trimleft":
			return in.SetResult(strings.TrimLeft(s, cutset))
		default:
			return in.SetResult(strings.TrimRight(s, cutset))
		}
	case "tolower":
		return in.SetResult(strings.ToLower(s))
	case "toupper":
		return in.SetResult(strings.ToUpper(s))
	case "reverse":
		b := []byte(s)
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
		return in.SetResult(string(b))
	case "repeat":
		if len(rest) != 1 {
			return in.FailArity(4, argv)
		}
		n, err := pickle.ParseInt(rest[0])
		if err != nil {
			return in.Fail(err)
		}
		if n < 0 {
			n = 0
		}
		if int(n)*len(s) > in.Limits().MaxString {
			return in.Errorf("string length limit %d exceeded", in.Limits().MaxString)
		}
		return in.SetResult(strings.Repeat(s, int(n)))
	case "first":
		if len(rest) != 1 {
			return in.FailArity(4, argv)
		}
		return in.SetResultInt(int64(strings.Index(rest[0], s)))
	case "last":
		if len(rest) != 1 {
			return in.FailArity(4, argv)
		}
		return in.SetResultInt(int64(strings.LastIndex(rest[0], s)))
	case "compare":
		if len(rest) != 1 {
			return in.FailArity(4, argv)
		}
		return in.SetResultInt(int64(strings.Compare(s, rest[0])))
	case "equal":
		if len(rest) != 1 {
			return in.FailArity(4, argv)
		}
		return boolean(in, s == rest[0])
	}
	return in.Errorf("unknown string subcommand: %s", sub)
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

func boolean(in *pickle.Interp, b bool) pickle.Status {
	if b {
		return in.SetResult("1")
	}
	return in.SetResult("0")
}

// cmdSplit splits a string on every byte of the separator set and returns
// the fields as a canonical list. With no separator argument the string is
// split on whitespace and runs of separators yield no empty fields; an
// explicit separator set preserves empty fields, and an empty separator
// set splits into individual bytes.
func cmdSplit(in *pickle.Interp, argv []string, _ any) pickle.Status {
	switch len(argv) {
	case 2:
		fields := strings.FieldsFunc(argv[1], func(r rune) bool {
			return r < 0x80 && strings.IndexByte(" \t\n\r", byte(r)) >= 0
		})
		return in.SetResult(pickle.FormatList(fields))
	case 3:
		seps := argv[2]
		if seps == "" {
			fields := make([]string, len(argv[1]))
			for i := 0; i < len(argv[1]); i++ {
				fields[i] = argv[1][i : i+1]
			}
			return in.SetResult(pickle.FormatList(fields))
		}
		return in.SetResult(pickle.FormatList(splitKeepEmpty(argv[1], seps)))
	}
	return in.FailArity(3, argv)
}

func splitKeepEmpty(s, seps string) []string {
	fields := []string{}
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(seps, s[i]) >= 0 {
			fields = append(fields, s[start:i])
			start = i + 1
		}
	}
	return append(fields, s[start:])
}

// cmdJoin joins the elements of a list with a separator, a single space by
// default.
func cmdJoin(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 2 && len(argv) != 3 {
		return in.FailArity(3, argv)
	}
	sep := " "
	if len(argv) == 3 {
		sep = argv[2]
	}
	elems, err := pickle.ParseList(argv[1])
	if err != nil {
		return in.Fail(err)
	}
	return in.SetResult(strings.Join(elems, sep))
}
