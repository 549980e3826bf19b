// Package re registers the reg command over the pkg/reg matcher.
package re

import (
	"github.com/pickle-lang/pickle/pkg/pickle"
	"github.com/pickle-lang/pickle/pkg/reg"
)

// Register installs the reg command into an interpreter.
func Register(in *pickle.Interp) error {
	return in.Register("reg", cmdReg, nil)
}

// cmdReg: reg ?-nocase? ?-lazy|-greedy|-possessive? ?-start n? pattern
// string. On a match the result is the two-element list "first last" of
// byte offsets (last exclusive); on no match it is -1.
func cmdReg(in *pickle.Interp, argv []string, _ any) pickle.Status {
	opts := reg.Options{}
	args := argv[1:]
	for len(args) > 0 {
		switch args[0] {
		case "-nocase":
			opts.NoCase = true
		case "-lazy":
			opts.Policy = reg.Lazy
		case "-greedy":
			opts.Policy = reg.Greedy
		case "-possessive":
			opts.Policy = reg.Possessive
		case "-start":
			if len(args) < 2 {
				return in.Errorf("-start needs an offset")
			}
			n, err := pickle.ParseInt(args[1])
			if err != nil {
				return in.Fail(err)
			}
			opts.Start = int(n)
			args = args[1:]
		default:
			goto done
		}
		args = args[1:]
	}
done:
	if len(args) != 2 {
		return in.FailArity(3, argv)
	}
	begin, end, ok, err := reg.Find(args[0], args[1], opts)
	if err != nil {
		return in.Fail(err)
	}
	if !ok {
		return in.SetResult("-1")
	}
	return in.SetResultf("%d %d", begin, end)
}
