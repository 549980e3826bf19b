// Package math registers integer arithmetic and comparison commands. All
// operands are strict decimal integers, parsed and reformatted on every
// use, so "+ 007 0" yields the canonical "7".
package math

import (
	"github.com/pickle-lang/pickle/pkg/pickle"
)

// Register installs the arithmetic commands into an interpreter.
func Register(in *pickle.Interp) error {
	binary := map[string]func(a, b int64) (int64, error){
		"+":   func(a, b int64) (int64, error) { return a + b, nil },
		"-":   func(a, b int64) (int64, error) { return a - b, nil },
		"*":   func(a, b int64) (int64, error) { return a * b, nil },
		"/":   div,
		"mod": mod,
		"min": func(a, b int64) (int64, error) { return pick(a < b, a, b), nil },
		"max": func(a, b int64) (int64, error) { return pick(a > b, a, b), nil },
	}
	for name, op := range binary {
		if err := in.Register(name, binaryCmd(op), nil); err != nil {
			return err
		}
	}

	compare := map[string]func(a, b int64) bool{
		"<":  func(a, b int64) bool { return a < b },
		"<=": func(a, b int64) bool { return a <= b },
		">":  func(a, b int64) bool { return a > b },
		">=": func(a, b int64) bool { return a >= b },
		"==": func(a, b int64) bool { return a == b },
		"!=": func(a, b int64) bool { return a != b },
	}
	for name, op := range compare {
		if err := in.Register(name, compareCmd(op), nil); err != nil {
			return err
		}
	}

	return in.Register("abs", cmdAbs, nil)
}

func pick(cond bool, a, b int64) int64 {
	if cond {
		return a
	}
	return b
}

func div(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a / b, nil
}

func mod(a, b int64) (int64, error) {
	if b == 0 {
		return 0, errDivideByZero
	}
	return a % b, nil
}

type constError string

func (e constError) Error() string { return string(e) }

const errDivideByZero = constError("divide by zero")

func operands(in *pickle.Interp, argv []string) (int64, int64, pickle.Status) {
	if len(argv) != 3 {
		return 0, 0, in.FailArity(3, argv)
	}
	a, err := pickle.ParseInt(argv[1])
	if err != nil {
		return 0, 0, in.Fail(err)
	}
	b, err := pickle.ParseInt(argv[2])
	if err != nil {
		return 0, 0, in.Fail(err)
	}
	return a, b, pickle.OK
}

func binaryCmd(op func(a, b int64) (int64, error)) pickle.CmdFunc {
	return func(in *pickle.Interp, argv []string, _ any) pickle.Status {
		a, b, s := operands(in, argv)
		if s != pickle.OK {
			return s
		}
		v, err := op(a, b)
		if err != nil {
			return in.Fail(err)
		}
		return in.SetResultInt(v)
	}
}

func compareCmd(op func(a, b int64) bool) pickle.CmdFunc {
	return func(in *pickle.Interp, argv []string, _ any) pickle.Status {
		a, b, s := operands(in, argv)
		if s != pickle.OK {
			return s
		}
		if op(a, b) {
			return in.SetResult("1")
		}
		return in.SetResult("0")
	}
}

func cmdAbs(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 2 {
		return in.FailArity(2, argv)
	}
	v, err := pickle.ParseInt(argv[1])
	if err != nil {
		return in.Fail(err)
	}
	if v < 0 {
		v = -v
	}
	return in.SetResultInt(v)
}
