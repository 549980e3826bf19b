// Package os registers the host-facing commands of the command-line
// driver: process execution, environment access, time, randomness and
// script sourcing. Embedders that want a sandboxed interpreter simply do
// not register this module.
package os

import (
	"math/rand"
	"os"
	"os/exec"
	"time"

	"github.com/pickle-lang/pickle/pkg/pickle"
)

// Register installs the OS commands into an interpreter.
func Register(in *pickle.Interp) error {
	start := time.Now()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	cmds := map[string]pickle.CmdFunc{
		"getenv": cmdGetenv,
		"exit":   cmdExit,
		"source": cmdSource,
	}
	for name, fn := range cmds {
		if err := in.Register(name, fn, nil); err != nil {
			return err
		}
	}
	if err := in.Register("system", cmdSystem, nil); err != nil {
		return err
	}
	if err := in.Register("clock", cmdClock, start); err != nil {
		return err
	}
	return in.Register("random", cmdRandom, rng)
}

// cmdSystem runs a command line through the system shell and returns its
// exit code.
func cmdSystem(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 2 {
		return in.FailArity(2, argv)
	}
	cmd := exec.Command("sh", "-c", argv[1])
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	code := 0
	if exitErr, ok := err.(*exec.ExitError); ok {
		code = exitErr.ExitCode()
	} else if err != nil {
		return in.Fail(err)
	}
	return in.SetResultInt(int64(code))
}

func cmdGetenv(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 2 {
		return in.FailArity(2, argv)
	}
	return in.SetResult(os.Getenv(argv[1]))
}

func cmdExit(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) > 2 {
		return in.FailArity(2, argv)
	}
	code := int64(0)
	if len(argv) == 2 {
		c, err := pickle.ParseInt(argv[1])
		if err != nil {
			return in.Fail(err)
		}
		code = c
	}
	os.Exit(int(code))
	return pickle.OK
}

// cmdClock with no argument returns milliseconds since the interpreter
// was set up; with an argument it formats the current UTC time using a Go
// reference layout.
func cmdClock(in *pickle.Interp, argv []string, priv any) pickle.Status {
	start := priv.(time.Time)
	if len(argv) == 1 {
		return in.SetResultInt(time.Since(start).Milliseconds())
	}
	if len(argv) != 2 {
		return in.FailArity(2, argv)
	}
	return in.SetResult(time.Now().UTC().Format(argv[1]))
}

// cmdRandom returns a pseudo-random non-negative integer, or reseeds the
// generator when given an argument.
func cmdRandom(in *pickle.Interp, argv []string, priv any) pickle.Status {
	rng := priv.(*rand.Rand)
	if len(argv) == 2 {
		seed, err := pickle.ParseInt(argv[1])
		if err != nil {
			return in.Fail(err)
		}
		rng.Seed(seed)
		return in.SetResult("")
	}
	if len(argv) != 1 {
		return in.FailArity(2, argv)
	}
	return in.SetResultInt(int64(rng.Int31()))
}

// cmdSource evaluates a script file in the current frame.
func cmdSource(in *pickle.Interp, argv []string, _ any) pickle.Status {
	if len(argv) != 2 {
		return in.FailArity(2, argv)
	}
	program, err := os.ReadFile(argv[1])
	if err != nil {
		return in.Errorf("failed to open file %s: %v", argv[1], err)
	}
	return in.Eval(string(program))
}
