// Package shell is the terminal interface of pickle: it runs script files,
// code given with -e, and an interactive read-eval-print loop.
package shell

import (
	"fmt"
	"os"

	"github.com/pickle-lang/pickle/pkg/logutil"
	"github.com/pickle-lang/pickle/pkg/pickle"
	"github.com/pickle-lang/pickle/pkg/prog"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram. It accepts any command line, so it must
// come last in a Composite.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	cfg := readConfig(fds[2], f)
	in := newInterp(fds, cfg, args)

	if f.CodeInArg {
		return prog.Exit(evalCode(in, fds, "code from -e", f.Code))
	}
	if len(args) > 0 {
		return prog.Exit(runScripts(in, fds, args))
	}

	interact(in, fds, cfg)
	return nil
}

// evalCode evaluates one unit of code, showing errors on fds[2], and
// returns the exit status for it.
func evalCode(in *pickle.Interp, fds [3]*os.File, name, code string) int {
	if in.Eval(code) == pickle.Error {
		showError(fds[2], name, in)
		return 1
	}
	if res := in.Result(); res != "" {
		fmt.Fprintln(fds[1], res)
	}
	return 0
}
