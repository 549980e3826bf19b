// Package progtest provides a fixture for testing subprograms end to end,
// with the standard files connected to in-memory buffers.
package progtest

import (
	"os"

	"github.com/pickle-lang/pickle/pkg/must"
	"github.com/pickle-lang/pickle/pkg/prog"
)

// Run runs p through the main entry point with the given stdin content and
// arguments (excluding the program name), capturing what it writes to
// stdout and stderr.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	must.OK1(w0.WriteString(stdin))
	w0.Close()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()

	exit = prog.Run([3]*os.File{r0, w1, w2}, append([]string{"pickle"}, args...), p)

	w1.Close()
	w2.Close()
	r0.Close()
	stdout = string(must.ReadAllAndClose(r1))
	stderr = string(must.ReadAllAndClose(r2))
	return exit, stdout, stderr
}
