package shell

import (
	"fmt"
	"os"

	"github.com/pickle-lang/pickle/pkg/pickle"
)

// runScripts evaluates each named file in order, stopping at the first
// failure. The argv variable has already been set from the full argument
// list.
func runScripts(in *pickle.Interp, fds [3]*os.File, files []string) int {
	for _, name := range files {
		code, err := os.ReadFile(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
		logger.Println("running script", name)
		if in.Eval(string(code)) == pickle.Error {
			showError(fds[2], name, in)
			return 1
		}
	}
	return 0
}
