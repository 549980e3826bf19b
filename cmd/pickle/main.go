// Pickle is a tiny TCL-family command language. The interpreter engine
// lives in pkg/pickle; this command wraps it in a shell that runs scripts
// and an interactive prompt, plus a small language server.
package main

import (
	"os"

	"github.com/pickle-lang/pickle/pkg/lsp"
	"github.com/pickle-lang/pickle/pkg/prog"
	"github.com/pickle-lang/pickle/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(lsp.Program{}, shell.Program{})))
}
