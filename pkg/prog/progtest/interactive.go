//go:build !windows

package progtest

import (
	"bytes"
	"io"
	"os"

	"github.com/creack/pty"

	"github.com/pickle-lang/pickle/pkg/prog"
)

// RunInteractive runs p with its standard files connected to a pty, so the
// program sees a terminal. input is fed to the terminal; it should end with
// an EOT byte to make the program exit. Returns the exit status and
// everything written to the terminal.
func RunInteractive(p prog.Program, input string, args ...string) (exit int, output string) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		panic(err)
	}
	go ptmx.WriteString(input)

	var out bytes.Buffer
	done := make(chan struct{})
	go func() {
		// Terminates with EIO once the tty side is closed.
		io.Copy(&out, ptmx)
		close(done)
	}()

	exit = prog.Run([3]*os.File{tty, tty, tty},
		append([]string{"pickle"}, args...), p)
	tty.Close()
	<-done
	ptmx.Close()
	return exit, out.String()
}
