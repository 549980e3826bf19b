package shell

import (
	"os"

	"github.com/pickle-lang/pickle/pkg/diag"
	iomod "github.com/pickle-lang/pickle/pkg/mods/io"
	"github.com/pickle-lang/pickle/pkg/mods/lang"
	"github.com/pickle-lang/pickle/pkg/mods/list"
	"github.com/pickle-lang/pickle/pkg/mods/math"
	osmod "github.com/pickle-lang/pickle/pkg/mods/os"
	"github.com/pickle-lang/pickle/pkg/mods/re"
	"github.com/pickle-lang/pickle/pkg/mods/str"
	"github.com/pickle-lang/pickle/pkg/must"
	"github.com/pickle-lang/pickle/pkg/pickle"
)

// newInterp builds the shell's interpreter: the full standard command set,
// puts and gets wired to the shell's own files, and the conventional
// prompt and argv variables.
func newInterp(fds [3]*os.File, cfg *config, args []string) *pickle.Interp {
	in := pickle.New(cfg.limits())
	for _, register := range []func(*pickle.Interp) error{
		lang.Register, math.Register, str.Register, list.Register,
		re.Register, osmod.Register,
	} {
		must.OK(register(in))
	}
	must.OK(iomod.Register(in, fds[0], fds[1]))

	must.OK(in.SetVar("prompt", cfg.Prompt))
	must.OK(in.SetVar("argv", pickle.FormatList(args)))
	return in
}

// showError renders the interpreter's error result, with the line the
// evaluator stopped on.
func showError(w *os.File, name string, in *pickle.Interp) {
	diag.ShowError(w, &diag.Error{
		Type:    "error",
		Message: in.Result(),
		Name:    name,
		Line:    in.Line(),
	})
}
