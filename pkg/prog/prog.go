// Package prog provides the entry point to pickle. It parses the command
// line, sets up the basic environment and hands over to the first
// applicable subprogram, normally the shell.
package prog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/pickle-lang/pickle/pkg/logutil"
)

// Flags keeps the parsed command-line options.
type Flags struct {
	Help           bool   // -h: show usage and quit
	SuppressPrompt bool   // -s: start the REPL without a prompt
	Code           string // -e: code to run instead of reading a script
	CodeInArg      bool
	Log            string // -l: file to write the debug log to
	DB             string // -d: path to the history database
	NoRc           bool   // -n: skip the rc file
	RC             string // -r: path to the rc file
	LSP            bool   // -L: run the language server instead of the shell
}

const optSpec = "hse:l:d:nr:L"

func usage(out io.Writer) {
	fmt.Fprintln(out, "Usage: pickle [-hsnL] [-e code] [-l file] [-d file] [-r file] [script ...]")
	fmt.Fprintln(out, "Supported options:")
	fmt.Fprintln(out, "  -h        show this usage help and quit")
	fmt.Fprintln(out, "  -s        suppress prompt printing")
	fmt.Fprintln(out, "  -e code   evaluate code instead of reading a script")
	fmt.Fprintln(out, "  -l file   write the debug log to file")
	fmt.Fprintln(out, "  -d file   use file as the command history database")
	fmt.Fprintln(out, "  -n        do not read the rc file")
	fmt.Fprintln(out, "  -r file   use file as the rc file")
	fmt.Fprintln(out, "  -L        run the language server on stdin/stdout")
}

// Run parses the command line and runs the first applicable subprogram,
// returning the exit status of the process. fds are the standard files of
// the process and args includes the program name.
func Run(fds [3]*os.File, args []string, p Program) int {
	f := &Flags{}
	opts, optind, err := getopt.Getopts(args, optSpec)
	if err != nil {
		fmt.Fprintln(fds[2], err)
		usage(fds[2])
		return 2
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'h':
			f.Help = true
		case 's':
			f.SuppressPrompt = true
		case 'e':
			f.Code = opt.Value
			f.CodeInArg = true
		case 'l':
			f.Log = opt.Value
		case 'd':
			f.DB = opt.Value
		case 'n':
			f.NoRc = true
		case 'r':
			f.RC = opt.Value
		case 'L':
			f.LSP = true
		}
	}

	if f.Log != "" {
		if err := logutil.SetOutputFile(f.Log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}

	if f.Help {
		usage(fds[1])
		return 0
	}

	err = p.Run(fds, f, args[optind:])
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	switch err := err.(type) {
	case badUsageError:
		usage(fds[2])
	case exitError:
		return err.exit
	}
	return 2
}

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram with the standard files, parsed flags and
	// remaining arguments.
	Run(fds [3]*os.File, f *Flags, args []string) error
}

// Composite returns a Program that tries each of the given programs,
// stopping at the first one that does not return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	return ErrNotSuitable
}

// ErrNotSuitable may be returned by Program.Run to signify that the next
// program in a Composite should run instead.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print the message and the usage information
// and exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It
// causes the main function to exit with the given code without printing any
// error message. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }
