// Package io registers puts and gets against host-supplied streams, so
// tests and embedders choose where script output lands.
package io

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pickle-lang/pickle/pkg/pickle"
)

// Register installs puts and gets into an interpreter, writing to w and
// reading lines from r. Either may be nil to omit the corresponding
// command.
func Register(in *pickle.Interp, r io.Reader, w io.Writer) error {
	if w != nil {
		if err := in.Register("puts", cmdPuts, w); err != nil {
			return err
		}
	}
	if r != nil {
		if err := in.Register("gets", cmdGets, bufio.NewReader(r)); err != nil {
			return err
		}
	}
	return nil
}

func cmdPuts(in *pickle.Interp, argv []string, priv any) pickle.Status {
	w := priv.(io.Writer)
	newline := "\n"
	args := argv[1:]
	if len(args) > 0 && args[0] == "-nonewline" {
		newline = ""
		args = args[1:]
	}
	if len(args) != 1 {
		return in.FailArity(2, argv)
	}
	if _, err := fmt.Fprint(w, args[0], newline); err != nil {
		return in.Fail(err)
	}
	return in.SetResult("")
}

// cmdGets reads one line, without its newline. At end of input the result
// is "EOF" and the status is Break, so a read loop terminates naturally.
func cmdGets(in *pickle.Interp, argv []string, priv any) pickle.Status {
	if len(argv) != 1 {
		return in.FailArity(1, argv)
	}
	r := priv.(*bufio.Reader)
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		in.SetResult("EOF")
		return pickle.Break
	}
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	return in.SetResult(line)
}
