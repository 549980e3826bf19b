// Package diag carries source positions on errors and renders them for
// humans. The shell and the language server both consume it: the former
// through ShowError, the latter by reading the fields directly.
package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Error is an error annotated with the source it came from.
type Error struct {
	Type    string // kind of error, e.g. "parse error"
	Message string
	Name    string // name of the source, usually a file path
	Line    int    // 1-based line number, 0 when unknown
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: %s:%d: %s", e.Type, e.Name, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Type, e.Name, e.Message)
}

// Show returns a representation for terminal display, with the position
// header highlighted.
func (e *Error) Show() string {
	pos := e.Name
	if e.Line > 0 {
		pos = fmt.Sprintf("%s:%d", e.Name, e.Line)
	}
	return fmt.Sprintf("%s: %s: %s", highlight(e.Type), pos, e.Message)
}

// Shower wraps the Show function.
type Shower interface {
	Show() string
}

var highlight = color.New(color.FgRed, color.Bold).Sprint

// ShowError shows an error to w, using the Show method if the error
// implements Shower and a highlighted plain message otherwise.
func ShowError(w io.Writer, err error) {
	if shower, ok := err.(Shower); ok {
		fmt.Fprintln(w, shower.Show())
	} else {
		Complain(w, err.Error())
	}
}

// Complain prints a highlighted message to w, adding a trailing newline.
func Complain(w io.Writer, msg string) {
	fmt.Fprintln(w, highlight(msg))
}

// Complainf is like Complain, but accepts a format string and arguments.
func Complainf(w io.Writer, format string, args ...any) {
	Complain(w, fmt.Sprintf(format, args...))
}
