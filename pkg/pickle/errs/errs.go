// Package errs declares the error types reported by the interpreter. Their
// messages are the conventional, machine-greppable forms the rest of the
// system (and scripts using catch) rely on.
package errs

import "fmt"

// ArityMismatch is reported when a command is called with the wrong number
// of arguments. What usually holds the offending argument vector formatted
// as a list.
type ArityMismatch struct {
	Expected int
	Got      int
	What     string
}

func (e ArityMismatch) Error() string {
	if e.What == "" {
		return fmt.Sprintf("expected %d arguments, got %d", e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %d arguments, got %d: %s", e.Expected, e.Got, e.What)
}

// CommandNotFound is reported when argv[0] resolves to no command and no
// unknown handler is registered.
type CommandNotFound struct {
	Name string
}

func (e CommandNotFound) Error() string {
	return "command not found: " + e.Name
}

// VarNotFound is reported when substituting an undefined variable.
type VarNotFound struct {
	Name string
}

func (e VarNotFound) Error() string {
	return "no such variable: " + e.Name
}

// LimitExceeded is reported when a size limit (string length, recursion
// depth, argument count) is hit.
type LimitExceeded struct {
	What  string
	Limit int
}

func (e LimitExceeded) Error() string {
	return fmt.Sprintf("%s limit %d exceeded", e.What, e.Limit)
}

// OutOfRange is reported for index arguments outside their valid range.
type OutOfRange struct {
	What     string
	Low, Hi  int
	Actual   string
}

func (e OutOfRange) Error() string {
	return fmt.Sprintf("out of range: %s must be from %d to %d, but is %s",
		e.What, e.Low, e.Hi, e.Actual)
}
