// Package pickletest provides a framework for testing pickle script.
//
// Test cases are constructed with the That function followed by method
// calls that state what the script should do:
//
//	Test(t,
//	    That("set a 2; puts $a").Prints("2\n"),
//	    That("+ 1 2").ResultIs("3"))
//
// Each case runs on a fresh interpreter with the standard command set
// (minus the OS module) registered, with puts and gets wired to in-memory
// buffers.
package pickletest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/pickle-lang/pickle/pkg/mods/io"
	"github.com/pickle-lang/pickle/pkg/mods/lang"
	"github.com/pickle-lang/pickle/pkg/mods/list"
	"github.com/pickle-lang/pickle/pkg/mods/math"
	"github.com/pickle-lang/pickle/pkg/mods/re"
	"github.com/pickle-lang/pickle/pkg/mods/str"
	"github.com/pickle-lang/pickle/pkg/pickle"
)

// Case is a test case that can be used in Test.
type Case struct {
	code  string
	input string
	setup func(in *pickle.Interp)
	want  result
}

type result struct {
	status      pickle.Status
	checkResult bool
	result      string
	checkOutput bool
	output      string
}

// That returns a new Case with the given source code. Multiple arguments
// are joined with newlines.
func That(lines ...string) Case {
	return Case{code: strings.Join(lines, "\n")}
}

// WithSetup returns an altered Case that runs f on the interpreter before
// the code is evaluated.
func (c Case) WithSetup(f func(in *pickle.Interp)) Case {
	c.setup = f
	return c
}

// WithInput returns an altered Case whose gets command reads from s.
func (c Case) WithInput(s string) Case {
	c.input = s
	return c
}

// ResultIs returns an altered Case that requires the script to finish with
// status OK and the given result value.
func (c Case) ResultIs(s string) Case {
	c.want.checkResult = true
	c.want.result = s
	return c
}

// Prints returns an altered Case that requires the script to finish with
// status OK and the given accumulated puts output.
func (c Case) Prints(s string) Case {
	c.want.checkOutput = true
	c.want.output = s
	return c
}

// ErrorsWith returns an altered Case that requires the script to fail with
// the given message as its result.
func (c Case) ErrorsWith(msg string) Case {
	c.want.status = pickle.Error
	c.want.checkResult = true
	c.want.result = msg
	return c
}

// Test runs test cases against fresh interpreters.
func Test(t *testing.T, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.code, func(t *testing.T) {
			t.Helper()
			var out strings.Builder
			in := pickle.New(nil)
			for _, register := range []func(*pickle.Interp) error{
				lang.Register, math.Register, str.Register, list.Register, re.Register,
			} {
				if err := register(in); err != nil {
					t.Fatal(err)
				}
			}
			if err := io.Register(in, strings.NewReader(c.input), &out); err != nil {
				t.Fatal(err)
			}
			if c.setup != nil {
				c.setup(in)
			}

			status := in.Eval(c.code)
			if status != c.want.status {
				t.Errorf("script returned status %v, want %v (result: %q)",
					status, c.want.status, in.Result())
			}
			if c.want.checkResult {
				if diff := cmp.Diff(c.want.result, in.Result()); diff != "" {
					t.Errorf("result (-want +got):\n%s", diff)
				}
			}
			if c.want.checkOutput {
				if diff := cmp.Diff(c.want.output, out.String()); diff != "" {
					t.Errorf("output (-want +got):\n%s", diff)
				}
			}
		})
	}
}
