//go:build !windows

package shell_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pickle-lang/pickle/pkg/must"
	"github.com/pickle-lang/pickle/pkg/prog/progtest"
	"github.com/pickle-lang/pickle/pkg/shell"
)

// Runs the shell against a real pty, exercising the line editor path.
func TestInteract_TTY(t *testing.T) {
	dir := t.TempDir()
	rc := filepath.Join(dir, "rc.yaml")
	must.WriteFile(rc, strings.Join([]string{
		"history: " + filepath.Join(dir, "history"),
		"db: " + filepath.Join(dir, "history.bolt"),
		"",
	}, "\n"))

	exit, output := progtest.RunInteractive(
		shell.Program{}, "* 21 2\r\x04", "-r", rc)
	if exit != 0 {
		t.Errorf("exit = %d, want 0", exit)
	}
	// The pty echoes the input back, so just look for the evaluation echo
	// and the prompt.
	if !strings.Contains(output, "[0] 42") {
		t.Errorf("output = %q, does not contain %q", output, "[0] 42")
	}
	if !strings.Contains(output, "pickle> ") {
		t.Errorf("output = %q, does not contain the prompt", output)
	}
}
