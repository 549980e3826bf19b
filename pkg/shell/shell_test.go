package shell_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pickle-lang/pickle/pkg/prog/progtest"
	"github.com/pickle-lang/pickle/pkg/shell"
	"github.com/pickle-lang/pickle/pkg/testutil"
)

func TestScript(t *testing.T) {
	path := testutil.TempFile(t, "double.pickle", "set a 5\nputs [* $a 2]\n")

	exit, stdout, stderr := progtest.Run(shell.Program{}, "", "-n", path)
	if exit != 0 || stderr != "" {
		t.Fatalf("exit = %d, stderr = %q", exit, stderr)
	}
	if stdout != "10\n" {
		t.Errorf("stdout = %q, want %q", stdout, "10\n")
	}
}

func TestScript_Argv(t *testing.T) {
	path := testutil.TempFile(t, "args.pickle", "puts $argv\n")

	exit, stdout, stderr := progtest.Run(shell.Program{}, "", "-n", path)
	if exit != 0 || stderr != "" {
		t.Fatalf("exit = %d, stderr = %q", exit, stderr)
	}
	if stdout != path+"\n" {
		t.Errorf("stdout = %q, want %q", stdout, path+"\n")
	}
}

func TestScript_FilesRunInOrder(t *testing.T) {
	first := testutil.TempFile(t, "first.pickle", "set x one\nputs $x\n")
	second := testutil.TempFile(t, "second.pickle", "puts $x-two\n")

	// Files share one interpreter and run left to right.
	exit, stdout, stderr := progtest.Run(shell.Program{}, "", "-n", first, second)
	if exit != 0 || stderr != "" {
		t.Fatalf("exit = %d, stderr = %q", exit, stderr)
	}
	if want := "one\none-two\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	// Every trailing argument is a script file; a missing one stops the run.
	exit, stdout, stderr = progtest.Run(shell.Program{}, "", "-n", first, "/no/such/file.pickle")
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if stdout != "one\n" {
		t.Errorf("stdout = %q, want %q", stdout, "one\n")
	}
	if !strings.Contains(stderr, "cannot read script") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestScript_Error(t *testing.T) {
	path := testutil.TempFile(t, "bad.pickle", "set a 1\nnosuchcmd\n")

	exit, _, stderr := progtest.Run(shell.Program{}, "", "-n", path)
	if exit != 1 {
		t.Errorf("exit = %d, want 1", exit)
	}
	for _, want := range []string{"command not found: nosuchcmd", path, ":2"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr = %q, does not contain %q", stderr, want)
		}
	}
}

func TestScript_MissingFile(t *testing.T) {
	exit, _, stderr := progtest.Run(shell.Program{}, "", "-n", "/no/such/script.pickle")
	if exit != 2 {
		t.Errorf("exit = %d, want 2", exit)
	}
	if !strings.Contains(stderr, "cannot read script") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestCodeInArg(t *testing.T) {
	exit, stdout, _ := progtest.Run(shell.Program{}, "", "-n", "-e", "+ 40 2")
	if exit != 0 {
		t.Fatalf("exit = %d", exit)
	}
	if stdout != "42\n" {
		t.Errorf("stdout = %q, want %q", stdout, "42\n")
	}

	exit, _, stderr := progtest.Run(shell.Program{}, "", "-n", "-e", "error boom")
	if exit != 1 || !strings.Contains(stderr, "boom") {
		t.Errorf("exit = %d, stderr = %q", exit, stderr)
	}
}

func TestInteract_Pipe(t *testing.T) {
	db := filepath.Join(t.TempDir(), "hist.bolt")
	stdin := "set a 21\n* $a 2\nnosuchcmd\n"
	exit, stdout, _ := progtest.Run(shell.Program{}, stdin, "-n", "-s", "-d", db)
	if exit != 0 {
		t.Fatalf("exit = %d", exit)
	}
	for _, want := range []string{"[0] 21", "[0] 42", "[-1] command not found: nosuchcmd"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout = %q, does not contain %q", stdout, want)
		}
	}
	if _, err := os.Stat(db); err != nil {
		t.Errorf("history database was not created: %v", err)
	}
}

func TestInteract_PromptVariable(t *testing.T) {
	db := filepath.Join(t.TempDir(), "hist.bolt")
	stdin := "set prompt {ready? }\nset x 1\n"
	_, stdout, _ := progtest.Run(shell.Program{}, stdin, "-n", "-s", "-d", db)
	if !strings.Contains(stdout, "ready? ") {
		t.Errorf("stdout = %q, does not contain the new prompt", stdout)
	}
}

func TestRCFile(t *testing.T) {
	rc := testutil.TempFile(t, "rc.yaml", "prompt: 'conf> '\ndb: ''\n")

	_, stdout, _ := progtest.Run(shell.Program{}, "set x 1\n", "-r", rc)
	if !strings.Contains(stdout, "conf> ") {
		t.Errorf("stdout = %q, does not contain configured prompt", stdout)
	}
}
