package lang_test

import (
	"fmt"
	"testing"

	"github.com/pickle-lang/pickle/pkg/mods/lang"
	"github.com/pickle-lang/pickle/pkg/pickle"
	. "github.com/pickle-lang/pickle/pkg/pickle/pickletest"
)

func TestSet(t *testing.T) {
	Test(t,
		That("set a 2; puts $a").Prints("2\n"),
		That("set a hello").ResultIs("hello"),
		That("set a 1; set a").ResultIs("1"),
		That("set a").ErrorsWith("no such variable: a"),
		That("set").ErrorsWith("expected 3 arguments, got 1: set"),
	)
}

func TestUnset(t *testing.T) {
	Test(t,
		That("set a 1; unset a; catch {set a} msg; set msg").
			ResultIs("no such variable: a"),
		That("unset nosuch").ErrorsWith("no such variable: nosuch"),
	)
}

func TestIncr(t *testing.T) {
	Test(t,
		That("set n 1; incr n").ResultIs("2"),
		That("set n 1; incr n 10").ResultIs("11"),
		That("set n 5; incr n -2; set n").ResultIs("3"),
		That("incr nosuch").ErrorsWith("no such variable: nosuch"),
	)
}

func TestProc(t *testing.T) {
	Test(t,
		That("proc square {x} { * $x $x }", "puts [square 5]").Prints("25\n"),
		That("proc greet {who} { return hello-$who }", "greet world").
			ResultIs("hello-world"),
		// The final parameter named args collects the remaining arguments.
		That("proc rest {a args} { set args }", "rest 1 2 3 x").
			ResultIs("2 3 x"),
		That("proc rest {a args} { set args }", "rest 1").ResultIs(""),
		That("proc one {x} { set x }", "one").
			ErrorsWith("expected 2 arguments, got 1: one"),
		That("proc one {x} { set x }", "one a b").
			ErrorsWith("expected 2 arguments, got 3: one a b"),
	)
}

func TestProcScoping(t *testing.T) {
	Test(t,
		// A procedure body runs in a fresh frame and cannot see the caller.
		That("set a outer",
			"proc peek {} { catch {set a} msg; set msg }",
			"peek").ResultIs("no such variable: a"),
		// Nor does a local assignment leak back out.
		That("set a outer",
			"proc shadow {} { set a inner }",
			"shadow; set a").ResultIs("outer"),
	)
}

func TestReturn(t *testing.T) {
	Test(t,
		That("proc f {} { return early; set never 1 }", "f").ResultIs("early"),
		That("proc f {} { return }", "f").ResultIs(""),
		// An explicit code -1 turns return into an error.
		That("proc f {} { return boom -1 }", "catch {f} msg; set msg").
			ResultIs("boom"),
		That("proc f {} { return boom -1 }", "f").ErrorsWith("boom"),
		That("return five 5").ErrorsWith("invalid return code: 5"),
		// At the top level a plain return just ends the script.
		That("return done; set never 1").ResultIs("done"),
	)
}

func TestBreakContinueOutsideLoop(t *testing.T) {
	Test(t,
		That("break").ErrorsWith(`invoked "break" outside of a loop`),
		That("continue").ErrorsWith(`invoked "continue" outside of a loop`),
		// A break inside a procedure but outside any loop unwinds the
		// calls until a loop or the top level stops it.
		That("proc f {} { break }", "f").
			ErrorsWith(`invoked "break" outside of a loop`),
	)
}

func TestIf(t *testing.T) {
	Test(t,
		That("if {== 1 1} { set r yes }").ResultIs("yes"),
		That("if {== 1 2} { set r yes }").ResultIs(""),
		That("if {== 1 2} { set r a } else { set r b }").ResultIs("b"),
		That("if {== 1 2} { set r a } elseif {== 2 2} { set r b } else { set r c }").
			ResultIs("b"),
		That("if {== 1 2} { set r a } elseif {== 2 3} { set r b } else { set r c }").
			ResultIs("c"),
		That("if {set x} { set r yes }").ErrorsWith("no such variable: x"),
		That("if {set x abc} { set r yes }").
			ErrorsWith(`expected integer, got "abc"`),
	)
}

func TestWhile(t *testing.T) {
	Test(t,
		That("set n 0",
			"while {< $n 3} { incr n; puts $n }").Prints("1\n2\n3\n"),
		That("set n 0",
			"while {< $n 10} { incr n; if {== $n 3} { break } }",
			"set n").ResultIs("3"),
		That("set n 0; set sum 0",
			"while {< $n 5} { incr n; if {== $n 3} { continue }; set sum [+ $sum $n] }",
			"set sum").ResultIs("12"),
		// break crosses a procedure call on its way to the loop.
		That("proc stop {} { break }",
			"set n 0",
			"while {< $n 9} { incr n; stop }",
			"set n").ResultIs("1"),
	)
}

func TestFor(t *testing.T) {
	Test(t,
		That("for {set i 0} {< $i 3} {incr i} { puts $i }").
			Prints("0\n1\n2\n"),
		That("set sum 0",
			"for {set i 1} {<= $i 4} {incr i} { set sum [+ $sum $i] }",
			"set sum").ResultIs("10"),
		That("for {set i 0} {< $i 9} {incr i} { if {== $i 2} { break } }",
			"set i").ResultIs("2"),
	)
}

func TestCatch(t *testing.T) {
	Test(t,
		That("catch {error boom} r; puts $r").Prints("boom\n"),
		That("catch {error boom}").ResultIs("-1"),
		That("catch {+ 1 2} r; set r").ResultIs("3"),
		That("catch {+ 1 2}").ResultIs("0"),
		// catch reports the raw signal of the caught script.
		That("catch {break}").ResultIs("2"),
		That("catch {continue}").ResultIs("3"),
		That("catch {return x}").ResultIs("1"),
		// The script carries on after a caught error.
		That("catch {nosuchcmd}; set after ok").ResultIs("ok"),
	)
}

func TestError(t *testing.T) {
	Test(t,
		That("error boom").ErrorsWith("boom"),
		That(`error "two words"`).ErrorsWith("two words"),
	)
}

func TestEval(t *testing.T) {
	Test(t,
		That("eval {+ 1 2}").ResultIs("3"),
		That("eval + 1 2").ResultIs("3"),
		That("set cmd {set x 7}; eval $cmd; set x").ResultIs("7"),
		// eval runs in the current frame, not a new one.
		That("proc f {} { eval {set local 1}; set local }", "f").ResultIs("1"),
	)
}

func TestUpvar(t *testing.T) {
	Test(t,
		That("proc bump {name} { upvar $name v; incr v }",
			"set count 10; bump count; set count").ResultIs("11"),
		// Writers through the alias are seen by the target and back.
		That("proc swapin {name} { upvar 1 $name v; set v new }",
			"set a old; swapin a; set a").ResultIs("new"),
		// #0 links straight to the global frame from any depth.
		That("proc inner {} { upvar #0 g v; set v deep }",
			"proc outer {} { inner }",
			"set g start; outer; set g").ResultIs("deep"),
		// The root frame has no parent to walk to.
		That("upvar 5 x y").
			ErrorsWith("out of range: level must be from 0 to 0, but is 5"),
	)
}

func TestUplevel(t *testing.T) {
	Test(t,
		That("proc caller-set {} { uplevel 1 {set here 1} }",
			"caller-set; set here").ResultIs("1"),
		That("proc global-set {} { uplevel #0 {set g 9} }",
			"proc mid {} { global-set }",
			"mid; set g").ResultIs("9"),
		// The active frame is restored even when the script fails.
		That("proc f {} { catch {uplevel 1 {error boom}}; set local 1 }",
			"f").ResultIs("1"),
	)
}

func TestRename(t *testing.T) {
	Test(t,
		That("proc f {} { return old }",
			"rename f g",
			"g").ResultIs("old"),
		That("proc f {} { return old }",
			"rename f g",
			"catch {f} msg; set msg").ResultIs("command not found: f"),
		// Renaming to the empty string deletes the command.
		That("proc f {} { return old }",
			`rename f ""`,
			"catch {f} msg; set msg").ResultIs("command not found: f"),
	)
}

func TestCommand(t *testing.T) {
	Test(t,
		// proc adds exactly one entry to the table.
		That("set before [command]",
			"proc f {x} { set x }",
			"- [command] $before").ResultIs("1"),
		That("proc f {a b} { + $a $b }",
			"command args [- [command] 1]").ResultIs("a b"),
		That("proc f {a b} { + $a $b }",
			"command body [- [command] 1]").ResultIs(" + $a $b "),
		That("proc f {a b} { + $a $b }",
			"command name [- [command] 1]").ResultIs("f"),
	)
}

func TestCommand_IndexOutOfRange(t *testing.T) {
	in := pickle.New(nil)
	if err := lang.Register(in); err != nil {
		t.Fatal(err)
	}
	if s := in.Eval("command name 99999"); s != pickle.Error {
		t.Fatalf("status = %d, want %d", s, pickle.Error)
	}
	want := fmt.Sprintf(
		"out of range: command index must be from 0 to %d, but is 99999",
		in.NumCommands()-1)
	if got := in.Result(); got != want {
		t.Errorf("result = %q, want %q", got, want)
	}
}

func TestApply(t *testing.T) {
	Test(t,
		That("apply {{x} {* $x 2}} 21").ResultIs("42"),
		That("apply {{a b} {+ $a $b}} 1 2").ResultIs("3"),
		// The lambda's frame hangs off the applying frame, so upvar 1
		// reaches the caller's locals.
		That("proc f {} { set local 5; apply {{} {upvar 1 local v; set v}} }", "f").
			ResultIs("5"),
		That("apply junk").ErrorsWith("invalid lambda: junk"),
	)
}
