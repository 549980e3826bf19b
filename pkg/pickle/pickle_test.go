package pickle

import (
	"testing"

	"github.com/pickle-lang/pickle/pkg/tt"
)

func parseIntOK(s string) bool {
	_, err := ParseInt(s)
	return err == nil
}

func TestParseInt(t *testing.T) {
	tt.Test(t, tt.Fn("parseIntOK", parseIntOK), tt.Table{
		tt.Args("0").Rets(true),
		tt.Args("42").Rets(true),
		tt.Args("-17").Rets(true),
		tt.Args("+3").Rets(true),

		// Strict: no partial parses, no silent zeroes.
		tt.Args("").Rets(false),
		tt.Args("-").Rets(false),
		tt.Args("+").Rets(false),
		tt.Args("12a").Rets(false),
		tt.Args("a12").Rets(false),
		tt.Args(" 1").Rets(false),
		tt.Args("1 ").Rets(false),
		tt.Args("0x10").Rets(false),
		tt.Args("1.5").Rets(false),
	})
}

func nop(in *Interp, argv []string, priv any) Status { return OK }

func TestCommandTableOrder(t *testing.T) {
	in := New(nil)
	for _, name := range []string{"alpha", "beta", "gamma", "delta"} {
		if err := in.Register(name, nop, nil); err != nil {
			t.Fatal(err)
		}
	}

	// Re-registering keeps the slot.
	if err := in.Register("beta", nop, nil); err != nil {
		t.Fatal(err)
	}
	wantOrder(t, in, "alpha", "beta", "gamma", "delta")

	// Renaming keeps the slot.
	if err := in.Rename("beta", "bravo"); err != nil {
		t.Fatal(err)
	}
	wantOrder(t, in, "alpha", "bravo", "gamma", "delta")

	// Renaming to the empty string deletes; later commands shift down.
	if err := in.Rename("bravo", ""); err != nil {
		t.Fatal(err)
	}
	wantOrder(t, in, "alpha", "gamma", "delta")

	if err := in.Rename("nonesuch", "x"); err == nil {
		t.Error("renaming a missing command succeeds, want error")
	}
	if err := in.Rename("alpha", "gamma"); err == nil {
		t.Error("renaming onto an existing command succeeds, want error")
	}
}

func wantOrder(t *testing.T, in *Interp, names ...string) {
	t.Helper()
	if in.NumCommands() != len(names) {
		t.Fatalf("NumCommands is %d, want %d", in.NumCommands(), len(names))
	}
	for i, name := range names {
		c, ok := in.CommandAt(i)
		if !ok || c.Name != name {
			t.Errorf("CommandAt(%d).Name is %q, want %q", i, c.Name, name)
		}
	}
}

func TestCommandAtDetail(t *testing.T) {
	in := New(nil)
	must(t, in.Register("native", nop, nil))
	must(t, in.RegisterProc("double", "x", "+ $x $x"))
	must(t, in.RegisterProc("many", "a b args", "cat"))

	c, _ := in.CommandAt(0)
	if !c.Native || c.Args != "built-in" || c.Body != "" {
		t.Errorf("native command reported as %+v", c)
	}
	c, _ = in.CommandAt(1)
	if c.Native || c.Args != "x" || c.Body != "+ $x $x" {
		t.Errorf("procedure reported as %+v", c)
	}
	c, _ = in.CommandAt(2)
	if c.Args != "a b args" {
		t.Errorf("variadic procedure args reported as %q", c.Args)
	}
	if _, ok := in.CommandAt(3); ok {
		t.Error("CommandAt past the end reports ok")
	}
}

func TestVarAccess(t *testing.T) {
	in := New(nil)
	if _, err := in.Var("x"); err == nil {
		t.Error("reading an unset variable succeeds, want error")
	}
	must(t, in.SetVar("x", "hi"))
	if v, _ := in.Var("x"); v != "hi" {
		t.Errorf("Var(x) is %q, want hi", v)
	}
	must(t, in.SetVarInt("n", -42))
	if v, _ := in.VarInt("n"); v != -42 {
		t.Errorf("VarInt(n) is %d, want -42", v)
	}
	must(t, in.SetVar("n", "junk"))
	if _, err := in.VarInt("n"); err == nil {
		t.Error("VarInt of a non-integer succeeds, want error")
	}
	must(t, in.UnsetVar("x"))
	if _, err := in.Var("x"); err == nil {
		t.Error("reading an unset variable succeeds, want error")
	}
	if err := in.UnsetVar("x"); err == nil {
		t.Error("unsetting a missing variable succeeds, want error")
	}
}

func TestSetVarRespectsStringLimit(t *testing.T) {
	in := New(&Limits{MaxString: 4, MaxRecursion: 16, MaxArgs: 16})
	if err := in.SetVar("x", "12345"); err == nil {
		t.Error("setting an oversized value succeeds, want error")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}
