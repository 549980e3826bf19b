package glob

import (
	"testing"

	"github.com/pickle-lang/pickle/pkg/tt"
)

func TestMatch(t *testing.T) {
	tt.Test(t, tt.Fn("Match", Match), tt.Table{
		// The empty pattern matches only the empty subject.
		tt.Args("", "").Rets(true),
		tt.Args("", "a").Rets(false),

		// Literals are anchored to the whole subject.
		tt.Args("abc", "abc").Rets(true),
		tt.Args("abc", "abcd").Rets(false),
		tt.Args("abc", "xabc").Rets(false),

		// * matches any run, including the empty run.
		tt.Args("*", "").Rets(true),
		tt.Args("*", "anything at all").Rets(true),
		tt.Args("a*c", "ac").Rets(true),
		tt.Args("a*c", "abbbc").Rets(true),
		tt.Args("a*c", "abbbd").Rets(false),
		tt.Args("*.tcl", "boot.tcl").Rets(true),
		tt.Args("**a**", "bab").Rets(true),

		// ? matches exactly one byte and fails on empty input.
		tt.Args("?", "").Rets(false),
		tt.Args("?", "x").Rets(true),
		tt.Args("?", "xy").Rets(false),
		tt.Args("a?c", "abc").Rets(true),
		tt.Args("a?c", "ac").Rets(false),

		// % escapes the following byte.
		tt.Args("%*", "*").Rets(true),
		tt.Args("%*", "x").Rets(false),
		tt.Args("%?", "?").Rets(true),
		tt.Args("%%", "%").Rets(true),
		tt.Args("a%*b", "a*b").Rets(true),
		// A trailing escape stands for itself.
		tt.Args("a%", "a%").Rets(true),

		// Mixtures.
		tt.Args("*?", "").Rets(false),
		tt.Args("*?", "x").Rets(true),
		tt.Args("?*", "xyz").Rets(true),
		tt.Args("a*b*c", "a-b-c").Rets(true),
	})
}
