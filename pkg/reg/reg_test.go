package reg

import (
	"testing"

	"github.com/pickle-lang/pickle/pkg/tt"
)

// find adapts Find for table tests, flattening the span into begin/end.
func find(pattern, s string, opts Options) (int, int, bool) {
	begin, end, ok, err := Find(pattern, s, opts)
	if err != nil {
		panic(err)
	}
	return begin, end, ok
}

func TestFind(t *testing.T) {
	tt.Test(t, tt.Fn("find", find), tt.Table{
		// Literals find their leftmost occurrence.
		tt.Args("abc", "xxabcxx", Options{}).Rets(2, 5, true),
		tt.Args("abc", "ab", Options{}).Rets(-1, -1, false),

		// Anchors.
		tt.Args("^abc", "abcxx", Options{}).Rets(0, 3, true),
		tt.Args("^abc", "xabc", Options{}).Rets(-1, -1, false),
		tt.Args("abc$", "xxabc", Options{}).Rets(2, 5, true),
		tt.Args("abc$", "abcx", Options{}).Rets(-1, -1, false),
		tt.Args("^$", "", Options{}).Rets(0, 0, true),

		// Any byte and quantifiers, greedy by default.
		tt.Args("a.c", "abc", Options{}).Rets(0, 3, true),
		tt.Args("a*", "aaab", Options{}).Rets(0, 3, true),
		tt.Args("a+b", "caaab", Options{}).Rets(1, 5, true),
		tt.Args("a+", "b", Options{}).Rets(-1, -1, false),
		tt.Args("ab?c", "ac", Options{}).Rets(0, 2, true),
		tt.Args("ab?c", "abc", Options{}).Rets(0, 3, true),

		// Escapes make bytes literal.
		tt.Args(`a\*b`, "a*b", Options{}).Rets(0, 3, true),
		tt.Args(`a\*b`, "aab", Options{}).Rets(-1, -1, false),
		tt.Args(`\^a`, "^a", Options{}).Rets(0, 2, true),

		// Case folding.
		tt.Args("abc", "xABCx", Options{NoCase: true}).Rets(1, 4, true),
		tt.Args("abc", "xABCx", Options{}).Rets(-1, -1, false),

		// Start offset.
		tt.Args("a", "abca", Options{Start: 1}).Rets(3, 4, true),
		tt.Args("a", "abc", Options{Start: 1}).Rets(-1, -1, false),

		// Lazy takes the shortest extent, greedy the longest.
		tt.Args("a.*b", "a-b-b", Options{}).Rets(0, 5, true),
		tt.Args("a.*b", "a-b-b", Options{Policy: Lazy}).Rets(0, 3, true),

		// A possessive star swallows everything and does not give back, so
		// a pattern needing backtracking fails.
		tt.Args("a.*b", "a-b-b", Options{Policy: Possessive}).Rets(-1, -1, false),
		tt.Args("a.*", "a-b", Options{Policy: Possessive}).Rets(0, 3, true),
	})
}

func TestCompileErrors(t *testing.T) {
	for _, pattern := range []string{"*a", "+", "a**", `a\`} {
		if _, err := Compile(pattern); err == nil {
			t.Errorf("Compile(%q) succeeds, want error", pattern)
		}
	}
}
