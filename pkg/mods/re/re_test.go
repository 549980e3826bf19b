package re_test

import (
	"testing"

	. "github.com/pickle-lang/pickle/pkg/pickle/pickletest"
)

func TestReg(t *testing.T) {
	Test(t,
		That("reg abc xxabcxx").ResultIs("2 5"),
		That("reg abc xyz").ResultIs("-1"),
		That("reg ^abc abcdef").ResultIs("0 3"),
		That("reg ^abc xabc").ResultIs("-1"),
		That(`reg def$ abcdef`).ResultIs("3 6"),
		That(`reg def$ defabc`).ResultIs("-1"),
		That("reg a.c abc").ResultIs("0 3"),
		That("reg ab*c ac").ResultIs("0 2"),
		That("reg ab+c ac").ResultIs("-1"),
		That("reg ab?c abc").ResultIs("0 3"),
	)
}

func TestRegOptions(t *testing.T) {
	Test(t,
		That("reg -nocase ABC xxabcxx").ResultIs("2 5"),
		That("reg ABC xxabcxx").ResultIs("-1"),
		That("reg -start 3 a abcabc").ResultIs("3 4"),
		// Greedy swallows the longest run, lazy the shortest, and
		// possessive never gives anything back.
		That("reg -greedy {a*a} aaaa").ResultIs("0 4"),
		That("reg -lazy {a*a} aaaa").ResultIs("0 1"),
		That("reg -possessive {a*a} aaaa").ResultIs("-1"),
	)
}

func TestRegErrors(t *testing.T) {
	Test(t,
		That("reg * abc").ErrorsWith("quantifier with nothing to repeat"),
		That("reg -start").ErrorsWith("-start needs an offset"),
		That("reg onlypattern").
			ErrorsWith("expected 3 arguments, got 2: reg onlypattern"),
	)
}
