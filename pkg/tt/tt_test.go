package tt

import (
	"fmt"
	"strings"
	"testing"
)

// testT implements the T interface and records errors.
type testT []string

func (t *testT) Helper() {}

func (t *testT) Errorf(format string, args ...any) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

func add(x, y int) int { return x + y }

func TestPassingCases(t *testing.T) {
	var mockT testT
	Test(&mockT, Fn("add", add), Table{
		Args(1, 2).Rets(3),
		Args(10, -1).Rets(9),
	})
	if len(mockT) > 0 {
		t.Errorf("Test errors when given passing cases: %v", mockT)
	}
}

func TestFailingCase(t *testing.T) {
	var mockT testT
	Test(&mockT, Fn("add", add), Table{
		Args(1, 2).Rets(4),
	})
	if len(mockT) != 1 {
		t.Fatalf("Test made %d errors, want 1", len(mockT))
	}
	if !strings.Contains(mockT[0], "add(1, 2) -> 3, want 4") {
		t.Errorf("Test made error %q, want error containing add(1, 2) -> 3, want 4", mockT[0])
	}
}

func TestAnyMatcher(t *testing.T) {
	var mockT testT
	Test(&mockT, Fn("add", add), Table{
		Args(1, 2).Rets(Any),
	})
	if len(mockT) > 0 {
		t.Errorf("Test errors when using Any matcher: %v", mockT)
	}
}
