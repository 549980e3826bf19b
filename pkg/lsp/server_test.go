package lsp

import (
	"testing"

	lsp "github.com/sourcegraph/go-lsp"
)

func TestDiagnostics(t *testing.T) {
	if diags := diagnostics("set a 1\nputs $a\n"); len(diags) != 0 {
		t.Errorf("valid script produced diagnostics: %v", diags)
	}

	diags := diagnostics("set a 1\nputs {unterminated\n")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	d := diags[0]
	if d.Severity != lsp.Error || d.Source != "parse" {
		t.Errorf("diagnostic = %+v, want parse error severity", d)
	}
	if d.Range.Start.Line != 1 {
		t.Errorf("diagnostic starts at line %d, want 1", d.Range.Start.Line)
	}
}
