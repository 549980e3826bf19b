// Package testutil contains common helpers for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/pickle-lang/pickle/pkg/must"
)

// TempFile writes content to a file with the given name inside a new
// temporary directory, and returns its full path. The directory is removed
// when the test finishes.
func TempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	must.WriteFile(path, content)
	return path
}
