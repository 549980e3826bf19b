package shell

import (
	"os"
	"path/filepath"
)

// configHome returns the directory for the shell's own files, creating it
// when possible, or "" when the system gives us no configuration directory.
func configHome() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	dir := filepath.Join(base, "pickle")
	os.MkdirAll(dir, 0o755)
	return dir
}

func rcPath() string {
	if dir := configHome(); dir != "" {
		return filepath.Join(dir, "rc.yaml")
	}
	return ""
}

func historyPath() string {
	if dir := configHome(); dir != "" {
		return filepath.Join(dir, "history")
	}
	return ""
}

func dbPath() string {
	if dir := configHome(); dir != "" {
		return filepath.Join(dir, "history.bolt")
	}
	return ""
}
