// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"os"
	"regexp"
	"strings"
	"testing"
)

// IsolateEnv runs the rest of the test in a fresh temporary directory with
// HOME and XDG_CONFIG_HOME pointing into it, and with every environment
// variable starting with prefix removed. Everything is restored on cleanup.
// It returns the temporary directory.
func IsolateEnv(t *testing.T, prefix string) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", dir+string(os.PathSeparator)+".config")
	t.Setenv("NO_COLOR", "")

	for _, kv := range os.Environ() {
		name, value, _ := strings.Cut(kv, "=")
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if err := os.Unsetenv(name); err != nil {
			t.Fatalf("failed to unset %s: %v", name, err)
		}
		t.Cleanup(func() { _ = os.Setenv(name, value) })
	}
	return dir
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// StripANSI removes ANSI escape codes from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// Lines splits output into lines, dropping the final newline.
func Lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
