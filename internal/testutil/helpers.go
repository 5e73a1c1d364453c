package testutil

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteEnvFile writes a .env file with the given variables into dir and
// returns its path
func WriteEnvFile(t *testing.T, dir string, vars map[string]string) string {
	t.Helper()

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k + "=" + vars[k] + "\n")
	}

	path := filepath.Join(dir, ".env")
	CreateTestFile(t, path, []byte(b.String()))
	return path
}

// WriteConfigFile writes a yaml config file into dir and returns its path
func WriteConfigFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, ".wordly.yaml")
	CreateTestFile(t, path, []byte(content))
	return path
}

// UnsetEnv clears an environment variable for the duration of the test.
// t.Setenv to "" is not enough for loaders that treat set-but-empty as set.
func UnsetEnv(t *testing.T, name string) {
	t.Helper()

	t.Setenv(name, "")
	if err := os.Unsetenv(name); err != nil {
		t.Fatalf("Failed to unset %s: %v", name, err)
	}
}

// CaptureOutput captures stdout/stderr during test execution
func CaptureOutput(t *testing.T, f func()) (stdout, stderr string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr
	defer func() {
		os.Stdout = oldStdout
		os.Stderr = oldStderr
	}()

	rOut, wOut, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	rErr, wErr, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	os.Stdout = wOut
	os.Stderr = wErr

	// Drain the pipes while f runs so large outputs do not block
	outCh := drain(rOut)
	errCh := drain(rErr)

	f()

	wOut.Close()
	wErr.Close()

	return <-outCh, <-errCh
}

func drain(r io.ReadCloser) <-chan string {
	ch := make(chan string, 1)
	go func() {
		defer r.Close()
		var buf bytes.Buffer
		io.Copy(&buf, r)
		ch <- buf.String()
	}()
	return ch
}
