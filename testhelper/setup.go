package testhelper

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to dir/name and returns the full path
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// BaseDocument renders a YAML pipeline document with the given base fields
func BaseDocument(name, outputDir string, seed int) string {
	return fmt.Sprintf("base:\n  name: %s\n  output_dir: %q\n  seed: %d\n", name, outputDir, seed)
}

// AssertDir fails the test unless path exists and is a directory
func AssertDir(t *testing.T, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected directory %s to exist: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("Expected %s to be a directory", path)
	}
}
