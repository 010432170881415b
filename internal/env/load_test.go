package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Fatalf("missing file: %v", err)
	}
}

func TestLoadSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	data := "# tuning\nJELLY_TEST_PASSES=7\nJELLY_TEST_TITLE=\"jelly paddle\"\nJELLY_TEST_KEEP=file\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("JELLY_TEST_PASSES", "")
	os.Unsetenv("JELLY_TEST_PASSES")
	t.Setenv("JELLY_TEST_TITLE", "")
	os.Unsetenv("JELLY_TEST_TITLE")
	t.Setenv("JELLY_TEST_KEEP", "process")

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("JELLY_TEST_PASSES"); got != "7" {
		t.Fatalf("JELLY_TEST_PASSES = %q, want 7", got)
	}
	if got := os.Getenv("JELLY_TEST_TITLE"); got != "jelly paddle" {
		t.Fatalf("JELLY_TEST_TITLE = %q, want quotes stripped", got)
	}
	if got := os.Getenv("JELLY_TEST_KEEP"); got != "process" {
		t.Fatalf("JELLY_TEST_KEEP = %q, existing variable was overwritten", got)
	}
}
