package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfineRelPath_Valid(t *testing.T) {
	root := t.TempDir()

	got, err := ConfineRelPath(root, "channels/english-shorts/expressions.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %s", got)
	}
}

func TestConfineRelPath_Traversal(t *testing.T) {
	root := t.TempDir()

	cases := []string{
		"../outside.json",
		"../../etc/passwd",
		"..",
		"channels/../../outside.json",
	}
	for _, rel := range cases {
		if _, err := ConfineRelPath(root, rel); err == nil {
			t.Errorf("expected traversal error for %q", rel)
		}
	}
}

func TestConfineRelPath_RejectsAbsoluteAndBackslash(t *testing.T) {
	root := t.TempDir()

	if _, err := ConfineRelPath(root, "/abs/path.json"); err == nil {
		t.Error("expected error for absolute target")
	}
	if _, err := ConfineRelPath(root, "a\\b.json"); err == nil {
		t.Error("expected error for backslash target")
	}
}

func TestConfineRelPath_SymlinkEscape(t *testing.T) {
	root := t.TempDir()
	outside := t.TempDir()

	link := filepath.Join(root, "sneaky")
	if err := os.Symlink(outside, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	if _, err := ConfineRelPath(root, "sneaky/expressions.json"); err == nil {
		t.Error("expected error for symlink escaping root")
	}
}

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := IsRegularFile(path); err != nil {
		t.Errorf("unexpected error for regular file: %v", err)
	}
	if err := IsRegularFile(dir); err == nil {
		t.Error("expected error for directory")
	}
	if err := IsRegularFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
