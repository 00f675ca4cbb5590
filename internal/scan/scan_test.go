package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"dvrshelf/internal/logging"
	"dvrshelf/internal/scan"
)

func TestFilesRecursesAndFilters(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "movies", "2024")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	want := []string{
		filepath.Join(root, "b.ts"),
		filepath.Join(nested, "a.ts"),
	}
	ignored := []string{
		filepath.Join(root, "b.ts.meta"),
		filepath.Join(root, "notes.txt"),
	}
	for _, path := range append(append([]string(nil), want...), ignored...) {
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}

	got := scan.Files([]string{root}, []string{".ts"}, logging.NewNop())
	if len(got) != len(want) {
		t.Fatalf("expected %d files, got %v", len(want), got)
	}
	for i, path := range want {
		if got[i] != path {
			t.Fatalf("expected %q at position %d, got %v", path, i, got)
		}
	}
}

func TestFilesMissingRootIsNotFatal(t *testing.T) {
	got := scan.Files([]string{filepath.Join(t.TempDir(), "absent")}, []string{".ts"}, logging.NewNop())
	if len(got) != 0 {
		t.Fatalf("expected no files, got %v", got)
	}
}
