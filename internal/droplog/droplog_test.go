package droplog_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dvrshelf/internal/droplog"
)

func TestAppendAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropped")
	log := droplog.New(path)

	if err := log.Append("/media/a.ts", "/media/a.ts.meta"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := log.Append("/media/b.ts"); err != nil {
		t.Fatalf("second Append failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read drop log: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	want := []string{"/media/a.ts", "/media/a.ts.meta", "/media/b.ts"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %v", len(want), lines)
	}
	for i, line := range want {
		if lines[i] != line {
			t.Fatalf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestAppendNothingCreatesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dropped")
	if err := droplog.New(path).Append(); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file, stat err = %v", err)
	}
}
