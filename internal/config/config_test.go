package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dvrshelf/internal/config"
)

func TestDefaultValidatesWithScanRoots(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.RecordingDirs = []string{t.TempDir()}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestValidateRequiresScanRoots(t *testing.T) {
	cfg := config.Default()
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for config without scan roots")
	}
	if !strings.Contains(err.Error(), "recording_dirs") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateRejectsBadExtension(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.RecordingDirs = []string{t.TempDir()}
	cfg.Files.VideoExtension = "ts"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for extension without dot")
	}
}

func TestValidateComponentSetMustCoverVideo(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.RecordingDirs = []string{t.TempDir()}
	cfg.Files.ComponentExtensions = []string{".eit"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when component extensions omit the video extension")
	}
}

func TestLoadParsesFileAndExpandsPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[paths]
recording_dirs = ["` + dir + `/rec"]
data_dir = "` + dir + `/data"

[logging]
format = "JSON"
level = "Debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected config at %s to exist", path)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if cfg.Files.VideoExtension != ".ts" {
		t.Fatalf("expected default video extension, got %q", cfg.Files.VideoExtension)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "data", "catalog.db") {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath())
	}
	if cfg.DropLogPath() != filepath.Join(dir, "data", "dropped") {
		t.Fatalf("unexpected drop log path %q", cfg.DropLogPath())
	}
}

func TestLoadMissingExplicitPathFails(t *testing.T) {
	if _, _, _, err := config.Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.WriteSample(path); err != nil {
		t.Fatalf("WriteSample failed: %v", err)
	}
	if err := config.WriteSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}
