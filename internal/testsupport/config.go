// Package testsupport provides shared helpers for package tests: temp-dir
// configs, store lifecycles, fixture files, and a canned metadata probe.
package testsupport

import (
	"path/filepath"
	"testing"

	"dvrshelf/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.RecordingDirs = []string{filepath.Join(base, "recordings")}
	cfg.Paths.DownloadDirs = []string{filepath.Join(base, "downloads")}
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// RecordingDir returns the first recording scan root of a test config.
func RecordingDir(t testing.TB, cfg *config.Config) string {
	t.Helper()
	if len(cfg.Paths.RecordingDirs) == 0 {
		t.Fatal("config has no recording dirs")
	}
	return cfg.Paths.RecordingDirs[0]
}

// DownloadDir returns the first download scan root of a test config.
func DownloadDir(t testing.TB, cfg *config.Config) string {
	t.Helper()
	if len(cfg.Paths.DownloadDirs) == 0 {
		t.Fatal("config has no download dirs")
	}
	return cfg.Paths.DownloadDirs[0]
}
