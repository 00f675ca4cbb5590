package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteRecordingFiles creates a receiver-style video file of size bytes plus
// its companion meta file, returning the extensionless base path. basename
// should follow the "20060102 1504 - Channel - Title" convention.
func WriteRecordingFiles(t testing.TB, dir, basename, channel, title, description string, size int) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	basepath := filepath.Join(dir, basename)
	if err := os.WriteFile(basepath+".ts", make([]byte, size), 0o644); err != nil {
		t.Fatalf("write video file: %v", err)
	}
	meta := fmt.Sprintf("1:0:19:283D:3FB:1:C00000:0:0:0:%s\n%s\n%s %s\n", channel, title, title, description)
	if err := os.WriteFile(basepath+".ts.meta", []byte(meta), 0o644); err != nil {
		t.Fatalf("write meta file: %v", err)
	}
	return basepath
}

// WriteDownloadFile creates a download video file of size bytes, returning
// the extensionless base path. name must carry the download naming pattern
// and include its extension.
func WriteDownloadFile(t testing.TB, dir, name string, size int) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatalf("write download file: %v", err)
	}
	ext := filepath.Ext(name)
	return strings.TrimSuffix(path, ext)
}

// WriteComponentFiles creates empty sidecar files next to an existing base
// path for each extension, skipping any that already exist.
func WriteComponentFiles(t testing.TB, basepath string, extensions ...string) {
	t.Helper()

	for _, ext := range extensions {
		path := basepath + ext
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatalf("write component file %s: %v", path, err)
		}
	}
}
