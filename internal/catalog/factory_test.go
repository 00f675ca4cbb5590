package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/media"
	"dvrshelf/internal/testsupport"
)

func TestRecordingFromMeta(t *testing.T) {
	dir := t.TempDir()
	basepath := testsupport.WriteRecordingFiles(t, dir,
		"20240131 2015 - Das Erste HD - Tagesschau",
		"Das Erste HD", "Tagesschau", "Nachrichten vom Tage", 2048)

	rec, err := catalog.RecordingFromMeta(context.Background(), basepath, ".ts", ".ts.meta", testsupport.DefaultProbe())
	require.NoError(t, err)

	assert.Equal(t, "20240131 2015 - Das Erste HD - Tagesschau", rec.FileBasename)
	assert.Equal(t, basepath, rec.BasePath)
	assert.Equal(t, int64(2048), rec.FileSize)
	assert.Equal(t, "Das Erste HD", rec.EPGChannel)
	assert.Equal(t, "Tagesschau", rec.EPGTitle)
	// The description repeats the title, which collapses to a tilde.
	assert.Equal(t, "~ Nachrichten vom Tage", rec.EPGDescription)
	assert.Equal(t, "2024-01-31 20:15", rec.Timestamp)
	assert.Equal(t, "tagesschau", rec.Group)
	assert.True(t, rec.HD())
}

func TestRecordingFromMetaFallsBackToBasename(t *testing.T) {
	dir := t.TempDir()
	basepath := filepath.Join(dir, "20240131 2015 - ZDF HD - Tatort")
	require.NoError(t, os.WriteFile(basepath+".ts", make([]byte, 16), 0o644))
	// Meta with empty channel and title lines.
	require.NoError(t, os.WriteFile(basepath+".ts.meta", []byte("1:0:19:2B66:3F3:1:C00000:0:0:0:\n\nEin Krimi\n"), 0o644))

	rec, err := catalog.RecordingFromMeta(context.Background(), basepath, ".ts", ".ts.meta", testsupport.DefaultProbe())
	require.NoError(t, err)

	assert.Equal(t, "ZDF HD", rec.EPGChannel)
	assert.Equal(t, "Tatort", rec.EPGTitle)
	assert.Equal(t, "Ein Krimi", rec.EPGDescription)
	assert.Equal(t, "tatort", rec.Group)
}

func TestRecordingFromMetaMissingMeta(t *testing.T) {
	dir := t.TempDir()
	basepath := filepath.Join(dir, "20240131 2015 - Das Erste HD - Tagesschau")
	require.NoError(t, os.WriteFile(basepath+".ts", make([]byte, 16), 0o644))

	_, err := catalog.RecordingFromMeta(context.Background(), basepath, ".ts", ".ts.meta", testsupport.DefaultProbe())
	require.ErrorIs(t, err, catalog.ErrMissingMeta)
}

func TestRecordingFromMetaBadTimestamp(t *testing.T) {
	dir := t.TempDir()
	basepath := testsupport.WriteRecordingFiles(t, dir, "not a receiver name", "K", "T", "D", 16)

	_, err := catalog.RecordingFromMeta(context.Background(), basepath, ".ts", ".ts.meta", testsupport.DefaultProbe())
	require.Error(t, err)
}

func TestAttachRecording(t *testing.T) {
	dir := t.TempDir()
	basepath := testsupport.WriteRecordingFiles(t, dir,
		"20240131 2015 - Das Erste HD - Tagesschau",
		"Das Erste HD", "Tagesschau", "Nachrichten", 512)

	rec := &catalog.Recording{FileBasename: filepath.Base(basepath), FileSize: 512}
	require.NoError(t, catalog.AttachRecording(rec, basepath, ".ts"))
	assert.Equal(t, basepath, rec.BasePath)

	stale := &catalog.Recording{FileBasename: filepath.Base(basepath), FileSize: 513}
	err := catalog.AttachRecording(stale, basepath, ".ts")
	require.ErrorIs(t, err, catalog.ErrCacheInconsistent)
	assert.Empty(t, stale.BasePath)
}

func TestDownloadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteDownloadFile(t, dir, "Das Boot (1981) [cut=director] - bluray.mp4", 4096)

	dl, err := catalog.DownloadFromFile(context.Background(), path, ".mp4", testsupport.DefaultProbe())
	require.NoError(t, err)

	assert.Equal(t, "Das Boot (1981) [cut=director] - bluray", dl.FileBasename)
	assert.Equal(t, ".mp4", dl.FileExtension)
	assert.Equal(t, int64(4096), dl.FileSize)
	assert.Equal(t, "Das Boot", dl.Title)
	assert.Equal(t, "bluray", dl.Source)
	assert.Equal(t, "1981 (cut=director)", dl.Description)
	assert.Equal(t, "dasboot", dl.Group)
}

func TestDownloadFromFileMalformedName(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteDownloadFile(t, dir, "holiday-clip.mp4", 16)

	_, err := catalog.DownloadFromFile(context.Background(), path, ".mp4", testsupport.DefaultProbe())
	require.ErrorIs(t, err, catalog.ErrMalformedName)
}

func TestSummaryLines(t *testing.T) {
	rec := &catalog.Recording{
		FileBasename:   "20240131 2015 - Das Erste HD - Tagesschau",
		FileSize:       1 << 30,
		EPGChannel:     "Das Erste HD",
		EPGTitle:       "Tagesschau",
		EPGDescription: "~ Nachrichten",
		Video:          media.Metrics{Duration: 900, Height: 720, Width: 1280, FPS: 50},
		Dropped:        true,
		Comment:        "keep",
		Timestamp:      "2024-01-31 20:15",
	}
	line := rec.Summary()
	assert.True(t, strings.HasPrefix(line, "D..C | "), "unexpected flag column in %q", line)
	assert.Contains(t, line, "2024-01-31 20:15 - 20:30")
	assert.Contains(t, line, " 1.0 GiB")
	assert.Contains(t, line, " 15'")
	assert.Contains(t, line, "Tagesschau")

	dl := &catalog.Download{
		FileBasename: "Das Boot (1981) [cut=director] - bluray",
		FileSize:     2 << 30,
		Title:        "Das Boot",
		Source:       "bluray",
		Description:  "1981 (cut=director)",
	}
	line = dl.Summary()
	assert.Contains(t, line, " GM")
	assert.Contains(t, line, "bluray")
	assert.Contains(t, line, " 2.0 GiB")
	assert.Contains(t, line, "Das Boot")
}
