package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"dvrshelf/internal/groupkey"
	"dvrshelf/internal/media"
)

// basenameLayout is the timestamp prefix of receiver file names, e.g.
// "20240131 2015 - Das Erste HD - Tagesschau".
const basenameLayout = "20060102 1504"

// downloadNamePattern matches "<title> (<year>) [<key>=<value>] - <trailer>".
var downloadNamePattern = regexp.MustCompile(`^(.*?) \((\d{4})\) \[(.*?=.*?)\] - (.*?)$`)

// RecordingFromMeta builds a fresh Recording from a scanned file and its
// companion meta file. basepath is the source path without extension.
//
// The meta file carries the channel on line one (after the last colon), the
// title on line two, and the description on line three with the title as a
// redundant prefix. Empty channel or title fall back to the basename tokens,
// which the receiver writes as "<timestamp> - <channel> - <title>".
func RecordingFromMeta(ctx context.Context, basepath, videoExt, metaExt string, probe media.Probe) (*Recording, error) {
	raw, err := os.ReadFile(basepath + metaExt)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingMeta, basepath)
		}
		return nil, fmt.Errorf("read meta file: %w", err)
	}
	lines := strings.Split(string(raw), "\n")
	if len(lines) < 3 {
		return nil, fmt.Errorf("%w: %s: meta file has %d lines", ErrMissingMeta, basepath, len(lines))
	}

	info, err := os.Stat(basepath + videoExt)
	if err != nil {
		return nil, fmt.Errorf("stat recording: %w", err)
	}

	rec := &Recording{
		BasePath:     basepath,
		FileBasename: filepath.Base(basepath),
		FileSize:     info.Size(),
	}

	channelLine := strings.Split(lines[0], ":")
	rec.EPGChannel = strings.TrimSpace(channelLine[len(channelLine)-1])
	rec.EPGTitle = strings.TrimSpace(lines[1])
	rec.EPGDescription = strings.TrimSpace(markTitlePrefix(strings.TrimSpace(lines[2]), rec.EPGTitle))

	metrics, err := probe.Inspect(ctx, basepath+videoExt)
	if err != nil {
		return nil, fmt.Errorf("probe recording: %w", err)
	}
	rec.Video = metrics

	tokens := strings.Split(rec.FileBasename, " - ")
	start, err := time.Parse(basenameLayout, tokens[0])
	if err != nil {
		return nil, fmt.Errorf("parse recording timestamp from %q: %w", rec.FileBasename, err)
	}
	rec.Timestamp = start.Format(TimestampLayout)

	if rec.EPGChannel == "" && len(tokens) > 1 {
		rec.EPGChannel = tokens[1]
	}
	if rec.EPGTitle == "" && len(tokens) > 2 {
		rec.EPGTitle = tokens[2]
	}

	rec.Group = groupkey.Normalize(rec.EPGTitle)
	return rec, nil
}

// AttachRecording binds a cache-loaded Recording to its live file. The stored
// size must match the size on disk; a mismatch means the cache and the file
// system have diverged and the catalog cannot be trusted.
func AttachRecording(rec *Recording, basepath, videoExt string) error {
	info, err := os.Stat(basepath + videoExt)
	if err != nil {
		return fmt.Errorf("stat recording: %w", err)
	}
	if info.Size() != rec.FileSize {
		return fmt.Errorf("%w: %s: stored %d bytes, disk %d bytes",
			ErrCacheInconsistent, rec.FileBasename, rec.FileSize, info.Size())
	}
	rec.BasePath = basepath
	return nil
}

// DownloadFromFile builds a fresh Download from a scanned file. basepath is
// the path without extension; ext includes the leading dot.
func DownloadFromFile(ctx context.Context, basepath, ext string, probe media.Probe) (*Download, error) {
	basename := filepath.Base(basepath)
	match := downloadNamePattern.FindStringSubmatch(basename)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedName, basename)
	}

	info, err := os.Stat(basepath + ext)
	if err != nil {
		return nil, fmt.Errorf("stat download: %w", err)
	}

	metrics, err := probe.Inspect(ctx, basepath+ext)
	if err != nil {
		return nil, fmt.Errorf("probe download: %w", err)
	}

	return &Download{
		BasePath:      basepath,
		FileBasename:  basename,
		FileExtension: ext,
		FileSize:      info.Size(),
		Title:         match[1],
		Source:        match[4],
		Description:   fmt.Sprintf("%s (%s)", match[2], match[3]),
		Video:         metrics,
		Group:         groupkey.Normalize(match[1]),
	}, nil
}

// markTitlePrefix replaces a leading title repetition in the description with
// a tilde so the summary line does not show the title twice.
func markTitlePrefix(description, title string) string {
	if title == "" || !strings.HasPrefix(description, title) {
		return description
	}
	return "~" + description[len(title):]
}
