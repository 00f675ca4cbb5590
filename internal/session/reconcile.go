package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/scan"
)

// Reconcile rebuilds the collection from a fresh file-system scan merged with
// the store. Cache hits are verified against disk and a divergence aborts the
// run; recordings without a companion meta file are skipped with a warning;
// mastered recordings whose files are gone are retained with no base path and
// a zero size. The collection comes back ordered under the active
// specification.
func (s *Session) Reconcile(ctx context.Context) error {
	s.entries = nil
	s.counts = Counts{}

	if err := s.reconcileRecordings(ctx); err != nil {
		return err
	}
	if err := s.reconcileDownloads(ctx); err != nil {
		return err
	}

	if err := s.Sort(s.spec); err != nil {
		return err
	}

	s.logger.Info("reconciliation complete",
		slog.Int("total", len(s.entries)),
		slog.Int("recording_hits", s.counts.RecordingHits),
		slog.Int("recording_new", s.counts.RecordingNew),
		slog.Int("mastered_survivors", s.counts.MasteredSurvivors),
		slog.Int("download_hits", s.counts.DownloadHits),
		slog.Int("download_new", s.counts.DownloadNew),
	)
	return nil
}

func (s *Session) reconcileRecordings(ctx context.Context) error {
	videoExt := s.cfg.Files.VideoExtension
	files := scan.Files(s.cfg.Paths.RecordingDirs, []string{videoExt}, s.logger)
	s.counts.RecordingFiles = len(files)

	present := make(map[string]struct{}, len(files))
	for _, file := range files {
		basepath := strings.TrimSuffix(file, videoExt)
		basename := filepath.Base(basepath)

		rec, err := s.store.GetRecording(ctx, basename)
		if err != nil {
			return err
		}
		if rec != nil {
			if err := catalog.AttachRecording(rec, basepath, videoExt); err != nil {
				return err
			}
			s.entries = append(s.entries, rec)
			present[basename] = struct{}{}
			s.counts.RecordingHits++
			continue
		}

		rec, err = catalog.RecordingFromMeta(ctx, basepath, videoExt, s.cfg.Files.MetaExtension, s.probe)
		if errors.Is(err, catalog.ErrMissingMeta) {
			s.logger.Warn("skipping recording without meta file", slog.String("basepath", basepath))
			s.counts.RecordingsSkipped++
			continue
		}
		if err != nil {
			return fmt.Errorf("ingest recording %s: %w", basename, err)
		}
		if err := s.store.SaveRecording(ctx, rec); err != nil {
			return err
		}
		s.entries = append(s.entries, rec)
		present[basename] = struct{}{}
		s.counts.RecordingNew++
	}

	// Mastered recordings outlive their files: anything flagged mastered in
	// the store but missing from the scan stays in the collection, detached
	// from disk.
	mastered, err := s.store.MasteredRecordings(ctx)
	if err != nil {
		return err
	}
	for _, rec := range mastered {
		if _, ok := present[rec.FileBasename]; ok {
			continue
		}
		rec.BasePath = ""
		rec.FileSize = 0
		s.entries = append(s.entries, rec)
		s.counts.MasteredSurvivors++
	}
	return nil
}

func (s *Session) reconcileDownloads(ctx context.Context) error {
	cached, err := s.store.AllDownloads(ctx)
	if err != nil {
		return err
	}
	byIdentity := make(map[string]*catalog.Download, len(cached))
	for _, dl := range cached {
		byIdentity[dl.FileBasename] = dl
	}

	files := scan.Files(s.cfg.Paths.DownloadDirs, s.cfg.Files.DownloadExtensions, s.logger)
	s.counts.DownloadFiles = len(files)

	for _, file := range files {
		ext := filepath.Ext(file)
		basepath := strings.TrimSuffix(file, ext)
		basename := filepath.Base(basepath)

		if dl, ok := byIdentity[basename]; ok {
			dl.BasePath = basepath
			dl.FileExtension = ext
			s.entries = append(s.entries, dl)
			s.counts.DownloadHits++
			continue
		}

		dl, err := catalog.DownloadFromFile(ctx, basepath, ext, s.probe)
		if err != nil {
			return fmt.Errorf("ingest download %s: %w", basename, err)
		}
		if err := s.store.SaveDownload(ctx, dl); err != nil {
			return err
		}
		s.entries = append(s.entries, dl)
		byIdentity[basename] = dl
		s.counts.DownloadNew++
	}
	return nil
}
