package session

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/config"
	"dvrshelf/internal/droplog"
	"dvrshelf/internal/media"
	"dvrshelf/internal/ranking"
	"dvrshelf/internal/store"
)

// Counts summarizes one reconciliation pass.
type Counts struct {
	RecordingFiles    int
	RecordingHits     int
	RecordingNew      int
	RecordingsSkipped int
	MasteredSurvivors int

	DownloadFiles int
	DownloadHits  int
	DownloadNew   int
}

// Stats summarizes the live collection for status lines.
type Stats struct {
	Total        int
	Good         int
	Mastered     int
	Dropped      int
	DroppedBytes int64
}

// Session is the catalog view for one run.
type Session struct {
	cfg     *config.Config
	store   *store.Store
	drops   *droplog.Log
	probe   media.Probe
	logger  *slog.Logger
	lock    *flock.Flock
	entries []catalog.Entry
	spec    ranking.Spec
	counts  Counts
}

// Open acquires the session lock and connects to the catalog store. The
// session starts empty; call Reconcile to populate it.
func Open(cfg *config.Config, logger *slog.Logger, probe media.Probe) (*Session, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire session lock: %w", err)
	}
	if !ok {
		return nil, errors.New("another dvrshelf session is already using this catalog")
	}

	st, err := store.Open(cfg.DatabasePath())
	if err != nil {
		_ = lock.Unlock()
		return nil, err
	}

	return &Session{
		cfg:    cfg,
		store:  st,
		drops:  droplog.New(cfg.DropLogPath()),
		probe:  probe,
		logger: logger,
		lock:   lock,
		spec:   ranking.DefaultSpec,
	}, nil
}

// Close releases the store and the session lock.
func (s *Session) Close() error {
	err := s.store.Close()
	if unlockErr := s.lock.Unlock(); err == nil {
		err = unlockErr
	}
	return err
}

// Entries returns the live collection in its current order.
func (s *Session) Entries() []catalog.Entry {
	return s.entries
}

// Counts returns the result of the last reconciliation pass.
func (s *Session) Counts() Counts {
	return s.counts
}

// Spec returns the active sort specification.
func (s *Session) Spec() ranking.Spec {
	return s.spec
}

// Store exposes the underlying store for persisted-row queries such as Rank.
func (s *Session) Store() *store.Store {
	return s.store
}

// DropLogPath returns the append-only log that receives component paths on
// drop commits.
func (s *Session) DropLogPath() string {
	return s.drops.Path()
}

// Sort reorders the collection under a new specification. The order is
// recomputed from scratch on every change; catalogs are small enough that
// incremental re-ranking is not worth its complexity.
func (s *Session) Sort(spec ranking.Spec) error {
	if err := ranking.Sort(s.entries, spec); err != nil {
		return err
	}
	s.spec = spec
	return nil
}

// Stats aggregates flag counts over the live collection.
func (s *Session) Stats() Stats {
	stats := Stats{Total: len(s.entries)}
	for _, e := range s.entries {
		rec, ok := e.(*catalog.Recording)
		if !ok {
			continue
		}
		if rec.Good {
			stats.Good++
		}
		if rec.Mastered {
			stats.Mastered++
		}
		if rec.Dropped {
			stats.Dropped++
			stats.DroppedBytes += rec.FileSize
		}
	}
	return stats
}
