package session_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/config"
	"dvrshelf/internal/logging"
	"dvrshelf/internal/media"
	"dvrshelf/internal/ranking"
	"dvrshelf/internal/session"
	"dvrshelf/internal/store"
	"dvrshelf/internal/testsupport"
)

func openSession(t *testing.T, cfg *config.Config) *session.Session {
	t.Helper()
	sess, err := session.Open(cfg, logging.NewNop(), testsupport.DefaultProbe())
	require.NoError(t, err)
	t.Cleanup(func() {
		sess.Close()
	})
	return sess
}

// seedStore writes rows directly, before the session takes the catalog over.
func seedStore(t *testing.T, cfg *config.Config, seed func(*store.Store)) {
	t.Helper()
	st, err := store.Open(cfg.DatabasePath())
	require.NoError(t, err)
	seed(st)
	require.NoError(t, st.Close())
}

func cachedRecording(basename string, size int64) *catalog.Recording {
	return &catalog.Recording{
		FileBasename: basename,
		FileSize:     size,
		EPGChannel:   "Das Erste HD",
		EPGTitle:     "Tagesschau",
		Video:        media.Metrics{Duration: 5400, Height: 720, Width: 1280, FPS: 50},
		Group:        "tagesschau",
		Timestamp:    "2024-01-31 20:15",
	}
}

func TestReconcileCounts(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.RecordingDir(t, cfg)

	names := []string{
		"20240131 2015 - Das Erste HD - Tagesschau",
		"20240201 2015 - Das Erste HD - Tagesschau",
		"20240202 2015 - ZDF HD - Tatort",
	}
	for _, name := range names {
		testsupport.WriteRecordingFiles(t, dir, name, "Kanal", "Titel", "Beschreibung", 64)
	}

	seedStore(t, cfg, func(st *store.Store) {
		for _, name := range names[:2] {
			require.NoError(t, st.SaveRecording(context.Background(), cachedRecording(name, 64)))
		}
	})

	sess := openSession(t, cfg)
	require.NoError(t, sess.Reconcile(context.Background()))

	counts := sess.Counts()
	assert.Equal(t, 3, counts.RecordingFiles)
	assert.Equal(t, 2, counts.RecordingHits)
	assert.Equal(t, 1, counts.RecordingNew)
	assert.Len(t, sess.Entries(), 3)

	// The fresh entry was written through to the store.
	loaded, err := sess.Store().GetRecording(context.Background(), names[2])
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "2024-02-02 20:15", loaded.Timestamp)
}

func TestReconcileIsIdempotent(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.RecordingDir(t, cfg)
	testsupport.WriteRecordingFiles(t, dir, "20240131 2015 - Das Erste HD - Tagesschau", "Das Erste HD", "Tagesschau", "Nachrichten", 64)

	sess := openSession(t, cfg)
	require.NoError(t, sess.Reconcile(context.Background()))
	require.Equal(t, 1, sess.Counts().RecordingNew)

	first := identities(sess.Entries())

	require.NoError(t, sess.Reconcile(context.Background()))
	assert.Equal(t, 0, sess.Counts().RecordingNew)
	assert.Equal(t, 1, sess.Counts().RecordingHits)
	assert.Equal(t, first, identities(sess.Entries()))
}

func TestReconcileMissingMetaSkips(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.RecordingDir(t, cfg)
	basepath := testsupport.WriteRecordingFiles(t, dir, "20240131 2015 - Das Erste HD - Tagesschau", "Das Erste HD", "Tagesschau", "Nachrichten", 64)
	require.NoError(t, os.Remove(basepath+".ts.meta"))

	sess := openSession(t, cfg)
	require.NoError(t, sess.Reconcile(context.Background()))

	assert.Empty(t, sess.Entries())
	assert.Equal(t, 1, sess.Counts().RecordingsSkipped)
}

func TestReconcileCacheMismatchIsFatal(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.RecordingDir(t, cfg)
	name := "20240131 2015 - Das Erste HD - Tagesschau"
	testsupport.WriteRecordingFiles(t, dir, name, "Das Erste HD", "Tagesschau", "Nachrichten", 64)

	seedStore(t, cfg, func(st *store.Store) {
		require.NoError(t, st.SaveRecording(context.Background(), cachedRecording(name, 999)))
	})

	sess := openSession(t, cfg)
	err := sess.Reconcile(context.Background())
	require.ErrorIs(t, err, catalog.ErrCacheInconsistent)
}

func TestMasteredRecordingSurvivesMissingFile(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	name := "20240131 2015 - Das Erste HD - Tagesschau"

	seedStore(t, cfg, func(st *store.Store) {
		rec := cachedRecording(name, 64)
		rec.Mastered = true
		require.NoError(t, st.SaveRecording(context.Background(), rec))
	})

	sess := openSession(t, cfg)
	require.NoError(t, sess.Reconcile(context.Background()))

	require.Len(t, sess.Entries(), 1)
	rec, ok := sess.Entries()[0].(*catalog.Recording)
	require.True(t, ok)
	assert.Equal(t, name, rec.FileBasename)
	assert.Empty(t, rec.BasePath)
	assert.Zero(t, rec.FileSize)
	assert.Equal(t, 1, sess.Counts().MasteredSurvivors)
}

func TestReconcileDownloads(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.DownloadDir(t, cfg)
	testsupport.WriteDownloadFile(t, dir, "Heat (1995) [src=web] - remux.mp4", 128)

	sess := openSession(t, cfg)
	require.NoError(t, sess.Reconcile(context.Background()))

	require.Len(t, sess.Entries(), 1)
	dl, ok := sess.Entries()[0].(*catalog.Download)
	require.True(t, ok)
	assert.Equal(t, "Heat", dl.Title)
	assert.Equal(t, "remux", dl.Source)
	assert.Equal(t, "1995 (src=web)", dl.Description)
	assert.Equal(t, ".mp4", dl.FileExtension)
	assert.Equal(t, 1, sess.Counts().DownloadNew)

	// A second reconcile must match the cached row instead of re-parsing.
	require.NoError(t, sess.Reconcile(context.Background()))
	assert.Equal(t, 1, sess.Counts().DownloadHits)
	assert.Equal(t, 0, sess.Counts().DownloadNew)
}

func TestReconcileMalformedDownloadNameIsFatal(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.DownloadDir(t, cfg)
	testsupport.WriteDownloadFile(t, dir, "random-rip.mp4", 128)

	sess := openSession(t, cfg)
	err := sess.Reconcile(context.Background())
	require.ErrorIs(t, err, catalog.ErrMalformedName)
}

func TestMutationExclusionRules(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.RecordingDir(t, cfg)
	masteredName := "20240131 2015 - Das Erste HD - Tagesschau"
	droppedName := "20240201 2015 - ZDF HD - Tatort"
	testsupport.WriteRecordingFiles(t, dir, masteredName, "Das Erste HD", "Tagesschau", "Nachrichten", 64)
	testsupport.WriteRecordingFiles(t, dir, droppedName, "ZDF HD", "Tatort", "Krimi", 64)

	sess := openSession(t, cfg)
	ctx := context.Background()
	require.NoError(t, sess.Reconcile(ctx))

	mastered, ok := sess.Lookup(masteredName)
	require.True(t, ok)
	dropped, ok := sess.Lookup(droppedName)
	require.True(t, ok)

	changed, err := sess.MarkMastered(ctx, []catalog.Entry{mastered})
	require.NoError(t, err)
	require.Len(t, changed, 1)
	changed, err = sess.MarkDropped(ctx, []catalog.Entry{dropped})
	require.NoError(t, err)
	require.Len(t, changed, 1)

	// Mastered entries shrug off drop marks; dropped entries shrug off
	// mastered marks. Neither is an error.
	changed, err = sess.MarkDropped(ctx, []catalog.Entry{mastered})
	require.NoError(t, err)
	assert.Empty(t, changed)
	assert.False(t, mastered.(*catalog.Recording).Dropped)

	changed, err = sess.MarkMastered(ctx, []catalog.Entry{dropped})
	require.NoError(t, err)
	assert.Empty(t, changed)
	assert.False(t, dropped.(*catalog.Recording).Mastered)
}

func TestSetCommentPersists(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.RecordingDir(t, cfg)
	name := "20240131 2015 - Das Erste HD - Tagesschau"
	testsupport.WriteRecordingFiles(t, dir, name, "Das Erste HD", "Tagesschau", "Nachrichten", 64)

	sess := openSession(t, cfg)
	ctx := context.Background()
	require.NoError(t, sess.Reconcile(ctx))

	entry, ok := sess.Lookup(name)
	require.True(t, ok)
	_, err := sess.SetComment(ctx, []catalog.Entry{entry}, "keep until rerun airs")
	require.NoError(t, err)

	loaded, err := sess.Store().GetRecording(ctx, name)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "keep until rerun airs", loaded.Comment)
}

func TestCommitDrops(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.RecordingDir(t, cfg)
	name := "20240131 2015 - Das Erste HD - Tagesschau"
	basepath := testsupport.WriteRecordingFiles(t, dir, name, "Das Erste HD", "Tagesschau", "Nachrichten", 64)
	testsupport.WriteComponentFiles(t, basepath, ".eit", ".ts.ap", ".ts.cuts", ".ts.sc")

	sess := openSession(t, cfg)
	ctx := context.Background()
	require.NoError(t, sess.Reconcile(ctx))

	entry, ok := sess.Lookup(name)
	require.True(t, ok)
	_, err := sess.MarkDropped(ctx, []catalog.Entry{entry})
	require.NoError(t, err)

	removed, err := sess.CommitDrops(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Empty(t, sess.Entries())

	loaded, err := sess.Store().GetRecording(ctx, name)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	data, err := os.ReadFile(cfg.DropLogPath())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	// All six component files exist for this fixture.
	assert.Len(t, lines, 6)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, basepath), "unexpected drop log line %q", line)
	}
}

func TestSessionLockIsExclusive(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	openSession(t, cfg)

	_, err := session.Open(cfg, logging.NewNop(), testsupport.DefaultProbe())
	require.Error(t, err)
}

func TestFindMatchesNormalizedPrefix(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.RecordingDir(t, cfg)
	testsupport.WriteRecordingFiles(t, dir, "20240131 2015 - Das Erste HD - Tagesschau", "Das Erste HD", "Tagesschau", "Nachrichten", 64)
	testsupport.WriteRecordingFiles(t, dir, "20240201 2015 - ZDF HD - Tatort", "ZDF HD", "Tatort", "Krimi", 64)

	sess := openSession(t, cfg)
	require.NoError(t, sess.Reconcile(context.Background()))

	matches := sess.Find("Tages-schau")
	require.Len(t, matches, 1)
	assert.Equal(t, "tagesschau", matches[0].GroupKey())

	assert.Empty(t, sess.Find("nothing"))
	assert.Empty(t, sess.Find("?!"))
}

func TestSortSwitchesSpecification(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := testsupport.RecordingDir(t, cfg)
	testsupport.WriteRecordingFiles(t, dir, "20240131 2015 - Das Erste HD - Bbb", "Das Erste HD", "Bbb", "x", 256)
	testsupport.WriteRecordingFiles(t, dir, "20240201 2015 - ZDF HD - Aaa", "ZDF HD", "Aaa", "y", 64)

	sess := openSession(t, cfg)
	require.NoError(t, sess.Reconcile(context.Background()))

	// Default order is by title ascending.
	assert.Equal(t, "aaa", sess.Entries()[0].GroupKey())

	require.NoError(t, sess.Sort(ranking.Spec{Criterion: ranking.BySize, Direction: ranking.Descending}))
	assert.Equal(t, "bbb", sess.Entries()[0].GroupKey())

	err := sess.Sort(ranking.Spec{Criterion: "bogus"})
	require.ErrorIs(t, err, ranking.ErrUnknownCriterion)
}

func identities(entries []catalog.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Identity()
	}
	return out
}
