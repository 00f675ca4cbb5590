package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/media"
)

const recordingColumns = `file_basename, file_size,
    epg_channel, epg_title, epg_description,
    video_duration, video_height, video_width, video_fps,
    is_good, is_dropped, is_mastered,
    groupkey, comment, timestamp`

// GetRecording fetches a recording by identity, or nil when absent.
func (s *Store) GetRecording(ctx context.Context, basename string) (*catalog.Recording, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+recordingColumns+` FROM recordings WHERE file_basename = ?`, basename)
	rec, err := scanRecording(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recording: %w", err)
	}
	return rec, nil
}

// MasteredRecordings returns every recording flagged mastered, regardless of
// whether its source file still exists on disk.
func (s *Store) MasteredRecordings(ctx context.Context) ([]*catalog.Recording, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+recordingColumns+` FROM recordings WHERE is_mastered = 1 ORDER BY file_basename`)
	if err != nil {
		return nil, fmt.Errorf("query mastered recordings: %w", err)
	}
	defer rows.Close()

	var recordings []*catalog.Recording
	for rows.Next() {
		rec, err := scanRecording(rows)
		if err != nil {
			return nil, err
		}
		recordings = append(recordings, rec)
	}
	return recordings, rows.Err()
}

// SaveRecording persists a recording as a full replace: any previous row with
// the same identity is deleted before the insert, inside one transaction.
func (s *Store) SaveRecording(ctx context.Context, rec *catalog.Recording) error {
	if rec == nil {
		return errors.New("recording is nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := removeOne(ctx, tx, "recordings", rec.FileBasename); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO recordings (`+recordingColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.FileBasename,
		rec.FileSize,
		rec.EPGChannel,
		rec.EPGTitle,
		rec.EPGDescription,
		rec.Video.Duration,
		rec.Video.Height,
		rec.Video.Width,
		rec.Video.FPS,
		boolToInt(rec.Good),
		boolToInt(rec.Dropped),
		boolToInt(rec.Mastered),
		rec.Group,
		rec.Comment,
		rec.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert recording: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// RemoveRecording deletes a recording by identity.
func (s *Store) RemoveRecording(ctx context.Context, basename string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin remove tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := removeOne(ctx, tx, "recordings", basename); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit remove: %w", err)
	}
	return nil
}

// removeOne deletes by identity and verifies at most one row was touched.
func removeOne(ctx context.Context, tx *sql.Tx, table, basename string) error {
	var res sql.Result
	var err error
	switch table {
	case "recordings":
		res, err = tx.ExecContext(ctx, `DELETE FROM recordings WHERE file_basename = ?`, basename)
	case "downloads":
		res, err = tx.ExecContext(ctx, `DELETE FROM downloads WHERE file_basename = ?`, basename)
	default:
		return fmt.Errorf("unknown table %q", table)
	}
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected > 1 {
		return fmt.Errorf("%w: %s %q removed %d rows", ErrRemovalAnomaly, table, basename, affected)
	}
	return nil
}

func scanRecording(scanner interface{ Scan(dest ...any) error }) (*catalog.Recording, error) {
	var (
		rec      catalog.Recording
		metrics  media.Metrics
		good     int
		dropped  int
		mastered int
	)
	if err := scanner.Scan(
		&rec.FileBasename,
		&rec.FileSize,
		&rec.EPGChannel,
		&rec.EPGTitle,
		&rec.EPGDescription,
		&metrics.Duration,
		&metrics.Height,
		&metrics.Width,
		&metrics.FPS,
		&good,
		&dropped,
		&mastered,
		&rec.Group,
		&rec.Comment,
		&rec.Timestamp,
	); err != nil {
		return nil, err
	}
	rec.Video = metrics
	rec.Good = good != 0
	rec.Dropped = dropped != 0
	rec.Mastered = mastered != 0
	return &rec, nil
}
