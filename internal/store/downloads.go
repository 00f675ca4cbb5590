package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/media"
)

const downloadColumns = `file_basename, file_size,
    dl_source, dl_title, dl_description,
    video_duration, video_height, video_width, video_fps,
    groupkey, comment`

// GetDownload fetches a download by identity, or nil when absent.
func (s *Store) GetDownload(ctx context.Context, basename string) (*catalog.Download, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+downloadColumns+` FROM downloads WHERE file_basename = ?`, basename)
	dl, err := scanDownload(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get download: %w", err)
	}
	return dl, nil
}

// AllDownloads returns the full cached download set. Downloads have no
// per-file meta sidecar, so reconciliation loads them once per session.
func (s *Store) AllDownloads(ctx context.Context) ([]*catalog.Download, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+downloadColumns+` FROM downloads ORDER BY file_basename`)
	if err != nil {
		return nil, fmt.Errorf("query downloads: %w", err)
	}
	defer rows.Close()

	var downloads []*catalog.Download
	for rows.Next() {
		dl, err := scanDownload(rows)
		if err != nil {
			return nil, err
		}
		downloads = append(downloads, dl)
	}
	return downloads, rows.Err()
}

// SaveDownload persists a download as a full replace, mirroring
// SaveRecording.
func (s *Store) SaveDownload(ctx context.Context, dl *catalog.Download) error {
	if dl == nil {
		return errors.New("download is nil")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := removeOne(ctx, tx, "downloads", dl.FileBasename); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO downloads (`+downloadColumns+`)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		dl.FileBasename,
		dl.FileSize,
		dl.Source,
		dl.Title,
		dl.Description,
		dl.Video.Duration,
		dl.Video.Height,
		dl.Video.Width,
		dl.Video.FPS,
		dl.Group,
		dl.Comment,
	)
	if err != nil {
		return fmt.Errorf("insert download: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// RemoveDownload deletes a download by identity.
func (s *Store) RemoveDownload(ctx context.Context, basename string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin remove tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := removeOne(ctx, tx, "downloads", basename); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit remove: %w", err)
	}
	return nil
}

func scanDownload(scanner interface{ Scan(dest ...any) error }) (*catalog.Download, error) {
	var (
		dl      catalog.Download
		metrics media.Metrics
	)
	if err := scanner.Scan(
		&dl.FileBasename,
		&dl.FileSize,
		&dl.Source,
		&dl.Title,
		&dl.Description,
		&metrics.Duration,
		&metrics.Height,
		&metrics.Width,
		&metrics.FPS,
		&dl.Group,
		&dl.Comment,
	); err != nil {
		return nil, err
	}
	dl.Video = metrics
	return &dl, nil
}
