package session

import (
	"context"
	"log/slog"
	"os"

	"dvrshelf/internal/catalog"
)

// CommitDrops irreversibly removes every dropped recording from the catalog.
// For each one, the paths of its existing component files are appended to the
// drop log before the store row goes away; deleting the files themselves is
// left to whatever consumes the log. Returns the number of entries removed.
// There is no undo.
func (s *Session) CommitDrops(ctx context.Context) (int, error) {
	removed := make(map[string]struct{})

	for _, e := range s.entries {
		rec, ok := e.(*catalog.Recording)
		if !ok || !rec.Dropped {
			continue
		}

		var paths []string
		if rec.BasePath != "" {
			for _, ext := range s.cfg.Files.ComponentExtensions {
				path := rec.BasePath + ext
				if _, err := os.Stat(path); err == nil {
					paths = append(paths, path)
				}
			}
		}
		if err := s.drops.Append(paths...); err != nil {
			return len(removed), err
		}
		if err := s.store.RemoveRecording(ctx, rec.FileBasename); err != nil {
			return len(removed), err
		}

		removed[rec.FileBasename] = struct{}{}
		s.logger.Info("dropped recording",
			slog.String("basename", rec.FileBasename),
			slog.Int("component_files", len(paths)))
	}

	if len(removed) == 0 {
		return 0, nil
	}

	kept := s.entries[:0]
	for _, e := range s.entries {
		if e.Kind() == catalog.KindRecording {
			if _, gone := removed[e.Identity()]; gone {
				continue
			}
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return len(removed), nil
}
