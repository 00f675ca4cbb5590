// Package scan walks scan roots for media files by extension.
//
// Unreadable directories are skipped rather than failing the pass; a missing
// root is normal when a mount is offline and only degrades the session to
// whatever the cache provides.
package scan

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
)

// Files returns every file under roots whose name ends in one of the
// extensions, recursing into subdirectories. Results are sorted for
// deterministic reconciliation order.
func Files(roots []string, extensions []string, logger *slog.Logger) []string {
	var files []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logger.Debug("skipping unreadable path", slog.String("path", path), slog.Any("error", err))
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			for _, ext := range extensions {
				if strings.HasSuffix(d.Name(), ext) {
					files = append(files, path)
					break
				}
			}
			return nil
		})
		if err != nil {
			logger.Warn("scan root failed", slog.String("root", root), slog.Any("error", err))
		}
	}
	sort.Strings(files)
	return files
}
