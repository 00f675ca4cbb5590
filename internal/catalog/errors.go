package catalog

import "errors"

var (
	// ErrCacheInconsistent marks a stored file size that disagrees with the
	// size measured from disk. The cache cannot be trusted past this point.
	ErrCacheInconsistent = errors.New("cache inconsistent with disk")

	// ErrMissingMeta marks a scanned recording whose companion meta file is
	// absent. The file is skipped, not catalogued.
	ErrMissingMeta = errors.New("companion meta file missing")

	// ErrMalformedName marks a download filename that does not match the
	// expected naming pattern. A download with no derivable metadata cannot
	// be catalogued.
	ErrMalformedName = errors.New("download filename does not match pattern")
)
