package session

import (
	"fmt"
	"os"
	"strings"

	"dvrshelf/internal/catalog"
	"dvrshelf/internal/groupkey"
)

// Find returns every entry whose grouping key starts with the normalized
// needle, in the collection's current order. The needle goes through the same
// canonicalization as titles, so "Tages-schau" finds "Tagesschau".
func (s *Session) Find(needle string) []catalog.Entry {
	prefix := groupkey.Normalize(needle)
	if prefix == "" {
		return nil
	}
	var matches []catalog.Entry
	for _, e := range s.entries {
		if strings.HasPrefix(e.GroupKey(), prefix) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Lookup returns the entry with the given identity, recordings first.
func (s *Session) Lookup(identity string) (catalog.Entry, bool) {
	for _, e := range s.entries {
		if e.Identity() == identity {
			return e, true
		}
	}
	return nil, false
}

// EITText reads the recording's EIT sidecar and renders it with every
// non-printable byte replaced by a dot, which is enough to read the event
// description embedded in the DVB data.
func (s *Session) EITText(rec *catalog.Recording) (string, error) {
	if rec.BasePath == "" {
		return "", fmt.Errorf("recording %s has no file on disk", rec.FileBasename)
	}
	raw, err := os.ReadFile(rec.BasePath + s.cfg.Files.EITExtension)
	if err != nil {
		return "", fmt.Errorf("read eit file: %w", err)
	}
	printable := make([]byte, len(raw))
	for i, b := range raw {
		if b >= ' ' && b <= '~' {
			printable[i] = b
		} else {
			printable[i] = '.'
		}
	}
	return string(printable), nil
}
