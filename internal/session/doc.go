// Package session owns the authoritative in-memory entry collection for one
// run.
//
// A Session is built by reconciling a fresh file-system scan against the
// persistent store: cached entries are verified against disk, new files are
// parsed and persisted, and mastered recordings survive even when their
// source files are gone. The lifecycle is open, reconcile, then any number of
// sort and mutate steps, then an optional drop-commit, then close. There is
// exactly one logical actor; a lock file keeps a second session away from the
// same catalog.
package session
