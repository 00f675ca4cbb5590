// Package store persists the media catalog in SQLite.
//
// Two row sets, recordings and downloads, are keyed by file basename in
// independent namespaces. Saves are full replaces (delete then insert) so a
// stale row can never shine through a partial update, and removals that touch
// more than one row abort instead of papering over an identity-uniqueness
// violation. Rank computes dense orderings directly in SQL but only for
// criteria on a fixed allow-list; free-form sort expressions never reach the
// query layer.
//
// The database is the durable half of the catalog: the in-memory session is
// rebuilt from it and the file system on every run.
package store
