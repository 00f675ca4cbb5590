// Package ranking computes the user-selectable total order over a catalog
// session.
//
// A Spec names one criterion from a fixed allow-list plus a direction.
// Attribute criteria compare per-entry fields; aggregate criteria compare a
// statistic over all entries sharing a grouping key, so duplicate recordings
// cluster together. The secondary order is always grouping key then timestamp,
// both ascending, regardless of the requested direction. Ordering is a
// transient view over the in-memory collection and is never persisted.
package ranking
