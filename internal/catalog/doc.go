// Package catalog defines the entry model shared by the store, the
// reconciliation session, and the ranking engine.
//
// An Entry is either a Recording captured from the broadcast receiver or a
// separately sourced Download. Both variants render a fixed-width summary
// line, expose a grouping key derived from their title, and answer sort-value
// queries for every recognized criterion so the ranking layer never needs to
// inspect concrete types. Constructors enforce identity and normalization
// invariants: the grouping key is computed exactly once, at build time.
package catalog
