// Package main hosts the dvrshelf CLI entrypoint and command graph.
//
// The Cobra-based command tree opens a reconciled catalog session per
// invocation and surfaces listing, searching, flag mutation, drop commits,
// and configuration scaffolding. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
