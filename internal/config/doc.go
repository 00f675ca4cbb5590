// Package config loads, normalizes, and validates dvrshelf configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: scan roots, the data directory holding the catalog database
// and the drop log, file extension sets, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
