// Package media probes technical video metadata from files on disk.
//
// The Probe interface keeps the catalog decoupled from the ffprobe binary so
// tests can supply canned metrics without shelling out.
package media
