package testsupport

import (
	"context"

	"dvrshelf/internal/media"
)

// StaticProbe returns canned metrics for every file instead of shelling out
// to ffprobe.
type StaticProbe struct {
	Metrics media.Metrics
	Err     error
}

// DefaultProbe returns a StaticProbe resembling an HD broadcast capture.
func DefaultProbe() *StaticProbe {
	return &StaticProbe{Metrics: media.Metrics{Duration: 5400, Height: 720, Width: 1280, FPS: 50}}
}

// Inspect implements media.Probe.
func (p *StaticProbe) Inspect(context.Context, string) (media.Metrics, error) {
	if p.Err != nil {
		return media.Metrics{}, p.Err
	}
	return p.Metrics, nil
}
