package media

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Metrics describes the measured properties of a video file.
type Metrics struct {
	Duration int // seconds; -1 when the frame rate is unmeasurable
	Height   int
	Width    int
	FPS      int
}

// Probe extracts Metrics from a media file path.
type Probe interface {
	Inspect(ctx context.Context, path string) (Metrics, error)
}

// FFProbe inspects files by invoking the ffprobe binary.
type FFProbe struct {
	// Binary overrides the ffprobe executable name. Empty means "ffprobe".
	Binary string
}

type ffprobeOutput struct {
	Streams []struct {
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		RFrameRate string `json:"r_frame_rate"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Inspect runs ffprobe against path and parses its JSON output.
func (p *FFProbe) Inspect(ctx context.Context, path string) (Metrics, error) {
	binary := p.Binary
	if binary == "" {
		binary = "ffprobe"
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,r_frame_rate",
		"-show_entries", "format=duration",
		"-of", "json",
		path,
	)
	out, err := cmd.Output()
	if err != nil {
		return Metrics{}, fmt.Errorf("probe %s: %w", path, err)
	}

	var parsed ffprobeOutput
	if err := json.Unmarshal(out, &parsed); err != nil {
		return Metrics{}, fmt.Errorf("parse probe output for %s: %w", path, err)
	}

	metrics := Metrics{}
	if len(parsed.Streams) > 0 {
		stream := parsed.Streams[0]
		metrics.Width = stream.Width
		metrics.Height = stream.Height
		metrics.FPS = parseFrameRate(stream.RFrameRate)
	}
	metrics.Duration = parseDuration(parsed.Format.Duration, metrics.FPS)
	return metrics, nil
}

// parseFrameRate converts an ffprobe rational like "25/1" to whole frames per
// second, returning 0 when the rate cannot be measured.
func parseFrameRate(raw string) int {
	num, den, ok := strings.Cut(strings.TrimSpace(raw), "/")
	if !ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0
		}
		return n
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0
	}
	d, err := strconv.Atoi(den)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}

// parseDuration returns whole seconds, or -1 when fps is zero so callers can
// tell "unmeasurable" apart from "empty file".
func parseDuration(raw string, fps int) int {
	if fps == 0 {
		return -1
	}
	seconds, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return -1
	}
	return int(seconds)
}
