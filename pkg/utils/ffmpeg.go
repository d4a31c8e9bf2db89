package utils

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// DurationProber reports the playing time of a local media file in seconds.
type DurationProber interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// FFProbe shells out to ffprobe.
type FFProbe struct{}

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

func (FFProbe) Duration(ctx context.Context, path string) (float64, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to probe the video")
	}
	return ParseProbeDuration(out)
}

// ParseProbeDuration extracts format.duration from ffprobe's JSON output.
func ParseProbeDuration(out string) (float64, error) {
	var p probeOutput
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		return 0, errors.WithMessage(err, "Failed to decode probe output")
	}
	if p.Format.Duration == "" {
		return 0, errors.New("probe output has no duration")
	}
	d, err := strconv.ParseFloat(p.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "Failed to parse duration")
	}
	return d, nil
}
