package utils

import (
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

type probeFormat struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// GetVideoDuration probes the media file and returns its duration in seconds.
func GetVideoDuration(videoPath string) (float64, error) {
	out, err := ffmpeg.Probe(videoPath)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to probe video file")
	}
	var probe probeFormat
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, errors.WithMessage(err, "failed to parse probe output")
	}
	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, errors.WithMessage(err, "failed to parse video duration")
	}
	return duration, nil
}
