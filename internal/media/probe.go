package media

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

func probeArgs(audioPath string) []string {
	return []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		audioPath,
	}
}

// Duration probes an audio file's total duration via ffprobe.
func (m *implMedia) Duration(ctx context.Context, audioPath string) (time.Duration, error) {
	out, err := m.executor.Execute(ctx, "ffprobe", probeArgs(audioPath)...)
	if err != nil {
		return 0, fmt.Errorf("ffprobe duration: %w", err)
	}

	return parseDuration(out)
}

func parseDuration(out string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, fmt.Errorf("parse ffprobe duration %q: %w", strings.TrimSpace(out), err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("negative duration %f", seconds)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}
