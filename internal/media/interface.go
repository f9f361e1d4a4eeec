package media

import (
	"context"
	"time"
)

// Converter exposes the audio tooling the transcription pipeline depends on.
type Converter interface {
	// Reencode transcodes any supported audio/video input to a compact
	// mono MP3 and returns the path of the new temp file.
	Reencode(ctx context.Context, inputPath string) (string, error)
	// Duration probes the total duration of an audio file.
	Duration(ctx context.Context, audioPath string) (time.Duration, error)
	// ExtractClip re-encodes the range [start, start+length) of an audio
	// file into a new temp MP3 and returns its path.
	ExtractClip(ctx context.Context, audioPath string, start, length time.Duration) (string, error)
}

// Downloader fetches remote media (e.g. a video URL) into a local audio file.
type Downloader interface {
	Download(ctx context.Context, url string) (string, error)
}

// Media bundles the external media capabilities.
type Media interface {
	Converter
	Downloader
}
