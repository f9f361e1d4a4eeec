package transcriber

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Transcribe orchestrates the full run for one media file: normalize to
// MP3, measure the encoded size, then take either the whole-file or the
// chunked path. The normalized temp file is always removed before return.
func (t *implTranscriber) Transcribe(ctx context.Context, mediaPath string, onProgress Progress) (string, error) {
	audioPath, err := t.audio.Reencode(ctx, mediaPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer t.removeTemp(ctx, audioPath)

	info, err := os.Stat(audioPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}

	if info.Size() <= t.wholeLimit {
		t.logger.Info(ctx, "Audio is %.2f MiB, transcribing directly", mib(info.Size()))
		text, err := t.TranscribeWhole(ctx, audioPath)
		if err != nil {
			return "", err
		}
		if onProgress != nil {
			onProgress(1, 1)
		}
		return text, nil
	}

	t.logger.Info(ctx, "Audio is %.2f MiB, splitting into %s chunks", mib(info.Size()), t.chunkLen)
	return t.TranscribeChunked(ctx, audioPath, onProgress)
}

func (t *implTranscriber) TranscribeWhole(ctx context.Context, audioPath string) (string, error) {
	text, err := t.stt.Transcribe(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTranscription, err)
	}
	return text, nil
}

func (t *implTranscriber) TranscribeChunked(ctx context.Context, audioPath string, onProgress Progress) (string, error) {
	total, err := t.audio.Duration(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if total <= 0 {
		return "", fmt.Errorf("%w: audio reports no duration", ErrDecode)
	}

	spans := planChunks(total, t.chunkLen)
	t.logger.Info(ctx, "Transcribing %d chunks sequentially", len(spans))

	parts := make([]string, 0, len(spans))
	for _, s := range spans {
		text, err := t.transcribeSpan(ctx, audioPath, s)
		if err != nil {
			// First failure aborts the run; no partial transcript.
			return "", err
		}
		parts = append(parts, text)
		if onProgress != nil {
			onProgress(s.index+1, len(spans))
		}
	}

	return strings.Join(parts, "\n"), nil
}

// transcribeSpan cuts one chunk out of the audio, transcribes it, and
// removes the chunk's temp file on both the success and failure path.
func (t *implTranscriber) transcribeSpan(ctx context.Context, audioPath string, s span) (string, error) {
	clipPath, err := t.audio.ExtractClip(ctx, audioPath, s.start, s.end-s.start)
	if err != nil {
		return "", fmt.Errorf("chunk %d: %w: %w", s.index, ErrChunkEncode, err)
	}
	defer t.removeTemp(ctx, clipPath)

	text, err := t.stt.Transcribe(ctx, clipPath)
	if err != nil {
		return "", fmt.Errorf("chunk %d: %w: %w", s.index, ErrTranscription, err)
	}
	return text, nil
}

func (t *implTranscriber) removeTemp(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "Failed to remove temp file %s: %v", path, err)
	}
}

func mib(size int64) float64 {
	return float64(size) / (1024 * 1024)
}
