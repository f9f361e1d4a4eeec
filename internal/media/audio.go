package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// reencodeArgs builds the ffmpeg arguments for normalizing any audio/video
// input to 16kHz mono MP3.
// -vn: drop video streams
// -ac 1 / -ar 16000: mono, 16kHz (what speech models are trained on)
// -b:a 64k: keeps a 10-minute chunk well under the provider payload limit
func reencodeArgs(inputPath, outputPath string) []string {
	return []string{
		"-i", inputPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "libmp3lame",
		"-b:a", "64k",
		"-threads", "0",
		"-y",
		outputPath,
	}
}

// clipArgs builds the ffmpeg arguments for cutting [start, start+length)
// out of an audio file. The slice is re-encoded rather than stream-copied
// so chunk boundaries land on clean MP3 frames.
func clipArgs(srcPath, outputPath string, start, length time.Duration) []string {
	return []string{
		"-ss", formatSeconds(start),
		"-i", srcPath,
		"-t", formatSeconds(length),
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "libmp3lame",
		"-b:a", "64k",
		"-y",
		outputPath,
	}
}

func formatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 3, 64)
}

func (m *implMedia) tempPath(ext string) (string, error) {
	if err := os.MkdirAll(m.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	return filepath.Join(m.tempDir, uuid.NewString()+ext), nil
}

func (m *implMedia) Reencode(ctx context.Context, inputPath string) (string, error) {
	outputPath, err := m.tempPath(".mp3")
	if err != nil {
		return "", err
	}

	m.logger.Info(ctx, "Converting to MP3: %s", inputPath)

	if _, err := m.executor.Execute(ctx, "ffmpeg", reencodeArgs(inputPath, outputPath)...); err != nil {
		return "", fmt.Errorf("ffmpeg reencode: %w", err)
	}

	m.logger.Debug(ctx, "Converted audio: %s", outputPath)
	return outputPath, nil
}

func (m *implMedia) ExtractClip(ctx context.Context, audioPath string, start, length time.Duration) (string, error) {
	outputPath, err := m.tempPath(".mp3")
	if err != nil {
		return "", err
	}

	m.logger.Debug(ctx, "Extracting clip %s+%s from %s", start, length, audioPath)

	if _, err := m.executor.Execute(ctx, "ffmpeg", clipArgs(audioPath, outputPath, start, length)...); err != nil {
		return "", fmt.Errorf("ffmpeg extract clip: %w", err)
	}

	return outputPath, nil
}
