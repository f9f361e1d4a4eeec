package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

func downloadArgs(url, outputTemplate string) []string {
	return []string{
		"-f", "m4a/bestaudio/best",
		"-x",
		"--audio-format", "m4a",
		"-o", outputTemplate,
		"--no-warnings",
		"--quiet",
		url,
	}
}

// Download fetches the audio track of a remote video via yt-dlp and
// returns the path of the downloaded m4a file.
func (m *implMedia) Download(ctx context.Context, url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", fmt.Errorf("unsupported url scheme: %s", url)
	}

	if err := os.MkdirAll(m.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	base := filepath.Join(m.tempDir, uuid.NewString())

	m.logger.Info(ctx, "Downloading audio: %s", url)

	if _, err := m.executor.Execute(ctx, "yt-dlp", downloadArgs(url, base+".%(ext)s")...); err != nil {
		return "", fmt.Errorf("yt-dlp download: %w", err)
	}

	audioPath := base + ".m4a"
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("downloaded audio missing: %w", err)
	}

	m.logger.Info(ctx, "Downloaded audio: %s", audioPath)
	return audioPath, nil
}
