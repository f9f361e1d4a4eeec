package speech

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/scribeflow/scribeflow/internal/logger"
)

type implWhisper struct {
	cli     *openai.Client
	model   string
	timeout time.Duration
	logger  logger.Logger
}

// NewWhisper creates a SpeechToText backed by the hosted Whisper API.
// The provider rejects payloads over 25 MiB; callers are expected to keep
// requests under that.
func NewWhisper(apiKey, model string, timeout time.Duration, log logger.Logger) SpeechToText {
	return &implWhisper{
		cli:     openai.NewClient(apiKey),
		model:   model,
		timeout: timeout,
		logger:  log,
	}
}

func (w *implWhisper) Transcribe(ctx context.Context, audioPath string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	w.logger.Debug(ctx, "Transcribing %s with %s", audioPath, w.model)

	resp, err := w.cli.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("whisper transcription: %w", err)
	}

	return cleanTranscript(resp.Text)
}

// cleanTranscript trims provider whitespace and rejects empty results, so
// a silent chunk surfaces as an error rather than a blank transcript line.
func cleanTranscript(raw string) (string, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "", fmt.Errorf("empty transcription result")
	}
	return text, nil
}
