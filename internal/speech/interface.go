package speech

import "context"

// SpeechToText converts one audio file into plain text.
type SpeechToText interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
