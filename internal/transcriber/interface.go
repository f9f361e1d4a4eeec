package transcriber

import "context"

// SpeechToText is the transcription capability invoked once per chunk, or
// once for a whole file. Implementations own their retry policy; the
// pipeline performs none.
type SpeechToText interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Progress receives (chunksCompleted, totalChunks) after each chunk
// finishes. Purely informational; it has no effect on the pipeline.
type Progress func(completed, total int)

// Transcriber turns a media file into a single ordered transcript.
type Transcriber interface {
	// Transcribe normalizes the media to MP3, then dispatches on encoded
	// size: at or below the whole-file limit it transcribes in one
	// request, above it the audio is split into fixed-length chunks.
	Transcribe(ctx context.Context, mediaPath string, onProgress Progress) (string, error)

	// TranscribeWhole transcribes an already-normalized audio file in a
	// single request.
	TranscribeWhole(ctx context.Context, audioPath string) (string, error)

	// TranscribeChunked splits an already-normalized audio file into
	// fixed-length chunks, transcribes them in order, and joins the parts
	// with newlines. Any chunk failure aborts the whole run; no partial
	// transcript is returned.
	TranscribeChunked(ctx context.Context, audioPath string, onProgress Progress) (string, error)
}
