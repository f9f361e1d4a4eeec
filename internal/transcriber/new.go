package transcriber

import (
	"time"

	"github.com/scribeflow/scribeflow/internal/logger"
	"github.com/scribeflow/scribeflow/internal/media"
)

type implTranscriber struct {
	audio      media.Converter
	stt        SpeechToText
	logger     logger.Logger
	chunkLen   time.Duration
	wholeLimit int64
}

// New creates a Transcriber. chunkLen is the fixed chunk duration for the
// chunked path; wholeLimit is the encoded byte size at or below which a
// file is sent in a single request.
func New(audio media.Converter, stt SpeechToText, log logger.Logger, chunkLen time.Duration, wholeLimit int64) Transcriber {
	if chunkLen <= 0 {
		chunkLen = 10 * time.Minute
	}
	if wholeLimit <= 0 {
		wholeLimit = 24 << 20
	}
	return &implTranscriber{
		audio:      audio,
		stt:        stt,
		logger:     log,
		chunkLen:   chunkLen,
		wholeLimit: wholeLimit,
	}
}
