package transcriber

import "errors"

var (
	// ErrDecode means the source media could not be converted or probed.
	ErrDecode = errors.New("decode audio")
	// ErrChunkEncode means a chunk could not be cut out of the audio.
	ErrChunkEncode = errors.New("encode chunk")
	// ErrTranscription means the speech-to-text call failed.
	ErrTranscription = errors.New("transcription failed")
)
