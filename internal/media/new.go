package media

import (
	"github.com/scribeflow/scribeflow/internal/logger"
	"github.com/scribeflow/scribeflow/pkg/executor"
)

type implMedia struct {
	executor executor.Executor
	logger   logger.Logger
	tempDir  string
}

// New creates a Media instance that shells out to ffmpeg, ffprobe and
// yt-dlp, writing intermediate files into tempDir.
func New(exec executor.Executor, log logger.Logger, tempDir string) Media {
	return &implMedia{
		executor: exec,
		logger:   log,
		tempDir:  tempDir,
	}
}
