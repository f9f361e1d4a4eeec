package processor

import (
	"github.com/scribeflow/scribeflow/internal/analyzer"
	"github.com/scribeflow/scribeflow/internal/config"
	"github.com/scribeflow/scribeflow/internal/logger"
	"github.com/scribeflow/scribeflow/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	analyzer    analyzer.Analyzer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, tr transcriber.Transcriber, an analyzer.Analyzer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		transcriber: tr,
		analyzer:    an,
		logger:      log,
	}
}
