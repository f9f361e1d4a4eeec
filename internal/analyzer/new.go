package analyzer

import (
	"sync"

	"github.com/scribeflow/scribeflow/internal/logger"
)

// implAnalyzer is shared by concurrent HTTP handlers and drop-folder
// processors; mu guards the key-rotation state.
type implAnalyzer struct {
	mu         sync.Mutex
	apiKeys    []string
	currentKey int
	logger     logger.Logger
	model      string
}

// New creates an Analyzer that rotates through the supplied Gemini API
// keys when one is rate limited.
func New(apiKeys []string, model string, log logger.Logger) Analyzer {
	return &implAnalyzer{
		apiKeys: apiKeys,
		logger:  log,
		model:   model,
	}
}
