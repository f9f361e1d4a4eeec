package analyzer

import "context"

// Analyzer runs LLM-backed text analysis over a transcript or any other
// user-supplied text.
type Analyzer interface {
	// Summarize produces a summary of roughly approxWords words.
	Summarize(ctx context.Context, text string, approxWords int) (string, error)
	// KeyIdeas extracts the top count ideas as a bulleted list.
	KeyIdeas(ctx context.Context, text string, count int) (string, error)
	// Answer answers a question strictly from the supplied context text.
	Answer(ctx context.Context, contextText, question string) (string, error)
}
