package analyzer

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

func summaryPrompt(text string, approxWords int) string {
	return fmt.Sprintf("Please summarize the following text in approximately %d words:\n\n%s", approxWords, text)
}

func keyIdeasPrompt(text string, count int) string {
	return fmt.Sprintf("Please extract the top %d key ideas from the following text as a bulleted list:\n\n%s", count, text)
}

func answerPrompt(contextText, question string) string {
	return fmt.Sprintf("You are a helpful assistant. Answer the user's question based strictly on the provided context text. Be concise, clear, and direct.\n\nContext:\n%s\n\nQuestion: %s", contextText, question)
}

func (a *implAnalyzer) Summarize(ctx context.Context, text string, approxWords int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("nothing to summarize")
	}
	return a.generate(ctx, summaryPrompt(text, approxWords))
}

func (a *implAnalyzer) KeyIdeas(ctx context.Context, text string, count int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("nothing to extract ideas from")
	}
	return a.generate(ctx, keyIdeasPrompt(text, count))
}

func (a *implAnalyzer) Answer(ctx context.Context, contextText, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("question is empty")
	}
	return a.generate(ctx, answerPrompt(contextText, question))
}

// generate sends the prompt to Gemini and returns the response text.
// Rotates API keys on 429 / quota errors.
func (a *implAnalyzer) generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(a.apiKeys)
	if attempts == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	var lastErr error
	for range attempts {
		key, keyIndex := a.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			a.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
		if err != nil {
			if isQuotaError(err) {
				a.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIndex+1)
				a.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text strings.Builder
			for _, part := range result.Candidates[0].Content.Parts {
				text.WriteString(part.Text)
			}
			return text.String(), nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

// activeKey returns the key to try next and its index.
func (a *implAnalyzer) activeKey() (string, int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.apiKeys[a.currentKey], a.currentKey
}

func (a *implAnalyzer) rotateKey() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currentKey = (a.currentKey + 1) % len(a.apiKeys)
}
