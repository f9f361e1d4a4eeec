package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scribeflow/scribeflow/internal/analyzer"
)

const (
	defaultSummaryWords = 200
	defaultKeyIdeas     = 10
)

// Process orchestrates the pipeline for one dropped media file: transcribe,
// analyze, write outputs, archive the source.
func (p *implProcessor) Process(ctx context.Context, mediaPath string) error {
	startTime := time.Now()
	name := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing media file: %s", mediaPath)
	p.logger.Info(ctx, "========================================")

	// Step 1: Transcribe (whole-file or chunked, decided by encoded size)
	transcript, err := p.transcriber.Transcribe(ctx, mediaPath, func(done, total int) {
		p.logger.Info(ctx, "Transcribed chunk %d/%d", done, total)
	})
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	// Step 2: Write the plain transcript
	txtPath := filepath.Join(p.cfg.Paths.Output, name+".txt")
	if err := os.WriteFile(txtPath, []byte(transcript), 0644); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}

	// Step 3: Summary and key ideas. The transcript is already safe on
	// disk, so analysis failures only cost the report.
	report := p.buildReport(ctx, name, transcript)
	mdPath := filepath.Join(p.cfg.Paths.Output, name+".md")
	if report != "" {
		if err := os.WriteFile(mdPath, []byte(report), 0644); err != nil {
			p.logger.Warn(ctx, "Failed to write report %s: %v", mdPath, err)
		}
	}

	// Step 4: Docx transcript for sharing
	docxPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
	if err := analyzer.TranscriptDocx(name, transcript, docxPath); err != nil {
		p.logger.Warn(ctx, "Failed to write docx %s: %v", docxPath, err)
	}

	// Step 5: Move the source out of the watch folder
	if err := p.moveToArchived(ctx, mediaPath); err != nil {
		p.logger.Warn(ctx, "Failed to archive source: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing completed successfully!")
	p.logger.Info(ctx, "Transcript: %s", txtPath)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return nil
}

// buildReport assembles a markdown report with the summary and key ideas.
// Returns "" if both analysis calls fail.
func (p *implProcessor) buildReport(ctx context.Context, name, transcript string) string {
	var sections []string

	summary, err := p.analyzer.Summarize(ctx, transcript, defaultSummaryWords)
	if err != nil {
		p.logger.Warn(ctx, "Summarize failed for %s: %v", name, err)
	} else {
		sections = append(sections, "## Summary\n\n"+strings.TrimSpace(summary))
	}

	ideas, err := p.analyzer.KeyIdeas(ctx, transcript, defaultKeyIdeas)
	if err != nil {
		p.logger.Warn(ctx, "Key ideas failed for %s: %v", name, err)
	} else {
		sections = append(sections, "## Key Ideas\n\n"+strings.TrimSpace(ideas))
	}

	if len(sections) == 0 {
		return ""
	}

	return fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		name,
		time.Now().Format("2006-01-02 15:04"),
		strings.Join(sections, "\n\n"),
	)
}
