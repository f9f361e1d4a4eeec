package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scribeflow/scribeflow/internal/analyzer"
	"github.com/scribeflow/scribeflow/internal/config"
	"github.com/scribeflow/scribeflow/internal/logger"
	"github.com/scribeflow/scribeflow/internal/media"
	"github.com/scribeflow/scribeflow/internal/processor"
	"github.com/scribeflow/scribeflow/internal/server"
	"github.com/scribeflow/scribeflow/internal/speech"
	"github.com/scribeflow/scribeflow/internal/transcriber"
	"github.com/scribeflow/scribeflow/internal/watcher"
	"github.com/scribeflow/scribeflow/pkg/executor"
)

func main() {
	ctx := context.Background()

	// Secrets come from the environment; .env is a convenience for local runs
	_ = godotenv.Load()

	configPath := os.Getenv("SCRIBEFLOW_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "ScribeFlow — transcribe & summarize")
	log.Info(ctx, "========================================")

	openaiKey := os.Getenv("OPENAI_API_KEY")
	if openaiKey == "" {
		log.Error(ctx, "OPENAI_API_KEY not found. Set it in .env or the environment.")
		os.Exit(1)
	}
	geminiKeys := splitKeys(os.Getenv("GEMINI_API_KEYS"), os.Getenv("GEMINI_API_KEY"))
	if len(geminiKeys) == 0 {
		log.Warn(ctx, "No Gemini API keys configured; summaries, key ideas and Q&A will fail")
	}

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Wire dependencies
	exec := executor.New()
	med := media.New(exec, log, cfg.Paths.Temp)
	stt := speech.NewWhisper(openaiKey, cfg.OpenAI.WhisperModel, cfg.OpenAITimeout(), log)
	tr := transcriber.New(med, stt, log, cfg.ChunkLength(), cfg.WholeFileLimitBytes())
	an := analyzer.New(geminiKeys, cfg.Gemini.Model, log)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 2)

	// Drop-folder mode
	var w watcher.Watcher
	if cfg.Watcher.Enabled {
		proc := processor.New(cfg, tr, an, log)
		w, err = watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Watcher.MaxConcurrent)
		if err != nil {
			log.Error(ctx, "Failed to create watcher: %v", err)
			os.Exit(1)
		}
		defer w.Stop()

		go func() {
			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errChan <- err
			}
		}()
		log.Info(ctx, "Watching for media files: %s", cfg.Paths.Input)
	}

	// HTTP API
	srv := server.New(cfg, tr, an, med, log)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "ScribeFlow is ready!")
	log.Info(ctx, "HTTP API: %s", cfg.Server.Addr)
	log.Info(ctx, "Chunking: %s chunks over %d MiB", cfg.ChunkLength(), cfg.Transcribe.WholeFileLimitMiB)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Fatal error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "Server shutdown: %v", err)
	}

	log.Info(ctx, "ScribeFlow stopped")
}

// splitKeys merges the comma-separated multi-key variable with the
// single-key fallback.
func splitKeys(multi, single string) []string {
	var keys []string
	for _, k := range strings.Split(multi, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 && strings.TrimSpace(single) != "" {
		keys = append(keys, strings.TrimSpace(single))
	}
	return keys
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{cfg.Paths.Temp}
	if cfg.Watcher.Enabled {
		dirs = append(dirs, cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
