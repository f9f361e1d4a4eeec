package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Gemini     GeminiConfig     `yaml:"gemini"`
	Transcribe TranscribeConfig `yaml:"transcribe"`
	Paths      PathsConfig      `yaml:"paths"`
	Watcher    WatcherConfig    `yaml:"watcher"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Addr        string `yaml:"addr"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

type OpenAIConfig struct {
	WhisperModel   string `yaml:"whisper_model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

// TranscribeConfig carries the chunking policy. Whisper-style endpoints
// reject payloads over 25 MiB; the whole-file limit leaves a margin under
// that, and anything larger is split into fixed-length chunks.
type TranscribeConfig struct {
	ChunkMinutes      int `yaml:"chunk_minutes"`
	WholeFileLimitMiB int `yaml:"whole_file_limit_mib"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type WatcherConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxConcurrent int  `yaml:"max_concurrent"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads and validates a yaml config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Watcher.Enabled {
		if c.Paths.Input == "" {
			return fmt.Errorf("paths.input is required when the watcher is enabled")
		}
		if c.Paths.Output == "" {
			return fmt.Errorf("paths.output is required when the watcher is enabled")
		}
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 512
	}
	if c.OpenAI.WhisperModel == "" {
		c.OpenAI.WhisperModel = "whisper-1"
	}
	if c.OpenAI.TimeoutSeconds == 0 {
		c.OpenAI.TimeoutSeconds = 120
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.0-flash"
	}
	if c.Transcribe.ChunkMinutes == 0 {
		c.Transcribe.ChunkMinutes = 10
	}
	if c.Transcribe.ChunkMinutes < 0 {
		return fmt.Errorf("transcribe.chunk_minutes must be positive")
	}
	if c.Transcribe.WholeFileLimitMiB == 0 {
		c.Transcribe.WholeFileLimitMiB = 24
	}
	if c.Transcribe.WholeFileLimitMiB < 0 {
		return fmt.Errorf("transcribe.whole_file_limit_mib must be positive")
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Watcher.MaxConcurrent == 0 {
		c.Watcher.MaxConcurrent = 2
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// ChunkLength returns the fixed chunk duration used by the chunked
// transcription path.
func (c *Config) ChunkLength() time.Duration {
	return time.Duration(c.Transcribe.ChunkMinutes) * time.Minute
}

// WholeFileLimitBytes returns the encoded size at or below which a file is
// transcribed in a single request.
func (c *Config) WholeFileLimitBytes() int64 {
	return int64(c.Transcribe.WholeFileLimitMiB) << 20
}

// OpenAITimeout returns the per-request timeout for transcription calls.
func (c *Config) OpenAITimeout() time.Duration {
	return time.Duration(c.OpenAI.TimeoutSeconds) * time.Second
}
