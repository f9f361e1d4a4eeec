package server

import (
	"context"
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/scribeflow/scribeflow/internal/analyzer"
	"github.com/scribeflow/scribeflow/internal/config"
	"github.com/scribeflow/scribeflow/internal/logger"
	"github.com/scribeflow/scribeflow/internal/media"
	"github.com/scribeflow/scribeflow/internal/transcriber"
)

// Server exposes the interactive HTTP API: upload or link media, get back
// transcripts, summaries, key ideas, answers and docx exports.
type Server struct {
	cfg  *config.Config
	echo *echo.Echo
}

// New builds the HTTP server and registers all routes.
func New(cfg *config.Config, tr transcriber.Transcriber, an analyzer.Analyzer, dl media.Downloader, log logger.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Server.MaxUploadMB)))

	h := &handlers{
		cfg:         cfg,
		transcriber: tr,
		analyzer:    an,
		downloader:  dl,
		logger:      log,
	}

	e.GET("/healthz", h.health)

	v1 := e.Group("/api/v1")
	v1.POST("/transcriptions", h.createTranscription)
	v1.POST("/transcriptions/url", h.createTranscriptionFromURL)
	v1.POST("/summaries", h.createSummary)
	v1.POST("/key-ideas", h.createKeyIdeas)
	v1.POST("/answers", h.createAnswer)
	v1.POST("/exports", h.createExport)

	return &Server{cfg: cfg, echo: e}
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	return s.echo.Start(s.cfg.Server.Addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
