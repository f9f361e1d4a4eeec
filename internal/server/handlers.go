package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/scribeflow/scribeflow/internal/analyzer"
	"github.com/scribeflow/scribeflow/internal/config"
	"github.com/scribeflow/scribeflow/internal/logger"
	"github.com/scribeflow/scribeflow/internal/media"
	"github.com/scribeflow/scribeflow/internal/transcriber"
)

type handlers struct {
	cfg         *config.Config
	transcriber transcriber.Transcriber
	analyzer    analyzer.Analyzer
	downloader  media.Downloader
	logger      logger.Logger
}

type transcriptionResponse struct {
	Transcript string `json:"transcript"`
	Chunks     int    `json:"chunks"`
}

type urlRequest struct {
	URL string `json:"url"`
}

type summaryRequest struct {
	Text  string `json:"text"`
	Words int    `json:"words"`
}

type keyIdeasRequest struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

type answerRequest struct {
	Context  string `json:"context"`
	Question string `json:"question"`
}

type exportRequest struct {
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
}

type textResponse struct {
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *handlers) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// createTranscription accepts a multipart media upload and returns the
// full transcript.
func (h *handlers) createTranscription(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "missing file field 'file'"})
	}

	mediaPath, err := h.saveUpload(file)
	if err != nil {
		h.logger.Error(c.Request().Context(), "Failed to save upload: %v", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to store upload"})
	}
	defer h.removeTemp(c, mediaPath)

	return h.respondWithTranscript(c, mediaPath)
}

// createTranscriptionFromURL downloads the audio track of a remote video
// and transcribes it.
func (h *handlers) createTranscriptionFromURL(c echo.Context) error {
	var req urlRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.URL) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "url is required"})
	}

	mediaPath, err := h.downloader.Download(c.Request().Context(), req.URL)
	if err != nil {
		h.logger.Error(c.Request().Context(), "Download failed: %v", err)
		return c.JSON(http.StatusBadGateway, errorResponse{Error: fmt.Sprintf("download failed: %v", err)})
	}
	defer h.removeTemp(c, mediaPath)

	return h.respondWithTranscript(c, mediaPath)
}

func (h *handlers) respondWithTranscript(c echo.Context, mediaPath string) error {
	ctx := c.Request().Context()

	chunks := 0
	transcript, err := h.transcriber.Transcribe(ctx, mediaPath, func(done, total int) {
		chunks = total
		h.logger.Info(ctx, "Transcribed chunk %d/%d", done, total)
	})
	if err != nil {
		h.logger.Error(ctx, "Transcription failed: %v", err)
		return c.JSON(transcriptionStatus(err), errorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, transcriptionResponse{Transcript: transcript, Chunks: chunks})
}

// transcriptionStatus maps pipeline error kinds to HTTP statuses: bad
// input is the client's fault, everything else is an upstream failure.
func transcriptionStatus(err error) int {
	if errors.Is(err, transcriber.ErrDecode) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

func (h *handlers) createSummary(c echo.Context) error {
	var req summaryRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "text is required"})
	}

	summary, err := h.analyzer.Summarize(c.Request().Context(), req.Text, clamp(req.Words, 50, 2000, 200))
	if err != nil {
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, textResponse{Text: summary})
}

func (h *handlers) createKeyIdeas(c echo.Context) error {
	var req keyIdeasRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "text is required"})
	}

	ideas, err := h.analyzer.KeyIdeas(c.Request().Context(), req.Text, clamp(req.Count, 1, 20, 10))
	if err != nil {
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, textResponse{Text: ideas})
}

// createAnswer answers a question about supplied context text. The
// question may be typed (JSON) or spoken (multipart with an 'audio' file,
// which is transcribed first).
func (h *handlers) createAnswer(c echo.Context) error {
	ctx := c.Request().Context()

	contextText := ""
	question := ""

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		contextText = c.FormValue("context")
		question = c.FormValue("question")

		if file, err := c.FormFile("audio"); err == nil {
			audioPath, err := h.saveUpload(file)
			if err != nil {
				h.logger.Error(ctx, "Failed to save question audio: %v", err)
				return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to store upload"})
			}
			defer h.removeTemp(c, audioPath)

			question, err = h.transcriber.Transcribe(ctx, audioPath, nil)
			if err != nil {
				h.logger.Error(ctx, "Question transcription failed: %v", err)
				return c.JSON(transcriptionStatus(err), errorResponse{Error: err.Error()})
			}
			h.logger.Info(ctx, "Transcribed spoken question: %s", question)
		}
	} else {
		var req answerRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		}
		contextText = req.Context
		question = req.Question
	}

	if strings.TrimSpace(question) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "question is required"})
	}

	answer, err := h.analyzer.Answer(ctx, contextText, question)
	if err != nil {
		return c.JSON(http.StatusBadGateway, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, textResponse{Text: answer})
}

// createExport renders markdown to a docx attachment.
func (h *handlers) createExport(c echo.Context) error {
	var req exportRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Markdown) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "markdown is required"})
	}
	if req.Title == "" {
		req.Title = "Transcript"
	}

	docxPath, err := h.tempPath(".docx")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to create temp file"})
	}
	defer h.removeTemp(c, docxPath)

	if err := analyzer.ExportDocx(req.Title, req.Markdown, docxPath); err != nil {
		h.logger.Error(c.Request().Context(), "Docx export failed: %v", err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "export failed"})
	}

	return c.Attachment(docxPath, sanitizeFilename(req.Title)+".docx")
}

func (h *handlers) saveUpload(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	path, err := h.tempPath(filepath.Ext(file.Filename))
	if err != nil {
		return "", err
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

func (h *handlers) tempPath(ext string) (string, error) {
	if err := os.MkdirAll(h.cfg.Paths.Temp, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	return filepath.Join(h.cfg.Paths.Temp, uuid.NewString()+ext), nil
}

func (h *handlers) removeTemp(c echo.Context, path string) {
	if err := os.Remove(path); err != nil {
		h.logger.Warn(c.Request().Context(), "Failed to remove temp file %s: %v", path, err)
	}
}

func clamp(v, min, max, fallback int) int {
	if v == 0 {
		return fallback
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer("/", "-", "\\", "-", ":", "-", "*", "", "?", "", "\"", "", "<", "", ">", "", "|", "")
	name = replacer.Replace(name)
	if name == "" {
		return "export"
	}
	return name
}
