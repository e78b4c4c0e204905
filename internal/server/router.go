// Package server exposes the analysis pipeline over HTTP: the upload form,
// the rendered report, a JSON API, and an XLSX download.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/equitydesk/callinsight/internal/analyst"
	"github.com/equitydesk/callinsight/internal/extract"
	"github.com/equitydesk/callinsight/internal/pipeline"
	"github.com/equitydesk/callinsight/internal/report"
)

const maxUploadMemory = 64 << 20

// Runner is the pipeline entry point the handlers depend on.
type Runner interface {
	Run(ctx context.Context, data []byte) (pipeline.Report, error)
}

type Server struct {
	proc     Runner
	renderer *report.Renderer
	logger   *slog.Logger
}

func NewRouter(proc Runner, renderer *report.Renderer, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{proc: proc, renderer: renderer, logger: logger}

	mux := chi.NewRouter()
	mux.Use(requestLogger(logger))
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.Get("/", s.handleIndex)
	mux.Post("/analyze", s.handleAnalyze)
	mux.Post("/analyze/xlsx", s.handleAnalyzeXLSX)
	mux.Post("/api/v1/analyze", s.handleAnalyzeJSON)

	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, http.StatusOK, report.PageData{})
}

// POST /analyze — run the pipeline and render the report page. Pipeline-stage
// failures render the page with only the error message.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	data, err := readUpload(r)
	if err != nil {
		s.renderPage(w, http.StatusBadRequest, report.PageData{Error: err.Error()})
		return
	}

	rep, err := s.proc.Run(r.Context(), data)
	if err != nil {
		s.renderPage(w, http.StatusUnprocessableEntity, report.PageData{Error: userMessage(err)})
		return
	}

	body, err := s.renderer.ReportHTML(rep)
	if err != nil {
		s.logger.Error("server.render.failed", "error", err)
		s.renderPage(w, http.StatusInternalServerError, report.PageData{Error: "Failed to render report."})
		return
	}
	s.renderPage(w, http.StatusOK, report.PageData{Body: body})
}

// POST /api/v1/analyze — run the pipeline and return the raw record as JSON.
func (s *Server) handleAnalyzeJSON(w http.ResponseWriter, r *http.Request) {
	data, err := readUpload(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := s.proc.Run(r.Context(), data)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, userMessage(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rep.Analysis); err != nil {
		s.logger.Error("server.encode.failed", "error", err)
	}
}

// POST /analyze/xlsx — run the pipeline and return the report workbook.
func (s *Server) handleAnalyzeXLSX(w http.ResponseWriter, r *http.Request) {
	data, err := readUpload(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	rep, err := s.proc.Run(r.Context(), data)
	if err != nil {
		writeJSONError(w, http.StatusUnprocessableEntity, userMessage(err))
		return
	}

	wb, err := report.BuildWorkbook(rep)
	if err != nil {
		s.logger.Error("server.workbook.failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "failed to build workbook")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="earnings-call-analysis.xlsx"`)
	w.Write(wb)
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data report.PageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.renderer.RenderPage(w, data); err != nil {
		s.logger.Error("server.page.failed", "error", err)
	}
}

// readUpload pulls the single PDF out of the multipart form.
func readUpload(r *http.Request) ([]byte, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}
	file, hdr, err := r.FormFile("transcript")
	if err != nil {
		return nil, errors.New("a transcript PDF is required")
	}
	defer file.Close()

	if !isPDF(hdr) {
		return nil, errors.New("only PDF uploads are accepted")
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New("uploaded file is empty")
	}
	return data, nil
}

func isPDF(hdr *multipart.FileHeader) bool {
	if strings.EqualFold(filepath.Ext(hdr.Filename), ".pdf") {
		return true
	}
	ct := hdr.Header.Get("Content-Type")
	return strings.EqualFold(ct, "application/pdf")
}

// userMessage maps pipeline-stage errors to the inline message shown to the
// user. Nothing retries; nothing propagates as an unhandled fault.
func userMessage(err error) string {
	switch {
	case errors.Is(err, extract.ErrEmptyText):
		return "Unable to extract text from PDF."
	case errors.Is(err, extract.ErrExtraction):
		return "OCR failed. The document could not be processed."
	case errors.Is(err, analyst.ErrNoJSONFound):
		return "Model did not return structured JSON"
	case errors.Is(err, analyst.ErrMissingField):
		return err.Error()
	case errors.Is(err, analyst.ErrMalformedJSON):
		return "Failed to parse model JSON output"
	default:
		return "Analysis failed. Please try again."
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
