// Package extract turns uploaded PDF bytes into plain text using a two-tier
// strategy: the embedded text layer first, then rasterization + OCR for
// scanned documents.
package extract

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
)

var (
	// ErrExtraction means the OCR fallback itself failed.
	ErrExtraction = errors.New("ocr extraction failed")
	// ErrEmptyText means neither the text layer nor OCR produced content.
	ErrEmptyText = errors.New("no text could be extracted")
)

type Config struct {
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"
	Tesseract string // binary name or absolute path; if empty -> "tesseract"

	TesseractLang string // default "eng"
	DPI           int    // rasterization DPI for scanned PDFs, default 300
	MaxPages      int    // 0 = no limit
}

type Result struct {
	Text     string
	Pages    int
	Method   string // "pdf-text" | "pdf-ocr"
	Duration time.Duration
	Warnings []string
}

type Extractor struct {
	cfg    Config
	runner Runner
	native func([]byte) NativeResult
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, native: nativeText, logger: logger}
}

// Extract runs the text-layer pass and falls back to OCR when it yields
// nothing. Either usable text is returned, or the caller is signaled to stop:
// ErrEmptyText when both tiers came back blank, ErrExtraction when the OCR
// tooling failed.
func (e *Extractor) Extract(ctx context.Context, data []byte) (Result, error) {
	start := time.Now()

	nr := e.native(data)
	switch nr.Status {
	case NativeOK:
		e.logger.Debug("extract.native.ok", "pages", nr.Pages, "bytes", len(nr.Text))
		return Result{
			Text:     Normalize(nr.Text),
			Pages:    nr.Pages,
			Method:   "pdf-text",
			Duration: time.Since(start),
		}, nil
	case NativeEmpty:
		e.logger.Info("extract.native.empty", "pages", nr.Pages)
	case NativeFailed:
		e.logger.Warn("extract.native.failed", "reason", nr.Reason)
	}

	text, pages, warns, err := e.pdfToOCR(ctx, data)
	if err != nil {
		e.logger.Error("extract.ocr.failed", "error", err, "warnings", warns)
		return Result{Warnings: warns}, errors.Join(ErrExtraction, err)
	}
	if strings.TrimSpace(text) == "" {
		e.logger.Warn("extract.ocr.empty", "pages", pages)
		return Result{Pages: pages, Method: "pdf-ocr", Warnings: warns}, ErrEmptyText
	}

	e.logger.Debug("extract.ocr.ok", "pages", pages, "bytes", len(text))
	return Result{
		Text:     Normalize(text),
		Pages:    pages,
		Method:   "pdf-ocr",
		Duration: time.Since(start),
		Warnings: warns,
	}, nil
}
