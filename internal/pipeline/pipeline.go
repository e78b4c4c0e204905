// Package pipeline coordinates the per-upload flow: PDF bytes in, structured
// analysis out. Each run is independent; nothing is retained between uploads.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/equitydesk/callinsight/internal/analyst"
	"github.com/equitydesk/callinsight/internal/extract"
)

// TextExtractor produces plain text from PDF bytes.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte) (extract.Result, error)
}

// InsightAnalyzer produces the structured record from transcript text.
type InsightAnalyzer interface {
	Analyze(ctx context.Context, transcript string) (analyst.Result, error)
}

// Report is the outcome of one pipeline run.
type Report struct {
	RunID    string
	Analysis analyst.Result
	Method   string // extraction method used: "pdf-text" | "pdf-ocr"
	Pages    int
	Duration time.Duration
}

type Processor struct {
	Extractor TextExtractor
	Analyzer  InsightAnalyzer
	Logger    *slog.Logger
}

func NewProcessor(ex TextExtractor, an InsightAnalyzer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{Extractor: ex, Analyzer: an, Logger: logger}
}

// Run executes extraction then analysis. An extraction failure (including
// empty text) stops the run before any completion call is made.
func (p *Processor) Run(ctx context.Context, data []byte) (Report, error) {
	runID := uuid.New().String()
	start := time.Now()

	res, err := p.Extractor.Extract(ctx, data)
	if err != nil {
		p.Logger.Error("pipeline.extract.failed", "run_id", runID, "error", err)
		return Report{RunID: runID}, err
	}
	p.Logger.Info("pipeline.extract.ok",
		"run_id", runID,
		"method", res.Method,
		"pages", res.Pages,
		"bytes", len(res.Text),
	)

	analysis, err := p.Analyzer.Analyze(ctx, res.Text)
	if err != nil {
		p.Logger.Error("pipeline.analyze.failed", "run_id", runID, "error", err)
		return Report{RunID: runID, Method: res.Method, Pages: res.Pages}, err
	}
	p.Logger.Info("pipeline.analyze.ok", "run_id", runID)

	return Report{
		RunID:    runID,
		Analysis: analysis,
		Method:   res.Method,
		Pages:    res.Pages,
		Duration: time.Since(start),
	}, nil
}
