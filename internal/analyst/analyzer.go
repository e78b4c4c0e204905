package analyst

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/equitydesk/callinsight/internal/llm"
)

// Analyzer runs the fixed analyst prompt against a completion service and
// parses the reply into a Result.
type Analyzer struct {
	completer llm.Completer
	logger    *slog.Logger
}

func NewAnalyzer(completer llm.Completer, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{completer: completer, logger: logger}
}

// Analyze prompts the completion service with the transcript and returns the
// structured record. Failures are typed: ErrNoJSONFound, ErrMalformedJSON,
// ErrMissingField, or the completer's own error.
func (a *Analyzer) Analyze(ctx context.Context, transcript string) (Result, error) {
	reqID := uuid.New().String()
	start := time.Now()

	prompt := BuildPrompt(transcript)
	a.logger.Info("analyst.complete.start",
		"req_id", reqID,
		"transcript_bytes", len(transcript),
		"prompt_bytes", len(prompt),
	)

	reply, err := a.completer.Complete(ctx, prompt)
	if err != nil {
		a.logger.Error("analyst.complete.error", "req_id", reqID, "error", err)
		return Result{}, fmt.Errorf("completion service: %w", err)
	}

	raw, ok := ExtractJSONObject(reply)
	if !ok {
		a.logger.Warn("analyst.reply.no_json", "req_id", reqID, "reply_bytes", len(reply))
		return Result{}, ErrNoJSONFound
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		a.logger.Warn("analyst.reply.malformed_json", "req_id", reqID, "error", err)
		return Result{}, ErrMalformedJSON
	}

	if missing := missingFields(obj); len(missing) > 0 {
		a.logger.Warn("analyst.reply.missing_fields", "req_id", reqID, "fields", missing)
		return Result{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	if err := ValidateJSONAgainstSchema(resultSchema(), []byte(raw)); err != nil {
		a.logger.Warn("analyst.reply.schema_mismatch", "req_id", reqID, "error", err)
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	var res Result
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	a.logger.Info("analyst.ok",
		"req_id", reqID,
		"tone", res.ManagementTone,
		"positives", len(res.KeyPositives),
		"concerns", len(res.KeyConcerns),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
