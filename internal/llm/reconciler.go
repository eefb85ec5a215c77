package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pageza/mealplanner/backend/internal/apperrors"
	"github.com/pageza/mealplanner/backend/internal/metrics"
	"github.com/pageza/mealplanner/backend/internal/prompt"
)

// State is a step of a reconciliation
type State string

const (
	StateSent             State = "SENT"
	StateParsedOK         State = "PARSED_OK"
	StateParseFailed      State = "PARSE_FAILED"
	StateCorrectionSent   State = "CORRECTION_SENT"
	StateCorrectedOK      State = "CORRECTED_OK"
	StateCorrectionFailed State = "CORRECTION_FAILED"
)

// DefaultTimeout bounds a single model call when none is configured
const DefaultTimeout = 60 * time.Second

// Request describes one structured generation
type Request struct {
	Prompt      string
	ExpectedKey string
	Schema      string
	// Validate optionally checks the value under ExpectedKey. A failure is
	// handled like a parse failure and triggers the correction round trip.
	Validate func(payload json.RawMessage) error
}

// Result is a successfully reconciled model response
type Result struct {
	Document    map[string]json.RawMessage
	Payload     json.RawMessage
	RawText     string
	State       State
	Corrections int
}

// Reconciler sends a prompt, parses the reply strictly and, when parsing fails,
// asks the model exactly once to correct its own output.
type Reconciler struct {
	generator TextGenerator
	provider  string
	timeout   time.Duration
	logger    *zap.Logger
	metrics   *metrics.Metrics
}

// NewReconciler creates a reconciler. provider labels logs, metrics and upstream errors.
func NewReconciler(generator TextGenerator, provider string, timeout time.Duration, logger *zap.Logger, m *metrics.Metrics) *Reconciler {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		generator: generator,
		provider:  provider,
		timeout:   timeout,
		logger:    logger,
		metrics:   m,
	}
}

// Reconcile runs the generation and at most one correction. When the
// correction call itself fails, the returned UpstreamError keeps the first
// unparseable reply in RawText.
func (r *Reconciler) Reconcile(ctx context.Context, req Request) (*Result, error) {
	log := r.logger.With(zap.String("expected_key", req.ExpectedKey))

	raw, err := r.generate(ctx, req.Prompt)
	if err != nil {
		return nil, err
	}
	log.Debug("model response received", zap.String("state", string(StateSent)), zap.String("raw", raw))

	doc, parseErr := parseDocument(raw, req)
	if parseErr == nil {
		r.metrics.RecordReconciliation(req.ExpectedKey, string(StateParsedOK), 0)
		return &Result{Document: doc, Payload: doc[req.ExpectedKey], RawText: raw, State: StateParsedOK}, nil
	}

	log.Warn("model response failed to parse, requesting correction",
		zap.String("state", string(StateParseFailed)),
		zap.Error(parseErr))

	correctionPrompt := prompt.Correction(raw, req.ExpectedKey, req.Schema)
	corrected, err := r.generate(ctx, correctionPrompt)
	if err != nil {
		r.metrics.RecordReconciliation(req.ExpectedKey, string(StateCorrectionFailed), 1)
		var upstreamErr *apperrors.UpstreamError
		if errors.As(err, &upstreamErr) {
			upstreamErr.RawText = raw
		}
		return nil, err
	}
	log.Debug("correction response received", zap.String("state", string(StateCorrectionSent)), zap.String("raw", corrected))

	doc, parseErr = parseDocument(corrected, req)
	if parseErr != nil {
		r.metrics.RecordReconciliation(req.ExpectedKey, string(StateCorrectionFailed), 1)
		log.Error("corrected response failed to parse",
			zap.String("state", string(StateCorrectionFailed)),
			zap.Error(parseErr))
		return nil, &apperrors.ReconciliationError{
			ExpectedKey: req.ExpectedKey,
			State:       string(StateCorrectionFailed),
			RawText:     corrected,
			Cause:       parseErr,
		}
	}

	r.metrics.RecordReconciliation(req.ExpectedKey, string(StateCorrectedOK), 1)
	log.Info("model response corrected", zap.String("state", string(StateCorrectedOK)))
	return &Result{Document: doc, Payload: doc[req.ExpectedKey], RawText: corrected, State: StateCorrectedOK, Corrections: 1}, nil
}

func (r *Reconciler) generate(ctx context.Context, p string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	text, err := r.generator.GenerateContent(callCtx, p)
	r.metrics.ObserveLLMCall(r.provider, err, time.Since(start))
	if err != nil {
		return "", &apperrors.UpstreamError{Service: r.provider, Cause: err}
	}
	return text, nil
}

// parseDocument applies fence stripping, brace slicing and strict decoding,
// then checks the expected key and runs the optional validator.
func parseDocument(text string, req Request) (map[string]json.RawMessage, error) {
	candidate, err := ExtractJSONObject(StripCodeFences(text))
	if err != nil {
		return nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	payload, ok := doc[req.ExpectedKey]
	if !ok || bytes.Equal(bytes.TrimSpace(payload), []byte("null")) {
		return nil, fmt.Errorf("missing key %q", req.ExpectedKey)
	}

	if req.Validate != nil {
		if err := req.Validate(payload); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", req.ExpectedKey, err)
		}
	}
	return doc, nil
}
