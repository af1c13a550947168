// Package service provides the core prediction service that implements
// the dependencies required by the HTTP API: schema validation, the
// normalization pipeline, model inference and label lookup.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/healthml/obesity-predictor/internal/domain/label"
	"github.com/healthml/obesity-predictor/internal/domain/record"
	"github.com/healthml/obesity-predictor/internal/model"
	"github.com/healthml/obesity-predictor/pkg/logger"
	"github.com/healthml/obesity-predictor/pkg/metrics"
)

// Result is the outcome of a successful prediction.
type Result struct {
	Code  int    `json:"prediction_code"`
	Label string `json:"prediction_label"`
}

// Service owns the request pipeline: validate -> normalize -> predict ->
// label lookup. It is stateless per request; the only process-lifetime state
// is the read-only predictor set at startup and a few counters for /stats.
type Service struct {
	mu        sync.RWMutex
	predictor model.Predictor
	logger    logger.Logger
	startedAt time.Time

	predictions       atomic.Int64
	validationErrors  atomic.Int64
	inferenceFailures atomic.Int64
	unknownCodes      atomic.Int64
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithPredictor injects the loaded model artifact. Tests inject doubles here.
func WithPredictor(p model.Predictor) Option {
	return func(s *Service) {
		s.predictor = p
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service. A predictor must be injected via WithPredictor
// before the service can answer predictions; Ready reports that state.
func New(opts ...Option) *Service {
	s := &Service{
		startedAt: time.Now(),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	metrics.SetModelLoaded(s.predictor != nil)

	return s
}

// Ready reports whether the model artifact is loaded and the service can
// answer predictions.
func (s *Service) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.predictor != nil
}

// Predict runs the full prediction pipeline for one input record.
//
// Error contract:
//   - *record.ValidationError when the record fails the 16-field schema;
//     the normalization pipeline never runs in that case.
//   - ErrModelUnavailable when no model artifact is loaded.
//   - ErrInference when the model fails on validated, normalized input;
//     the wrapped detail is logged here and must not reach callers.
func (s *Service) Predict(ctx context.Context, in record.InputRecord) (Result, error) {
	s.mu.RLock()
	predictor := s.predictor
	s.mu.RUnlock()

	if predictor == nil {
		return Result{}, ErrModelUnavailable
	}

	if err := in.Validate(); err != nil {
		s.validationErrors.Add(1)
		metrics.RecordValidationError()
		return Result{}, err
	}

	normalized := record.Normalize(in)

	start := time.Now()
	code, err := predictor.Predict(ctx, normalized)
	if err != nil {
		s.inferenceFailures.Add(1)
		metrics.RecordInferenceError()
		s.logger.Error(ctx, "model inference failed", logger.Error(err))
		return Result{}, fmt.Errorf("%w: %w", ErrInference, err)
	}
	metrics.RecordPredictionLatency(float64(time.Since(start).Milliseconds()))

	result := Result{Code: code, Label: label.ForCode(code)}
	if !label.Known(code) {
		// Lenient degrade: an out-of-table code keeps the sentinel label
		// instead of failing the request.
		s.unknownCodes.Add(1)
		metrics.RecordUnknownCode()
		s.logger.Warn(ctx, "model returned unknown class code", logger.Int("code", code))
	}

	s.predictions.Add(1)
	metrics.RecordPrediction(result.Label)

	return result, nil
}

// Close releases the model artifact.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.predictor == nil {
		return nil
	}
	err := s.predictor.Close()
	s.predictor = nil
	metrics.SetModelLoaded(false)
	return err
}

// GetStats returns service statistics for the /stats endpoint.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"modelLoaded":       s.Ready(),
		"predictions":       s.predictions.Load(),
		"validationErrors":  s.validationErrors.Load(),
		"inferenceFailures": s.inferenceFailures.Load(),
		"unknownCodes":      s.unknownCodes.Load(),
		"uptimeSeconds":     int64(time.Since(s.startedAt).Seconds()),
	}
}
