package pricing

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/yanqian/dynamic-pricing/pkg/errors"
	"github.com/yanqian/dynamic-pricing/pkg/util"
)

// Service exposes dynamic pricing recommendations.
type Service interface {
	Recommend(ctx context.Context, req Request) (Result, error)
	Respond(ctx context.Context, payload map[string]any) Envelope
	Config() EngineConfig
}

// Recorder receives quote statistics. Implementations must be safe for
// concurrent use.
type Recorder interface {
	ObserveQuote(strategy, segment string, multiplier, confidence float64)
	ObserveRejection(code string)
}

// NopRecorder discards everything.
type NopRecorder struct{}

func (NopRecorder) ObserveQuote(string, string, float64, float64) {}
func (NopRecorder) ObserveRejection(string)                       {}

type service struct {
	engine   *Engine
	validate *validator.Validate
	recorder Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires up the pricing domain.
func NewService(engine *Engine, validate *validator.Validate, recorder Recorder, logger *slog.Logger) Service {
	if recorder == nil {
		recorder = NopRecorder{}
	}
	return &service{
		engine:   engine,
		validate: validate,
		recorder: recorder,
		logger:   logger.With("component", "pricing.service"),
		now:      util.NowUTC,
	}
}

func (s *service) Recommend(ctx context.Context, req Request) (Result, error) {
	if err := ValidateRequest(s.validate, req); err != nil {
		s.reject(ctx, err)
		return Result{}, err
	}

	res, err := s.engine.Compute(req)
	if err != nil {
		s.reject(ctx, err)
		return Result{}, err
	}

	s.recorder.ObserveQuote(res.StrategyUsed.String(), req.Segment.String(), res.Factors.Final, res.ConfidenceScore)
	s.logger.DebugContext(ctx, "price recommended",
		"base_price", req.BasePrice,
		"recommended_price", res.RecommendedPrice,
		"strategy", res.StrategyUsed.String(),
		"multiplier", res.Factors.Final,
		"confidence", res.ConfidenceScore,
	)
	return res, nil
}

func (s *service) Respond(ctx context.Context, payload map[string]any) Envelope {
	req, err := RequestFromMap(payload)
	if err != nil {
		s.reject(ctx, err)
		return FailureEnvelope(err, s.now())
	}
	res, err := s.Recommend(ctx, req)
	if err != nil {
		return FailureEnvelope(err, s.now())
	}
	return SuccessEnvelope(res, s.now())
}

func (s *service) Config() EngineConfig {
	return s.engine.Config()
}

func (s *service) reject(ctx context.Context, err error) {
	code := apperrors.CodeOf(err)
	s.recorder.ObserveRejection(code)
	s.logger.InfoContext(ctx, "pricing request rejected", "code", code, "error", err)
}
