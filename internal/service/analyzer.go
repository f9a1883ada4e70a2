package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Rrens/fitsmart/internal/config"
	"github.com/Rrens/fitsmart/internal/domain"
	"github.com/Rrens/fitsmart/internal/llm"
	"github.com/Rrens/fitsmart/internal/metrics"
)

// ErrEmptyImage is returned when the request carries no image payload
var ErrEmptyImage = errors.New("image is required")

// AnalyzerService estimates the nutrition of meal photos with a vision provider
type AnalyzerService struct {
	router      *llm.Router
	metrics     *metrics.Manager
	timeout     time.Duration
	maxTokens   int
	temperature float64
}

// NewAnalyzerService creates a new analyzer service
func NewAnalyzerService(router *llm.Router, cfg config.LLMConfig, m *metrics.Manager) *AnalyzerService {
	return &AnalyzerService{
		router:      router,
		metrics:     m,
		timeout:     cfg.Timeout,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// AnalyzeMeal sends one request to the selected provider and validates its reply.
// Failures are *domain.UpstreamError, *domain.ParseError or *domain.ValidationError.
func (s *AnalyzerService) AnalyzeMeal(ctx context.Context, req domain.MealAnalysisRequest) (*domain.MealAnalysisResult, error) {
	requestID := uuid.New().String()

	image, mime := llm.StripDataURI(req.Image)
	if image == "" {
		return nil, ErrEmptyImage
	}

	providerName := req.Provider
	if providerName == "" {
		providerName = s.router.DefaultProvider()
	}

	provider, err := s.router.GetProvider(providerName)
	if err != nil {
		s.metrics.ObserveAnalysis(providerName, metrics.OutcomeUpstreamError, 0)
		return nil, llm.TransportError(providerName, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	visionReq := llm.VisionRequest{
		Prompt:      llm.BuildMealPrompt(req.DietaryRestrictions),
		ImageBase64: image,
		MIMEType:    mime,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	}

	start := time.Now()
	resp, err := provider.AnalyzeImage(ctx, visionReq, req.Model)
	elapsed := time.Since(start)

	if err != nil {
		var upstream *domain.UpstreamError
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = llm.TransportError(provider.Name(), fmt.Errorf("no reply within %s: %w", s.timeout, context.DeadlineExceeded))
		case !errors.As(err, &upstream):
			err = llm.TransportError(provider.Name(), err)
		}
		s.metrics.ObserveAnalysis(provider.Name(), metrics.OutcomeUpstreamError, elapsed)
		log.Error().Err(err).
			Str("request_id", requestID).
			Str("provider", provider.Name()).
			Dur("elapsed", elapsed).
			Msg("Vision provider call failed")
		return nil, err
	}

	result, err := llm.ParseMealAnalysis(resp.Content)
	if err != nil {
		outcome := metrics.OutcomeValidationError
		var parseErr *domain.ParseError
		if errors.As(err, &parseErr) {
			outcome = metrics.OutcomeParseError
		}
		s.metrics.ObserveAnalysis(provider.Name(), outcome, elapsed)
		log.Warn().Err(err).
			Str("request_id", requestID).
			Str("provider", provider.Name()).
			Str("model", resp.Model).
			Msg("Could not use vision reply")
		return nil, err
	}

	s.metrics.ObserveAnalysis(provider.Name(), metrics.OutcomeSuccess, elapsed)
	log.Info().
		Str("request_id", requestID).
		Str("provider", provider.Name()).
		Str("model", resp.Model).
		Int("tokens", resp.TokensUsed).
		Int64("latency_ms", resp.LatencyMs).
		Int("calories", result.Calories).
		Msg("Meal analyzed")

	return result, nil
}

// Providers returns information about the registered vision providers
func (s *AnalyzerService) Providers() []llm.ProviderInfo {
	return s.router.GetProvidersInfo()
}
