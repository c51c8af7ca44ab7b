// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"

	"go.uber.org/zap"

	"placereview/internal/feature/placereview/adapters/gemini"
	"placereview/internal/feature/placereview/transport/handler"
	"placereview/internal/feature/placereview/transport/view"
	"placereview/internal/feature/placereview/usecase"
	"placereview/internal/platform/config"
	infrahttp "placereview/internal/platform/http"
	"placereview/internal/platform/metrics"
	"placereview/internal/shared/ratelimiter"
)

// NewGeminiAnalyzer creates a Gemini-backed analyzer with the tuned HTTP client,
// outbound pacing and backend metrics.
func NewGeminiAnalyzer(ctx context.Context, cfg config.GeminiConfig) (*gemini.GeminiAnalyzer, error) {
	return gemini.NewGeminiAnalyzer(ctx, gemini.Config{
		APIKey:     cfg.APIKey,
		Model:      cfg.Model,
		HTTPClient: infrahttp.NewHTTPClient(cfg.Timeout),
		Limiter:    ratelimiter.NewRateLimiter(cfg.RateLimit, cfg.RateInterval),
		Observer:   metrics.Recorder{},
	})
}

// NewPlaceReviewHandler wires analyzer -> usecase -> handler.
func NewPlaceReviewHandler(analyzer usecase.PlaceAnalyzer, log *zap.Logger) *handler.PlaceReviewHandler {
	uc := usecase.NewPlaceReviewUsecase(analyzer, metrics.Recorder{})
	return handler.NewPlaceReviewHandler(uc, view.NewMarkdownRenderer(), log)
}
