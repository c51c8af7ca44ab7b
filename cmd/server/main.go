package main

import (
	"context"
	"errors"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"placereview/internal/app/di"
	"placereview/internal/app/router"
	"placereview/internal/platform/config"
	"placereview/internal/platform/logger"
)

func main() {
	// 設定（APIキーが無ければここで停止する）
	cfg, err := config.Load()
	if errors.Is(err, config.ErrMissingAPIKey) {
		log.Fatalf("[FATAL] APIキーがありません。.envファイルまたは環境変数 %s を確認してください。", config.KeyAPIKey)
	}
	if err != nil {
		log.Fatalf("[FATAL] failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("[FATAL] failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	// Gemini
	analyzer, err := di.NewGeminiAnalyzer(context.Background(), cfg.Gemini)
	if err != nil {
		zl.Fatal("failed to create gemini analyzer", zap.Error(err))
	}

	// Handler
	reviewH := di.NewPlaceReviewHandler(analyzer, zl)

	// ルータ生成
	r, err := router.NewRouter(reviewH, analyzer.Model(), zl)
	if err != nil {
		zl.Fatal("failed to build router", zap.Error(err))
	}

	zl.Info("server starting",
		zap.String("addr", cfg.Server.Address()),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("rate_limit", cfg.Gemini.RateLimit),
		zap.Duration("rate_interval", cfg.Gemini.RateInterval),
	)
	if err := r.Run(cfg.Server.Address()); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
