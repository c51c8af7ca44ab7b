package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	reviewhandler "placereview/internal/feature/placereview/transport/handler"
	"placereview/internal/feature/placereview/transport/view"
	"placereview/internal/platform/http/handler"
	"placereview/internal/platform/logger"
	"placereview/internal/platform/metrics"
)

// NewRouter はルーティングを設定したginエンジンを返します。
func NewRouter(review *reviewhandler.PlaceReviewHandler, model string, log *zap.Logger) (*gin.Engine, error) {
	tmpl, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	r := gin.New()
	r.Use(logger.GinMiddleware(log), gin.Recovery())
	r.SetHTMLTemplate(tmpl)

	// 導通確認用
	health := handler.NewHealth(model)
	r.GET("/healthz", health)
	r.HEAD("/healthz", health)
	r.OPTIONS("/healthz", health)
	r.GET("/metrics", metrics.Handler())

	// 画面
	r.GET("/", review.Index)
	r.POST("/", review.Submit)

	// JSON API
	v1 := r.Group("/v1")
	{
		v1.POST("/review/analyze", review.AnalyzeJSON)
	}

	return r, nil
}
