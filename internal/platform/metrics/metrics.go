// Package metrics はPrometheusメトリクスを定義します。
package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"placereview/internal/feature/placereview/domain/entity"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placereview_analyses_total",
			Help: "Total number of place analyses by outcome",
		},
		[]string{"outcome"},
	)

	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "placereview_backend_requests_total",
			Help: "Total number of generative backend requests by result",
		},
		[]string{"result"},
	)

	BackendRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "placereview_backend_request_duration_seconds",
			Help:    "Duration of generative backend requests in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)
)

// Recorder はusecaseとアダプターからメトリクスを記録します。
type Recorder struct{}

// RecordOutcome は分析結果の種別をカウントします。
func (Recorder) RecordOutcome(outcome entity.Outcome) {
	AnalysesTotal.WithLabelValues(outcome.String()).Inc()
}

// ObserveBackend はバックエンド呼び出しの所要時間と成否を記録します。
func (Recorder) ObserveBackend(d time.Duration, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	BackendRequestsTotal.WithLabelValues(result).Inc()
	BackendRequestDuration.Observe(d.Seconds())
}

// Handler は /metrics エンドポイントを返します。
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
