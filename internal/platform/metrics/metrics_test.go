package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"placereview/internal/feature/placereview/domain/entity"
	"placereview/internal/platform/metrics"
)

func TestRecorder_RecordOutcome(t *testing.T) {
	before := testutil.ToFloat64(metrics.AnalysesTotal.WithLabelValues("warning"))

	metrics.Recorder{}.RecordOutcome(entity.OutcomeWarning)

	after := testutil.ToFloat64(metrics.AnalysesTotal.WithLabelValues("warning"))
	assert.Equal(t, before+1, after)
}

func TestRecorder_ObserveBackend(t *testing.T) {
	okBefore := testutil.ToFloat64(metrics.BackendRequestsTotal.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(metrics.BackendRequestsTotal.WithLabelValues("error"))

	metrics.Recorder{}.ObserveBackend(time.Second, nil)
	metrics.Recorder{}.ObserveBackend(time.Second, errors.New("boom"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(metrics.BackendRequestsTotal.WithLabelValues("ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(metrics.BackendRequestsTotal.WithLabelValues("error")))
}

func TestHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	metrics.Recorder{}.RecordOutcome(entity.OutcomeSuccess)

	r := gin.New()
	r.GET("/metrics", metrics.Handler())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "placereview_analyses_total")
}
