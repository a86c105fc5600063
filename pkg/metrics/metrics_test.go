package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveGeneration(t *testing.T) {
	m := New()
	m.ObserveGeneration(OutcomeSuccess)
	m.ObserveGeneration(OutcomeSuccess)
	m.ObserveGeneration(OutcomeTransport)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.generations.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.generations.WithLabelValues(OutcomeTransport)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.generations.WithLabelValues(OutcomeSafety)))
}

func TestObserveHTTPRequest(t *testing.T) {
	m := New()
	m.ObserveHTTPRequest(http.MethodPost, "/api/generate", 400, 20*time.Millisecond)
	m.ObserveHTTPRequest(http.MethodPost, "/api/generate", 200, 30*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("POST", "/api/generate", "400")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.httpDuration))
}

func TestHandlerExposesRelayMetrics(t *testing.T) {
	m := New()
	m.ObserveUpstream(time.Second)
	m.ObserveGeneration(OutcomeMalformed)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `gemini_relay_generations_total{outcome="malformed_response"} 1`)
	assert.Contains(t, string(body), "gemini_relay_upstream_request_duration_seconds_count 1")
	assert.Contains(t, string(body), "go_goroutines")
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGeneration(OutcomeSuccess)
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveUpstream(time.Millisecond)
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	})
}
