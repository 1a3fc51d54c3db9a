package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"file-catalog/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func family(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			return f
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return nil
}

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(metrics.WithRegistry(reg), metrics.WithNamespace("test"))

	m.ObserveIntent("rename", nil)
	m.ObserveIntent("rename", nil)
	m.ObserveIntent("rename", errors.New("boom"))
	m.SetItems(5)
	m.ObserveRequest("http", "/api/items", "200", 10*time.Millisecond)

	t.Run("intents by result", func(t *testing.T) {
		f := family(t, reg, "test_intents_total")
		counts := map[string]float64{}
		for _, metric := range f.GetMetric() {
			for _, l := range metric.GetLabel() {
				if l.GetName() == "result" {
					counts[l.GetValue()] = metric.GetCounter().GetValue()
				}
			}
		}
		assert.Equal(t, 2.0, counts["ok"])
		assert.Equal(t, 1.0, counts["error"])
	})

	t.Run("items gauge", func(t *testing.T) {
		f := family(t, reg, "test_items")
		assert.Equal(t, 5.0, f.GetMetric()[0].GetGauge().GetValue())
	})

	t.Run("request histogram", func(t *testing.T) {
		f := family(t, reg, "test_request_duration_seconds")
		assert.Equal(t, uint64(1), f.GetMetric()[0].GetHistogram().GetSampleCount())
	})

	t.Run("handler exposes text format", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		body, _ := io.ReadAll(rec.Body)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(body), "test_items 5")
	})
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveIntent("rename", nil)
		m.SetItems(1)
		m.ObserveRequest("grpc", "/x", "OK", time.Second)
	})
}
