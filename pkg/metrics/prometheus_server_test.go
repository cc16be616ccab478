package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"dnf_rate/pkg/metrics"
)

func TestPrometheusServer(t *testing.T) {
	registry := prometheus.NewRegistry()

	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dnf_rate_runs_total",
		Help: "Rate lookups by outcome.",
	}, []string{"outcome"})
	registry.MustRegister(runs)
	runs.WithLabelValues("ok").Add(3)

	ts := httptest.NewServer(metrics.NewPrometheusServer(":0").WithGatherer(registry).Handler())
	defer ts.Close()

	testCases := []struct {
		name       string
		endpoint   string
		statusCode int
		contains   string
	}{
		{
			name:       "Metrics handler",
			endpoint:   "/metrics",
			statusCode: http.StatusOK,
			contains:   `dnf_rate_runs_total{outcome="ok"} 3`,
		},
		{
			name:       "Invalid endpoint",
			endpoint:   "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			resp, err := ts.Client().Get(ts.URL + tc.endpoint)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			b, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			if tc.contains != "" {
				rq.Contains(string(b), tc.contains)
			}
		})
	}
}
