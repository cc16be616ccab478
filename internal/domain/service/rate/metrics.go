package rate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK    = "ok"
	outcomeEmpty = "empty"
	outcomeError = "error"

	channelQueried = "queried"
	channelSkipped = "skipped"
)

//nolint:gochecknoglobals
var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dnf_rate",
		Name:      "runs_total",
		Help:      "Rate lookups by outcome.",
	}, []string{"outcome"})

	channelsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dnf_rate",
		Name:      "channels_total",
		Help:      "Channels processed by status.",
	}, []string{"status"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "dnf_rate",
		Name:      "run_duration_seconds",
		Help:      "Duration of a full rate lookup.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60},
	})
)
