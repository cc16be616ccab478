package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"dnf_rate/pkg/metrics"
	"dnf_rate/pkg/probe"
)

// MetricServer отдаёт метрики Prometheus. Пустой адрес отключает модуль.
type MetricServer struct {
	ListenAddress string
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	if m.ListenAddress == "" {
		logger(ctx).Info("metrics server disabled")
		return
	}

	prometheusServer := metrics.NewPrometheusServer(m.ListenAddress)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}

// ProbeServer отдаёт /healthz и /ready для оркестратора. Пустой адрес
// отключает модуль.
type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	Checks        map[string]probe.Check
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	if p.ListenAddress == "" {
		logger(ctx).Info("probe server disabled")
		return
	}

	probeServer := probe.NewServer(
		p.ListenAddress,
		probe.Options{
			Name:    p.Name,
			Version: p.Version,
		},
	)

	for name, check := range p.Checks {
		probeServer = probeServer.WithCheck(name, check)
	}

	g.Go(func() error {
		if err := probeServer.Run(ctx); err != nil {
			return fmt.Errorf("probeServer.Run: %w", err)
		}

		return nil
	})
}
