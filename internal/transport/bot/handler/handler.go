package handler

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"dnf_rate/internal/domain/entity"
	"dnf_rate/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type RateService interface {
	Query(ctx context.Context, area entity.AreaSpec) (entity.Report, error)
}

type Watcher interface {
	Start(ctx context.Context) error
	Stop()
	IsRunning() bool
	AddArea(area entity.AreaSpec) bool
	RemoveArea(slug string) bool
	Areas() []entity.AreaSpec
	ClearAreas()
}

type Handler struct {
	svc     RateService
	watcher Watcher

	// Защита от повторного запроса той же зоны из того же чата, пока
	// предыдущий ещё выполняется. Результаты здесь не хранятся.
	inflight *cache.Cache

	runTimeout  time.Duration
	reportLimit int
}

func New(svc RateService, watcher Watcher, runTimeout time.Duration, reportLimit int) *Handler {
	return &Handler{
		svc:         svc,
		watcher:     watcher,
		inflight:    cache.New(runTimeout, runTimeout),
		runTimeout:  runTimeout,
		reportLimit: reportLimit,
	}
}
