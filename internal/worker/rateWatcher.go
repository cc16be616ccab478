package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"dnf_rate/internal/domain/entity"
	"dnf_rate/pkg/contextx"
	"dnf_rate/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var ErrAlreadyRunning = errors.New("watcher is already running")

type RateService interface {
	Query(ctx context.Context, area entity.AreaSpec) (entity.Report, error)
}

// RateWatcher периодически прогоняет список зон и отдаёт отчёты в канал.
// Каждый цикл строит отчёты заново.
type RateWatcher struct {
	svc     RateService
	reports chan<- entity.Report
	areas   []entity.AreaSpec

	interval   time.Duration
	runTimeout time.Duration

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewRateWatcher(
	svc RateService,
	reports chan<- entity.Report,
	interval time.Duration,
) *RateWatcher {
	return &RateWatcher{
		svc:        svc,
		reports:    reports,
		interval:   interval,
		runTimeout: time.Minute,
	}
}

func (w *RateWatcher) WithAreas(areas ...entity.AreaSpec) *RateWatcher {
	w.SetAreas(areas)
	return w
}

func (w *RateWatcher) WithRunTimeout(timeout time.Duration) *RateWatcher {
	if timeout > 0 {
		w.runTimeout = timeout
	}

	return w
}

// Start запускает цикл в фоне; ctx ограничивает его жизнь.
func (w *RateWatcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return ErrAlreadyRunning
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)

	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(watchCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("rate watcher stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *RateWatcher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *RateWatcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.isRunning
}

// Run блокируется до отмены ctx. Первый цикл выполняется сразу.
func (w *RateWatcher) Run(ctx context.Context) error {
	logger(ctx).Info("rate watcher started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.watchAll(ctx)

		select {
		case <-ctx.Done():
			logger(ctx).Info("rate watcher stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *RateWatcher) watchAll(ctx context.Context) {
	for _, area := range w.Areas() {
		if ctx.Err() != nil {
			return
		}

		report, err := w.watchOne(ctx, area)
		if err != nil {
			logger(ctx).Warn("rate lookup failed",
				slog.String(logx.FieldArea, area.Slug),
				logx.Error(err),
			)

			continue
		}

		select {
		case w.reports <- report:
		case <-ctx.Done():
			return
		}
	}
}

func (w *RateWatcher) watchOne(ctx context.Context, area entity.AreaSpec) (entity.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, w.runTimeout)
	defer cancel()

	return w.svc.Query(ctx, area) //nolint:wrapcheck
}
