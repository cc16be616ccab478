package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Runner: долгоживущий процесс, который блокируется до отмены ctx.
type Runner interface {
	Run(ctx context.Context) error
}

// Background модуль запускает Runner (бот, рассылку) в группе приложения.
// Завершение по отмене ctx не считается ошибкой.
type Background struct {
	Name string
}

func (b Background) Run(ctx context.Context, g *errgroup.Group, runner Runner) {
	g.Go(func() error {
		logger(ctx).Info("background module started", slog.String("module", b.Name))

		if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s.Run: %w", b.Name, err)
		}

		logger(ctx).Info("background module stopped", slog.String("module", b.Name))

		return nil
	})
}

// RunnerFunc адаптирует функцию к Runner.
type RunnerFunc func(ctx context.Context) error

func (f RunnerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
