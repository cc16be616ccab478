package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dnf_rate/internal/application"
	"dnf_rate/internal/config"
	"dnf_rate/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := slog.New(logx.NewHandler(os.Stdout, logx.ParseLevel(cfg.App.LogLevel), time.DateTime))
	slog.SetDefault(log)

	if err := application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log.Info("application stopped")
}
