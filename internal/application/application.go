package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-chi/chi/v5"
	"github.com/mymmrac/telego"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"dnf_rate/internal/config"
	"dnf_rate/internal/domain/entity"
	"dnf_rate/internal/domain/service/area"
	"dnf_rate/internal/domain/service/rate"
	"dnf_rate/internal/infrastructure/extract"
	"dnf_rate/internal/infrastructure/notifier"
	"dnf_rate/internal/infrastructure/yxdr"
	"dnf_rate/internal/server"
	"dnf_rate/internal/transport/bot"
	"dnf_rate/internal/transport/bot/handler"
	"dnf_rate/internal/worker"
	"dnf_rate/pkg/application/modules"
	"dnf_rate/pkg/contextx"
	"dnf_rate/pkg/httpx"
	"dnf_rate/pkg/logx"
	"dnf_rate/pkg/middlewarex"
	"dnf_rate/pkg/probe"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const reportsBuffer = 16

// Run собирает зависимости и блокируется, пока ctx не отменён или один из
// модулей не завершился с ошибкой.
func Run(ctx context.Context, cfg config.Config) error { //nolint:funlen
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	))

	masker := logx.NewSensitiveDataMasker()

	rateService, err := NewRateService(cfg, masker)
	if err != nil {
		return err
	}

	reports := make(chan entity.Report, reportsBuffer)

	watchAreas, err := normalizeAreas(cfg.Watch.Areas)
	if err != nil {
		return fmt.Errorf("watch areas: %w", err)
	}

	watcher := worker.NewRateWatcher(rateService, reports, cfg.Watch.Interval).
		WithAreas(watchAreas...).
		WithRunTimeout(cfg.Rate.RunTimeout)

	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, cfg.App.LogFieldMaxLen),
		middlewarex.ResponseLogging(masker, cfg.App.LogFieldMaxLen),
	)

	server.NewServer(server.NewRateServer(rateService, cfg.Rate.RunTimeout)).RegisterRoutes(router)

	var (
		chatBot *bot.Bot
		alerts  *notifier.TelegramBot
		checks  = map[string]probe.Check{}
	)

	if cfg.Bot.Token != "" {
		telegramBot, err := telego.NewBot(cfg.Bot.Token, telego.WithDiscardLogger())
		if err != nil {
			return fmt.Errorf("telego.NewBot: %w", err)
		}

		h := handler.New(rateService, watcher, cfg.Rate.RunTimeout, cfg.Rate.ReportLimit)

		chatBot = bot.New(telegramBot, h, cfg.Bot)
		alerts = notifier.NewTelegramBot(telegramBot, cfg.Watch.ChatID, cfg.Rate.ReportLimit)
		checks["bot"] = chatBot.Ready
	}

	g, ctx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		Address:         cfg.HTTP.Address,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, router)
	modules.MetricServer{ListenAddress: cfg.HTTP.MetricsAddress}.Run(ctx, g)
	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeAddress,
		Checks:        checks,
	}.Run(ctx, g)

	if chatBot == nil {
		logger(ctx).Warn("BOT_TOKEN is empty, chat interface and watcher are disabled")
		return wait(g)
	}

	modules.Background{Name: "bot"}.Run(ctx, g, chatBot)
	modules.Background{Name: "notifier"}.Run(ctx, g, modules.RunnerFunc(func(ctx context.Context) error {
		return alerts.Run(ctx, reports)
	}))

	if len(watchAreas) > 0 {
		if err := watcher.Start(ctx); err != nil {
			logger(ctx).Error("watcher.Start", logx.Error(err))
		} else {
			logger(ctx).Info("rate watcher scheduled", slog.Any(logx.FieldArea, lo.Map(watchAreas,
				func(a entity.AreaSpec, _ int) string { return a.Slug },
			)))
		}
	}

	g.Go(func() error {
		<-ctx.Done()
		watcher.Stop()

		return nil
	})

	return wait(g)
}

func wait(g *errgroup.Group) error {
	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}

// NewRateService собирает upstream-клиент и сервис прогона.
func NewRateService(cfg config.Config, masker logx.SensitiveDataMaskerInterface) (*rate.Service, error) {
	site, err := yxdr.New(newUpstreamClient(cfg, masker), yxdr.Config{
		BaseURL:      cfg.Rate.BaseURL,
		CategoryPath: cfg.Rate.CategoryPath,
		CategoryID:   cfg.Rate.CategoryID,
		CoinNo:       cfg.Rate.CoinNo,
	})
	if err != nil {
		return nil, fmt.Errorf("yxdr.New: %w", err)
	}

	extractor, err := extract.New(cfg.Rate.Extraction)
	if err != nil {
		return nil, fmt.Errorf("extract.New: %w", err)
	}

	return rate.NewService(site, extractor, cfg.Rate.CoinNo).
		WithConcurrency(cfg.Rate.Concurrency), nil
}

// newUpstreamClient: доп. заголовки -> логирование -> (обход Cloudflare) -> сеть.
// Своего таймаута у клиента нет: длительность прогона ограничивает ctx
// вызывающего (RATE_RUN_TIMEOUT).
func newUpstreamClient(cfg config.Config, masker logx.SensitiveDataMaskerInterface) *http.Client {
	var transport http.RoundTripper = http.DefaultTransport
	if cfg.Rate.CloudflareBypass {
		transport = cloudflarebp.AddCloudFlareByPass(transport)
	}

	transport = httpx.NewLoggingRoundTripper(
		transport,
		httpx.WithSensitiveDataMasker(masker),
		httpx.WithLogFieldMaxLen(cfg.App.LogFieldMaxLen),
		httpx.WithLogLevel(logx.ParseLevel(cfg.App.UpstreamLogLevel)),
	)

	headers := http.Header{}
	for name, value := range cfg.Rate.Headers {
		headers.Set(name, value)
	}

	if len(headers) > 0 {
		transport = httpx.NewHeaderRoundTripper(transport, headers)
	}

	return &http.Client{Transport: transport}
}

func normalizeAreas(tokens []string) ([]entity.AreaSpec, error) {
	areas := make([]entity.AreaSpec, 0, len(tokens))

	for _, token := range tokens {
		spec, err := area.Normalize(token)
		if err != nil {
			return nil, fmt.Errorf("area.Normalize %q: %w", token, err)
		}

		areas = append(areas, spec)
	}

	return areas, nil
}
