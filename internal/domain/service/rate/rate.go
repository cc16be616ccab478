package rate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"

	"dnf_rate/internal/domain/entity"
	"dnf_rate/pkg/contextx"
	"dnf_rate/pkg/logx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

type Site interface {
	LandingURL(slug string) string
	FetchHTML(ctx context.Context, url string) (string, error)
	FetchScript(ctx context.Context, url string) (string, error)
	ConfigScriptURL(html string) (string, error)
	Negotiate(ctx context.Context, gID, gsID string) (*entity.SecretToken, error)
	Query(ctx context.Context, req entity.SignedRequest) ([]entity.Listing, error)
}

type Extractor interface {
	Extract(script string) ([]entity.ChannelDescriptor, error)
}

type Service struct {
	site        Site
	extractor   Extractor
	coinNo      string
	concurrency int
}

func NewService(site Site, extractor Extractor, coinNo string) *Service {
	return &Service{
		site:        site,
		extractor:   extractor,
		coinNo:      coinNo,
		concurrency: 1,
	}
}

// WithConcurrency задаёт число каналов, опрашиваемых одновременно.
// Результат от этого не зависит: заказы сводятся в порядке каналов.
func (s *Service) WithConcurrency(n int) *Service {
	if n > 0 {
		s.concurrency = n
	}

	return s
}

// Query выполняет полный прогон для кросс-сервера. Ошибки отдельных каналов
// не прерывают прогон; прерывают только ошибки страницы, скрипта и отмена ctx.
// Пустой Report.Platforms: «данных нет», а не ошибка.
func (s *Service) Query(ctx context.Context, area entity.AreaSpec) (entity.Report, error) {
	started := time.Now()
	ctx = contextx.WithLogger(ctx, logger(ctx).With(slog.String(logx.FieldArea, area.Slug)))

	report, err := s.query(ctx, area)

	runDuration.Observe(time.Since(started).Seconds())

	switch {
	case err != nil:
		runsTotal.WithLabelValues(outcomeError).Inc()
	case len(report.Platforms) == 0:
		runsTotal.WithLabelValues(outcomeEmpty).Inc()
	default:
		runsTotal.WithLabelValues(outcomeOK).Inc()
	}

	return report, err
}

func (s *Service) query(ctx context.Context, area entity.AreaSpec) (entity.Report, error) {
	landing := s.site.LandingURL(area.Slug)
	report := entity.Report{Area: area, SourceURL: landing, Platforms: []entity.PlatformBest{}}

	html, err := s.site.FetchHTML(ctx, landing)
	if err != nil {
		return report, fmt.Errorf("fetch landing: %w", err)
	}

	scriptURL, err := s.site.ConfigScriptURL(html)
	if err != nil {
		return report, fmt.Errorf("locate config script: %w", err)
	}

	script, err := s.site.FetchScript(ctx, scriptURL)
	if err != nil {
		return report, fmt.Errorf("fetch config script: %w", err)
	}

	descriptors, err := s.extractor.Extract(script)
	if err != nil {
		return report, fmt.Errorf("extract channels: %w", err)
	}

	report.Channels = len(descriptors)

	results := make([]channelResult, len(descriptors))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, descriptor := range descriptors {
		g.Go(func() error {
			res, err := s.channel(gctx, i, descriptor)
			results[i] = res

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return report, fmt.Errorf("query channels: %w", err)
	}

	agg := NewAggregator()

	for _, res := range results {
		if res.skipped {
			report.Skipped++
			continue
		}

		agg.Add(res.platform, res.listings)
	}

	report.Platforms = agg.Result()

	logger(ctx).Info("rate lookup finished",
		slog.Int(logx.FieldChannels, report.Channels),
		slog.Int(logx.FieldSkipped, report.Skipped),
		slog.Int(logx.FieldPlatforms, len(report.Platforms)),
	)

	return report, nil
}

type channelResult struct {
	platform string
	listings []entity.Listing
	skipped  bool
}

// channel возвращает ошибку только при отмене ctx.
func (s *Service) channel(ctx context.Context, index int, descriptor entity.ChannelDescriptor) (channelResult, error) {
	if err := ctx.Err(); err != nil {
		return channelResult{skipped: true}, err //nolint:wrapcheck
	}

	log := logger(ctx).With(slog.Int(logx.FieldChannel, index))

	skip := func(reason string, err error) (channelResult, error) {
		channelsTotal.WithLabelValues(channelSkipped).Inc()

		if ctxErr := ctx.Err(); ctxErr != nil {
			return channelResult{skipped: true}, ctxErr
		}

		if err != nil {
			log.Warn("channel skipped", slog.String(logx.FieldReason, reason), logx.Error(err))
		} else {
			log.Debug("channel skipped", slog.String(logx.FieldReason, reason))
		}

		return channelResult{skipped: true}, nil
	}

	var payload entity.ChannelPayload
	if err := json.Unmarshal([]byte(descriptor.Data), &payload); err != nil {
		return skip("invalid data", nil)
	}

	if !payload.MatchesCoin(s.coinNo) {
		return skip("other coin", nil)
	}

	if !payload.Usable() {
		return skip("missing fields", nil)
	}

	token, err := s.site.Negotiate(ctx, payload.GID.String(), payload.GsID.String())
	if err != nil {
		return skip("negotiate", err)
	}

	if token == nil || !token.Valid() {
		return skip("no secret", nil)
	}

	listings, err := s.site.Query(ctx, entity.SignedRequest{
		Data:   descriptor.Data,
		Sign:   descriptor.Sign,
		Cross:  0,
		Time:   token.Time,
		Secret: Sign(token.Secret.String(), payload.PfID.String(), descriptor.Sign),
	})
	if err != nil {
		return skip("query", err)
	}

	if len(listings) == 0 {
		return skip("no listings", nil)
	}

	channelsTotal.WithLabelValues(channelQueried).Inc()

	log.Debug("channel queried",
		slog.String(logx.FieldPlatform, payload.PfName.String()),
		slog.Int(logx.FieldListings, len(listings)),
	)

	return channelResult{platform: payload.PfName.String(), listings: listings}, nil
}

// IsCanceled сообщает, что прогон прерван отменой или таймаутом.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
