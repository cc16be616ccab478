package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"dnf_rate/internal/config"
	"dnf_rate/internal/transport/bot/handler"
	"dnf_rate/pkg/contextx"
	"dnf_rate/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const longPollingTimeout = 60

var errNotPolling = errors.New("bot is not polling updates")

// Bot: чат-интерфейс запросов курса.
type Bot struct {
	bot     *telego.Bot
	handler *handler.Handler
	cfg     config.Bot
	polling atomic.Bool
}

func New(bot *telego.Bot, h *handler.Handler, cfg config.Bot) *Bot {
	return &Bot{
		bot:     bot,
		handler: h,
		cfg:     cfg,
	}
}

// Run получает обновления long polling и обрабатывает их до отмены ctx.
func (b *Bot) Run(ctx context.Context) error {
	updates, err := b.bot.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout: longPollingTimeout,
	})
	if err != nil {
		return fmt.Errorf("updates via long polling: %w", err)
	}

	botHandler, err := th.NewBotHandler(b.bot, updates)
	if err != nil {
		return fmt.Errorf("create bot handler: %w", err)
	}

	b.handler.RegisterRoutes(botHandler, b.cfg.AdminID, b.cfg.AllowedChats)

	go func() {
		if err := botHandler.Start(); err != nil {
			logger(ctx).Error("bot handler stopped", logx.Error(err))
		}
	}()

	b.polling.Store(true)
	defer b.polling.Store(false)

	logger(ctx).Info("bot started", slog.Int("allowed-chats", len(b.cfg.AllowedChats)))

	<-ctx.Done()

	if err := botHandler.Stop(); err != nil {
		logger(ctx).Error("botHandler.Stop", logx.Error(err))
	}

	logger(ctx).Info("bot stopped")

	return nil
}

// Ready: проверка готовности для probe: бот получает обновления.
func (b *Bot) Ready(context.Context) error {
	if !b.polling.Load() {
		return errNotPolling
	}

	return nil
}
