package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"

	"dnf_rate/internal/domain/entity"
	"dnf_rate/internal/transport/bot/view"
	"dnf_rate/pkg/contextx"
	"dnf_rate/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// TelegramBot рассылает отчёты планировщика в один чат.
type TelegramBot struct {
	bot         *telego.Bot
	chatID      int64
	reportLimit int
}

func NewTelegramBot(bot *telego.Bot, chatID int64, reportLimit int) *TelegramBot {
	return &TelegramBot{
		bot:         bot,
		chatID:      chatID,
		reportLimit: reportLimit,
	}
}

// Run отправляет отчёты из канала, пока он открыт или не отменён ctx.
func (b *TelegramBot) Run(ctx context.Context, reports <-chan entity.Report) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case report, ok := <-reports:
			if !ok {
				return nil
			}

			if err := b.SendReport(ctx, report); err != nil {
				logger(ctx).Error("failed to send report",
					slog.String(logx.FieldArea, report.Area.Slug),
					logx.Error(err),
				)
			}
		}
	}
}

func (b *TelegramBot) SendReport(ctx context.Context, report entity.Report) error {
	text := view.NoData(report.Area.Display)
	if len(report.Platforms) > 0 {
		text = view.Report(report, b.reportLimit)
	}

	return b.SendText(ctx, text)
}

// SendText отправляет простое текстовое сообщение.
func (b *TelegramBot) SendText(ctx context.Context, text string) error {
	msg := tu.Message(tu.ID(b.chatID), text).
		WithLinkPreviewOptions(&telego.LinkPreviewOptions{IsDisabled: true})

	if _, err := b.bot.SendMessage(ctx, msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}
