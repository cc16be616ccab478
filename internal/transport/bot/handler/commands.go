package handler

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"dnf_rate/internal/domain/service/area"
	"dnf_rate/internal/transport/bot/view"
	"dnf_rate/pkg/contextx"
	"dnf_rate/pkg/logx"
)

// RateCommand: «#DNF跨二比例», «#dnf跨3a比例».
var RateCommand = regexp.MustCompile(`^\s*#[dD][nN][fF]跨([\d一二三四五六七八九十]+|[3三][aAbB])比例\s*$`) //nolint:gochecknoglobals

func (h *Handler) OnStart(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, view.StartMessage)
}

// OnRateCommand обрабатывает «#DNF跨<зона>比例».
func (h *Handler) OnRateCommand(ctx *th.Context, msg telego.Message) error {
	token := ""
	if m := RateCommand.FindStringSubmatch(msg.Text); m != nil {
		token = m[1]
	}

	return h.send(ctx, msg.Chat.ID, h.Reply(ctx, msg.Chat.ID, token))
}

// OnRate обрабатывает «/rate <зона>».
func (h *Handler) OnRate(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, h.Reply(ctx, msg.Chat.ID, argument(msg.Text)))
}

// Reply выполняет прогон и возвращает текст ответа. Ошибки прогона
// превращаются в текст и наружу не выходят.
func (h *Handler) Reply(ctx context.Context, chatID int64, token string) string {
	ctx, traceID := contextx.EnsureTraceID(contextx.WithChatID(ctx, contextx.ChatID(chatID)))
	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		logx.Stringer(logx.FieldTraceID, traceID),
		slog.Int64(logx.FieldChatID, chatID),
	))

	spec, err := area.Normalize(token)
	if err != nil {
		logger(ctx).Info("unrecognised area", slog.String(logx.FieldArea, token))
		return view.InvalidArea
	}

	key := fmt.Sprintf("%d:%s", chatID, spec.Slug)
	if err := h.inflight.Add(key, struct{}{}, h.runTimeout); err != nil {
		return view.Busy(spec.Display)
	}
	defer h.inflight.Delete(key)

	runCtx, cancel := context.WithTimeout(ctx, h.runTimeout)
	defer cancel()

	report, err := h.svc.Query(runCtx, spec)
	if err != nil {
		logger(ctx).Error("rate lookup failed", slog.String(logx.FieldSlug, spec.Slug), logx.Error(err))
		return view.Failure(err)
	}

	if len(report.Platforms) == 0 {
		return view.NoData(spec.Display)
	}

	return view.Report(report, h.reportLimit)
}

func (h *Handler) OnWatchAdd(ctx *th.Context, msg telego.Message) error {
	spec, err := area.Normalize(argument(msg.Text))
	if err != nil {
		return h.send(ctx, msg.Chat.ID, view.WatchUsage)
	}

	if !h.watcher.AddArea(spec) {
		return h.send(ctx, msg.Chat.ID, view.WatchAlreadyAdded)
	}

	return h.send(ctx, msg.Chat.ID, view.WatchAdded(spec))
}

func (h *Handler) OnWatchRemove(ctx *th.Context, msg telego.Message) error {
	spec, err := area.Normalize(argument(msg.Text))
	if err != nil {
		return h.send(ctx, msg.Chat.ID, view.WatchRemoveUsage)
	}

	if !h.watcher.RemoveArea(spec.Slug) {
		return h.send(ctx, msg.Chat.ID, view.WatchNotInList)
	}

	return h.send(ctx, msg.Chat.ID, view.WatchRemoved(spec))
}

func (h *Handler) OnWatchList(ctx *th.Context, msg telego.Message) error {
	return h.send(ctx, msg.Chat.ID, view.WatchList(h.watcher.Areas(), h.watcher.IsRunning()))
}

func (h *Handler) OnWatchClear(ctx *th.Context, msg telego.Message) error {
	h.watcher.ClearAreas()

	return h.send(ctx, msg.Chat.ID, view.WatchCleared)
}

func (h *Handler) OnWatchStart(ctx *th.Context, msg telego.Message) error {
	if h.watcher.IsRunning() {
		return h.send(ctx, msg.Chat.ID, view.WatchAlreadyOn)
	}

	// Планировщик переживает обработку команды; останавливается через
	// /watchstop или при завершении приложения.
	if err := h.watcher.Start(context.WithoutCancel(ctx)); err != nil {
		return h.send(ctx, msg.Chat.ID, view.Failure(err))
	}

	return h.send(ctx, msg.Chat.ID, view.WatchStarted)
}

func (h *Handler) OnWatchStop(ctx *th.Context, msg telego.Message) error {
	if !h.watcher.IsRunning() {
		return h.send(ctx, msg.Chat.ID, view.WatchAlreadyOff)
	}

	h.watcher.Stop()

	return h.send(ctx, msg.Chat.ID, view.WatchStopped)
}

func (h *Handler) send(ctx *th.Context, chatID int64, text string) error {
	_, err := ctx.Bot().SendMessage(ctx, &telego.SendMessageParams{
		ChatID:             telego.ChatID{ID: chatID},
		Text:               text,
		LinkPreviewOptions: &telego.LinkPreviewOptions{IsDisabled: true},
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	return nil
}

// argument: первое слово после команды.
func argument(text string) string {
	parts := strings.Fields(text)
	if len(parts) < 2 { //nolint:mnd
		return ""
	}

	return parts[1]
}
