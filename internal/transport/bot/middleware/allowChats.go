package middleware

import (
	"slices"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AllowChats пропускает сообщения только из перечисленных чатов.
// Пустой список: пропускать все.
func AllowChats(chatIDs []int64) th.Handler {
	allowed := slices.Clone(chatIDs)

	return func(ctx *th.Context, update telego.Update) error {
		if update.Message == nil {
			return nil
		}

		if len(allowed) == 0 || slices.Contains(allowed, update.Message.Chat.ID) {
			return ctx.Next(update)
		}

		return nil
	}
}
