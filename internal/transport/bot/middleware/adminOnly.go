package middleware

import (
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// AdminOnly пропускает только сообщения администратора. adminID == 0 :
// администратора нет, команды недоступны никому.
func AdminOnly(adminID int64) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		if adminID == 0 || update.Message == nil || update.Message.From == nil {
			return nil
		}

		if update.Message.From.ID == adminID {
			return ctx.Next(update)
		}

		return nil
	}
}
