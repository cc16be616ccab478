package handler

import (
	th "github.com/mymmrac/telego/telegohandler"

	"dnf_rate/internal/transport/bot/middleware"
)

// RegisterRoutes: команды /watch* обрабатываются раньше списка разрешённых
// чатов, поэтому администратор управляет рассылкой из любого чата, а
// остальным они недоступны независимо от чата.
func (h *Handler) RegisterRoutes(bh *th.BotHandler, adminID int64, allowedChats []int64) {
	adminGroup := bh.Group(th.AnyMessage(), th.CommandPrefix("watch"))
	adminGroup.Use(middleware.AdminOnly(adminID))

	adminGroup.HandleMessage(h.OnWatchAdd, th.CommandEqual("watchadd"))
	adminGroup.HandleMessage(h.OnWatchRemove, th.CommandEqual("watchremove"))
	adminGroup.HandleMessage(h.OnWatchList, th.CommandEqual("watchlist"))
	adminGroup.HandleMessage(h.OnWatchClear, th.CommandEqual("watchclear"))
	adminGroup.HandleMessage(h.OnWatchStart, th.CommandEqual("watchstart"))
	adminGroup.HandleMessage(h.OnWatchStop, th.CommandEqual("watchstop"))

	chatGroup := bh.Group(th.AnyMessage())
	chatGroup.Use(middleware.AllowChats(allowedChats))

	chatGroup.HandleMessage(h.OnStart, th.CommandEqual("start"))
	chatGroup.HandleMessage(h.OnStart, th.CommandEqual("help"))
	chatGroup.HandleMessage(h.OnRate, th.CommandEqual("rate"))
	chatGroup.HandleMessage(h.OnRateCommand, th.TextMatches(RateCommand))
}
