package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
	"github.com/stretchr/testify/require"

	"dnf_rate/internal/domain/entity"
	"dnf_rate/internal/transport/bot/handler"
	"dnf_rate/internal/transport/bot/view"
)

const (
	testToken = "123456:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

	adminID     = int64(42)
	userID      = int64(7)
	allowedChat = int64(-100)
	deniedChat  = int64(-200)
)

type sentMessage struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// fakeTelegram поднимает Bot API, который запоминает sendMessage.
func fakeTelegram(t *testing.T) (*telego.Bot, func() []sentMessage) {
	t.Helper()

	var (
		mu   sync.Mutex
		sent []sentMessage
	)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/sendMessage") {
			body, _ := io.ReadAll(r.Body)

			var msg sentMessage
			_ = jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &msg)

			mu.Lock()
			sent = append(sent, msg)
			mu.Unlock()
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":-100,"type":"group"}}}`)
	}))
	t.Cleanup(srv.Close)

	bot, err := telego.NewBot(testToken, telego.WithAPIServer(srv.URL), telego.WithDiscardLogger())
	require.NoError(t, err)

	return bot, func() []sentMessage {
		mu.Lock()
		defer mu.Unlock()

		return append([]sentMessage(nil), sent...)
	}
}

func message(chatID, fromID int64, text string) telego.Update {
	chatType := telego.ChatTypeGroup
	if chatID > 0 {
		chatType = telego.ChatTypePrivate
	}

	return telego.Update{
		UpdateID: 1,
		Message: &telego.Message{
			MessageID: 1,
			Chat:      telego.Chat{ID: chatID, Type: chatType},
			From:      &telego.User{ID: fromID, FirstName: "u"},
			Text:      text,
		},
	}
}

func TestRegisterRoutes(t *testing.T) {
	noData := "未解析到跨2的比例数据，可能页面结构已变更"

	tests := []struct {
		name         string
		adminID      int64
		allowedChats []int64
		update       telego.Update
		want         []sentMessage
	}{
		{
			name:         "rate trigger from allowed chat",
			adminID:      adminID,
			allowedChats: []int64{allowedChat},
			update:       message(allowedChat, userID, "#DNF跨二比例"),
			want:         []sentMessage{{ChatID: allowedChat, Text: noData}},
		},
		{
			name:         "rate trigger from denied chat",
			adminID:      adminID,
			allowedChats: []int64{allowedChat},
			update:       message(deniedChat, userID, "#DNF跨二比例"),
		},
		{
			name:         "rate command from allowed chat",
			adminID:      adminID,
			allowedChats: []int64{allowedChat},
			update:       message(allowedChat, userID, "/rate 二"),
			want:         []sentMessage{{ChatID: allowedChat, Text: noData}},
		},
		{
			name:         "start from denied chat",
			adminID:      adminID,
			allowedChats: []int64{allowedChat},
			update:       message(deniedChat, userID, "/start"),
		},
		{
			name:    "empty allow list lets every chat through",
			adminID: adminID,
			update:  message(deniedChat, userID, "#dnf跨2比例"),
			want:    []sentMessage{{ChatID: deniedChat, Text: noData}},
		},
		{
			name:         "admin watchlist from allowed chat",
			adminID:      adminID,
			allowedChats: []int64{allowedChat},
			update:       message(allowedChat, adminID, "/watchlist"),
			want:         []sentMessage{{ChatID: allowedChat, Text: view.WatchListEmpty}},
		},
		{
			name:         "admin watchlist from private chat outside allow list",
			adminID:      adminID,
			allowedChats: []int64{allowedChat},
			update:       message(adminID, adminID, "/watchlist"),
			want:         []sentMessage{{ChatID: adminID, Text: view.WatchListEmpty}},
		},
		{
			name:         "admin watchadd",
			adminID:      adminID,
			allowedChats: []int64{allowedChat},
			update:       message(adminID, adminID, "/watchadd 二"),
			want:         []sentMessage{{ChatID: adminID, Text: "已添加跨2"}},
		},
		{
			name:         "non admin watchlist from allowed chat",
			adminID:      adminID,
			allowedChats: []int64{allowedChat},
			update:       message(allowedChat, userID, "/watchlist"),
		},
		{
			name:    "watch commands disabled without admin",
			adminID: 0,
			update:  message(adminID, adminID, "/watchlist"),
		},
		{
			name:    "rate trigger still works without admin",
			adminID: 0,
			update:  message(allowedChat, userID, "#DNF跨二比例"),
			want:    []sentMessage{{ChatID: allowedChat, Text: noData}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			bot, sent := fakeTelegram(t)
			bh, err := th.NewBotHandler(bot, make(chan telego.Update))
			rq.NoError(err)

			svc := &fakeService{report: entity.Report{SourceURL: "https://src"}}
			h := handler.New(svc, &fakeWatcher{}, time.Second, 8)
			h.RegisterRoutes(bh, tc.adminID, tc.allowedChats)

			rq.NoError(bh.BaseGroup().HandleUpdate(context.Background(), bot, tc.update))
			rq.Equal(tc.want, sent())
		})
	}
}

func TestWatchClear(t *testing.T) {
	rq := require.New(t)

	bot, sent := fakeTelegram(t)
	bh, err := th.NewBotHandler(bot, make(chan telego.Update))
	rq.NoError(err)

	watcher := &fakeWatcher{areas: []entity.AreaSpec{{Slug: "kua2", Display: "2"}}}
	h := handler.New(&fakeService{}, watcher, time.Second, 8)
	h.RegisterRoutes(bh, adminID, []int64{allowedChat})

	rq.NoError(bh.BaseGroup().HandleUpdate(context.Background(), bot, message(adminID, adminID, "/watchclear")))
	rq.Empty(watcher.Areas())

	rq.NoError(bh.BaseGroup().HandleUpdate(context.Background(), bot, message(allowedChat, userID, "/watchclear")))
	rq.Equal([]sentMessage{{ChatID: adminID, Text: view.WatchCleared}}, sent())
}
