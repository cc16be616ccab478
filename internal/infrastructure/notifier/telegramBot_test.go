package notifier_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"dnf_rate/internal/domain/entity"
	"dnf_rate/internal/infrastructure/notifier"
)

const testToken = "123456:AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

type sentMessage struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

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

func TestTelegramBotRun(t *testing.T) {
	rq := require.New(t)

	bot, sent := fakeTelegram(t)
	n := notifier.NewTelegramBot(bot, -100, 8)

	money, amount := 40.0, 200.0
	reports := make(chan entity.Report, 2)
	reports <- entity.Report{
		Area:      entity.AreaSpec{Slug: "kua2", Display: "2"},
		SourceURL: "https://src",
		Platforms: []entity.PlatformBest{{Platform: "X", RatioText: "5.0万金币/元", Ratio: 5, Count: 2, Money: &money, Amount: &amount}},
	}
	reports <- entity.Report{Area: entity.AreaSpec{Slug: "kua3a", Display: "3A"}}
	close(reports)

	rq.NoError(n.Run(context.Background(), reports))

	msgs := sent()
	rq.Len(msgs, 2)
	rq.Equal(int64(-100), msgs[0].ChatID)
	rq.Contains(msgs[0].Text, "X：5.0万金币/元（2单） 参考单：40元 / 200万")
	rq.Equal("未解析到跨3A的比例数据，可能页面结构已变更", msgs[1].Text)
}
