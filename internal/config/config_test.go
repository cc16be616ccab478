package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"dnf_rate/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Load()
	rq.NoError(err)

	rq.Equal("https://www.yxdr.com", cfg.Rate.BaseURL)
	rq.Equal("bijiaqi/dnf/youxibi", cfg.Rate.CategoryPath)
	rq.Equal("1838", cfg.Rate.CategoryID)
	rq.Equal("yxb", cfg.Rate.CoinNo)
	rq.Equal("sentinel", cfg.Rate.Extraction)
	rq.Equal(1, cfg.Rate.Concurrency)
	rq.Equal(8, cfg.Rate.ReportLimit)
	rq.Equal(60*time.Second, cfg.Rate.RunTimeout)
	rq.Equal(30*time.Minute, cfg.Watch.Interval)
	rq.Empty(cfg.Bot.Token)
}

func TestLoadEnv(t *testing.T) {
	rq := require.New(t)

	t.Setenv("RATE_CONCURRENCY", "4")
	t.Setenv("RATE_EXTRACTION", "json5")
	t.Setenv("BOT_ALLOWED_CHATS", "1,-1002")
	t.Setenv("WATCH_AREAS", "2,3a")
	t.Setenv("WATCH_CHAT_ID", "-1002")
	t.Setenv("RATE_HEADERS", "Cookie:cf_clearance=abc;X-Forwarded-For:1.2.3.4")

	cfg, err := config.Load()
	rq.NoError(err)
	rq.Equal(4, cfg.Rate.Concurrency)
	rq.Equal("json5", cfg.Rate.Extraction)
	rq.Equal([]int64{1, -1002}, cfg.Bot.AllowedChats)
	rq.Equal([]string{"2", "3a"}, cfg.Watch.Areas)
	rq.Equal(map[string]string{"Cookie": "cf_clearance=abc", "X-Forwarded-For": "1.2.3.4"}, cfg.Rate.Headers)
}

func TestLoadYAMLOverridesEnv(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	rq.NoError(os.WriteFile(path, []byte(`
rate:
  concurrency: 3
  run_timeout: 15s
watch:
  interval: 5m
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("RATE_CONCURRENCY", "8")
	t.Setenv("RATE_REPORT_LIMIT", "5")

	cfg, err := config.Load()
	rq.NoError(err)
	rq.Equal(3, cfg.Rate.Concurrency)
	rq.Equal(5, cfg.Rate.ReportLimit)
	rq.Equal(15*time.Second, cfg.Rate.RunTimeout)
	rq.Equal(5*time.Minute, cfg.Watch.Interval)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "extraction", key: "RATE_EXTRACTION", value: "regex"},
		{name: "concurrency", key: "RATE_CONCURRENCY", value: "0"},
		{name: "base url", key: "RATE_BASE_URL", value: "not a url"},
		{name: "watch without chat", key: "WATCH_AREAS", value: "2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := config.Load()
			require.Error(t, err)
		})
	}
}
