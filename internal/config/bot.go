package config

import "time"

// Bot: пустой токен отключает бота.
type Bot struct {
	Token        string  `env:"BOT_TOKEN" yaml:"token" json:"-"`
	AdminID      int64   `env:"BOT_ADMIN_ID" yaml:"admin_id"`
	AllowedChats []int64 `env:"BOT_ALLOWED_CHATS" envSeparator:"," yaml:"allowed_chats"`
}

// Watch: периодическая рассылка отчётов. Пустой список зон: рассылки нет.
type Watch struct {
	Areas    []string      `env:"WATCH_AREAS" envSeparator:"," yaml:"areas"`
	Interval time.Duration `env:"WATCH_INTERVAL" envDefault:"30m" yaml:"interval" validate:"min=1m"`
	ChatID   int64         `env:"WATCH_CHAT_ID" yaml:"chat_id" validate:"required_with=Areas"`
}

type HTTP struct {
	Address         string        `env:"HTTP_ADDRESS" envDefault:":8080" yaml:"address"`
	MetricsAddress  string        `env:"METRICS_ADDRESS" envDefault:":9090" yaml:"metrics_address"`
	ProbeAddress    string        `env:"PROBE_ADDRESS" envDefault:":8081" yaml:"probe_address"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s" yaml:"shutdown_timeout"`
}
