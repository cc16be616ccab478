package logx

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// ParseLevel понимает debug, info, warn, error; остальное: info.
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}

	return level
}

// NewHandler: цветной tint-хендлер, общий для сервиса и CLI.
func NewHandler(w io.Writer, level slog.Level, timeFormat string) slog.Handler {
	if timeFormat == "" {
		timeFormat = time.DateTime
	}

	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: timeFormat,
	})
}
