package httpx

import "log/slog"

type Option func(*LoggingRoundTripper)

// WithLogFieldMaxLen обрезает дампы запроса и ответа; 0: без ограничения.
func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithLogLevel задаёт уровень записей об обмене с upstream (по умолчанию Debug).
// Ошибки транспорта всегда пишутся с Warn.
func WithLogLevel(level slog.Level) Option {
	return func(rt *LoggingRoundTripper) {
		rt.level = level
	}
}
