package middlewarex

import (
	"bytes"
	"cmp"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"dnf_rate/pkg/logx"
)

// RequestLogging пишет дамп входящего запроса. Тело multipart и запросов
// без тела не дампится.
func RequestLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			dumpBody := r.ContentLength != 0 &&
				!strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			dump, err := httputil.DumpRequest(r, dumpBody)
			if err != nil {
				logger(ctx).Error("httputil.DumpRequest", logx.Error(err))
			}

			logger(ctx).Info(
				logx.FieldHTTPRequest,
				slog.String(logx.FieldRequestBody, masked(sensitiveDataMasker, dump, logFieldMaxLen)),
			)

			next.ServeHTTP(w, r)
		})
	}
}

// ResponseLogging пишет статус, заголовки и тело ответа. Уровень записи
// зависит от статуса: 5xx: Error, 4xx: Warn.
//
// Обёртка mutil сохраняет опциональные интерфейсы ResponseWriter:
// https://blog.merovius.de/posts/2017-07-30-the-trouble-with-optional-interfaces/
func ResponseLogging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()
			lw := mutil.WrapWriter(w)

			var body bytes.Buffer

			lw.Tee(&body)

			next.ServeHTTP(lw, r)

			var headers bytes.Buffer
			if err := w.Header().WriteSubset(&headers, nil); err != nil {
				logger(ctx).Error("header.WriteSubset", logx.Error(err))
			}

			// Без явного WriteHeader mutil отдаёт 0.
			status := cmp.Or(lw.Status(), http.StatusOK)

			logger(ctx).Log(
				ctx,
				levelForStatus(status),
				logx.FieldHTTPResponse,
				slog.Int(logx.FieldResponseStatus, status),
				slog.Int(logx.FieldResponseSize, lw.BytesWritten()),
				slog.String(logx.FieldResponseHeaders, masked(sensitiveDataMasker, headers.Bytes(), logFieldMaxLen)),
				slog.String(logx.FieldResponseBody, masked(sensitiveDataMasker, body.Bytes(), logFieldMaxLen)),
				slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			)
		})
	}
}

func masked(sensitiveDataMasker logx.SensitiveDataMaskerInterface, dump []byte, maxLen int) string {
	if maxLen > 0 && len(dump) > maxLen {
		dump = dump[:maxLen]
	}

	return string(sensitiveDataMasker.Mask(dump))
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
