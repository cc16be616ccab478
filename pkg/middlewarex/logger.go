package middlewarex

import (
	"log/slog"
	"net/http"

	"dnf_rate/pkg/contextx"
	"dnf_rate/pkg/logx"
)

// Logger кладёт в контекст логгер с полями запроса. Без TraceID выше по
// цепочке trace id создаётся здесь.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, traceID := contextx.EnsureTraceID(r.Context())

		ctx = contextx.WithLogger(
			ctx,
			logger(ctx).With(
				logx.Stringer(logx.FieldTraceID, traceID),
				slog.String(logx.FieldHTTPMethod, r.Method),
				slog.String(logx.FieldURL, r.URL.RequestURI()),
				slog.String(logx.FieldIP, r.RemoteAddr),
			),
		)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
