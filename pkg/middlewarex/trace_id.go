package middlewarex

import (
	"net/http"

	"dnf_rate/pkg/contextx"
)

const (
	headerNameTraceID = "X-Trace-Id"
	maxTraceIDLen     = 64
)

// TraceID берёт trace id из заголовка запроса или выдаёт новый и
// возвращает его в ответе.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := contextx.TraceID(r.Header.Get(headerNameTraceID))

		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = contextx.NewTraceID()
		}

		w.Header().Set(headerNameTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(contextx.WithTraceID(r.Context(), traceID)))
	})
}
