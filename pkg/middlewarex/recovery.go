package middlewarex

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"dnf_rate/pkg/errcodes"
	"dnf_rate/pkg/httpx/reply"
	"dnf_rate/pkg/logx"
)

var errPanic = errors.New("internal server error")

// Recovery превращает панику обработчика в ответ 500 в общем формате ошибок.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			if rec == http.ErrAbortHandler { //nolint:errorlint,err113
				panic(rec)
			}

			logger(ctx).Error(
				"panic in handler",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)

			reply.Status(ctx, w, http.StatusInternalServerError, errcodes.InternalServerError, errPanic)
		}()

		next.ServeHTTP(w, r)
	})
}
