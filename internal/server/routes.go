package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dnf_rate/internal/domain"
	"dnf_rate/pkg/errcodes"
	"dnf_rate/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/rates", func(r chi.Router) {
				r.Post("/", handler(s.postV1Rates))
				r.Get("/{area}", handler(s.getV1Rate))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			replyError(r.Context(), w, err)
		}
	}
}

// replyError переводит коды доменных ошибок в HTTP-статусы; остальное
// (failure, дедлайн) классифицирует reply.Error.
func replyError(ctx context.Context, w http.ResponseWriter, err error) {
	code, ok := domain.GetCode(err)
	if !ok || errors.Is(err, context.DeadlineExceeded) {
		reply.Error(ctx, w, err)
		return
	}

	switch code {
	case errcodes.NoData:
		reply.Status(ctx, w, http.StatusNotFound, code, err)
	case errcodes.FetchFailed, errcodes.EmptyResponse, errcodes.ConfigNotFound, errcodes.ConfigParseError:
		reply.Status(ctx, w, http.StatusBadGateway, code, err)
	case errcodes.RequestInFlight:
		reply.Status(ctx, w, http.StatusTooManyRequests, code, err)
	default:
		reply.Error(ctx, w, err)
	}
}
