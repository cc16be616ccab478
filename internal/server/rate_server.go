package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-chi/chi/v5"

	"dnf_rate/internal/domain"
	"dnf_rate/internal/domain/entity"
	"dnf_rate/internal/domain/service/area"
	"dnf_rate/pkg/errcodes"
	"dnf_rate/pkg/httpx/reply"
	"dnf_rate/pkg/httpx/req"
	"dnf_rate/pkg/logx"
	"dnf_rate/pkg/rest"
)

type rateService interface {
	Query(ctx context.Context, area entity.AreaSpec) (entity.Report, error)
}

type RateServer struct {
	rateService rateService
	runTimeout  time.Duration
}

func NewRateServer(rateService rateService, runTimeout time.Duration) RateServer {
	return RateServer{
		rateService: rateService,
		runTimeout:  runTimeout,
	}
}

func (s RateServer) getV1Rate(w http.ResponseWriter, r *http.Request) error {
	return s.reply(w, r, chi.URLParam(r, "area"), 0)
}

func (s RateServer) postV1Rates(w http.ResponseWriter, r *http.Request) error {
	var request rest.RateRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	return s.reply(w, r, request.Area, request.Limit)
}

func (s RateServer) reply(w http.ResponseWriter, r *http.Request, token string, limit int) error {
	ctx := r.Context()

	spec, err := area.Normalize(token)
	if err != nil {
		return failure.NewInvalidArgumentErrorFromError(
			fmt.Errorf("area.Normalize: %w", err),
			failure.WithCode(errcodes.InvalidArea),
			failure.WithDescription(err.Error()),
		)
	}

	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	report, err := s.rateService.Query(runCtx, spec)
	if err != nil {
		return fmt.Errorf("rateService.Query: %w", err)
	}

	if len(report.Platforms) == 0 {
		return domain.NewError(errcodes.NoData, "暂无"+spec.Display+"比例数据")
	}

	logger(ctx).Info("rate report served",
		slog.String(logx.FieldSlug, spec.Slug),
		slog.Int(logx.FieldPlatforms, len(report.Platforms)),
	)

	reply.JSON(ctx, w, http.StatusOK, newRESTReport(report, limit))

	return nil
}
