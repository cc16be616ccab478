package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"

	"dnf_rate/pkg/contextx"
	"dnf_rate/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const httpServerReadHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Check сообщает, готов ли компонент обслуживать запросы.
type Check func(ctx context.Context) error

type Options struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type state struct {
	Options

	Ready  bool              `json:"ready"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Server отдаёт /healthz (процесс жив) и /ready (слушает и все проверки
// проходят). С началом остановки /ready отвечает 503.
type Server struct {
	listenAddress string
	options       Options
	checks        map[string]Check
	ready         *atomic.Bool
}

func NewServer(
	listenAddress string,
	options Options,
) Server {
	return Server{
		listenAddress: listenAddress,
		options:       options,
		checks:        map[string]Check{},
		ready:         &atomic.Bool{},
	}
}

// WithCheck добавляет именованную проверку готовности.
func (s Server) WithCheck(name string, check Check) Server {
	checks := make(map[string]Check, len(s.checks)+1)
	for k, v := range s.checks {
		checks[k] = v
	}

	checks[name] = check
	s.checks = checks

	return s
}

func (s Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handlerHealthz)
	mux.HandleFunc("/ready", s.handlerReady)

	return mux
}

// SetReady переключает готовность вручную; Run делает это сам.
func (s Server) SetReady(ready bool) {
	s.ready.Store(ready)
}

func (s Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		//nolint:exhaustruct
		Addr:              s.listenAddress,
		Handler:           s.Handler(),
		ReadHeaderTimeout: httpServerReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()

		s.SetReady(false)

		if err := httpServer.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger(ctx).Error("httpServer.Shutdown", logx.Error(err))
		}
	}()

	listener, err := net.Listen("tcp", s.listenAddress)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	s.SetReady(ctx.Err() == nil)

	logger(ctx).Info("probe server started", slog.String("address", listener.Addr().String()))

	if err := httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("httpServer.Serve: %w", err)
	}

	logger(ctx).Info("probe server stopped")

	return nil
}

func (s Server) handlerHealthz(w http.ResponseWriter, _ *http.Request) {
	s.write(w, http.StatusOK, state{Options: s.options, Ready: s.ready.Load()})
}

func (s Server) handlerReady(w http.ResponseWriter, r *http.Request) {
	st := state{Options: s.options, Ready: s.ready.Load()}

	if len(s.checks) > 0 {
		st.Checks = make(map[string]string, len(s.checks))
	}

	for name, check := range s.checks {
		if err := check(r.Context()); err != nil {
			st.Ready = false
			st.Checks[name] = err.Error()

			continue
		}

		st.Checks[name] = "ok"
	}

	status := http.StatusOK
	if !st.Ready {
		status = http.StatusServiceUnavailable
	}

	s.write(w, status, st)
}

func (s Server) write(w http.ResponseWriter, status int, st state) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(st); err != nil {
		logger(context.Background()).Error("json.Encode", logx.Error(err))
	}
}
