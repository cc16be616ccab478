package middlewarex_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"dnf_rate/pkg/contextx"
	"dnf_rate/pkg/logx"
	"dnf_rate/pkg/middlewarex"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func chain(h http.Handler, logs *bytes.Buffer) http.Handler {
	base := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	withBase := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(contextx.WithLogger(r.Context(), base)))
		})
	}

	masker := logx.NewSensitiveDataMasker()

	return withBase(middlewarex.TraceID(middlewarex.Logger(middlewarex.Recovery(
		middlewarex.RequestLogging(masker, 256)(middlewarex.ResponseLogging(masker, 256)(h)),
	))))
}

func records(t *testing.T, logs *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any

	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		if line == "" {
			continue
		}

		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))

		out = append(out, record)
	}

	return out
}

func TestTraceIDPropagation(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated", incoming: "", keep: false},
		{name: "kept", incoming: "client-trace-1", keep: true},
		{name: "too long", incoming: strings.Repeat("x", 65), keep: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var seen contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen, _ = contextx.TraceIDFromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/v1/rates/2", http.NoBody)
			if tc.incoming != "" {
				req.Header.Set("X-Trace-Id", tc.incoming)
			}

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			rq.Equal(seen.String(), rec.Header().Get("X-Trace-Id"))

			if tc.keep {
				rq.Equal(tc.incoming, seen.String())
			} else {
				rq.Len(seen.String(), 20)
			}
		})
	}
}

func TestLoggingChain(t *testing.T) {
	rq := require.New(t)

	var logs bytes.Buffer

	h := chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextx.LoggerFromContextOrDefault(r.Context()).Info("inside")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":"NoData"}`))
	}), &logs)

	req := httptest.NewRequest(http.MethodPost, "/v1/rates", strings.NewReader(`{"area":"2"}`))
	req.Header.Set("X-Trace-Id", "trace-abc")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	rq.Equal(http.StatusNotFound, rec.Code)

	got := records(t, &logs)
	rq.Len(got, 3)

	for _, record := range got {
		rq.Equal("trace-abc", record[logx.FieldTraceID])
		rq.Equal(http.MethodPost, record[logx.FieldHTTPMethod])
	}

	rq.Equal(logx.FieldHTTPRequest, got[0]["msg"])
	rq.Contains(got[0][logx.FieldRequestBody], `{"area":"2"}`)
	rq.Equal("inside", got[1]["msg"])

	rq.Equal(logx.FieldHTTPResponse, got[2]["msg"])
	rq.Equal("WARN", got[2]["level"])
	rq.EqualValues(http.StatusNotFound, got[2][logx.FieldResponseStatus])
	rq.Equal(`{"code":"NoData"}`, got[2][logx.FieldResponseBody])
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	var logs bytes.Buffer

	h := chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), &logs)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rates/2", http.NoBody).WithContext(context.Background()))

	rq.Equal(http.StatusInternalServerError, rec.Code)

	var body struct {
		Code      string `json:"code"`
		SupportID string `json:"supportId"`
	}
	rq.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	rq.Equal("InternalServerError", body.Code)
	rq.Equal(rec.Header().Get("X-Trace-Id"), body.SupportID)
	rq.Contains(logs.String(), "panic in handler")
}
