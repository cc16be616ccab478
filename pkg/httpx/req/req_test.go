package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"dnf_rate/pkg/errcodes"
	"dnf_rate/pkg/httpx/req"
)

type payload struct {
	Area  string `json:"area" validate:"required"`
	Limit int    `json:"limit" validate:"min=0"`
}

func TestRead(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		want        payload
		description string
	}{
		{name: "valid", body: `{"area":"3a","limit":2}`, want: payload{Area: "3a", Limit: 2}},
		{name: "broken json", body: `{"area":`, description: "Invalid JSON"},
		{name: "unknown field", body: `{"area":"2","zone":1}`, description: "Invalid JSON"},
		{name: "missing area", body: `{"limit":1}`, description: "Area: required"},
		{name: "negative limit", body: `{"area":"2","limit":-1}`, description: "Limit: min"},
		{name: "too large", body: `{"area":"` + strings.Repeat("2", req.MaxBodySize) + `"}`, description: "*"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(*testing.T) {
			rq := require.New(t)

			r := httptest.NewRequest(http.MethodPost, "/v1/rates", strings.NewReader(tc.body))

			var got payload

			err := req.Read(r, &got)
			if tc.description == "" {
				rq.NoError(err)
				rq.Equal(tc.want, got)

				return
			}

			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
			rq.Equal(errcodes.ValidationError, failure.Code(err))
			if tc.description != "*" {
				rq.Equal(tc.description, failure.Description(err))
			}
		})
	}
}
