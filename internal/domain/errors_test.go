package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"dnf_rate/internal/domain"
	"dnf_rate/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("boom")
	err := fmt.Errorf("fetchLanding: %w", domain.WrapError(cause, errcodes.EmptyResponse, "页面内容为空"))

	rq.True(domain.IsAppError(err))
	rq.ErrorIs(err, cause)
	rq.EqualError(err, "fetchLanding: 页面内容为空: boom")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.EmptyResponse, code)
	rq.True(domain.HasCode(err, errcodes.EmptyResponse))
	rq.False(domain.HasCode(err, errcodes.FetchFailed))

	_, ok = domain.GetCode(cause)
	rq.False(ok)
}

func TestNewFetchFailed(t *testing.T) {
	rq := require.New(t)

	err := fmt.Errorf("wrap: %w", domain.NewFetchFailed("请求失败", "https://example.com/x", http.StatusNotFound))

	rq.True(domain.HasCode(err, errcodes.FetchFailed))
	rq.EqualError(err, "wrap: 请求失败: 404 Not Found")

	var statusErr *domain.StatusError
	rq.ErrorAs(err, &statusErr)
	rq.Equal(http.StatusNotFound, statusErr.Status)
	rq.Equal("Not Found", statusErr.StatusText)
	rq.Equal("https://example.com/x", statusErr.URL)
}
