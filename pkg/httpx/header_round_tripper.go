package httpx

import (
	"net/http"
)

// HeaderRoundTripper fills in a fixed header set on every outgoing request.
// Headers already present on the request win.
type HeaderRoundTripper struct {
	next    http.RoundTripper
	headers http.Header
}

func NewHeaderRoundTripper(
	next http.RoundTripper,
	headers http.Header,
) HeaderRoundTripper {
	return HeaderRoundTripper{
		next:    next,
		headers: headers.Clone(),
	}
}

func (rt HeaderRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	missing := false

	for name := range rt.headers {
		if req.Header.Get(name) == "" {
			missing = true
			break
		}
	}

	if missing {
		// RoundTrippers must not modify the caller's request.
		req = req.Clone(req.Context())

		for name, values := range rt.headers {
			if req.Header.Get(name) == "" {
				req.Header[name] = values
			}
		}
	}

	return rt.next.RoundTrip(req) //nolint:wrapcheck
}
