// Package netx holds HTTP plumbing shared by the client and the development
// backend.
package netx

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader correlates a client request with backend logs.
const RequestIDHeader = "X-Request-ID"

// RequestIDTransport stamps every outbound request that lacks one with a
// random X-Request-ID.
type RequestIDTransport struct {
	Base http.RoundTripper
}

func NewRequestIDTransport(base http.RoundTripper) *RequestIDTransport {
	return &RequestIDTransport{Base: base}
}

func (t *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if req.Header.Get(RequestIDHeader) != "" {
		return base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.Header.Set(RequestIDHeader, uuid.NewString())
	return base.RoundTrip(r)
}
