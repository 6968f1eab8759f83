// Package authn attaches the stored credential to outbound requests.
//
// The credential is read from its source on every request, never cached, so
// a login or logout made by another process sharing the store is honoured by
// the very next request. The interceptors only decorate requests: they do not
// block, retry or look at responses.
package authn

import (
	"context"
	"net/http"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

const (
	// HeaderName is the HTTP header carrying the credential.
	HeaderName = "Authorization"
	// MetadataKey is the gRPC metadata key carrying the credential.
	MetadataKey = "authorization"
	// Scheme prefixes the credential in the header value.
	Scheme = "Bearer"
)

// CredentialSource yields the current credential. credstore.Store satisfies it.
type CredentialSource interface {
	Get() (string, bool)
}

// HeaderValue formats credential for the Authorization header.
func HeaderValue(credential string) string {
	return Scheme + " " + credential
}

// Transport is an http.RoundTripper that sets the Authorization header from
// Source when a credential is present. Requests without a credential pass
// through unchanged.
type Transport struct {
	Source CredentialSource
	// Base performs the request; http.DefaultTransport when nil.
	Base http.RoundTripper
}

// NewTransport wraps base.
func NewTransport(source CredentialSource, base http.RoundTripper) *Transport {
	return &Transport{Source: source, Base: base}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	credential, ok := t.Source.Get()
	if !ok {
		return base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	r := req.Clone(req.Context())
	r.Header.Set(HeaderName, HeaderValue(credential))
	return base.RoundTrip(r)
}

func withCredential(ctx context.Context, credential string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(MetadataKey, HeaderValue(credential))

	return metadata.NewOutgoingContext(ctx, md)
}

// UnaryClientInterceptor is the gRPC counterpart of Transport.
func UnaryClientInterceptor(source CredentialSource) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		if credential, ok := source.Get(); ok {
			ctx = withCredential(ctx, credential)
		}
		return invoker(ctx, method, req, reply, cc, opts...)
	}
}
