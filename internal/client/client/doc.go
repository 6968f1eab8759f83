// Package client talks to the portfolio backend.
//
// # Overview
//
//  1. Client is the transport-agnostic API contract: authentication calls
//     (Login, Register, ForgotPassword, ResetPassword), profile, portfolio
//     data, exchange connection and Ping.
//  2. HTTPClient implements it over JSON/HTTP. Its transport chain is
//     authn.Transport (bearer credential, read from the store per request)
//     on top of netx.RequestIDTransport.
//  3. HealthChecker pings the backend's gRPC health service through the
//     authn unary interceptor.
//
// # Error Handling
//
// HTTP statuses and gRPC codes map to sentinel errors that callers match with
// errors.Is: ErrUnauthorized (401, Unauthenticated), ErrUnavailable (5xx,
// network failures, Unavailable/DeadlineExceeded) and ErrBadRequest (other
// 4xx including 403, PermissionDenied). Reacting to ErrUnauthorized, typically with a
// logout, is up to the caller.
package client
