package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/cryptotracker/internal/client/authn"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

var _ Pinger = (*HealthChecker)(nil)

// HealthChecker pings the backend through the standard gRPC health service.
type HealthChecker struct {
	conn   *grpc.ClientConn
	client healthpb.HealthClient
}

// NewHealthChecker dials addr lazily; calls carry the credential held by
// source.
func NewHealthChecker(addr string, source authn.CredentialSource) (*HealthChecker, error) {
	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(authn.UnaryClientInterceptor(source)),
	)
	if err != nil {
		return nil, err
	}
	return &HealthChecker{conn: conn, client: healthpb.NewHealthClient(conn)}, nil
}

func (h *HealthChecker) Ping(ctx context.Context) error {
	resp, err := h.client.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		return mapRPCError(err)
	}
	if resp.GetStatus() != healthpb.HealthCheckResponse_SERVING {
		return ErrUnavailable
	}
	return nil
}

func (h *HealthChecker) Close() error {
	return h.conn.Close()
}

func mapRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrBadRequest
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
