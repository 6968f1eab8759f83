package grpc

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/cryptotracker/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// accessTokenInterceptor lets anonymous calls through. A call that does carry
// a bearer token must carry a valid one.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var header string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get("authorization")
		if len(values) > 0 {
			header = values[0]
		}
	}
	if len(header) == 0 {
		return handler(ctx, req)
	}

	scheme, accessToken, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "invalid auth header format")
	}

	userId, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	ctx = context.WithValue(ctx, userIDKey, userId)

	return handler(ctx, req)
}
