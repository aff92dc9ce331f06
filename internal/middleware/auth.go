package middleware

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"calendar-store/internal/api"
	"calendar-store/internal/auth"
)

type ctxKey struct{}

// reachable without a token
var open = map[string]bool{
	api.FullMethod("Login"):   true,
	api.FullMethod("Refresh"): true,
}

// UserID returns the caller's userid as established by Auth.
func UserID(ctx context.Context) (string, bool) {
	uid, ok := ctx.Value(ctxKey{}).(string)
	return uid, ok && uid != ""
}

func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, ctxKey{}, uid)
}

func bearer(md metadata.MD) string {
	for _, v := range md.Get("authorization") {
		if tok, ok := strings.CutPrefix(v, "Bearer "); ok && tok != "" {
			return tok
		}
	}
	return ""
}

// Auth requires a valid bearer access token on every method except Login
// and Refresh. A token is only honoured while known reports its userid as
// registered, so deleting or renaming a person cuts off their tokens at once.
func Auth(iss *auth.Issuer, known func(userID string) bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		if open[info.FullMethod] {
			return next(ctx, req)
		}

		md, _ := metadata.FromIncomingContext(ctx)
		raw := bearer(md)
		if raw == "" {
			return nil, status.Error(codes.Unauthenticated, "no token")
		}

		claims, err := iss.Verify(raw)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "bad token")
		}
		if !known(claims.UserID) {
			return nil, status.Error(codes.Unauthenticated, "unknown user")
		}

		return next(WithUserID(ctx, claims.UserID), req)
	}
}
