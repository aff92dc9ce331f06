package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Logger writes one line per call. It should run first in the chain so it
// also sees calls rejected by later interceptors.
func Logger(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		rid := uuid.New().String()

		resp, err := next(logger.With().Str("request_id", rid).Logger().WithContext(ctx), req)

		code := status.Code(err)
		evt := logger.Info()
		switch code {
		case codes.OK:
		case codes.Internal, codes.Unknown:
			evt = logger.Error().Err(err)
		default:
			evt = logger.Warn().Str("error", status.Convert(err).Message())
		}

		evt.
			Str("request_id", rid).
			Str("method", info.FullMethod).
			Str("code", code.String()).
			Dur("latency", time.Since(start)).
			Str("peer", peerAddr(ctx)).
			Msg("rpc")

		return resp, err
	}
}
