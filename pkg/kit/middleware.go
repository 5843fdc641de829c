package kit

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Logging emits one log line per endpoint invocation.
func Logging(logger *slog.Logger, name string) Middleware {
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, request any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, request)
			if err != nil {
				logger.Error("endpoint failed",
					"endpoint", name,
					"transport", GetTransport(ctx),
					"request_id", GetRequestID(ctx),
					"duration", time.Since(start),
					"error", err)
			} else {
				logger.Info("endpoint",
					"endpoint", name,
					"transport", GetTransport(ctx),
					"request_id", GetRequestID(ctx),
					"duration", time.Since(start))
			}
			return resp, err
		}
	}
}

// Recover converts an endpoint panic into an error so one bad request
// cannot take the process down.
func Recover() Middleware {
	return func(next Endpoint) Endpoint {
		return func(ctx context.Context, request any) (resp any, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("internal error: %v", r)
				}
			}()
			return next(ctx, request)
		}
	}
}
