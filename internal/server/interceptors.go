package server

import (
	"context"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oggyb/waveos/internal/auth"
	"github.com/oggyb/waveos/internal/logger"
	pb "github.com/oggyb/waveos/internal/proto/wave"
)

// Metadata keys read by the auth interceptor.
const (
	AuthorizationHeader = "authorization"
	SchedulerKeyHeader  = "x-scheduler-key"
	bearerPrefix        = "bearer "
)

// LoggingInterceptor puts a request-scoped logger into the context and logs
// every call with its status code and duration.
func LoggingInterceptor(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		log := base.With("method", info.FullMethod, "request_id", uuid.NewString())
		ctx = logger.WithContext(ctx, log)

		resp, err := handler(ctx, req)

		code := status.Code(err)
		attrs := []any{"code", code.String(), logger.Since(start)}
		switch code {
		case codes.OK:
			log.Debug("rpc finished", attrs...)
		case codes.Internal, codes.Unknown:
			log.Error("rpc failed", attrs...)
		default:
			log.Info("rpc rejected", attrs...)
		}
		return resp, err
	}
}

// RecoveryInterceptor turns a handler panic into codes.Internal.
func RecoveryInterceptor(base *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(ctx, base).Error("panic in handler",
					"method", info.FullMethod, "panic", r, "stack", string(debug.Stack()))
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

// AuthInterceptor verifies the caller of every WaveService RPC and stores the
// resulting auth.Identity in the context.
//
// Behavior:
//   - Sweep requires the x-scheduler-key header; session tokens are ignored.
//   - Every other method requires "authorization: Bearer <session token>".
//   - Methods of other services (health) pass through untouched.
func AuthInterceptor(
	sessions *auth.SessionVerifier,
	scheduler *auth.SchedulerCheck,
	now func() time.Time,
) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !strings.HasPrefix(info.FullMethod, "/"+pb.WaveService_ServiceDesc.ServiceName+"/") {
			return handler(ctx, req)
		}
		md, _ := metadata.FromIncomingContext(ctx)

		if info.FullMethod == pb.WaveService_Sweep_FullMethodName {
			if err := scheduler.Verify(first(md, SchedulerKeyHeader)); err != nil {
				return nil, status.Error(codes.Unauthenticated, "scheduler key required")
			}
			return handler(auth.NewContext(ctx, auth.Identity{Scheduler: true}), req)
		}

		header := first(md, AuthorizationHeader)
		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return nil, status.Error(codes.Unauthenticated, "bearer token required")
		}
		userID, err := sessions.Verify(strings.TrimSpace(header[len(bearerPrefix):]), now())
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid session")
		}

		ctx = auth.NewContext(ctx, auth.Identity{UserID: userID})
		ctx = logger.WithContext(ctx, logger.FromContext(ctx, logger.L()).With("user_id", userID))
		return handler(ctx, req)
	}
}

func first(md metadata.MD, key string) string {
	if v := md.Get(key); len(v) > 0 {
		return v[0]
	}
	return ""
}
