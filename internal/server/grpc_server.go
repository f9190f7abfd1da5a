package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/oggyb/waveos/internal/app"
	pb "github.com/oggyb/waveos/internal/proto/wave"
)

// NewGRPCServer builds a gRPC server with the interceptor chain and registers
// all provided services plus the standard health and reflection services.
func NewGRPCServer(appCtx *app.AppContext, registrars ...Registrar) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			LoggingInterceptor(appCtx.Logger),
			RecoveryInterceptor(appCtx.Logger),
			AuthInterceptor(appCtx.Sessions, appCtx.Scheduler, appCtx.Now),
		),
	)

	// register all services
	for _, r := range registrars {
		r.Register(grpcServer)
	}

	hs := health.NewServer()
	hs.SetServingStatus(pb.WaveService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, hs)

	// enable reflection for easier debugging with grpcurl
	reflection.Register(grpcServer)

	return grpcServer
}

// StartGRPCServer serves on cfg's gRPC address until ctx is done, then stops gracefully.
func StartGRPCServer(ctx context.Context, appCtx *app.AppContext, registrars ...Registrar) error {
	cfg := appCtx.Config
	addr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	grpcServer := NewGRPCServer(appCtx, registrars...)
	appCtx.Logger.Info("starting gRPC server", "addr", lis.Addr().String())

	errCh := make(chan error, 1)
	go func() { errCh <- grpcServer.Serve(lis) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		appCtx.Logger.Info("stopping gRPC server")
		stopped := make(chan struct{})
		go func() {
			grpcServer.GracefulStop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(10 * time.Second):
			grpcServer.Stop()
		}
		return nil
	}
}

// StartMetricsServer exposes /metrics on cfg.Metrics.Addr until ctx is done.
// An empty address disables it.
func StartMetricsServer(ctx context.Context, appCtx *app.AppContext) error {
	addr := appCtx.Config.Metrics.Addr
	if addr == "" {
		return nil
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", appCtx.Metrics.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	appCtx.Logger.Info("starting metrics listener", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics listener: %w", err)
	}
	return nil
}
