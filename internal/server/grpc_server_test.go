package server_test

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oggyb/waveos/internal/app"
	"github.com/oggyb/waveos/internal/auth"
	"github.com/oggyb/waveos/internal/cache"
	"github.com/oggyb/waveos/internal/config"
	"github.com/oggyb/waveos/internal/db"
	"github.com/oggyb/waveos/internal/logger"
	"github.com/oggyb/waveos/internal/metrics"
	pb "github.com/oggyb/waveos/internal/proto/wave"
	"github.com/oggyb/waveos/internal/server"
	"github.com/oggyb/waveos/internal/service/wave"
)

const schedulerKey = "sweep-key-for-tests"

type testServer struct {
	conn   *grpc.ClientConn
	client pb.WaveServiceClient
	appCtx *app.AppContext
	alice  string
	bob    string
}

// startServer runs the full interceptor chain and WaveService over an
// in-memory listener, backed by SQLite and miniredis.
func startServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", uuid.NewString())
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:                func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.AutoMigrate(db.All()...))

	profiles, err := db.SeedTestData(database, 4)
	require.NoError(t, err)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	hash, err := auth.HashSchedulerKey(schedulerKey, bcrypt.MinCost)
	require.NoError(t, err)

	cfg := config.Defaults()
	cfg.Redis.Addr = mr.Addr()
	cfg.Auth.SessionSecret = "bufconn-secret"
	cfg.Auth.SchedulerKeyHash = hash

	appCtx, err := app.New(cfg, database, cache.NewRedisCache(cfg), logger.Discard(), metrics.New())
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(appCtx, wave.NewRegistrar(appCtx))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &testServer{
		conn:   conn,
		client: pb.NewWaveServiceClient(conn),
		appCtx: appCtx,
		alice:  profiles[0].ID,
		bob:    profiles[2].ID,
	}
}

func (s *testServer) as(userID string) context.Context {
	token := s.appCtx.Sessions.Issue(userID, time.Now().Add(time.Hour))
	return metadata.AppendToOutgoingContext(context.Background(), server.AuthorizationHeader, "Bearer "+token)
}

func TestAuthInterceptor_RejectsMissingOrBadSessions(t *testing.T) {
	s := startServer(t)

	_, err := s.client.RotateBeacon(context.Background(), &pb.RotateBeaconRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := metadata.AppendToOutgoingContext(context.Background(), server.AuthorizationHeader, "Bearer nope")
	_, err = s.client.RotateBeacon(ctx, &pb.RotateBeaconRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	expired := s.appCtx.Sessions.Issue(s.alice, time.Now().Add(-time.Minute))
	ctx = metadata.AppendToOutgoingContext(context.Background(), server.AuthorizationHeader, "Bearer "+expired)
	_, err = s.client.RotateBeacon(ctx, &pb.RotateBeaconRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	// a token signed with another secret
	other, err := auth.NewSessionVerifier("someone-else")
	require.NoError(t, err)
	forged := other.Issue(s.alice, time.Now().Add(time.Hour))
	ctx = metadata.AppendToOutgoingContext(context.Background(), server.AuthorizationHeader, "Bearer "+forged)
	_, err = s.client.RotateBeacon(ctx, &pb.RotateBeaconRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestHandshakeOverTheWire(t *testing.T) {
	s := startServer(t)

	beaconA, err := s.client.RotateBeacon(s.as(s.alice), &pb.RotateBeaconRequest{})
	require.NoError(t, err)
	assert.Len(t, beaconA.GetBeaconId(), 32)

	beaconB, err := s.client.RotateBeacon(s.as(s.bob), &pb.RotateBeaconRequest{})
	require.NoError(t, err)

	sig, err := s.client.SignalWave(s.as(s.alice), &pb.SignalWaveRequest{ReceiverId: s.bob})
	require.NoError(t, err)
	assert.Equal(t, "pending", sig.GetWave().Status)
	assert.Nil(t, sig.GetChat())

	res, err := s.client.ResolveBeacon(s.as(s.bob), &pb.ResolveBeaconRequest{BeaconId: beaconA.GetBeaconId()})
	require.NoError(t, err)
	assert.True(t, res.Nearby)
	assert.Nil(t, res.GetUser())

	sig, err = s.client.SignalWave(s.as(s.bob), &pb.SignalWaveRequest{ReceiverId: s.alice})
	require.NoError(t, err)
	assert.Equal(t, "mutual", sig.GetWave().Status)
	require.NotNil(t, sig.GetChat())

	res, err = s.client.ResolveBeacon(s.as(s.alice), &pb.ResolveBeaconRequest{BeaconId: beaconB.GetBeaconId()})
	require.NoError(t, err)
	require.NotNil(t, res.GetUser())
	assert.Equal(t, s.bob, res.GetUser().Id)
	assert.Equal(t, "user3", res.GetUser().Username)
}

func TestSweepRequiresSchedulerKey(t *testing.T) {
	s := startServer(t)

	// a valid user session is not enough
	_, err := s.client.Sweep(s.as(s.alice), &pb.SweepRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx := metadata.AppendToOutgoingContext(context.Background(), server.SchedulerKeyHeader, "wrong")
	_, err = s.client.Sweep(ctx, &pb.SweepRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	ctx = metadata.AppendToOutgoingContext(context.Background(), server.SchedulerKeyHeader, schedulerKey)
	resp, err := s.client.Sweep(ctx, &pb.SweepRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.CleanedAt)
}

func TestHealthNeedsNoCredentials(t *testing.T) {
	s := startServer(t)

	resp, err := healthpb.NewHealthClient(s.conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: pb.WaveService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
}

func TestReflectionListsWaveService(t *testing.T) {
	s := startServer(t)

	stream, err := reflectionpb.NewServerReflectionClient(s.conn).ServerReflectionInfo(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&reflectionpb.ServerReflectionRequest{
		MessageRequest: &reflectionpb.ServerReflectionRequest_ListServices{},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)
	require.NoError(t, stream.CloseSend())

	var names []string
	for _, svc := range resp.GetListServicesResponse().GetService() {
		names = append(names, svc.GetName())
	}
	assert.Contains(t, names, pb.WaveService_ServiceDesc.ServiceName)
}
