package wave

import (
	"context"
	"log/slog"
	"time"

	"github.com/oggyb/waveos/internal/app"
	"github.com/oggyb/waveos/internal/auth"
	"github.com/oggyb/waveos/internal/db"
	svcErr "github.com/oggyb/waveos/internal/errors"
	"github.com/oggyb/waveos/internal/logger"
	pb "github.com/oggyb/waveos/internal/proto/wave"
	"github.com/oggyb/waveos/internal/proximity"
)

const rateWindow = time.Minute

// Service implements the WaveService gRPC API on top of the handshake core.
// Each method corresponds to one RPC of wave.v1.WaveService; the caller's
// identity always comes from the context, never from the request body.
type Service struct {
	appCtx *app.AppContext
	core   *proximity.Core

	pb.UnimplementedWaveServiceServer
}

// NewWaveService creates a new Wave service with dependencies from AppContext.
func NewWaveService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx: appCtx,
		core:   appCtx.Core,
	}
}

// RotateBeacon issues a fresh beacon for the caller and makes them discoverable through it.
//
// Behavior:
//   - Rate limited per caller (ROTATE_RATE_LIMIT per minute).
//   - Any previous beacon of the caller stops resolving immediately.
func (s *Service) RotateBeacon(ctx context.Context, _ *pb.RotateBeaconRequest) (*pb.RotateBeaconResponse, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if err := s.allow(ctx, "rotate", s.appCtx.RedisCache.KeyForRotate(userID), s.appCtx.Config.Wave.RotateLimit); err != nil {
		return nil, err
	}

	beacon, err := s.core.Beacons.Rotate(ctx, userID)
	if err != nil {
		s.log(ctx).Error("RotateBeacon failed", "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.RotateBeaconResponse{
		BeaconId:  beacon.BeaconID,
		ExpiresAt: pb.FormatTime(beacon.ExpiresAt),
	}, nil
}

// Heartbeat keeps the caller discoverable on their current beacon without rotating it.
// NotFound means the caller has no valid beacon and must rotate first.
func (s *Service) Heartbeat(ctx context.Context, _ *pb.HeartbeatRequest) (*pb.HeartbeatResponse, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	beacon, err := s.core.Beacons.Current(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	presence, err := s.core.Presence.Refresh(ctx, userID, beacon.BeaconID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.HeartbeatResponse{
		BeaconId:          beacon.BeaconID,
		ExpiresAt:         pb.FormatTime(beacon.ExpiresAt),
		PresenceExpiresAt: pb.FormatTime(presence.ExpiresAt),
	}, nil
}

// ResolveBeacon answers "who is behind this beacon" for the caller.
//
// Behavior:
//   - beacon_id is required.
//   - Unknown, expired, stale and blocked all return the same NotFound.
//   - user stays null until both sides waved at each other.
//
// Example:
//
//	svc.ResolveBeacon(ctx, &pb.ResolveBeaconRequest{BeaconId: "9F2C..."})
func (s *Service) ResolveBeacon(ctx context.Context, req *pb.ResolveBeaconRequest) (*pb.ResolveBeaconResponse, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if req.GetBeaconId() == "" {
		return nil, svcErr.InvalidArgument("beacon_id required")
	}
	if err := s.allow(ctx, "resolve", s.appCtx.RedisCache.KeyForResolve(userID), s.appCtx.Config.Wave.ResolveLimit); err != nil {
		return nil, err
	}

	res, err := s.core.Waves.Resolve(ctx, userID, req.GetBeaconId())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ResolveBeaconResponse{Nearby: res.Nearby}
	if res.User != nil {
		resp.User = &pb.PublicUser{
			Id:          res.User.ID,
			Username:    res.User.Username,
			DisplayName: res.User.DisplayName,
			AvatarUrl:   res.User.AvatarURL,
		}
	}
	return resp, nil
}

// SignalWave records the caller's interest in receiver_id and returns the
// resulting wave, plus the chat once the interest is mutual.
func (s *Service) SignalWave(ctx context.Context, req *pb.SignalWaveRequest) (*pb.SignalWaveResponse, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	s.log(ctx).Debug("SignalWave called", "receiver", req.GetReceiverId())

	res, err := s.core.Waves.Signal(ctx, userID, req.GetReceiverId())
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.SignalWaveResponse{Wave: toWave(res.Wave)}
	if res.Chat != nil {
		resp.Chat = toChat(res.Chat)
	}
	return resp, nil
}

func (s *Service) BlockUser(ctx context.Context, req *pb.BlockUserRequest) (*pb.BlockUserResponse, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if err := s.core.Guard.Block(ctx, userID, req.GetUserId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.BlockUserResponse{}, nil
}

func (s *Service) UnblockUser(ctx context.Context, req *pb.UnblockUserRequest) (*pb.UnblockUserResponse, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if err := s.core.Guard.Unblock(ctx, userID, req.GetUserId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.UnblockUserResponse{}, nil
}

// ListChats returns the caller's open chats, newest first.
//
// Behavior:
//   - Page size is CHAT_PAGE_SIZE.
//   - Supports cursor-based pagination with pagination_token.
func (s *Service) ListChats(ctx context.Context, req *pb.ListChatsRequest) (*pb.ListChatsResponse, error) {
	userID, err := auth.UserFromContext(ctx)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	chats, next, err := s.core.Chats.ListActive(ctx, userID, req.PaginationToken, s.appCtx.Config.Wave.ChatPageSize)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListChatsResponse{Chats: make([]*pb.Chat, 0, len(chats)), NextPaginationToken: next}
	for i := range chats {
		resp.Chats = append(resp.Chats, toChat(&chats[i]))
	}
	s.log(ctx).Debug("ListChats result", "chat_count", len(resp.Chats), "next_token", resp.GetNextPaginationToken())
	return resp, nil
}

// Sweep runs one cleanup pass for the external scheduler.
// A pass where any action failed is reported as Internal after all actions ran.
func (s *Service) Sweep(ctx context.Context, _ *pb.SweepRequest) (*pb.SweepResponse, error) {
	if id, ok := auth.FromContext(ctx); !ok || !id.Scheduler {
		return nil, svcErr.Unauthenticated("scheduler key required")
	}

	report, err := s.core.Sweeper.Sweep(ctx)
	if err != nil {
		s.log(ctx).Error("sweep incomplete", "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.SweepResponse{
		Success:            true,
		CleanedAt:          pb.FormatTime(report.CleanedAt),
		PresenceDeleted:    report.PresenceDeleted,
		BeaconsDeactivated: report.BeaconsDeactivated,
		ChatsDeactivated:   report.ChatsDeactivated,
		WavesExpired:       report.WavesExpired,
	}, nil
}

// allow applies the per-caller fixed window. A limiter outage lets the request through.
func (s *Service) allow(ctx context.Context, operation, key string, limit int) error {
	ok, err := s.appCtx.RedisCache.Allow(ctx, key, limit, rateWindow)
	if err != nil {
		s.log(ctx).Warn("rate limiter unavailable, allowing", "operation", operation, "err", err)
		return nil
	}
	if !ok {
		s.appCtx.Metrics.RateLimited.WithLabelValues(operation).Inc()
		return svcErr.ResourceExhausted("too many " + operation + " requests, slow down")
	}
	return nil
}

func (s *Service) log(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx, s.appCtx.Logger)
}

func toWave(w *db.Wave) *pb.Wave {
	out := &pb.Wave{
		Id:          w.ID,
		InitiatorId: w.InitiatorID,
		ReceiverId:  w.ReceiverID,
		Status:      w.Status,
		CreatedAt:   pb.FormatTime(w.CreatedAt),
	}
	if w.MutualAt != nil {
		out.MutualAt = pb.FormatTime(*w.MutualAt)
	}
	return out
}

func toChat(c *db.Chat) *pb.Chat {
	return &pb.Chat{
		Id:        c.ID,
		WaveId:    c.WaveID,
		User1Id:   c.User1ID,
		User2Id:   c.User2ID,
		StartedAt: pb.FormatTime(c.StartedAt),
		ExpiresAt: pb.FormatTime(c.ExpiresAt),
		IsActive:  c.IsActive,
	}
}
