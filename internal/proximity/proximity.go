// Package proximity implements the ephemeral proximity handshake: rotating
// beacon tokens, presence liveness, privacy-gated beacon resolution, the wave
// state machine that unlocks a time-boxed chat, and the expiry sweep.
//
// The database is the only shared mutable state. Every invariant that spans
// concurrent requests is held by a unique index or a conditional update, and
// losing such a race re-runs the decision instead of surfacing an error.
package proximity

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/waveos/internal/logger"
	"github.com/oggyb/waveos/internal/metrics"
	"github.com/oggyb/waveos/internal/privilege"
	"github.com/oggyb/waveos/internal/repository"
)

var (
	// ErrNotFound deliberately covers unknown, expired and stale beacons as well
	// as blocked counterparts. Callers must not be able to tell them apart.
	ErrNotFound = errors.New("not found")

	ErrInvalidArgument = errors.New("invalid argument")
	ErrMissingUser     = fmt.Errorf("%w: user_id required", ErrInvalidArgument)
	ErrMissingReceiver = fmt.Errorf("%w: receiver_id required", ErrInvalidArgument)
	ErrMissingBeacon   = fmt.Errorf("%w: beacon_id required", ErrInvalidArgument)
	ErrSelfWave        = fmt.Errorf("%w: cannot wave at yourself", ErrInvalidArgument)
	ErrSelfBlock       = fmt.Errorf("%w: cannot block yourself", ErrInvalidArgument)

	// errConflict means another request changed the rows this one was deciding on.
	errConflict = errors.New("concurrent write conflict")
)

// Reference lifetimes.
const (
	DefaultBeaconTTL   = time.Hour
	DefaultPresenceTTL = 15 * time.Minute
	DefaultChatTTL     = 5 * time.Minute
	DefaultPendingTTL  = 24 * time.Hour
)

// Options configures lifetimes and collaborators. Zero values take defaults.
type Options struct {
	BeaconTTL   time.Duration
	PresenceTTL time.Duration
	ChatTTL     time.Duration
	PendingTTL  time.Duration

	// Now is the clock; tests move it to simulate expiry.
	Now     func() time.Time
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

func (o *Options) normalize() {
	if o.BeaconTTL <= 0 {
		o.BeaconTTL = DefaultBeaconTTL
	}
	if o.PresenceTTL <= 0 {
		o.PresenceTTL = DefaultPresenceTTL
	}
	if o.ChatTTL <= 0 {
		o.ChatTTL = DefaultChatTTL
	}
	if o.PendingTTL <= 0 {
		o.PendingTTL = DefaultPendingTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Logger == nil {
		o.Logger = logger.L()
	}
	if o.Metrics == nil {
		o.Metrics = metrics.New()
	}
}

// now is always UTC and millisecond precision, matching what the store keeps.
func (o *Options) now() time.Time {
	return o.Now().UTC().Truncate(time.Millisecond)
}

// Core bundles the handshake components over one database.
type Core struct {
	Guard    *PrivacyGuard
	Beacons  *BeaconRegistry
	Presence *PresenceTracker
	Waves    *WaveCoordinator
	Chats    *ChatSessions
	Sweeper  *Sweeper
}

// New wires the components. The service capability is granted here and stays
// inside the package.
func New(database *gorm.DB, opts Options) *Core {
	opts.normalize()
	o := &opts

	svc := privilege.Grant("proximity-handshake", o.Logger)

	beaconRepo := repository.NewBeaconRepository(database)
	presenceRepo := repository.NewPresenceRepository(database)
	waveRepo := repository.NewWaveRepository(database)
	chatRepo := repository.NewChatRepository(database)
	blockRepo := repository.NewBlockRepository(database)
	profileRepo := repository.NewProfileRepository(database)

	guard := &PrivacyGuard{
		db:      database,
		blocks:  blockRepo,
		waves:   waveRepo,
		chats:   chatRepo,
		cap:     svc,
		log:     o.Logger.With("component", "privacy_guard"),
		metrics: o.Metrics,
	}
	presence := &PresenceTracker{
		db:       database,
		presence: presenceRepo,
		beacons:  beaconRepo,
		cap:      svc,
		opts:     o,
	}
	beacons := &BeaconRegistry{
		db:       database,
		beacons:  beaconRepo,
		presence: presence,
		cap:      svc,
		opts:     o,
		log:      o.Logger.With("component", "beacon_registry"),
	}
	chats := &ChatSessions{
		db:    database,
		chats: chatRepo,
		cap:   svc,
		opts:  o,
		log:   o.Logger.With("component", "chat_sessions"),
	}
	waves := &WaveCoordinator{
		db:       database,
		waves:    waveRepo,
		profiles: profileRepo,
		guard:    guard,
		beacons:  beacons,
		presence: presence,
		chats:    chats,
		cap:      svc,
		opts:     o,
		log:      o.Logger.With("component", "wave_coordinator"),
	}

	return &Core{
		Guard:    guard,
		Beacons:  beacons,
		Presence: presence,
		Waves:    waves,
		Chats:    chats,
		Sweeper:  NewSweeper(database, opts),
	}
}

// PairKey canonicalizes an unordered pair of user ids.
func PairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + ":" + b
}

// newBeaconToken returns 32 uppercase hex characters from a random UUID.
func newBeaconToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate beacon token: %w", err)
	}
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")), nil
}
