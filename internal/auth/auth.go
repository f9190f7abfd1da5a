// Package auth verifies the credentials handed to this service by the identity
// collaborator: signed session tokens for end users and a shared key for the
// sweep scheduler. It never issues credentials in production paths.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/blake2b"
)

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrTokenExpired    = fmt.Errorf("%w: session expired", ErrUnauthenticated)
	ErrTokenMalformed  = fmt.Errorf("%w: malformed session token", ErrUnauthenticated)
	ErrTokenSignature  = fmt.Errorf("%w: bad session signature", ErrUnauthenticated)
)

// Identity is the verified caller of a request.
type Identity struct {
	UserID    string
	Scheduler bool
}

type identityKey struct{}

// NewContext attaches a verified identity to ctx.
func NewContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// FromContext returns the verified identity, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}

// UserFromContext returns the caller's user id or ErrUnauthenticated.
func UserFromContext(ctx context.Context) (string, error) {
	id, ok := FromContext(ctx)
	if !ok || id.UserID == "" {
		return "", ErrUnauthenticated
	}
	return id.UserID, nil
}

// SessionVerifier checks tokens of the form "<user_id>.<expiry_unix>.<mac_hex>",
// where mac is keyed BLAKE2b-256 over "<user_id>.<expiry_unix>".
type SessionVerifier struct {
	key [32]byte
}

func NewSessionVerifier(secret string) (*SessionVerifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("auth: session secret is empty")
	}
	return &SessionVerifier{key: blake2b.Sum256([]byte(secret))}, nil
}

// Issue mints a token. Used by the seed command and tests to stand in for the identity service.
func (v *SessionVerifier) Issue(userID string, expiresAt time.Time) string {
	payload := userID + "." + strconv.FormatInt(expiresAt.Unix(), 10)
	return payload + "." + hex.EncodeToString(v.sign(payload))
}

// Verify returns the user id carried by a valid, unexpired token.
func (v *SessionVerifier) Verify(token string, now time.Time) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" {
		return "", ErrTokenMalformed
	}
	exp, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", ErrTokenMalformed
	}
	got, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrTokenMalformed
	}
	want := v.sign(parts[0] + "." + parts[1])
	if subtle.ConstantTimeCompare(got, want) != 1 {
		return "", ErrTokenSignature
	}
	if !now.Before(time.Unix(exp, 0)) {
		return "", ErrTokenExpired
	}
	return parts[0], nil
}

func (v *SessionVerifier) sign(payload string) []byte {
	h, err := blake2b.New256(v.key[:])
	if err != nil {
		// only fails for keys longer than 64 bytes
		panic(err)
	}
	h.Write([]byte(payload))
	return h.Sum(nil)
}

// SchedulerCheck verifies the shared key presented by the sweep scheduler.
type SchedulerCheck struct {
	hash []byte
}

// NewSchedulerCheck takes the bcrypt hash of the scheduler key. An empty hash
// disables scheduler access entirely.
func NewSchedulerCheck(hash string) *SchedulerCheck {
	return &SchedulerCheck{hash: []byte(strings.TrimSpace(hash))}
}

func (s *SchedulerCheck) Verify(key string) error {
	if len(s.hash) == 0 || key == "" {
		return ErrUnauthenticated
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(key)); err != nil {
		return ErrUnauthenticated
	}
	return nil
}

// HashSchedulerKey produces the value for SCHEDULER_KEY_HASH.
func HashSchedulerKey(key string, cost int) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(key), cost)
	if err != nil {
		return "", fmt.Errorf("hash scheduler key: %w", err)
	}
	return string(h), nil
}
