// Package privilege models the service-level execution context that may read
// and write rows belonging to users other than the caller.
//
// A Capability is an explicit value handed to the few repository methods that
// need cross-user visibility. Ordinary per-user operations never take one, so
// every privileged call site is visible in the code.
package privilege

import (
	"errors"
	"log/slog"
)

// ErrDenied is returned by privileged operations called without a capability.
var ErrDenied = errors.New("privilege: service capability required")

// Capability grants cross-user visibility. The zero value and nil are both invalid.
type Capability struct {
	purpose string
}

// Grant creates a capability and records who asked for it.
func Grant(purpose string, log *slog.Logger) *Capability {
	if log != nil {
		log.Info("service capability granted", "purpose", purpose)
	}
	return &Capability{purpose: purpose}
}

// Check reports ErrDenied unless c was produced by Grant.
func (c *Capability) Check() error {
	if c == nil || c.purpose == "" {
		return ErrDenied
	}
	return nil
}

// Purpose returns the reason given when the capability was granted.
func (c *Capability) Purpose() string {
	if c == nil {
		return ""
	}
	return c.purpose
}
