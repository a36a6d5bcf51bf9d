// Package credentials persists the session's credential material
// (access/refresh tokens and their expiry) between runs.
//
// The original client mirrored tokens across cookies and local storage;
// here a single Store is authoritative and the HTTP cookie jar is hydrated
// from it at startup, so the two can never diverge.
package credentials

import (
	"context"
	"time"
)

// Credentials is transient credential material. It is never exposed to the
// UI layer; it is invalidated on sign-out or expiry.
type Credentials struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Expired reports whether the material is past its expiry. A zero
// ExpiresAt means the backend issued no explicit expiry; treat as live.
func (c Credentials) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt)
}

// Store is the single authoritative credential store.
type Store interface {
	// Save replaces the stored credential material.
	Save(ctx context.Context, creds Credentials) error

	// Load returns the stored material, or nil if none is stored or the
	// stored material has expired.
	Load(ctx context.Context) (*Credentials, error)

	// Clear wipes stored material (sign-out).
	Clear(ctx context.Context) error
}
