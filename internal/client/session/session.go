// Package session owns the client's belief about the current authenticated
// identity: resolving it at startup, consuming OAuth redirect URLs, keeping
// credential material persisted, and republishing the resulting state to
// the rest of the client.
package session

import "github.com/gugan-zemuria/notes-app/internal/client/models"

// Status is the lifecycle state of the session.
type Status string

const (
	StatusUnresolved Status = "unresolved"
	StatusResolving  Status = "resolving"
	StatusResolved   Status = "resolved"
	StatusFailed     Status = "failed"
)

// Session is the client's belief about the current identity. A resolved
// session with a nil Identity means "definitely not signed in", which is a
// normal state, not an error. Failed differs from that only in the error
// code surfaced to the user; access control must treat both identically.
type Session struct {
	Status    Status
	Identity  *models.User
	ErrorCode string
}

// Authenticated reports whether a signed-in identity is established.
func (s Session) Authenticated() bool {
	return s.Status == StatusResolved && s.Identity != nil
}
