// Package models defines the client-side shapes of the notes backend's
// resources: users, notes, categories, labels, and the filter/pagination
// state the cache keeps alongside them.
package models

// User is the authenticated identity as reported by GET /auth/user.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}
