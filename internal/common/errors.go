// Package common defines shared constants and sentinel errors used across
// the notes client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Remote-resource errors.
	ErrNotFound = errors.New("not found")

	// Auth errors: missing or rejected credentials, or a redirect URL
	// whose credential material cannot be parsed.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)
