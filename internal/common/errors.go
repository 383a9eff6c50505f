// Package common defines shared constants and sentinel errors used across
// EventHive client components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors (missing, malformed or rejected token).
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Resource errors.
	ErrNotFound = errors.New("not found")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
