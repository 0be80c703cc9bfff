// Package common defines shared constants and sentinel errors used across
// client and server layers of ReciPeasy. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound   = errors.New("not found")
	ErrEmailTaken = errors.New("email already registered")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Input validation errors (recoverable by the caller fixing input).
	ErrValidation = errors.New("validation error")

	// Auth errors. ErrInvalidCredentials is deliberately shared by the
	// unknown-email and wrong-password paths so callers cannot enumerate
	// accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Token lifecycle errors.
	ErrTokenMalformed    = errors.New("malformed token")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenBadSignature = errors.New("invalid token signature")

	// ErrServerConfiguration marks faults in process configuration (such as
	// a missing signing secret). These must never surface as client errors.
	ErrServerConfiguration = errors.New("server configuration error")
)
