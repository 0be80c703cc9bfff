// Package common contains shared constants and sentinel errors used across
// ReciPeasy components.
package common

const (
	// AuthHeaderName is the HTTP header carrying the bearer token on
	// authenticated requests.
	AuthHeaderName = "Authorization"

	// BearerPrefix precedes the token value inside AuthHeaderName.
	BearerPrefix = "Bearer "
)
