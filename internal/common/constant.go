// Package common contains shared constants and sentinel errors used across
// moodiary components.
package common

// HTTP header names set on every outbound backend request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)

// DefaultTokenType is assumed when the login response omits token_type.
const DefaultTokenType = "bearer"
