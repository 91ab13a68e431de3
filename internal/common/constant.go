// Package common contains shared constants and sentinel errors used across
// gigdesk client components.
package common

// AuthorizationHeaderName carries the bearer token on outbound requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName tags every outbound request with a fresh id so that
// client logs can be correlated with server logs.
const RequestIDHeaderName = "X-Request-ID"

// Keys of the persisted session pair in the metadata table.
const (
	MetadataKeyToken   = "token"
	MetadataKeyProfile = "user"
)
