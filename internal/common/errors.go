// Package common defines shared constants and sentinel errors used across
// gigdesk layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Session errors.
	ErrAuthRequired = errors.New("authentication required")
	ErrForbidden    = errors.New("access denied")
	ErrAnonymous    = errors.New("no active session")

	// Local validation, resolved before any network call.
	ErrValidation = errors.New("validation failed")

	// Form-state errors.
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrSubmissionPending = errors.New("submission already in progress")

	// Destructive actions need an explicit yes.
	ErrNotConfirmed = errors.New("action not confirmed")

	ErrNotFound = errors.New("not found")
)
