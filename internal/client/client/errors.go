package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the request never reached the server or the
	// server did not answer.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized means the bearer token is missing, expired or revoked.
	ErrUnauthorized = errors.New("unauthorized")
)

// RemoteError is a non-2xx answer to a well-formed request: duplicates,
// ownership mismatches, server-side validation.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("server rejected request: %d %s: %s", e.Status, http.StatusText(e.Status), e.Message)
}

// Is lets a 401 answer match ErrUnauthorized.
func (e *RemoteError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
