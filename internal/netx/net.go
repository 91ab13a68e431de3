// Package netx contains HTTP helpers shared by the API client: reading a
// server's error message out of a response and telling transport failures
// apart from server answers.
package netx

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// ErrorMessage extracts a human-readable message from an error response.
// JSON bodies carrying "message", "msg" or "error" are understood; any other
// non-empty body is returned trimmed. An empty body falls back to the HTTP
// status text.
func ErrorMessage(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(b, &payload); err == nil {
		for _, s := range []string{payload.Message, payload.Msg, payload.Error} {
			if s != "" {
				return s
			}
		}
	}

	if s := strings.TrimSpace(string(b)); s != "" && !strings.HasPrefix(s, "{") {
		return s
	}
	return http.StatusText(resp.StatusCode)
}

// IsNetworkError reports whether err means the request never got an answer
// from the server: dial/DNS failures, resets, timeouts.
// Context cancellation by the caller is not a network error.
func IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)
}
