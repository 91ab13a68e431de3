package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gigdesk/internal/client/client"
	"github.com/dmitrijs2005/gigdesk/internal/client/forms"
	"github.com/dmitrijs2005/gigdesk/internal/common"
)

// UserMessage turns err into the one line shown to the user. The error class
// is not exposed; callers log err itself.
func UserMessage(err error, fallback string) string {
	var verr *forms.ValidationError
	if errors.As(err, &verr) {
		if len(verr.Fields) > 0 {
			return verr.Fields[0].Message
		}
		return "Please check the form."
	}

	var rerr *client.RemoteError
	if errors.As(err, &rerr) && rerr.Message != "" && rerr.Status != 401 {
		return rerr.Message
	}

	switch {
	case errors.Is(err, client.ErrUnauthorized):
		return "Your session has expired. Please log in again."
	case errors.Is(err, client.ErrUnavailable):
		return "Cannot reach the server. Check your connection and try again."
	case errors.Is(err, common.ErrAuthRequired):
		return "Please log in first."
	case errors.Is(err, common.ErrForbidden):
		return "You do not have access to this."
	case errors.Is(err, common.ErrSubmissionPending):
		return "A submission is already in progress."
	case errors.Is(err, common.ErrNotConfirmed):
		return "Cancelled."
	case errors.Is(err, common.ErrNotFound):
		return "Not found."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Request cancelled."
	}
	return fallback
}

// errorClass names the failure category for logs.
func errorClass(err error) string {
	var rerr *client.RemoteError
	switch {
	case errors.Is(err, common.ErrValidation):
		return "validation"
	case errors.Is(err, client.ErrUnauthorized):
		return "unauthorized"
	case errors.As(err, &rerr):
		return "rejected"
	case errors.Is(err, client.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "unexpected"
	}
}
