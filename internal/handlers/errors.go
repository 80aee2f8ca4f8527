// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"contentdesk/internal/access"
	"contentdesk/internal/apierr"
	"contentdesk/internal/engagement"
	"contentdesk/internal/lifecycle"
	"contentdesk/internal/store"
)

// writeError classifies err and answers with the matching status and code.
// Anything unrecognised is logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		apierr.Write(w, r, http.StatusBadRequest, apierr.CodeValidation, "validation failed", verr.Fields)
	case errors.Is(err, lifecycle.ErrInvalidState):
		apierr.Write(w, r, http.StatusBadRequest, apierr.CodeInvalidState, err.Error(), nil)
	case errors.Is(err, access.ErrUnauthorized):
		apierr.Unauthorized(w, r)
	case errors.Is(err, store.ErrNotFound), errors.Is(err, engagement.ErrUnknownAction):
		apierr.NotFound(w, r)
	case errors.Is(err, store.ErrConflict):
		apierr.Write(w, r, http.StatusConflict, apierr.CodeConflict, "slug already exists", nil)
	case errors.Is(err, store.ErrUnknownCounter):
		apierr.BadRequest(w, r, "unknown counter")
	case errors.Is(err, context.DeadlineExceeded):
		apierr.Write(w, r, http.StatusGatewayTimeout, apierr.CodeTimeout, "request timed out", nil)
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		apierr.Internal(w, r)
	}
}

// decodeError turns a JSON decoding failure into a ValidationError naming
// the offending field when the decoder reports one.
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return store.Invalid(typeErr.Field, "has the wrong type")
	}
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return store.Invalid("body", "is too large")
	}
	return store.Invalid("body", "must be a JSON object")
}
