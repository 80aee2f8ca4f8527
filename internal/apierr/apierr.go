// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apierr writes error responses in the API's single format:
// {"error": {"code": "...", "message": "...", "fields": {...}}}.
package apierr

import (
	"net/http"

	"github.com/go-chi/render"
)

// Machine-readable error codes.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeInvalidState = "INVALID_STATE"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeRateLimited  = "RATE_LIMITED"
	CodeTimeout      = "TIMEOUT"
	CodeInternal     = "INTERNAL_ERROR"
)

// Body is the envelope of every error response.
type Body struct {
	Error Detail `json:"error"`
}

// Detail describes one error. Fields maps request fields to problems.
type Detail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Write sends an error response with the given status.
func Write(w http.ResponseWriter, r *http.Request, status int, code, message string, fields map[string]string) {
	render.Status(r, status)
	render.JSON(w, r, Body{Error: Detail{Code: code, Message: message, Fields: fields}})
}

// NotFound answers 404.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Write(w, r, http.StatusNotFound, CodeNotFound, "not found", nil)
}

// Unauthorized answers 401.
func Unauthorized(w http.ResponseWriter, r *http.Request) {
	Write(w, r, http.StatusUnauthorized, CodeUnauthorized, "authentication required", nil)
}

// Internal answers 500 without revealing the cause.
func Internal(w http.ResponseWriter, r *http.Request) {
	Write(w, r, http.StatusInternalServerError, CodeInternal, "internal server error", nil)
}

// BadRequest answers 400 with a plain message.
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	Write(w, r, http.StatusBadRequest, CodeValidation, message, nil)
}
