// Package controller holds what the admin and user HTTP controllers share:
// path parsing and the mapping from the error taxonomy to status codes.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/session"
	"github.com/rs/zerolog/log"
)

// StatusFor maps a service error onto an HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidInput),
		errors.Is(err, session.ErrOutOfRange),
		errors.Is(err, session.ErrUnknownQuestion):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrPermission):
		return http.StatusForbidden
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrConflict),
		errors.Is(err, session.ErrNotStarted),
		errors.Is(err, session.ErrLocked),
		errors.Is(err, session.ErrSubmitting),
		errors.Is(err, session.ErrSubmitted),
		errors.Is(err, session.ErrNothingToRetry):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrTransientPersistence),
		errors.Is(err, apperr.ErrComputationSkipped):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// RespondError writes err as an ErrorResponse. Server-side failures are
// logged at error level, client mistakes at warn.
func RespondError(ctx *gin.Context, op, message string, err error) {
	status := StatusFor(err)
	evt := log.Warn()
	if status >= http.StatusInternalServerError {
		evt = log.Error()
	}
	evt.Err(err).Int("status", status).Str("path", ctx.FullPath()).Msg(op + ": request failed")
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// BindError answers a request whose body or query failed validation.
func BindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg(op + ": failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// ParamID parses a numeric path parameter. It writes the 400 response
// itself and reports false when the value is malformed.
func ParamID(ctx *gin.Context, name, label string) (uint, bool) {
	raw := ctx.Param(name)
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + label + " format"})
		return 0, false
	}
	return uint(val), true
}

// QueryID parses an optional numeric query parameter; nil means absent.
func QueryID(ctx *gin.Context, name, label string) (*uint, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}
	val, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + label + " format in query"})
		return nil, false
	}
	id := uint(val)
	return &id, true
}
