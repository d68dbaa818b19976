// Package apperr holds the error taxonomy shared by the exam engine and the
// HTTP layer. Callers wrap these with fmt.Errorf("...: %w") and match with
// errors.Is.
package apperr

import "errors"

var (
	// ErrPermission covers camera or fullscreen permission denied or revoked.
	ErrPermission = errors.New("permission denied")
	// ErrTransientPersistence means an answer or attempt save failed and may be retried.
	ErrTransientPersistence = errors.New("transient persistence failure")
	// ErrNotFound means the attempt or test was missing at load time.
	ErrNotFound = errors.New("not found")
	// ErrComputationSkipped means ranking or streak computation did not run.
	ErrComputationSkipped = errors.New("computation skipped")
	// ErrConflict means the write would violate a once-only invariant, such as
	// submitting an attempt twice.
	ErrConflict = errors.New("conflict")
	// ErrInvalidInput is returned for malformed requests.
	ErrInvalidInput = errors.New("invalid input")
)
