package session

import "errors"

type State int

const (
	StateInitializing State = iota
	StateActive
	StateLocked
	StateSubmitting
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateActive:
		return "active"
	case StateLocked:
		return "locked"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	}
	return "unknown"
}

func (s State) Terminal() bool {
	return s == StateSubmitted
}

type SubmitReason string

const (
	ReasonManual  SubmitReason = "manual"
	ReasonTimeout SubmitReason = "timeout"
)

var (
	ErrNotStarted      = errors.New("session not started")
	ErrLocked          = errors.New("session locked: return to fullscreen to continue")
	ErrSubmitting      = errors.New("session is being submitted")
	ErrSubmitted       = errors.New("session already submitted")
	ErrUnknownQuestion = errors.New("question is not part of this test")
	ErrOutOfRange      = errors.New("question index out of range")
	ErrNothingToRetry  = errors.New("no failed submission to retry")
)

// stateError maps a non-active state to the error returned for a rejected
// mutation.
func stateError(s State) error {
	switch s {
	case StateInitializing:
		return ErrNotStarted
	case StateLocked:
		return ErrLocked
	case StateSubmitting:
		return ErrSubmitting
	case StateSubmitted:
		return ErrSubmitted
	}
	return nil
}
