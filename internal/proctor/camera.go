package proctor

import "context"

// Camera is the platform capture capability. RequestStream returns an error
// wrapping apperr.ErrPermission when access is denied.
type Camera interface {
	RequestStream(ctx context.Context) (Stream, error)
}

type Stream interface {
	Tracks() []Track
	Stop()
}

type Track interface {
	ID() string
	Live() bool
	Enabled() bool
	SetEnabled(enabled bool)
}
