package proctor

import (
	"context"
	"sync"
)

type fakeTrack struct {
	mu      sync.Mutex
	id      string
	live    bool
	enabled bool
}

func (t *fakeTrack) ID() string { return t.id }

func (t *fakeTrack) Live() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}

func (t *fakeTrack) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

func (t *fakeTrack) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = enabled
}

type fakeStream struct {
	tracks  []Track
	stopped int
}

func (s *fakeStream) Tracks() []Track { return s.tracks }
func (s *fakeStream) Stop()           { s.stopped++ }

type fakeCamera struct {
	stream *fakeStream
	err    error
	calls  int
}

func (c *fakeCamera) RequestStream(ctx context.Context) (Stream, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.stream, nil
}
