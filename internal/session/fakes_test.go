package session

import (
	"context"
	"sync"

	"github.com/lshigami/aptiprep/internal/proctor"
	"github.com/lshigami/aptiprep/internal/ranking"
)

type fakeFullscreen struct {
	mu       sync.Mutex
	err      error
	requests int
	exits    int
}

func (f *fakeFullscreen) Request(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests++
	return f.err
}

func (f *fakeFullscreen) Exit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exits++
	return nil
}

func (f *fakeFullscreen) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

type fakeGateway struct {
	mu            sync.Mutex
	saveErr       error
	finalizeErr   error
	saves         []AnswerRecord
	finalized     []AnswerRecord
	finalizeCalls int
}

func (g *fakeGateway) SaveAnswer(ctx context.Context, attemptID uint, rec AnswerRecord) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.saves = append(g.saves, rec)
	return g.saveErr
}

func (g *fakeGateway) FinalizeAnswers(ctx context.Context, attemptID uint, recs []AnswerRecord) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.finalizeCalls++
	if g.finalizeErr != nil {
		return g.finalizeErr
	}
	g.finalized = recs
	return nil
}

type fakeStore struct {
	mu        sync.Mutex
	nextID    uint
	createErr error
	updateErr error
	created   []NewAttempt
	updates   []AttemptUpdate
}

func (s *fakeStore) CreateAttempt(ctx context.Context, a NewAttempt) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return 0, s.createErr
	}
	s.nextID++
	s.created = append(s.created, a)
	return s.nextID, nil
}

func (s *fakeStore) UpdateAttempt(ctx context.Context, attemptID uint, u AttemptUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.updates = append(s.updates, u)
	return s.updateErr
}

type fakeRanker struct {
	res     *ranking.Result
	err     error
	release chan struct{} // when set, Rank blocks until it is closed
}

func (r *fakeRanker) Rank(ctx context.Context, req ranking.Request) (*ranking.Result, error) {
	if r.release != nil {
		select {
		case <-r.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return r.res, r.err
}

type fakeAnalytics struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (a *fakeAnalytics) RefreshAnalytics(ctx context.Context, userID, testID uint) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls++
	return a.err
}

type fakeTrack struct {
	mu      sync.Mutex
	live    bool
	enabled bool
}

func (t *fakeTrack) ID() string { return "video-0" }

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
	mu      sync.Mutex
	track   *fakeTrack
	stopped int
}

func (s *fakeStream) Tracks() []proctor.Track { return []proctor.Track{s.track} }

func (s *fakeStream) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped++
}

type fakeCamera struct {
	stream *fakeStream
	err    error
}

func (c *fakeCamera) RequestStream(ctx context.Context) (proctor.Stream, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.stream, nil
}
