package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/proctor"
	"github.com/lshigami/aptiprep/internal/session"
	"github.com/rs/zerolog/log"
)

// submittedRetention is how long a finished session stays readable.
const submittedRetention = 10 * time.Minute

type SessionOptions struct {
	TickInterval        time.Duration
	CameraCheckInterval time.Duration
	PostSubmitTimeout   time.Duration
}

// SessionHost runs session controllers on the server. The browser only
// reports capability signals and student actions; timers, locking and
// submission happen here.
type SessionHost interface {
	Start(ctx context.Context, req dto.StartSessionRequest) (*dto.StartSessionResponse, error)
	Event(id string, req dto.SessionEventRequest) (*session.View, error)
	ReenterFullscreen(ctx context.Context, id string) (*session.View, error)
	SelectOption(id string, req dto.SelectOptionRequest) (*session.View, error)
	ToggleMarkForReview(id string, req dto.MarkForReviewRequest) (*session.View, error)
	Navigate(ctx context.Context, id string, index int) (*session.View, error)
	Submit(ctx context.Context, id string) (*session.Result, error)
	RetrySubmit(ctx context.Context, id string) (*session.Result, error)
	Snapshot(id string) (*session.View, error)
	Close(id string) error
	CloseAll()
}

type hostedSession struct {
	ctrl       *session.Controller
	fullscreen *remoteFullscreen
	camera     *remoteCamera
}

type sessionHost struct {
	catalog   CatalogService
	attempts  AttemptService
	ranker    session.Ranker
	analytics session.AnalyticsRefresher
	opts      SessionOptions

	// ctx outlives requests: controller timers run on it.
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	sessions map[string]*hostedSession
}

func NewSessionHost(
	catalog CatalogService,
	attempts AttemptService,
	ranker RankingService,
	analytics AnalyticsService,
	opts SessionOptions,
) SessionHost {
	ctx, cancel := context.WithCancel(context.Background())
	return &sessionHost{
		catalog:   catalog,
		attempts:  attempts,
		ranker:    ranker,
		analytics: analytics,
		opts:      opts,
		ctx:       ctx,
		cancel:    cancel,
		sessions:  make(map[string]*hostedSession),
	}
}

func (h *sessionHost) Start(ctx context.Context, req dto.StartSessionRequest) (*dto.StartSessionResponse, error) {
	paper, err := h.catalog.LoadPaper(ctx, req.TestID)
	if err != nil {
		return nil, err
	}

	fs := &remoteFullscreen{active: req.Fullscreen}
	cam := &remoteCamera{granted: req.CameraGranted}
	ctrl, err := session.New(session.Config{
		Paper:               *paper,
		UserID:              req.UserID,
		Answers:             h.attempts,
		Attempts:            h.attempts,
		Fullscreen:          fs,
		Ranker:              h.ranker,
		Analytics:           h.analytics,
		Camera:              cam,
		DeviceType:          proctor.ParseDeviceType(req.DeviceType),
		BrowserInfo:         req.BrowserInfo,
		TickInterval:        h.opts.TickInterval,
		CameraCheckInterval: h.opts.CameraCheckInterval,
		PostSubmitTimeout:   h.opts.PostSubmitTimeout,
	})
	if err != nil {
		return nil, err
	}
	if err := ctrl.Start(h.ctx); err != nil {
		ctrl.Close()
		return nil, err
	}

	id := uuid.NewString()
	h.mu.Lock()
	h.sessions[id] = &hostedSession{ctrl: ctrl, fullscreen: fs, camera: cam}
	h.mu.Unlock()
	go h.expireAfterSubmit(id, ctrl)

	log.Info().Str("sessionID", id).Uint("attemptID", ctrl.AttemptID()).Uint("userID", req.UserID).Msg("Hosted session started")
	return &dto.StartSessionResponse{SessionID: id, AttemptID: ctrl.AttemptID()}, nil
}

func (h *sessionHost) expireAfterSubmit(id string, ctrl *session.Controller) {
	select {
	case <-ctrl.Done():
	case <-h.ctx.Done():
		return
	}
	select {
	case <-time.After(submittedRetention):
	case <-h.ctx.Done():
		return
	}
	h.mu.Lock()
	s, ok := h.sessions[id]
	expired := ok && s.ctrl == ctrl
	if expired {
		delete(h.sessions, id)
	}
	h.mu.Unlock()
	if expired {
		ctrl.Close()
	}
}

func (h *sessionHost) get(id string) (*hostedSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", id, apperr.ErrNotFound)
	}
	return s, nil
}

func (h *sessionHost) view(s *hostedSession) *session.View {
	v := s.ctrl.Snapshot()
	return &v
}

func (h *sessionHost) Event(id string, req dto.SessionEventRequest) (*session.View, error) {
	s, err := h.get(id)
	if err != nil {
		return nil, err
	}
	switch req.Type {
	case "fullscreen":
		if req.Active == nil {
			return nil, fmt.Errorf("%w: fullscreen event needs active", apperr.ErrInvalidInput)
		}
		s.fullscreen.set(*req.Active)
		s.ctrl.OnFullscreenChange(*req.Active)
	case "visibility":
		if req.Hidden == nil {
			return nil, fmt.Errorf("%w: visibility event needs hidden", apperr.ErrInvalidInput)
		}
		s.ctrl.OnVisibilityChange(*req.Hidden)
	case "input":
		if req.Input == "" {
			return nil, fmt.Errorf("%w: input event needs input", apperr.ErrInvalidInput)
		}
		s.ctrl.OnInputIntercepted(proctor.InputKind(req.Input))
	case "camera":
		if req.Live == nil {
			return nil, fmt.Errorf("%w: camera event needs live", apperr.ErrInvalidInput)
		}
		s.camera.setLive(*req.Live)
	default:
		return nil, fmt.Errorf("%w: unknown event type %q", apperr.ErrInvalidInput, req.Type)
	}
	return h.view(s), nil
}

func (h *sessionHost) ReenterFullscreen(ctx context.Context, id string) (*session.View, error) {
	s, err := h.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.ctrl.ReenterFullscreen(ctx); err != nil {
		return nil, err
	}
	return h.view(s), nil
}

func (h *sessionHost) SelectOption(id string, req dto.SelectOptionRequest) (*session.View, error) {
	s, err := h.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.ctrl.SelectOption(req.QuestionID, req.Option); err != nil {
		return nil, err
	}
	return h.view(s), nil
}

func (h *sessionHost) ToggleMarkForReview(id string, req dto.MarkForReviewRequest) (*session.View, error) {
	s, err := h.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.ctrl.ToggleMarkForReview(req.QuestionID); err != nil {
		return nil, err
	}
	return h.view(s), nil
}

func (h *sessionHost) Navigate(ctx context.Context, id string, index int) (*session.View, error) {
	s, err := h.get(id)
	if err != nil {
		return nil, err
	}
	if err := s.ctrl.GoTo(ctx, index); err != nil {
		return nil, err
	}
	return h.view(s), nil
}

func (h *sessionHost) Submit(ctx context.Context, id string) (*session.Result, error) {
	s, err := h.get(id)
	if err != nil {
		return nil, err
	}
	return s.ctrl.Submit(ctx)
}

func (h *sessionHost) RetrySubmit(ctx context.Context, id string) (*session.Result, error) {
	s, err := h.get(id)
	if err != nil {
		return nil, err
	}
	return s.ctrl.RetrySubmit(ctx)
}

func (h *sessionHost) Snapshot(id string) (*session.View, error) {
	s, err := h.get(id)
	if err != nil {
		return nil, err
	}
	return h.view(s), nil
}

// Close abandons the session. An unsubmitted attempt stays in progress.
func (h *sessionHost) Close(id string) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s: %w", id, apperr.ErrNotFound)
	}
	s.ctrl.Close()
	log.Info().Str("sessionID", id).Uint("attemptID", s.ctrl.AttemptID()).Msg("Hosted session closed")
	return nil
}

func (h *sessionHost) CloseAll() {
	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[string]*hostedSession)
	h.mu.Unlock()

	for _, s := range sessions {
		s.ctrl.Close()
	}
	h.cancel()
	log.Info().Int("count", len(sessions)).Msg("Hosted sessions closed")
}

// remoteFullscreen mirrors the fullscreen state last reported by the browser.
type remoteFullscreen struct {
	mu     sync.Mutex
	active bool
}

func (f *remoteFullscreen) Request(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.active {
		return fmt.Errorf("%w: browser is not in fullscreen", apperr.ErrPermission)
	}
	return nil
}

func (f *remoteFullscreen) Exit() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = false
	return nil
}

func (f *remoteFullscreen) set(active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = active
}

// remoteCamera exposes the browser's capture stream as one video track whose
// liveness follows camera events. A track that ended is replaced, not revived.
type remoteCamera struct {
	mu      sync.Mutex
	granted bool
	seq     int
	track   *remoteTrack
}

func (c *remoteCamera) RequestStream(ctx context.Context) (proctor.Stream, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.granted {
		return nil, fmt.Errorf("%w: camera permission not granted", apperr.ErrPermission)
	}
	c.track = c.newTrackLocked()
	return c, nil
}

func (c *remoteCamera) newTrackLocked() *remoteTrack {
	c.seq++
	return &remoteTrack{id: fmt.Sprintf("remote-video-%d", c.seq), live: true, enabled: true}
}

func (c *remoteCamera) setLive(live bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.track == nil {
		return
	}
	if live && !c.track.Live() {
		c.track = c.newTrackLocked()
		return
	}
	c.track.setLive(live)
}

func (c *remoteCamera) Tracks() []proctor.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.track == nil {
		return nil
	}
	return []proctor.Track{c.track}
}

func (c *remoteCamera) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.track != nil {
		c.track.setLive(false)
	}
	c.track = nil
}

type remoteTrack struct {
	mu      sync.Mutex
	id      string
	live    bool
	enabled bool
}

func (t *remoteTrack) ID() string { return t.id }

func (t *remoteTrack) Live() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live
}

func (t *remoteTrack) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled
}

func (t *remoteTrack) SetEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.enabled = enabled
}

func (t *remoteTrack) setLive(live bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.live = live
}
