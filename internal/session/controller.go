// Package session implements the proctored exam state machine:
//
//	Initializing -> Active <-> Locked -> Submitting -> Submitted
//
// A Controller owns the countdown, the camera health check, the in-memory
// answer map and the proctoring monitor for exactly one attempt. Every timer
// handle and media stream it acquires is released by Close or by a
// successful submission.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lshigami/aptiprep/internal/apperr"
	"github.com/lshigami/aptiprep/internal/proctor"
	"github.com/lshigami/aptiprep/internal/ranking"
	"github.com/lshigami/aptiprep/internal/scoring"
	"github.com/rs/zerolog/log"
)

const (
	DefaultTickInterval        = time.Second
	DefaultCameraCheckInterval = 5 * time.Second
	DefaultPostSubmitTimeout   = 10 * time.Second
)

type Config struct {
	Paper  Paper
	UserID uint

	Answers    AnswerGateway
	Attempts   AttemptStore
	Fullscreen Fullscreen
	Ranker     Ranker             // optional
	Analytics  AnalyticsRefresher // optional
	Camera     proctor.Camera     // optional

	DeviceType  proctor.DeviceType
	BrowserInfo string

	TickInterval        time.Duration
	CameraCheckInterval time.Duration
	PostSubmitTimeout   time.Duration
	Now                 func() time.Time
}

type answerState struct {
	selected *string
	marked   bool
}

type Result struct {
	AttemptID            uint         `json:"attempt_id"`
	Reason               SubmitReason `json:"reason"`
	Score                float64      `json:"score"`
	TotalQuestions       int          `json:"total_questions"`
	CorrectAnswers       int          `json:"correct_answers"`
	IncorrectAnswers     int          `json:"incorrect_answers"`
	SkippedCount         int          `json:"skipped_count"`
	MarkedForReviewCount int          `json:"marked_for_review_count"`
	TimeTakenSeconds     int          `json:"time_taken_seconds"`
	SubmittedAt          time.Time    `json:"submitted_at"`
	Rank                 *int         `json:"rank,omitempty"`
	Percentile           *float64     `json:"percentile,omitempty"`
	TotalAttempts        int          `json:"total_attempts,omitempty"`
}

type Controller struct {
	cfg     Config
	monitor *proctor.Monitor
	now     func() time.Time
	index   map[uint]int // question ID -> position on the paper

	startMu sync.Mutex

	mu           sync.Mutex
	state        State
	attemptID    uint
	current      int
	remaining    int
	answers      map[uint]*answerState
	timeSpent    map[uint]int
	warnings     []string
	submitReason SubmitReason
	submittedAt  time.Time
	timeTaken    int
	finalizing   bool
	submitErr    error
	result       *Result
	done         chan struct{}
	postDone     chan struct{}
	closing      bool

	stop         chan struct{}
	wg           sync.WaitGroup
	post         sync.WaitGroup
	teardownOnce sync.Once
}

func New(cfg Config) (*Controller, error) {
	if cfg.Answers == nil || cfg.Attempts == nil || cfg.Fullscreen == nil {
		return nil, fmt.Errorf("%w: answer gateway, attempt store and fullscreen capability are required", apperr.ErrInvalidInput)
	}
	if len(cfg.Paper.Questions) == 0 {
		return nil, fmt.Errorf("%w: test %d has no questions", apperr.ErrInvalidInput, cfg.Paper.TestID)
	}
	if cfg.Paper.DurationSeconds <= 0 {
		return nil, fmt.Errorf("%w: test %d has no duration", apperr.ErrInvalidInput, cfg.Paper.TestID)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.CameraCheckInterval <= 0 {
		cfg.CameraCheckInterval = DefaultCameraCheckInterval
	}
	if cfg.PostSubmitTimeout <= 0 {
		cfg.PostSubmitTimeout = DefaultPostSubmitTimeout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	c := &Controller{
		cfg:       cfg,
		now:       cfg.Now,
		index:     make(map[uint]int, len(cfg.Paper.Questions)),
		state:     StateInitializing,
		remaining: cfg.Paper.DurationSeconds,
		answers:   make(map[uint]*answerState, len(cfg.Paper.Questions)),
		timeSpent: make(map[uint]int, len(cfg.Paper.Questions)),
		done:      make(chan struct{}),
		postDone:  make(chan struct{}),
		stop:      make(chan struct{}),
	}
	for i, q := range cfg.Paper.Questions {
		c.index[q.ID] = i
	}
	c.monitor = proctor.NewMonitor(proctor.Options{
		Camera:       cfg.Camera,
		DeviceType:   cfg.DeviceType,
		BrowserInfo:  cfg.BrowserInfo,
		Now:          cfg.Now,
		OnLockChange: c.onLockChange,
	})
	return c, nil
}

// Start creates the attempt (once per controller), acquires fullscreen and
// the camera, and arms the timers. Calling Start again after it succeeded is
// a no-op; after a failed attempt creation it retries.
func (c *Controller) Start(ctx context.Context) error {
	c.startMu.Lock()
	defer c.startMu.Unlock()

	c.mu.Lock()
	if c.state != StateInitializing {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	id, err := c.cfg.Attempts.CreateAttempt(ctx, NewAttempt{
		TestID:         c.cfg.Paper.TestID,
		UserID:         c.cfg.UserID,
		TotalQuestions: len(c.cfg.Paper.Questions),
	})
	if err != nil {
		log.Error().Err(err).Uint("testID", c.cfg.Paper.TestID).Uint("userID", c.cfg.UserID).Msg("Session Start: failed to create attempt")
		return fmt.Errorf("create attempt for test %d: %w", c.cfg.Paper.TestID, err)
	}

	if err := c.cfg.Fullscreen.Request(ctx); err != nil {
		log.Warn().Err(err).Uint("attemptID", id).Msg("Session Start: fullscreen refused, starting locked")
		c.monitor.FullscreenDenied()
	} else {
		c.monitor.FullscreenChanged(true)
	}

	c.mu.Lock()
	c.attemptID = id
	if c.monitor.Locked() {
		c.state = StateLocked
	} else {
		c.state = StateActive
	}
	c.mu.Unlock()

	if err := c.monitor.StartCamera(ctx); err != nil {
		c.addWarning("Camera access was denied. The exam continues and the denial has been recorded.")
	}

	c.wg.Add(1)
	go c.run(ctx)

	log.Info().Uint("attemptID", id).Str("state", c.State().String()).Msg("Session started")
	return nil
}

func (c *Controller) run(ctx context.Context) {
	defer c.wg.Done()

	countdown := time.NewTicker(c.cfg.TickInterval)
	defer countdown.Stop()

	var cameraC <-chan time.Time
	if c.monitor.Flags().CameraRequired {
		cameraTicker := time.NewTicker(c.cfg.CameraCheckInterval)
		defer cameraTicker.Stop()
		cameraC = cameraTicker.C
	}

	for {
		select {
		case <-c.stop:
			return
		case <-ctx.Done():
			return
		case <-countdown.C:
			if c.tick() {
				go c.autoSubmit(ctx)
			}
		case <-cameraC:
			c.monitor.CheckCamera()
		}
	}
}

// tick advances the countdown by one second. It reports true exactly once,
// when the countdown reaches zero and the session moved to Submitting.
func (c *Controller) tick() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateActive && c.state != StateLocked {
		return false
	}
	if c.state == StateActive {
		c.timeSpent[c.currentQuestionIDLocked()]++
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining > 0 {
		return false
	}
	c.beginSubmitLocked(ReasonTimeout)
	return true
}

func (c *Controller) autoSubmit(ctx context.Context) {
	if _, err := c.finalize(ctx); err != nil {
		log.Error().Err(err).Uint("attemptID", c.AttemptID()).Msg("Session: automatic submission failed, waiting for retry")
	}
}

func (c *Controller) onLockChange(locked bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case locked && c.state == StateActive:
		c.state = StateLocked
	case !locked && c.state == StateLocked:
		c.state = StateActive
	}
}

func (c *Controller) OnFullscreenChange(active bool) {
	c.monitor.FullscreenChanged(active)
}

func (c *Controller) OnVisibilityChange(hidden bool) {
	c.monitor.VisibilityChanged(hidden)
}

func (c *Controller) OnInputIntercepted(kind proctor.InputKind) {
	c.monitor.InputIntercepted(kind)
}

// ReenterFullscreen answers the re-entry prompt shown while Locked.
func (c *Controller) ReenterFullscreen(ctx context.Context) error {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()
	if state == StateInitializing || state == StateSubmitted {
		return stateError(state)
	}

	if err := c.cfg.Fullscreen.Request(ctx); err != nil {
		return fmt.Errorf("re-enter fullscreen: %w", err)
	}
	c.monitor.FullscreenChanged(true)
	return nil
}

// SelectOption toggles option on the question: selecting the option that is
// already selected clears the answer.
func (c *Controller) SelectOption(questionID uint, option string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mutableLocked(questionID); err != nil {
		return err
	}
	st := c.answerLocked(questionID)
	if option == "" || (st.selected != nil && *st.selected == option) {
		st.selected = nil
		return nil
	}
	selected := option
	st.selected = &selected
	return nil
}

func (c *Controller) ToggleMarkForReview(questionID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.mutableLocked(questionID); err != nil {
		return err
	}
	st := c.answerLocked(questionID)
	st.marked = !st.marked
	return nil
}

func (c *Controller) Next(ctx context.Context) error {
	c.mu.Lock()
	target := c.current + 1
	c.mu.Unlock()
	return c.GoTo(ctx, target)
}

func (c *Controller) Previous(ctx context.Context) error {
	c.mu.Lock()
	target := c.current - 1
	c.mu.Unlock()
	return c.GoTo(ctx, target)
}

// GoTo saves the current question and then moves to index. The save is
// waited on but its failure only produces a local warning; the in-memory
// answer stays authoritative and the next navigation saves it again.
func (c *Controller) GoTo(ctx context.Context, index int) error {
	c.mu.Lock()
	if c.state != StateActive {
		err := stateError(c.state)
		c.mu.Unlock()
		return err
	}
	if index < 0 || index >= len(c.cfg.Paper.Questions) {
		c.mu.Unlock()
		return ErrOutOfRange
	}
	if index == c.current {
		c.mu.Unlock()
		return nil
	}
	rec := c.recordLocked(c.currentQuestionIDLocked())
	attemptID := c.attemptID
	c.mu.Unlock()

	if err := c.cfg.Answers.SaveAnswer(ctx, attemptID, rec); err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Uint("questionID", rec.QuestionID).Msg("Session GoTo: answer save failed, keeping local copy")
		c.addWarning(fmt.Sprintf("Could not save question %d yet; it is kept locally and will be saved again.", rec.QuestionID))
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateActive {
		return stateError(c.state)
	}
	c.current = index
	return nil
}

// Submit is the student's explicit submission. It is only accepted while
// Active; the countdown is the only path that submits from Locked.
func (c *Controller) Submit(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	switch c.state {
	case StateActive:
		c.beginSubmitLocked(ReasonManual)
	case StateSubmitted:
		res := c.result
		c.mu.Unlock()
		return res, ErrSubmitted
	default:
		err := stateError(c.state)
		c.mu.Unlock()
		return nil, err
	}
	c.mu.Unlock()
	return c.finalize(ctx)
}

// RetrySubmit re-runs a submission whose final flush failed.
func (c *Controller) RetrySubmit(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	if c.state == StateSubmitted {
		res := c.result
		c.mu.Unlock()
		return res, nil
	}
	if c.state != StateSubmitting || c.submitErr == nil {
		c.mu.Unlock()
		return nil, ErrNothingToRetry
	}
	c.submitErr = nil
	c.mu.Unlock()
	return c.finalize(ctx)
}

func (c *Controller) beginSubmitLocked(reason SubmitReason) {
	c.state = StateSubmitting
	c.submitReason = reason
	c.timeTaken = c.cfg.Paper.DurationSeconds - c.remaining
}

func (c *Controller) finalize(ctx context.Context) (*Result, error) {
	c.mu.Lock()
	if c.state != StateSubmitting || c.finalizing {
		err := stateError(c.state)
		if c.state == StateSubmitting {
			err = ErrSubmitting
		}
		c.mu.Unlock()
		return nil, err
	}
	c.finalizing = true
	if c.submittedAt.IsZero() {
		c.submittedAt = c.now().UTC()
	}
	attemptID := c.attemptID
	current := c.recordLocked(c.currentQuestionIDLocked())
	answers := c.scoringAnswersLocked()
	timeSpent := make(map[uint]int, len(c.timeSpent))
	for id, secs := range c.timeSpent {
		timeSpent[id] = secs
	}
	submittedAt, timeTaken, reason := c.submittedAt, c.timeTaken, c.submitReason
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.finalizing = false
		c.mu.Unlock()
	}()

	if err := c.cfg.Answers.SaveAnswer(ctx, attemptID, current); err != nil {
		log.Warn().Err(err).Uint("attemptID", attemptID).Msg("Session finalize: flushing current answer failed, relying on bulk finalize")
	}

	scored := scoring.Score(c.cfg.Paper.Questions, answers, c.cfg.Paper.NegativeMarking)
	records := make([]AnswerRecord, 0, len(scored.Questions))
	for _, qr := range scored.Questions {
		ans := answers[qr.QuestionID]
		records = append(records, AnswerRecord{
			QuestionID:        qr.QuestionID,
			SelectedOption:    ans.SelectedOption,
			IsMarkedForReview: ans.MarkedForReview,
			IsSkipped:         qr.Outcome == scoring.OutcomeSkipped,
			IsCorrect:         qr.IsCorrect(),
			MarksObtained:     qr.MarksObtained,
			TimeTakenSeconds:  timeSpent[qr.QuestionID],
		})
	}
	if err := c.cfg.Answers.FinalizeAnswers(ctx, attemptID, records); err != nil {
		if !errors.Is(err, apperr.ErrConflict) {
			return nil, c.failSubmit(attemptID, fmt.Errorf("finalize answers: %w", err))
		}
		log.Info().Uint("attemptID", attemptID).Msg("Session finalize: answers already final")
	}

	update := AttemptUpdate{
		Score:                scored.Score,
		CorrectAnswers:       scored.CorrectAnswers,
		SkippedCount:         scored.SkippedCount,
		MarkedForReviewCount: scored.MarkedForReviewCount,
		TimeTakenSeconds:     timeTaken,
		SubmittedAt:          submittedAt,
		Proctoring:           c.monitor.Summary(),
	}
	if err := c.cfg.Attempts.UpdateAttempt(ctx, attemptID, update); err != nil {
		if !errors.Is(err, apperr.ErrConflict) {
			return nil, c.failSubmit(attemptID, fmt.Errorf("update attempt: %w", err))
		}
		log.Info().Uint("attemptID", attemptID).Msg("Session finalize: attempt already recorded as submitted")
	}

	res := &Result{
		AttemptID:            attemptID,
		Reason:               reason,
		Score:                scored.Score,
		TotalQuestions:       scored.TotalQuestions(),
		CorrectAnswers:       scored.CorrectAnswers,
		IncorrectAnswers:     scored.IncorrectAnswers,
		SkippedCount:         scored.SkippedCount,
		MarkedForReviewCount: scored.MarkedForReviewCount,
		TimeTakenSeconds:     timeTaken,
		SubmittedAt:          submittedAt,
	}
	c.teardown()

	c.mu.Lock()
	c.state = StateSubmitted
	c.result = res
	close(c.done)
	detach := !c.closing
	if detach {
		c.post.Add(1)
	}
	c.mu.Unlock()

	log.Info().Uint("attemptID", attemptID).Str("reason", string(reason)).Float64("score", res.Score).Msg("Session submitted")

	postCtx := context.WithoutCancel(ctx)
	if detach {
		go func() {
			defer c.post.Done()
			c.runPostSubmit(postCtx, *res)
		}()
	} else {
		c.runPostSubmit(postCtx, *res)
	}

	out := *res
	return &out, nil
}

func (c *Controller) failSubmit(attemptID uint, err error) error {
	if !errors.Is(err, apperr.ErrTransientPersistence) {
		err = fmt.Errorf("%w: %w", apperr.ErrTransientPersistence, err)
	}
	c.mu.Lock()
	c.submitErr = err
	c.mu.Unlock()
	log.Error().Err(err).Uint("attemptID", attemptID).Msg("Session finalize: submission not saved, retry required")
	return err
}

// runPostSubmit invokes ranking and analytics concurrently once the result
// has been returned. Both are best effort: failures are logged and never undo
// the submission. A successful rank is attached to the stored result.
func (c *Controller) runPostSubmit(ctx context.Context, res Result) {
	defer close(c.postDone)

	postCtx, cancel := context.WithTimeout(ctx, c.cfg.PostSubmitTimeout)
	defer cancel()

	var wg sync.WaitGroup
	if c.cfg.Ranker != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rr, err := c.cfg.Ranker.Rank(postCtx, ranking.Request{
				AttemptID: res.AttemptID,
				UserID:    c.cfg.UserID,
				TestID:    c.cfg.Paper.TestID,
			})
			if err != nil {
				log.Warn().Err(err).Uint("attemptID", res.AttemptID).Msg("Session: ranking skipped")
				return
			}
			c.attachRank(rr)
		}()
	}
	if c.cfg.Analytics != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.cfg.Analytics.RefreshAnalytics(postCtx, c.cfg.UserID, c.cfg.Paper.TestID); err != nil {
				log.Warn().Err(err).Uint("userID", c.cfg.UserID).Msg("Session: analytics refresh skipped")
			}
		}()
	}
	wg.Wait()
}

// attachRank replaces the stored result with a ranked copy; results already
// handed out are never mutated.
func (c *Controller) attachRank(rr *ranking.Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ranked := *c.result
	rank, pct := rr.Rank, rr.Percentile
	ranked.Rank = &rank
	ranked.Percentile = &pct
	ranked.TotalAttempts = rr.TotalAttempts
	c.result = &ranked
}

// Close stops both timers, every camera track and releases fullscreen, then
// waits for post-submission ranking and analytics. It must be called on every
// exit path and is safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closing = true
	c.mu.Unlock()

	c.teardown()
	c.post.Wait()
}

func (c *Controller) teardown() {
	c.teardownOnce.Do(func() {
		close(c.stop)
		c.wg.Wait()
		c.monitor.StopCamera()
		if err := c.cfg.Fullscreen.Exit(); err != nil {
			log.Debug().Err(err).Msg("Session teardown: exit fullscreen")
		}
	})
}

func (c *Controller) addWarning(msg string) {
	c.mu.Lock()
	c.warnings = append(c.warnings, msg)
	c.mu.Unlock()
}

func (c *Controller) mutableLocked(questionID uint) error {
	if c.state != StateActive {
		return stateError(c.state)
	}
	if _, ok := c.index[questionID]; !ok {
		return ErrUnknownQuestion
	}
	return nil
}

func (c *Controller) answerLocked(questionID uint) *answerState {
	st, ok := c.answers[questionID]
	if !ok {
		st = &answerState{}
		c.answers[questionID] = st
	}
	return st
}

func (c *Controller) currentQuestionIDLocked() uint {
	return c.cfg.Paper.Questions[c.current].ID
}

func (c *Controller) recordLocked(questionID uint) AnswerRecord {
	rec := AnswerRecord{QuestionID: questionID, IsSkipped: true, TimeTakenSeconds: c.timeSpent[questionID]}
	if st, ok := c.answers[questionID]; ok {
		if st.selected != nil {
			selected := *st.selected
			rec.SelectedOption = &selected
			rec.IsSkipped = false
		}
		rec.IsMarkedForReview = st.marked
	}
	return rec
}

func (c *Controller) scoringAnswersLocked() map[uint]scoring.Answer {
	out := make(map[uint]scoring.Answer, len(c.answers))
	for id, st := range c.answers {
		ans := scoring.Answer{MarkedForReview: st.marked}
		if st.selected != nil {
			selected := *st.selected
			ans.SelectedOption = &selected
		}
		out[id] = ans
	}
	return out
}
