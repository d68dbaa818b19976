package session

import "github.com/lshigami/aptiprep/internal/proctor"

type AnswerView struct {
	QuestionID      uint    `json:"question_id"`
	SelectedOption  *string `json:"selected_option"`
	MarkedForReview bool    `json:"marked_for_review"`
	TimeSpent       int     `json:"time_spent_seconds"`
}

// View is a point-in-time copy of the session for rendering.
type View struct {
	State             string           `json:"state"`
	AttemptID         uint             `json:"attempt_id"`
	TestID            uint             `json:"test_id"`
	CurrentIndex      int              `json:"current_index"`
	CurrentQuestionID uint             `json:"current_question_id"`
	RemainingSeconds  int              `json:"remaining_seconds"`
	Answers           []AnswerView     `json:"answers"`
	Warnings          []string         `json:"warnings"`
	Flags             proctor.Flags    `json:"flags"`
	Counters          proctor.Counters `json:"counters"`
	SubmitError       string           `json:"submit_error,omitempty"`
	Result            *Result          `json:"result,omitempty"`
}

func (c *Controller) Snapshot() View {
	c.mu.Lock()
	v := View{
		State:             c.state.String(),
		AttemptID:         c.attemptID,
		TestID:            c.cfg.Paper.TestID,
		CurrentIndex:      c.current,
		CurrentQuestionID: c.currentQuestionIDLocked(),
		RemainingSeconds:  c.remaining,
		Answers:           make([]AnswerView, 0, len(c.cfg.Paper.Questions)),
		Warnings:          append([]string(nil), c.warnings...),
		Result:            c.result,
	}
	for _, q := range c.cfg.Paper.Questions {
		rec := c.recordLocked(q.ID)
		v.Answers = append(v.Answers, AnswerView{
			QuestionID:      q.ID,
			SelectedOption:  rec.SelectedOption,
			MarkedForReview: rec.IsMarkedForReview,
			TimeSpent:       rec.TimeTakenSeconds,
		})
	}
	if c.submitErr != nil {
		v.SubmitError = c.submitErr.Error()
	}
	c.mu.Unlock()

	v.Flags = c.monitor.Flags()
	v.Counters = c.monitor.Counters()
	return v
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) AttemptID() uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attemptID
}

func (c *Controller) UserID() uint {
	return c.cfg.UserID
}

// Result returns the submission outcome, or nil before Submitted.
func (c *Controller) Result() *Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result
}

// Done is closed once the session reaches Submitted.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Ranked is closed once ranking and analytics finished after submission,
// whether or not they succeeded. Result carries the rank from then on.
func (c *Controller) Ranked() <-chan struct{} {
	return c.postDone
}

func (c *Controller) Proctoring() proctor.Summary {
	return c.monitor.Summary()
}
