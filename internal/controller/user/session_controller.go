package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/aptiprep/internal/controller"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/service"
	"github.com/lshigami/aptiprep/internal/session"
)

// SessionController drives server-hosted exam sessions. The browser posts
// capability events and student actions; every response carries the
// resulting session view.
type SessionController struct {
	host service.SessionHost
}

func NewSessionController(host service.SessionHost) *SessionController {
	return &SessionController{host: host}
}

// StartSession godoc
// @Summary (User) Start a hosted exam session
// @Description Creates the attempt and arms the countdown on the server. Without fullscreen the session starts locked.
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Param session_data body dto.StartSessionRequest true "Test, user and browser capabilities"
// @Success 201 {object} dto.StartSessionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable, retry"
// @Router /sessions [post]
func (c *SessionController) StartSession(ctx *gin.Context) {
	var req dto.StartSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "StartSession", err)
		return
	}
	resp, err := c.host.Start(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "StartSession", "Failed to start session", err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// GetSession godoc
// @Summary (User) Current state of a hosted session
// @Tags User - Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} session.View
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [get]
func (c *SessionController) GetSession(ctx *gin.Context) {
	view, err := c.host.Snapshot(ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, "GetSession", "Failed to read session", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// PostEvent godoc
// @Summary (User) Report a browser capability event
// @Description fullscreen {active}, visibility {hidden}, input {input} or camera {live}.
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param event body dto.SessionEventRequest true "Capability event"
// @Success 200 {object} session.View
// @Failure 400 {object} dto.ErrorResponse "Invalid event"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id}/events [post]
func (c *SessionController) PostEvent(ctx *gin.Context) {
	var req dto.SessionEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "PostEvent", err)
		return
	}
	view, err := c.host.Event(ctx.Param("session_id"), req)
	if err != nil {
		controller.RespondError(ctx, "PostEvent", "Failed to apply event", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// ReenterFullscreen godoc
// @Summary (User) Answer the re-entry prompt of a locked session
// @Tags User - Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} session.View
// @Failure 403 {object} dto.ErrorResponse "Browser is not in fullscreen"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session already submitted"
// @Router /sessions/{session_id}/fullscreen [post]
func (c *SessionController) ReenterFullscreen(ctx *gin.Context) {
	view, err := c.host.ReenterFullscreen(ctx.Request.Context(), ctx.Param("session_id"))
	if err != nil {
		controller.RespondError(ctx, "ReenterFullscreen", "Fullscreen was not restored", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SelectOption godoc
// @Summary (User) Toggle an answer option
// @Description Selecting the already selected option clears the answer. An empty option clears it too.
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param selection body dto.SelectOptionRequest true "Question and option"
// @Success 200 {object} session.View
// @Failure 400 {object} dto.ErrorResponse "Unknown question"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session locked or submitted"
// @Router /sessions/{session_id}/answers [post]
func (c *SessionController) SelectOption(ctx *gin.Context) {
	var req dto.SelectOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "SelectOption", err)
		return
	}
	view, err := c.host.SelectOption(ctx.Param("session_id"), req)
	if err != nil {
		controller.RespondError(ctx, "SelectOption", "Answer not accepted", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// ToggleMarkForReview godoc
// @Summary (User) Toggle mark-for-review on a question
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param mark body dto.MarkForReviewRequest true "Question"
// @Success 200 {object} session.View
// @Failure 400 {object} dto.ErrorResponse "Unknown question"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session locked or submitted"
// @Router /sessions/{session_id}/review [post]
func (c *SessionController) ToggleMarkForReview(ctx *gin.Context) {
	var req dto.MarkForReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "ToggleMarkForReview", err)
		return
	}
	view, err := c.host.ToggleMarkForReview(ctx.Param("session_id"), req)
	if err != nil {
		controller.RespondError(ctx, "ToggleMarkForReview", "Mark not accepted", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Navigate godoc
// @Summary (User) Move to a question
// @Description Saves the current question before moving. A failed save only adds a warning to the view.
// @Tags User - Sessions
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param navigation body dto.NavigateRequest true "Target question index"
// @Success 200 {object} session.View
// @Failure 400 {object} dto.ErrorResponse "Index out of range"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session locked or submitted"
// @Router /sessions/{session_id}/navigate [post]
func (c *SessionController) Navigate(ctx *gin.Context) {
	var req dto.NavigateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Navigate", err)
		return
	}
	view, err := c.host.Navigate(ctx.Request.Context(), ctx.Param("session_id"), *req.Index)
	if err != nil {
		controller.RespondError(ctx, "Navigate", "Navigation rejected", err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Submit godoc
// @Summary (User) Submit a hosted session
// @Description Flushes and scores every answer and records the submission. Ranking and analytics run afterwards; the rank appears in the session view once computed.
// @Tags User - Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} session.Result
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Session locked or being submitted"
// @Failure 503 {object} dto.ErrorResponse "Submission not saved, retry"
// @Router /sessions/{session_id}/submit [post]
func (c *SessionController) Submit(ctx *gin.Context) {
	res, err := c.host.Submit(ctx.Request.Context(), ctx.Param("session_id"))
	c.respondResult(ctx, "Submit", res, err)
}

// RetrySubmit godoc
// @Summary (User) Retry a failed submission
// @Tags User - Sessions
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} session.Result
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Failure 409 {object} dto.ErrorResponse "Nothing to retry"
// @Failure 503 {object} dto.ErrorResponse "Submission not saved, retry"
// @Router /sessions/{session_id}/submit/retry [post]
func (c *SessionController) RetrySubmit(ctx *gin.Context) {
	res, err := c.host.RetrySubmit(ctx.Request.Context(), ctx.Param("session_id"))
	c.respondResult(ctx, "RetrySubmit", res, err)
}

// respondResult answers with the result even when the session had already
// been submitted, so a client that lost the first response can recover it.
func (c *SessionController) respondResult(ctx *gin.Context, op string, res *session.Result, err error) {
	if err != nil && !(errors.Is(err, session.ErrSubmitted) && res != nil) {
		controller.RespondError(ctx, op, "Submission failed", err)
		return
	}
	ctx.JSON(http.StatusOK, res)
}

// CloseSession godoc
// @Summary (User) Close a hosted session
// @Description Stops the timers and releases the camera. An unsubmitted attempt stays in progress.
// @Tags User - Sessions
// @Param session_id path string true "Session ID"
// @Success 204 "Closed"
// @Failure 404 {object} dto.ErrorResponse "Session not found"
// @Router /sessions/{session_id} [delete]
func (c *SessionController) CloseSession(ctx *gin.Context) {
	if err := c.host.Close(ctx.Param("session_id")); err != nil {
		controller.RespondError(ctx, "CloseSession", "Failed to close session", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
