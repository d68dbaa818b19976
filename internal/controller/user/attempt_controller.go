package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/aptiprep/internal/controller"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/service"
	"github.com/lshigami/aptiprep/internal/session"
)

// AttemptController exposes the answer gateway and attempt store to
// sessions that run in the browser.
type AttemptController struct {
	attemptService service.AttemptService
}

func NewAttemptController(attemptService service.AttemptService) *AttemptController {
	return &AttemptController{attemptService: attemptService}
}

// CreateAttempt godoc
// @Summary (User) Open an attempt
// @Description Creates an in-progress attempt with zeroed aggregates. Call once per exam session.
// @Tags User - Attempt Gateway
// @Accept json
// @Produce json
// @Param test_id path int true "Test ID"
// @Param attempt_data body dto.CreateAttemptRequest true "Attempting user"
// @Success 201 {object} dto.CreateAttemptResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable, retry"
// @Router /tests/{test_id}/attempts [post]
func (c *AttemptController) CreateAttempt(ctx *gin.Context) {
	testID, ok := controller.ParamID(ctx, "test_id", "Test ID")
	if !ok {
		return
	}
	var req dto.CreateAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "CreateAttempt", err)
		return
	}

	id, err := c.attemptService.CreateAttempt(ctx.Request.Context(), session.NewAttempt{TestID: testID, UserID: req.UserID})
	if err != nil {
		controller.RespondError(ctx, "CreateAttempt", "Failed to create attempt", err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreateAttemptResponse{AttemptID: id})
}

// SaveAnswer godoc
// @Summary (User) Save one answer
// @Description Upserts the in-exam state of one question. Saving the same value twice stores one record.
// @Tags User - Attempt Gateway
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param question_id path int true "Question ID"
// @Param answer body dto.SaveAnswerRequest true "Answer state"
// @Success 204 "Saved"
// @Failure 400 {object} dto.ErrorResponse "Invalid input or question not in test"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable, retry"
// @Router /attempts/{attempt_id}/answers/{question_id} [put]
func (c *AttemptController) SaveAnswer(ctx *gin.Context) {
	attemptID, ok := controller.ParamID(ctx, "attempt_id", "Attempt ID")
	if !ok {
		return
	}
	questionID, ok := controller.ParamID(ctx, "question_id", "Question ID")
	if !ok {
		return
	}
	var req dto.SaveAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "SaveAnswer", err)
		return
	}

	err := c.attemptService.SaveAnswer(ctx.Request.Context(), attemptID, session.AnswerRecord{
		QuestionID:        questionID,
		SelectedOption:    req.SelectedOption,
		IsMarkedForReview: req.IsMarkedForReview,
		TimeTakenSeconds:  req.TimeTakenSeconds,
	})
	if err != nil {
		controller.RespondError(ctx, "SaveAnswer", "Failed to save answer", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// FinalizeAnswers godoc
// @Summary (User) Finalize every answer of an attempt
// @Description Writes the final state of all answers. Correctness and marks are computed from the answer key.
// @Tags User - Attempt Gateway
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param answers body dto.FinalizeAnswersRequest true "All answers"
// @Success 204 "Finalized"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable, retry"
// @Router /attempts/{attempt_id}/answers/finalize [post]
func (c *AttemptController) FinalizeAnswers(ctx *gin.Context) {
	attemptID, ok := controller.ParamID(ctx, "attempt_id", "Attempt ID")
	if !ok {
		return
	}
	var req dto.FinalizeAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "FinalizeAnswers", err)
		return
	}

	recs := make([]session.AnswerRecord, 0, len(req.Answers))
	for _, a := range req.Answers {
		recs = append(recs, session.AnswerRecord{
			QuestionID:        a.QuestionID,
			SelectedOption:    a.SelectedOption,
			IsMarkedForReview: a.IsMarkedForReview,
			TimeTakenSeconds:  a.TimeTakenSeconds,
		})
	}
	if err := c.attemptService.FinalizeAnswers(ctx.Request.Context(), attemptID, recs); err != nil {
		controller.RespondError(ctx, "FinalizeAnswers", "Failed to finalize answers", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SubmitAttempt godoc
// @Summary (User) Record the submission of an attempt
// @Description Sets submitted_at once, stores timing and the proctoring summary and recomputes the score from the finalized answers.
// @Tags User - Attempt Gateway
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param submission body dto.SubmitAttemptRequest true "Timing and proctoring summary"
// @Success 204 "Submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable, retry"
// @Router /attempts/{attempt_id} [patch]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	attemptID, ok := controller.ParamID(ctx, "attempt_id", "Attempt ID")
	if !ok {
		return
	}
	var req dto.SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "SubmitAttempt", err)
		return
	}

	update := session.AttemptUpdate{
		TimeTakenSeconds: req.TimeTakenSeconds,
		Proctoring:       req.Proctoring,
	}
	if req.SubmittedAt != nil {
		update.SubmittedAt = *req.SubmittedAt
	}
	if err := c.attemptService.UpdateAttempt(ctx.Request.Context(), attemptID, update); err != nil {
		controller.RespondError(ctx, "SubmitAttempt", "Failed to submit attempt", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
