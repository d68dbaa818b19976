package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/aptiprep/internal/controller"
	"github.com/lshigami/aptiprep/internal/service"
	"github.com/rs/zerolog/log"
)

type UserTestController struct {
	catalogService        service.CatalogService
	testSubmissionService service.TestSubmissionService
}

func NewUserTestController(catalog service.CatalogService, tss service.TestSubmissionService) *UserTestController {
	return &UserTestController{
		catalogService:        catalog,
		testSubmissionService: tss,
	}
}

// GetAllTests godoc
// @Summary (User) List all available tests
// @Description Get a list of tests with their question counts, optionally filtered by category.
// @Tags User - Tests & Attempts
// @Produce json
// @Param category query string false "Category filter, e.g. quantitative"
// @Success 200 {array} dto.TestSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (c *UserTestController) GetAllTests(ctx *gin.Context) {
	category := ctx.Query("category")
	tests, err := c.catalogService.ListTests(ctx.Request.Context(), category)
	if err != nil {
		controller.RespondError(ctx, "User GetAllTests", "Failed to retrieve tests", err)
		return
	}
	ctx.JSON(http.StatusOK, tests)
}

// GetTestDetails godoc
// @Summary (User) Get details of a specific test
// @Description Get a test with its ordered questions and options. Answer keys are never included.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path int true "Test ID"
// @Success 200 {object} dto.TestResponseDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id} [get]
func (c *UserTestController) GetTestDetails(ctx *gin.Context) {
	testID, ok := controller.ParamID(ctx, "test_id", "Test ID")
	if !ok {
		return
	}
	testDetails, err := c.catalogService.GetTestDetails(ctx.Request.Context(), testID)
	if err != nil {
		controller.RespondError(ctx, "User GetTestDetails", "Failed to retrieve test", err)
		return
	}
	ctx.JSON(http.StatusOK, testDetails)
}

// GetUserTestAttempts godoc
// @Summary (User) Get all attempts by a user for a specific test
// @Description Retrieve summary information for the attempts made on a test, optionally restricted to one user.
// @Tags User - Tests & Attempts
// @Produce json
// @Param test_id path int true "Test ID"
// @Param user_id query int false "User ID to filter attempts"
// @Success 200 {array} dto.TestAttemptSummaryDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format for Test ID or User ID"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/my-attempts [get]
func (c *UserTestController) GetUserTestAttempts(ctx *gin.Context) {
	testID, ok := controller.ParamID(ctx, "test_id", "Test ID")
	if !ok {
		return
	}
	userID, ok := controller.QueryID(ctx, "user_id", "User ID")
	if !ok {
		return
	}
	if userID == nil {
		log.Info().Uint("testID", testID).Msg("GetUserTestAttempts: no user_id given, listing every attempt")
	}

	attempts, err := c.testSubmissionService.GetUserAttemptsForTest(ctx.Request.Context(), testID, userID)
	if err != nil {
		controller.RespondError(ctx, "User GetUserTestAttempts", "Failed to retrieve user attempts for test", err)
		return
	}
	ctx.JSON(http.StatusOK, attempts)
}

// GetSpecificTestAttemptDetails godoc
// @Summary (User) Get details of a specific test attempt
// @Description Retrieve one attempt with its answers, score, rank and proctoring summary.
// @Tags User - Tests & Attempts
// @Produce json
// @Param attempt_id path int true "Test Attempt ID"
// @Success 200 {object} dto.TestAttemptDetailDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid Test Attempt ID format"
// @Failure 404 {object} dto.ErrorResponse "Test Attempt not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /test-attempts/{attempt_id} [get]
func (c *UserTestController) GetSpecificTestAttemptDetails(ctx *gin.Context) {
	attemptID, ok := controller.ParamID(ctx, "attempt_id", "Test Attempt ID")
	if !ok {
		return
	}
	attemptDetails, err := c.testSubmissionService.GetTestAttemptDetails(ctx.Request.Context(), attemptID)
	if err != nil {
		controller.RespondError(ctx, "User GetSpecificTestAttemptDetails", "Failed to retrieve test attempt", err)
		return
	}
	ctx.JSON(http.StatusOK, attemptDetails)
}
