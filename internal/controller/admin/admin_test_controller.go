package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/aptiprep/internal/controller"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/service"
)

type AdminTestController struct {
	adminTestService service.AdminTestService
}

func NewAdminTestController(adminTestService service.AdminTestService) *AdminTestController {
	return &AdminTestController{adminTestService: adminTestService}
}

// CreateTest godoc
// @Summary (Admin) Create a new test
// @Description Admin creates a test with its ordered questions and answer keys. Total marks are derived from the questions.
// @Tags Admin - Tests
// @Accept json
// @Produce json
// @Param test_data body dto.TestCreateDTO true "Test creation data including all questions"
// @Success 201 {object} dto.TestResponseDTO "Test created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid input data (e.g., duplicate order, key not among options)"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/tests [post]
func (c *AdminTestController) CreateTest(ctx *gin.Context) {
	var req dto.TestCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "Admin CreateTest", err)
		return
	}

	testResp, err := c.adminTestService.CreateTest(ctx.Request.Context(), req)
	if err != nil {
		controller.RespondError(ctx, "Admin CreateTest", "Failed to create test", err)
		return
	}
	ctx.JSON(http.StatusCreated, testResp)
}
