package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/aptiprep/internal/controller"
	"github.com/lshigami/aptiprep/internal/dto"
	"github.com/lshigami/aptiprep/internal/ranking"
	"github.com/lshigami/aptiprep/internal/service"
)

type RankingController struct {
	rankingService   service.RankingService
	analyticsService service.AnalyticsService
}

func NewRankingController(rs service.RankingService, as service.AnalyticsService) *RankingController {
	return &RankingController{rankingService: rs, analyticsService: as}
}

// RankAttempt godoc
// @Summary (User) Rank a submitted attempt
// @Description Computes rank and percentile among every submitted attempt of the test and refreshes the all/weekly/monthly leaderboard rows.
// @Tags User - Ranking & Analytics
// @Accept json
// @Produce json
// @Param ranking_request body dto.RankAttemptRequest true "Attempt to rank"
// @Success 200 {object} dto.RankingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Attempt not found"
// @Failure 503 {object} dto.ErrorResponse "Ranking skipped"
// @Router /ranking [post]
func (c *RankingController) RankAttempt(ctx *gin.Context) {
	var req dto.RankAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "RankAttempt", err)
		return
	}
	res, err := c.rankingService.Rank(ctx.Request.Context(), ranking.Request{
		AttemptID: req.AttemptID,
		UserID:    req.UserID,
		TestID:    req.TestID,
	})
	if err != nil {
		controller.RespondError(ctx, "RankAttempt", "Failed to rank attempt", err)
		return
	}
	ctx.JSON(http.StatusOK, dto.RankingResponse{
		Rank:          res.Rank,
		Percentile:    res.Percentile,
		TotalAttempts: res.TotalAttempts,
	})
}

// GetLeaderboard godoc
// @Summary (User) Leaderboard of a test
// @Description Best attempt per user within the period, ordered by score, then time taken, then submission time.
// @Tags User - Ranking & Analytics
// @Produce json
// @Param test_id path int true "Test ID"
// @Param period query string false "all (default), weekly or monthly"
// @Param limit query int false "Maximum number of entries, 0 for all"
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests/{test_id}/leaderboard [get]
func (c *RankingController) GetLeaderboard(ctx *gin.Context) {
	testID, ok := controller.ParamID(ctx, "test_id", "Test ID")
	if !ok {
		return
	}
	var q dto.LeaderboardQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		controller.BindError(ctx, "GetLeaderboard", err)
		return
	}
	period, _ := ranking.ParsePeriod(q.Period)

	board, err := c.rankingService.GetLeaderboard(ctx.Request.Context(), testID, period, q.Limit)
	if err != nil {
		controller.RespondError(ctx, "GetLeaderboard", "Failed to retrieve leaderboard", err)
		return
	}
	ctx.JSON(http.StatusOK, board)
}

// RefreshAnalytics godoc
// @Summary (User) Rebuild a user's analytics
// @Description Recomputes streaks, averages and topic accuracy for the category of the given test.
// @Tags User - Ranking & Analytics
// @Accept json
// @Produce json
// @Param refresh_request body dto.RefreshAnalyticsRequest true "User and test"
// @Success 204 "Refreshed"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Failure 503 {object} dto.ErrorResponse "Computation skipped"
// @Router /analytics/refresh [post]
func (c *RankingController) RefreshAnalytics(ctx *gin.Context) {
	var req dto.RefreshAnalyticsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.BindError(ctx, "RefreshAnalytics", err)
		return
	}
	if err := c.analyticsService.RefreshAnalytics(ctx.Request.Context(), req.UserID, req.TestID); err != nil {
		controller.RespondError(ctx, "RefreshAnalytics", "Failed to refresh analytics", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetUserAnalytics godoc
// @Summary (User) Analytics of a user
// @Description Per-category averages, weak areas, strengths and streaks.
// @Tags User - Ranking & Analytics
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.UserAnalyticsDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid User ID format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/{user_id}/analytics [get]
func (c *RankingController) GetUserAnalytics(ctx *gin.Context) {
	userID, ok := controller.ParamID(ctx, "user_id", "User ID")
	if !ok {
		return
	}
	list, err := c.analyticsService.GetUserAnalytics(ctx.Request.Context(), userID)
	if err != nil {
		controller.RespondError(ctx, "GetUserAnalytics", "Failed to retrieve analytics", err)
		return
	}
	ctx.JSON(http.StatusOK, list)
}
