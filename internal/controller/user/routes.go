package user

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts every user-facing endpoint under api.
func RegisterRoutes(
	api *gin.RouterGroup,
	tests *UserTestController,
	attempts *AttemptController,
	rankings *RankingController,
	sessions *SessionController,
) {
	// Catalog and attempt history
	api.GET("/tests", tests.GetAllTests)
	api.GET("/tests/:test_id", tests.GetTestDetails)
	api.GET("/tests/:test_id/my-attempts", tests.GetUserTestAttempts)
	api.GET("/test-attempts/:attempt_id", tests.GetSpecificTestAttemptDetails)

	// Answer gateway and attempt store
	api.POST("/tests/:test_id/attempts", attempts.CreateAttempt)
	api.PUT("/attempts/:attempt_id/answers/:question_id", attempts.SaveAnswer)
	api.POST("/attempts/:attempt_id/answers/finalize", attempts.FinalizeAnswers)
	api.PATCH("/attempts/:attempt_id", attempts.SubmitAttempt)

	// Ranking, leaderboard and analytics
	api.POST("/ranking", rankings.RankAttempt)
	api.GET("/tests/:test_id/leaderboard", rankings.GetLeaderboard)
	api.POST("/analytics/refresh", rankings.RefreshAnalytics)
	api.GET("/users/:user_id/analytics", rankings.GetUserAnalytics)

	// Hosted sessions
	s := api.Group("/sessions")
	s.POST("", sessions.StartSession)
	s.GET("/:session_id", sessions.GetSession)
	s.DELETE("/:session_id", sessions.CloseSession)
	s.POST("/:session_id/events", sessions.PostEvent)
	s.POST("/:session_id/fullscreen", sessions.ReenterFullscreen)
	s.POST("/:session_id/answers", sessions.SelectOption)
	s.POST("/:session_id/review", sessions.ToggleMarkForReview)
	s.POST("/:session_id/navigate", sessions.Navigate)
	s.POST("/:session_id/submit", sessions.Submit)
	s.POST("/:session_id/submit/retry", sessions.RetrySubmit)
}
