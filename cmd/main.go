package main

import (
	"context"
	"net/http"
	"time"
	_ "time/tzdata" // user and ranking timezones must resolve in minimal images

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/aptiprep/config"
	"github.com/lshigami/aptiprep/database"
	_ "github.com/lshigami/aptiprep/docs" // Swagger docs
	adminctrl "github.com/lshigami/aptiprep/internal/controller/admin"
	userctrl "github.com/lshigami/aptiprep/internal/controller/user"
	"github.com/lshigami/aptiprep/internal/event"
	"github.com/lshigami/aptiprep/internal/logger"
	"github.com/lshigami/aptiprep/internal/model"
	"github.com/lshigami/aptiprep/internal/repository"
	"github.com/lshigami/aptiprep/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title aptiprep exam engine API
// @version 1.0
// @description Timed aptitude tests with proctoring, server-side scoring, leaderboards and per-user analytics.
// @contact.name API Support
// @contact.url http://example.com/support
// @contact.email support@example.com
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			database.NewRedisClient,
			NewPublisher,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewTestAttemptRepository,
			repository.NewAnswerRepository,
			repository.NewLeaderboardRepository,
			repository.NewAnalyticsRepository,
			repository.NewActivityRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAdminTestService,
			service.NewCatalogService,
			service.NewScoreConverterService,
			service.NewTestSubmissionService,
			service.NewAttemptService,
			service.NewAnalyticsService,
			func(client *redis.Client, cfg *config.Config) service.LeaderboardCache {
				return service.NewLeaderboardCache(client, cfg.Redis.LeaderboardTTL)
			},
			func(
				testRepo repository.TestRepository,
				attemptRepo repository.TestAttemptRepository,
				leaderboardRepo repository.LeaderboardRepository,
				cache service.LeaderboardCache,
				publisher event.Publisher,
				cfg *config.Config,
			) service.RankingService {
				return service.NewRankingService(testRepo, attemptRepo, leaderboardRepo, cache, publisher, cfg.RankingLocation())
			},
			func(
				catalog service.CatalogService,
				attempts service.AttemptService,
				ranker service.RankingService,
				analytics service.AnalyticsService,
				cfg *config.Config,
			) service.SessionHost {
				return service.NewSessionHost(catalog, attempts, ranker, analytics, service.SessionOptions{
					TickInterval:        cfg.Proctoring.TickInterval,
					CameraCheckInterval: cfg.Proctoring.CameraCheckInterval,
					PostSubmitTimeout:   cfg.Proctoring.PostSubmitTimeout,
				})
			},
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
			userctrl.NewAttemptController,
			userctrl.NewRankingController,
			userctrl.NewSessionController,
		),

		// Invokers - executed in order by Fx
		fx.Invoke(ConfigureLogger),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Application stopped with errors")
	}
}

func ConfigureLogger(cfg *config.Config) {
	logger.Configure(cfg.Log.Level, cfg.Log.Pretty)
}

// NewPublisher connects the event publisher and closes it on shutdown.
func NewPublisher(lc fx.Lifecycle, cfg *config.Config) (event.Publisher, error) {
	publisher, err := event.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	redisClient *redis.Client,
	host service.SessionHost,
	adminTestCtrl *adminctrl.AdminTestController,
	userTestCtrl *userctrl.UserTestController,
	attemptCtrl *userctrl.AttemptController,
	rankingCtrl *userctrl.RankingController,
	sessionCtrl *userctrl.SessionController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		testsAdminGroup := adminAPIGroup.Group("/tests")
		testsAdminGroup.POST("", adminTestCtrl.CreateTest)
	}

	userctrl.RegisterRoutes(router.Group("/api/v1"), userTestCtrl, attemptCtrl, rankingCtrl, sessionCtrl)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("aptiprep server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			err := server.Shutdown(shutdownCtx)
			host.CloseAll()
			if redisClient != nil {
				if cerr := redisClient.Close(); cerr != nil {
					log.Warn().Err(cerr).Msg("Failed to close Redis client")
				}
			}
			return err
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(model.AllModels()...); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
