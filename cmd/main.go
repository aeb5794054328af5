package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/thepit/dojorank/config"
	"github.com/thepit/dojorank/database"
	_ "github.com/thepit/dojorank/docs" // Swagger docs - auto-generated
	adminctrl "github.com/thepit/dojorank/internal/controller/admin"
	eventctrl "github.com/thepit/dojorank/internal/controller/event"
	gradingctrl "github.com/thepit/dojorank/internal/controller/grading"
	"github.com/thepit/dojorank/internal/logger"
	"github.com/thepit/dojorank/internal/model"
	"github.com/thepit/dojorank/internal/report"
	"github.com/thepit/dojorank/internal/repository"
	"github.com/thepit/dojorank/internal/service"
	"github.com/thepit/dojorank/internal/storage"
)

// @title Dojorank Grading API
// @version 1.0
// @description API for rank testing events, grading sheets, and result documents.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewStyleRepository,
			repository.NewRankTestRepository,
			repository.NewEventRepository,
			repository.NewParticipantRepository,
			repository.NewMemberRepository,
			repository.NewMemberDocumentRepository,
		),

		// Document rendering and storage
		fx.Provide(
			func(cfg *config.Config) *report.Generator {
				return report.NewGenerator(cfg.School.Name)
			},
			func(cfg *config.Config) (storage.FileStore, error) {
				return storage.NewFSStore(cfg.Documents.Dir, cfg.Documents.BaseURL)
			},
		),

		// Services layer
		fx.Provide(
			service.NewAdminCurriculumService,
			service.NewMemberService,
			service.NewEventService,
			service.NewSheetService,
			service.NewGradingService,
			service.NewBulkGradingService,
		),

		// API controllers layer
		fx.Provide(
			adminctrl.NewAdminCurriculumController,
			eventctrl.NewEventController,
			gradingctrl.NewGradingController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.DebugMode)

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
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	curriculumCtrl *adminctrl.AdminCurriculumController,
	eventCtrl *eventctrl.EventController,
	gradingCtrl *gradingctrl.GradingController,
) {
	// Rendered result documents are served straight off disk.
	router.Static(cfg.Documents.BaseURL, cfg.Documents.Dir)

	// Admin routes (curriculum management)
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/styles", curriculumCtrl.CreateStyle)
		adminAPIGroup.GET("/styles", curriculumCtrl.ListStyles)
		adminAPIGroup.GET("/styles/:style_id", curriculumCtrl.GetStyle)
		adminAPIGroup.POST("/rank-tests", curriculumCtrl.CreateRankTest)
		adminAPIGroup.GET("/rank-tests/:test_id", curriculumCtrl.GetRankTest)
	}

	apiGroup := router.Group("/api/v1")
	{
		// Members
		apiGroup.POST("/members", eventCtrl.CreateMember)
		apiGroup.GET("/members/:member_id", eventCtrl.GetMember)

		// Testing events and rosters
		apiGroup.POST("/events", eventCtrl.CreateEvent)
		apiGroup.GET("/events", eventCtrl.ListEvents)
		apiGroup.GET("/events/:event_id", eventCtrl.GetEvent)
		apiGroup.POST("/events/:event_id/complete", eventCtrl.CompleteEvent)
		apiGroup.POST("/events/:event_id/participants", eventCtrl.AddParticipant)
		apiGroup.DELETE("/participants/:participant_id", eventCtrl.RemoveParticipant)
		apiGroup.PUT("/participants/:participant_id/status", eventCtrl.SetParticipantStatus)

		// Grading
		apiGroup.GET("/participants/:participant_id/sheet", gradingCtrl.GetSheet)
		apiGroup.POST("/participants/:participant_id/items/:item_id/toggle", gradingCtrl.ToggleItem)
		apiGroup.PUT("/participants/:participant_id/items/:item_id/notes", gradingCtrl.AnnotateItem)
		apiGroup.POST("/participants/:participant_id/save", gradingCtrl.SaveParticipant)
		apiGroup.POST("/events/:event_id/grade", gradingCtrl.GradeEvent)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Grading API server starting on port %s", cfg.Server.Port)
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
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Style{},
		&model.Rank{},
		&model.RankTest{},
		&model.Category{},
		&model.Item{},
		&model.Member{},
		&model.MemberDocument{},
		&model.TestingEvent{},
		&model.Participant{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
