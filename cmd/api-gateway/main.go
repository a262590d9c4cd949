package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/gradepath/gradepath-api/api/swagger"
	"github.com/gradepath/gradepath-api/internal/handler"
	"github.com/gradepath/gradepath-api/internal/middleware"
	"github.com/gradepath/gradepath-api/internal/planner"
	"github.com/gradepath/gradepath-api/internal/repository"
	"github.com/gradepath/gradepath-api/internal/service"
	"github.com/gradepath/gradepath-api/pkg/cache"
	"github.com/gradepath/gradepath-api/pkg/config"
	"github.com/gradepath/gradepath-api/pkg/database"
	"github.com/gradepath/gradepath-api/pkg/logger"
	corsmiddleware "github.com/gradepath/gradepath-api/pkg/middleware/cors"
	reqidmiddleware "github.com/gradepath/gradepath-api/pkg/middleware/requestid"
)

// @title GradePath API
// @version 1.0.0
// @description Academic planning backend: CGPA projection, weekly timetable, task calendar
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if client, err := cache.NewRedis(cfg.Redis); err != nil {
		logr.Warn("redis unavailable, timetable cache disabled", zap.Error(err))
	} else {
		redisClient = client
	}

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	timetableDays := make([]planner.Weekday, 0, len(cfg.Planner.TimetableDays))
	for _, raw := range cfg.Planner.TimetableDays {
		day, err := planner.ParseWeekday(raw)
		if err != nil {
			logr.Sugar().Fatalw("invalid timetable day in config", "day", raw)
		}
		timetableDays = append(timetableDays, day)
	}

	authSvc := service.NewAuthService(userRepo, studentRepo, nil, logr, service.AuthConfig{
		AccessTokenSecret:  cfg.JWT.Secret,
		AccessTokenExpiry:  cfg.JWT.Expiration,
		RefreshTokenExpiry: cfg.JWT.RefreshExpiration,
		Issuer:             "gradepath-api",
	})
	studentSvc := service.NewStudentService(studentRepo, courseRepo, nil, logr)
	scheduleSvc := service.NewScheduleService(courseRepo, cacheRepo, logr, service.ScheduleOptions{
		Days:     timetableDays,
		CacheTTL: cfg.Planner.TimetableTTL,
	})
	progressSvc := service.NewProgressService(logr)
	taskSvc := service.NewTaskService(taskRepo, logr, cfg.Planner.TaskPreviewLimit)
	assistantSvc := service.NewAssistantService(cfg.Assistant.BaseURL, &http.Client{Timeout: cfg.Assistant.Timeout}, logr)
	metricsSvc := service.NewMetricsService()

	authHandler := handler.NewAuthHandler(authSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	progressHandler := handler.NewProgressHandler(progressSvc)
	taskHandler := handler.NewTaskHandler(taskSvc)
	assistantHandler := handler.NewAssistantHandler(assistantSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", middleware.JWT(authSvc), authHandler.Me)

	protected := api.Group("")
	protected.Use(middleware.JWT(authSvc))

	protected.GET("/students/me", studentHandler.GetRecord)
	protected.PUT("/students/me/cgpa", studentHandler.UpdateCGPA)
	protected.GET("/students/me/feedback", studentHandler.ListFeedback)
	protected.POST("/students/me/feedback", studentHandler.SubmitFeedback)

	protected.GET("/schedule", scheduleHandler.Get)
	protected.PUT("/schedule", scheduleHandler.Save)
	protected.GET("/schedule/timetable", scheduleHandler.Timetable)
	protected.GET("/schedule/export", scheduleHandler.Export)

	protected.POST("/progress/projection", progressHandler.Project)

	protected.GET("/tasks", taskHandler.List)
	protected.POST("/tasks", taskHandler.Create)
	protected.POST("/tasks/:id/toggle", taskHandler.Toggle)
	protected.DELETE("/tasks/:id", taskHandler.Delete)
	protected.GET("/calendar", taskHandler.Calendar)

	protected.POST("/assistant/chat", assistantHandler.Chat)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
