package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/studytrack/studytrack-api/api/swagger"
	"github.com/studytrack/studytrack-api/internal/handler"
	"github.com/studytrack/studytrack-api/internal/middleware"
	"github.com/studytrack/studytrack-api/internal/repository"
	"github.com/studytrack/studytrack-api/internal/repository/memory"
	"github.com/studytrack/studytrack-api/internal/repository/postgres"
	"github.com/studytrack/studytrack-api/internal/repository/remote"
	"github.com/studytrack/studytrack-api/internal/service"
	"github.com/studytrack/studytrack-api/pkg/cache"
	"github.com/studytrack/studytrack-api/pkg/config"
	"github.com/studytrack/studytrack-api/pkg/database"
	"github.com/studytrack/studytrack-api/pkg/logger"
	corsmiddleware "github.com/studytrack/studytrack-api/pkg/middleware/cors"
	reqidmiddleware "github.com/studytrack/studytrack-api/pkg/middleware/requestid"
)

// @title StudyTrack API
// @version 1.0.0
// @description Course, assignment and grade tracking backend
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

	stores, err := buildStores(cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("storage backend init failed", "driver", cfg.Store.Driver, "error", err)
	}

	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Redis.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching disabled", zap.Error(err))
		} else {
			repo := repository.NewCacheRepository(client, logr)
			cacheSvc = service.NewCacheService(repo, metricsSvc, cfg.Dashboard.CacheTTL, logr)
		}
	}

	courseSvc := service.NewCourseService(stores.Courses, stores.Grades, cacheSvc, logr)
	assignmentSvc := service.NewAssignmentService(stores.Assignments, stores.Courses, cacheSvc, logr)
	gradeSvc := service.NewGradeService(stores.Courses, stores.Assignments, stores.Grades, cacheSvc, cfg.Grades.CacheTTL, logr)
	dashboardSvc := service.NewDashboardService(stores.Courses, stores.Assignments, stores.Grades, cacheSvc, cfg.Dashboard.CacheTTL, logr)
	calendarSvc := service.NewCalendarService(stores.Assignments, stores.Courses, logr)
	exportSvc := service.NewExportService(gradeSvc, logr)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	metricsHandler := handler.NewMetricsHandler(metricsSvc)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	if cfg.Auth.Enabled {
		api.Use(middleware.JWT(service.NewAuthService(cfg.Auth.Secret)))
	}
	handler.RegisterRoutes(api, handler.Handlers{
		Courses:     handler.NewCourseHandler(courseSvc),
		Assignments: handler.NewAssignmentHandler(assignmentSvc),
		Grades:      handler.NewGradeHandler(gradeSvc, exportSvc),
		Dashboard:   handler.NewDashboardHandler(dashboardSvc),
		Calendar:    handler.NewCalendarHandler(calendarSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "store", cfg.Store.Driver)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// buildStores selects the storage backend from configuration. The memory
// backend ships seeded fixtures so the API is usable out of the box.
func buildStores(cfg *config.Config, logr *zap.Logger) (repository.Stores, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverRemote:
		client := remote.NewClient(remote.Config{
			BaseURL: cfg.Store.RecordStore.BaseURL,
			APIKey:  cfg.Store.RecordStore.APIKey,
			Client:  &http.Client{Timeout: cfg.Store.RecordStore.Timeout},
		}, logr)
		return client.Stores(), nil
	case config.StoreDriverPostgres:
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			return repository.Stores{}, err
		}
		return postgres.NewStores(db), nil
	case config.StoreDriverMemory:
		db := memory.NewDB()
		db.Seed(time.Now().UTC())
		return db.Stores(), nil
	default:
		return repository.Stores{}, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
