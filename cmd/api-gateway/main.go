package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	internalhandler "github.com/ankei1026/schedai-go/internal/handler"
	internalmiddleware "github.com/ankei1026/schedai-go/internal/middleware"
	"github.com/ankei1026/schedai-go/internal/repository"
	"github.com/ankei1026/schedai-go/internal/service"
	"github.com/ankei1026/schedai-go/pkg/cache"
	"github.com/ankei1026/schedai-go/pkg/config"
	"github.com/ankei1026/schedai-go/pkg/logger"
	corsmiddleware "github.com/ankei1026/schedai-go/pkg/middleware/cors"
	reqidmiddleware "github.com/ankei1026/schedai-go/pkg/middleware/requestid"
)

// @title Scheduling Service API
// @version 0.1.0
// @description Timetable generation, course-load assignment, and schedule conflict checking
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	metricsHandler := internalhandler.NewMetricsHandler(metricsSvc)

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("cache disabled, redis unreachable", "error", err)
		} else {
			defer client.Close() //nolint:errcheck
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cacheRepo != nil)

	scheduleSvc := service.NewScheduleGeneratorService(nil, logr, metricsSvc, cacheSvc, service.ScheduleGeneratorConfig{
		Workers:   cfg.Solver.Workers,
		TimeLimit: cfg.Solver.TimeLimit,
	})
	assignSvc := service.NewLoadAssignerService(nil, logr, metricsSvc, cacheSvc, service.LoadAssignerConfig{
		Workers:   cfg.Solver.Workers,
		TimeLimit: cfg.Solver.TimeLimit,
	})
	conflictSvc := service.NewConflictService(nil, logr, metricsSvc, cacheSvc, service.ConflictConfig{})

	scheduleHandler := internalhandler.NewScheduleHandler(scheduleSvc)
	assignHandler := internalhandler.NewLoadAssignerHandler(assignSvc)
	conflictHandler := internalhandler.NewConflictHandler(conflictSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	api.POST("/schedule", scheduleHandler.Solve)
	api.POST("/assign-courses", assignHandler.Assign)
	api.POST("/check-schedule-conflict", conflictHandler.Check)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
