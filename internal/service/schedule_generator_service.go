package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ankei1026/schedai-go/internal/cpsolver"
	"github.com/ankei1026/schedai-go/internal/cpsolver/mipbackend"
	"github.com/ankei1026/schedai-go/internal/models"
	"github.com/ankei1026/schedai-go/internal/precheck"
	"github.com/ankei1026/schedai-go/internal/scheduler"
	appErrors "github.com/ankei1026/schedai-go/pkg/errors"
)

// ScheduleGeneratorConfig governs solver worker count, per-attempt time
// budget, and the cache TTL applied to solved proposals.
type ScheduleGeneratorConfig struct {
	Workers   int
	TimeLimit time.Duration
	CacheTTL  time.Duration
}

// ScheduleGeneratorService wires the pre-checker and timetable solver (C2,
// C3) behind validation, caching, and metrics.
type ScheduleGeneratorService struct {
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	cache     *CacheService
	cfg       ScheduleGeneratorConfig
}

// NewScheduleGeneratorService wires the schedule generator.
func NewScheduleGeneratorService(validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cache *CacheService, cfg ScheduleGeneratorConfig) *ScheduleGeneratorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 8
	}
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = 10 * time.Second
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &ScheduleGeneratorService{validator: validate, logger: logger, metrics: metrics, cache: cache, cfg: cfg}
}

// Generate pre-checks and solves a Configuration into a Timetable.
func (s *ScheduleGeneratorService) Generate(ctx context.Context, cfg models.Configuration) (models.Timetable, error) {
	if err := s.validator.Struct(cfg); err != nil {
		return models.Timetable{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid schedule configuration")
	}

	resolved := cfg.Resolve()

	if reasons := precheck.Check(resolved); len(reasons) > 0 {
		if s.metrics != nil {
			s.metrics.RecordPrecheckRejection("infeasible_configuration")
		}
		return models.Timetable{}, appErrors.Clone(appErrors.ErrValidation, strings.Join(reasons, "; "))
	}

	key, err := cacheKey("schedule", cfg)
	if err != nil {
		s.logger.Warn("failed to build schedule cache key", zap.Error(err))
	} else {
		var cached models.Timetable
		if hit, getErr := s.cache.Get(ctx, key, &cached); getErr == nil && hit {
			return cached, nil
		}
	}

	backend := mipbackend.New()
	start := time.Now()
	timetable, err := scheduler.Solve(ctx, resolved, backend, cpsolver.SolveOptions{Workers: s.cfg.Workers, TimeLimit: s.cfg.TimeLimit})
	status := "ok"
	if err != nil {
		status = "error"
	}
	if s.metrics != nil {
		s.metrics.ObserveSolverRun("schedule", status, time.Since(start))
	}
	if err != nil {
		return models.Timetable{}, err
	}

	if key != "" {
		if setErr := s.cache.Set(ctx, key, timetable, s.cfg.CacheTTL); setErr != nil {
			s.logger.Warn("failed to cache schedule proposal", zap.Error(setErr))
		}
	}

	return timetable, nil
}
