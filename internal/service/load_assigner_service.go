package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ankei1026/schedai-go/internal/cpsolver"
	"github.com/ankei1026/schedai-go/internal/cpsolver/mipbackend"
	"github.com/ankei1026/schedai-go/internal/loadassign"
	"github.com/ankei1026/schedai-go/internal/models"
	appErrors "github.com/ankei1026/schedai-go/pkg/errors"
)

// LoadAssignerConfig governs solver worker count, per-attempt time budget,
// and cache TTL for course assignments.
type LoadAssignerConfig struct {
	Workers   int
	TimeLimit time.Duration
	CacheTTL  time.Duration
}

// AssignRequest bundles the courses and instructors an assignment run
// balances load across.
type AssignRequest struct {
	Courses     []models.Course     `json:"courses" validate:"required,dive"`
	Instructors []models.Instructor `json:"instructors" validate:"required,dive"`
}

// LoadAssignerService wires the load assigner (C4) behind validation,
// caching, and metrics.
type LoadAssignerService struct {
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	cache     *CacheService
	cfg       LoadAssignerConfig
}

// NewLoadAssignerService wires the load assigner service.
func NewLoadAssignerService(validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cache *CacheService, cfg LoadAssignerConfig) *LoadAssignerService {
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
	return &LoadAssignerService{validator: validate, logger: logger, metrics: metrics, cache: cache, cfg: cfg}
}

// Assign balances courses across instructors within each department.
func (s *LoadAssignerService) Assign(ctx context.Context, req AssignRequest) ([]models.Assignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid assignment payload")
	}

	key, err := cacheKey("assign", req)
	if err != nil {
		s.logger.Warn("failed to build assignment cache key", zap.Error(err))
	} else {
		var cached []models.Assignment
		if hit, getErr := s.cache.Get(ctx, key, &cached); getErr == nil && hit {
			return cached, nil
		}
	}

	backend := mipbackend.New()
	start := time.Now()
	assignments, err := loadassign.Assign(ctx, req.Courses, req.Instructors, backend, cpsolver.SolveOptions{Workers: s.cfg.Workers, TimeLimit: s.cfg.TimeLimit})
	status := "ok"
	if err != nil {
		status = "error"
	}
	if s.metrics != nil {
		s.metrics.ObserveSolverRun("assign", status, time.Since(start))
	}
	if err != nil {
		return nil, err
	}

	if key != "" {
		if setErr := s.cache.Set(ctx, key, assignments, s.cfg.CacheTTL); setErr != nil {
			s.logger.Warn("failed to cache assignment result", zap.Error(setErr))
		}
	}

	return assignments, nil
}
