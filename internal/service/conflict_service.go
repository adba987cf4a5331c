package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ankei1026/schedai-go/internal/conflict"
	"github.com/ankei1026/schedai-go/internal/models"
	appErrors "github.com/ankei1026/schedai-go/pkg/errors"
)

// ConflictCheckRequest bundles a candidate schedule record against the
// existing records it must be checked against.
type ConflictCheckRequest struct {
	Candidate models.ScheduleRecord   `json:"candidate" validate:"required"`
	Existing  []models.ScheduleRecord `json:"existing" validate:"dive"`
}

// ConflictConfig governs the cache TTL applied to conflict/vacancy results.
type ConflictConfig struct {
	CacheTTL time.Duration
}

// ConflictService wires the conflict analyzer (C5) behind validation,
// caching, and metrics.
type ConflictService struct {
	validator *validator.Validate
	logger    *zap.Logger
	metrics   *MetricsService
	cache     *CacheService
	cfg       ConflictConfig
}

// NewConflictService wires the conflict analyzer service.
func NewConflictService(validate *validator.Validate, logger *zap.Logger, metrics *MetricsService, cache *CacheService, cfg ConflictConfig) *ConflictService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 2 * time.Minute
	}
	return &ConflictService{validator: validate, logger: logger, metrics: metrics, cache: cache, cfg: cfg}
}

// Check reports whether the candidate schedule record conflicts with any
// existing record, including vacant-slot suggestions when it does.
func (s *ConflictService) Check(ctx context.Context, req ConflictCheckRequest) (models.ConflictReport, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.ConflictReport{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid conflict check payload")
	}

	key, err := cacheKey("conflict", req)
	if err != nil {
		s.logger.Warn("failed to build conflict cache key", zap.Error(err))
	} else {
		var cached models.ConflictReport
		if hit, getErr := s.cache.Get(ctx, key, &cached); getErr == nil && hit {
			return cached, nil
		}
	}

	report, err := conflict.Check(req.Candidate, req.Existing)
	if err != nil {
		return models.ConflictReport{}, appErrors.Wrap(err, appErrors.ErrMalformedTime.Code, appErrors.ErrMalformedTime.Status, "malformed time in schedule record")
	}

	if key != "" {
		if setErr := s.cache.Set(ctx, key, report, s.cfg.CacheTTL); setErr != nil {
			s.logger.Warn("failed to cache conflict result", zap.Error(setErr))
		}
	}

	return report, nil
}
