package usecase

import (
	"context"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/cache"

	"go.uber.org/zap"
)

const dashboardCacheKey = "dashboard:stats"

type DashboardService interface {
	Stats(ctx context.Context) (*entity.DashboardStats, error)
}

type dashboardService struct {
	repo  *repository.Repository
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

func NewDashboardService(repo *repository.Repository, c cache.Cache, ttl time.Duration, log *zap.Logger) DashboardService {
	return &dashboardService{
		repo:  repo,
		cache: c,
		ttl:   ttl,
		log:   log.With(zap.String("service", "dashboard")),
	}
}

// Stats serves counters from the cache for a fixed TTL. Cache failures fall back to the database.
func (s *dashboardService) Stats(ctx context.Context) (*entity.DashboardStats, error) {
	var cached entity.DashboardStats
	hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached)
	if err != nil {
		s.log.Warn("Dashboard cache read failed", zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	stats, err := s.repo.Dashboard.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, dashboardCacheKey, stats, s.ttl); err != nil {
		s.log.Warn("Dashboard cache write failed", zap.Error(err))
	}

	return stats, nil
}
