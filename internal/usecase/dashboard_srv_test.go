package usecase

import (
	"context"
	"testing"
	"time"

	"umrah-booking/internal/data/entity"
	"umrah-booking/internal/data/repository"
	"umrah-booking/pkg/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func TestDashboardStatsAreCached(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	dash := &fakeDashboardRepo{stats: entity.DashboardStats{Trips: 7, ConfirmedRevenue: 12500}}
	svc := NewDashboardService(&repository.Repository{Dashboard: dash}, cache.NewRedis(rdb, "test:"), time.Minute, zap.NewNop())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		stats, err := svc.Stats(ctx)
		if err != nil {
			t.Fatalf("Stats: %v", err)
		}
		if stats.Trips != 7 || stats.ConfirmedRevenue != 12500 {
			t.Fatalf("unexpected stats %+v", stats)
		}
	}
	if dash.calls != 1 {
		t.Fatalf("expected one database read inside the ttl, got %d", dash.calls)
	}

	mr.FastForward(2 * time.Minute)
	if _, err := svc.Stats(ctx); err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if dash.calls != 2 {
		t.Fatalf("expected a fresh read after expiry, got %d", dash.calls)
	}
}

func TestDashboardFallsBackWhenCacheIsDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })
	mr.Close()

	dash := &fakeDashboardRepo{stats: entity.DashboardStats{Users: 3}}
	svc := NewDashboardService(&repository.Repository{Dashboard: dash}, cache.NewRedis(rdb, "test:"), time.Minute, zap.NewNop())

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("cache outage must not fail the request: %v", err)
	}
	if stats.Users != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
