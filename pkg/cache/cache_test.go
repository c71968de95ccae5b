package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type stats struct {
	Trips int `json:"trips"`
}

func newTestCache(t *testing.T) (Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedis(rdb, "test:"), mr
}

func TestRedisCacheRoundTripAndExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	var got stats
	hit, err := c.Get(ctx, "dashboard", &got)
	if err != nil || hit {
		t.Fatalf("expected clean miss, hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "dashboard", stats{Trips: 4}, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !mr.Exists("test:dashboard") {
		t.Fatalf("expected prefixed key in redis")
	}

	hit, err = c.Get(ctx, "dashboard", &got)
	if err != nil || !hit || got.Trips != 4 {
		t.Fatalf("expected hit with trips=4, hit=%v err=%v got=%+v", hit, err, got)
	}

	mr.FastForward(2 * time.Minute)
	hit, err = c.Get(ctx, "dashboard", &got)
	if err != nil || hit {
		t.Fatalf("expected miss after ttl, hit=%v err=%v", hit, err)
	}
}

func TestRedisCacheDelete(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	if err := c.Set(ctx, "a", 1, time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if mr.Exists("test:a") {
		t.Fatalf("expected key to be deleted")
	}
}
