package notify_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/rsetcampus/atspam-api/internal/notify"
)

func testCache(t *testing.T) (*notify.UnreadCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return notify.NewUnreadCacheWithClient(client), mr
}

func TestUnreadCacheSetGetReset(t *testing.T) {
	cache, _ := testCache(t)
	ctx := context.Background()

	if _, ok := cache.Get(ctx, 1); ok {
		t.Error("cold cache returned a value")
	}

	cache.Set(ctx, 1, 4)
	if n, ok := cache.Get(ctx, 1); !ok || n != 4 {
		t.Errorf("Get = %d, %v, want 4, true", n, ok)
	}

	cache.Reset(ctx, 1)
	if _, ok := cache.Get(ctx, 1); ok {
		t.Error("value survived Reset")
	}
}

func TestUnreadCacheIncrOnlyBumpsExistingKeys(t *testing.T) {
	cache, _ := testCache(t)
	ctx := context.Background()

	// A missing key must stay missing so the next read goes to the DB
	// for the authoritative count.
	cache.Incr(ctx, 2)
	if _, ok := cache.Get(ctx, 2); ok {
		t.Error("Incr created a key from nothing")
	}

	cache.Set(ctx, 2, 1)
	cache.Incr(ctx, 2)
	cache.Incr(ctx, 2)
	if n, ok := cache.Get(ctx, 2); !ok || n != 3 {
		t.Errorf("Get = %d, %v, want 3, true", n, ok)
	}
}

func TestUnreadCacheSurvivesRedisLoss(t *testing.T) {
	cache, mr := testCache(t)
	ctx := context.Background()

	cache.Set(ctx, 3, 5)
	mr.Close()

	// Every operation degrades to a miss instead of failing.
	if _, ok := cache.Get(ctx, 3); ok {
		t.Error("Get succeeded against a dead redis")
	}
	cache.Incr(ctx, 3)
	cache.Set(ctx, 3, 9)
	cache.Reset(ctx, 3)

	if cache.Healthy(ctx) {
		t.Error("Healthy = true against a dead redis")
	}
}

func TestUnreadCacheNilReceiver(t *testing.T) {
	var cache *notify.UnreadCache
	ctx := context.Background()

	cache.Incr(ctx, 1)
	cache.Set(ctx, 1, 2)
	cache.Reset(ctx, 1)
	if _, ok := cache.Get(ctx, 1); ok {
		t.Error("nil cache returned a value")
	}
	if cache.Healthy(ctx) {
		t.Error("nil cache reported healthy")
	}
}
