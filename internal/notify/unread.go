package notify

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const unreadPrefix = "notif:unread:"

// UnreadCache keeps per-user unread counters in Redis so the badge read
// clients poll for stays off the database. All methods are nil-safe and
// best-effort: a cold or absent cache falls back to a DB count.
type UnreadCache struct {
	client *redis.Client
}

// NewUnreadCache connects to redis with short timeouts.
func NewUnreadCache(addr string) *UnreadCache {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &UnreadCache{client: client}
}

// NewUnreadCacheWithClient wraps an existing client (used by tests).
func NewUnreadCacheWithClient(client *redis.Client) *UnreadCache {
	return &UnreadCache{client: client}
}

func key(userID uint) string {
	return unreadPrefix + strconv.FormatUint(uint64(userID), 10)
}

// Incr bumps an existing counter. A missing key stays missing and is
// repopulated from the database on the next read, so a flushed cache
// never undercounts.
func (c *UnreadCache) Incr(ctx context.Context, userID uint) {
	if c == nil || c.client == nil {
		return
	}

	k := key(userID)
	exists, err := c.client.Exists(ctx, k).Result()
	if err != nil || exists == 0 {
		return
	}
	_ = c.client.Incr(ctx, k).Err()
}

func (c *UnreadCache) Set(ctx context.Context, userID uint, n int64) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, key(userID), n, 0).Err()
}

func (c *UnreadCache) Reset(ctx context.Context, userID uint) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, key(userID)).Err()
}

func (c *UnreadCache) Get(ctx context.Context, userID uint) (int64, bool) {
	if c == nil || c.client == nil {
		return 0, false
	}

	val, err := c.client.Get(ctx, key(userID)).Result()
	if err != nil {
		return 0, false
	}

	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Healthy verifies redis connectivity.
func (c *UnreadCache) Healthy(ctx context.Context) bool {
	if c == nil || c.client == nil {
		return false
	}
	return c.client.Ping(ctx).Err() == nil
}
