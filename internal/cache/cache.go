package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"usersadmin/internal/logging"
)

// Client is a fail-safe Redis cache: an unreachable server behaves like an
// empty cache. A nil *Client is valid and caches nothing.
type Client struct {
	rdb *redis.Client
}

// New creates a cache client for the given Redis server.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// GetJSON decodes the cached value for key into dst and reports a hit.
func (c *Client) GetJSON(ctx context.Context, key string, dst any) bool {
	if c == nil || c.rdb == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logging.FromContext(ctx).WithError(err).WithField("key", key).Debug("cache read skipped")
		}
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// SetJSON stores v under key for ttl. Errors are dropped.
func (c *Client) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil || c.rdb == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, payload, ttl).Err(); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("key", key).Debug("cache write skipped")
	}
}

// Delete removes keys. Errors are dropped.
func (c *Client) Delete(ctx context.Context, keys ...string) {
	if c == nil || c.rdb == nil || len(keys) == 0 {
		return
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		logging.FromContext(ctx).WithError(err).WithField("keys", keys).Debug("cache delete skipped")
	}
}

// Ping reports whether Redis answers.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
