// Package klasssnapshot persists the text form of an object's write method
// to Redis — a durable "what did this object look like" snapshot, not a
// serialization format. Snapshots are write-only text: nothing in this
// package reconstructs a live *object.Object from one (see SPEC_FULL.md §3
// and its Non-goals).
package klasssnapshot

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Client wraps the Redis client with the dial/timeout defaults this package
// uses, adapted from the teacher's redis.Client.
type Client struct {
	*redis.Client
	log *zap.Logger
}

// NewClient creates a Redis client for snapshot storage.
func NewClient(addr string, db int, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}

	opts := &redis.Options{
		Addr:         addr,
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
	}

	c := &Client{
		Client: redis.NewClient(opts),
		log:    log.Named("klasssnapshot"),
	}

	c.ping(context.Background())
	return c
}

func (c *Client) ping(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := c.Client.Ping(ctx).Err()
	elapsed := time.Since(start)

	if err != nil {
		c.log.Warn("connection failed", zap.Error(err), zap.Duration("ping_rtt", elapsed))
		return
	}
	c.log.Info("connection established", zap.Duration("ping_rtt", elapsed))
}

// Close closes the underlying Redis connection.
func (c *Client) Close() error {
	return c.Client.Close()
}
