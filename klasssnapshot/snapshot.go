package klasssnapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sclib/scobject/object"
)

// ErrSnapshotNotFound is returned by Load when key has no snapshot.
var ErrSnapshotNotFound = errors.New("klasssnapshot: snapshot not found")

const keyPrefix = "scobject:snapshot:"

func redisKey(key string) string {
	return fmt.Sprintf("%s%s", keyPrefix, key)
}

// Save writes o's descriptor text (object.Write) to Redis under key,
// overwriting any prior snapshot. It never stores anything that could
// reconstruct o; only its write output.
func Save(ctx context.Context, c *Client, key string, o *object.Object) error {
	var buf bytes.Buffer
	object.Write(o, &buf)

	if err := c.Set(ctx, redisKey(key), buf.Bytes(), 0).Err(); err != nil {
		return fmt.Errorf("klasssnapshot: set: %w", err)
	}

	c.log.Debug("snapshot saved", zap.String("key", key), zap.Int("bytes", buf.Len()))
	return nil
}

// Load returns the descriptor text last saved under key. Returns
// ErrSnapshotNotFound if absent.
func Load(ctx context.Context, c *Client, key string) (string, error) {
	val, err := c.Get(ctx, redisKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSnapshotNotFound
		}
		return "", fmt.Errorf("klasssnapshot: get: %w", err)
	}
	return val, nil
}

// Delete removes the snapshot stored under key, if any. Idempotent.
func Delete(ctx context.Context, c *Client, key string) error {
	if err := c.Del(ctx, redisKey(key)).Err(); err != nil {
		return fmt.Errorf("klasssnapshot: del: %w", err)
	}
	return nil
}
