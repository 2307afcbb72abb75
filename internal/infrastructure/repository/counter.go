package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// counterTTL keeps daily counters around long enough for dashboards
// without growing the keyspace forever.
const counterTTL = 40 * 24 * time.Hour

// ViewCounter keeps fast per-day per-path view counters in Redis.
// The Postgres rows stay authoritative; these counters only serve the
// live dashboard numbers.
type ViewCounter struct {
	rdb *redis.Client
}

func NewViewCounter(rdb *redis.Client) *ViewCounter {
	return &ViewCounter{rdb: rdb}
}

func (c *ViewCounter) Increment(ctx context.Context, path string, day time.Time) error {
	key := counterKey(path, day)
	pipe := c.rdb.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, counterTTL)
	_, err := pipe.Exec(ctx)
	return err
}

func (c *ViewCounter) Get(ctx context.Context, path string, day time.Time) (int64, error) {
	val, err := c.rdb.Get(ctx, counterKey(path, day)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	return val, err
}

func counterKey(path string, day time.Time) string {
	return fmt.Sprintf("views:%s:%s", day.Format("2006-01-02"), path)
}
