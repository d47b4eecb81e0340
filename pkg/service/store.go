package service

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/fabricops/fabcheck/pkg/check"
)

// Redis keys holding the latest run outcome for external pollers.
const (
	keyReport    = "fabcheck:last_report"
	keyVerdict   = "fabcheck:last_verdict"
	keyTimestamp = "fabcheck:last_timestamp"
)

// RedisStore publishes the latest run outcome to Redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store for the given Redis address.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

// Connect tests the connection
func (s *RedisStore) Connect(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Publish stores the rendered report and verdict of a completed run.
func (s *RedisStore) Publish(ctx context.Context, report *check.Report, rendered string) error {
	pipe := s.client.Pipeline()
	pipe.Set(ctx, keyReport, rendered, 0)
	pipe.Set(ctx, keyVerdict, strconv.FormatBool(report.Passed), 0)
	pipe.Set(ctx, keyTimestamp, report.Timestamp.Format(time.RFC3339), 0)
	_, err := pipe.Exec(ctx)
	return err
}
