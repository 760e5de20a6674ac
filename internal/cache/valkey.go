package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const statsKey = "sems:stats"

// ValkeyClient caches the dashboard stats payload. Every user lands on the
// dashboard, so the aggregate snapshot is the one read worth caching; any
// store mutation invalidates it.
type ValkeyClient struct {
	client   *redis.Client
	statsTTL time.Duration
}

type Config struct {
	Addr     string
	Password string
	StatsTTL time.Duration
}

func NewValkeyClient(cfg Config) (*ValkeyClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Valkey: %w", err)
	}

	ttl := cfg.StatsTTL
	if ttl <= 0 {
		ttl = 15 * time.Second
	}

	return &ValkeyClient{client: rdb, statsTTL: ttl}, nil
}

// GetStatsRaw returns the cached stats JSON, or an error on a miss. Raw
// bytes are kept to skip an unmarshal/marshal round trip on the hot path.
func (v *ValkeyClient) GetStatsRaw(ctx context.Context) ([]byte, error) {
	data, err := v.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("stats not cached")
		}
		return nil, fmt.Errorf("cache lookup error: %w", err)
	}
	return data, nil
}

// SetStats stores the stats payload with the configured TTL. Best-effort.
func (v *ValkeyClient) SetStats(ctx context.Context, stats any) {
	data, err := json.Marshal(stats)
	if err != nil {
		slog.Error("Failed to marshal stats for cache", "error", err)
		return
	}
	if err := v.client.Set(ctx, statsKey, data, v.statsTTL).Err(); err != nil {
		slog.Error("Failed to cache stats", "error", err)
	}
}

// InvalidateStats drops the cached stats after a mutation. Best-effort.
func (v *ValkeyClient) InvalidateStats(ctx context.Context) {
	if err := v.client.Del(ctx, statsKey).Err(); err != nil {
		slog.Error("Failed to invalidate stats cache", "error", err)
	}
}

func (v *ValkeyClient) Close() error {
	return v.client.Close()
}
