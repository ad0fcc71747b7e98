package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/logger"
	"github.com/Aquib2609/marketplace-kpi-dashboard/internal/models"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no cached result exists for a metric.
var ErrCacheMiss = errors.New("metric result not cached")

// ResultCacheRepository caches computed metric results in Redis
type ResultCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached results
}

// NewResultCacheRepository creates a new repository instance with the given TTL
func NewResultCacheRepository(client *redis.Client, expiration time.Duration) *ResultCacheRepository {
	return &ResultCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func resultKey(metric string) string {
	return fmt.Sprintf("kpi:result:%s", metric)
}

// GetResult returns the cached result of a metric or ErrCacheMiss
func (r *ResultCacheRepository) GetResult(ctx context.Context, metric string) (*models.ResultSet, error) {
	key := resultKey(metric)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Debugw("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var rs models.ResultSet
	if err := json.Unmarshal(val, &rs); err != nil {
		logger.Log.Warnw("cache entry is corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache hit", "key", key, "rows", len(rs.Rows))
	return &rs, nil
}

// SetResult caches a metric result with expiration
func (r *ResultCacheRepository) SetResult(ctx context.Context, metric string, rs models.ResultSet) error {
	key := resultKey(metric)

	data, err := json.Marshal(rs)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "rows", len(rs.Rows), "error", err)

	return err
}
