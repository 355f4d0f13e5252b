package jobinfra

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Abraxas-365/ascent/advisory/job"
	"github.com/Abraxas-365/ascent/pkg/logx"
	"github.com/go-redis/redis/v8"
)

// RedisRecommendationCache holds ranked match results between
// identical requests. Misses and decode failures just bypass the
// cache; they are never surfaced to the caller.
type RedisRecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRecommendationCache(client *redis.Client, ttl time.Duration) *RedisRecommendationCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisRecommendationCache{client: client, ttl: ttl}
}

func (c *RedisRecommendationCache) Get(ctx context.Context, key string) ([]job.MatchResult, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logx.Warnf("recommendation cache read failed: %v", err)
		}
		return nil, false
	}

	var results []job.MatchResult
	if err := json.Unmarshal(data, &results); err != nil {
		logx.Warnf("recommendation cache decode failed: %v", err)
		return nil, false
	}
	return results, true
}

func (c *RedisRecommendationCache) Set(ctx context.Context, key string, results []job.MatchResult) {
	data, err := json.Marshal(results)
	if err != nil {
		logx.Warnf("recommendation cache encode failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logx.Warnf("recommendation cache write failed: %v", err)
	}
}
