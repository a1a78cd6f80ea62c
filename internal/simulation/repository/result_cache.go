package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/JoshuaJairaj/GreenCart-Logistics/internal/simulation/domain"
	"github.com/redis/go-redis/v9"
)

const (
	resultKeyPrefix      = "sim:result:"          // Cached result JSON: sim:result:{id}
	recentListKey        = "sim:recent"           // List of recent result IDs, newest first
	completedRunsChannel = "sim:events:completed" // Pub/Sub channel for finished runs
	resultTTL            = 7 * 24 * time.Hour     // TTL for cached results (7 days)
)

// ResultCache keeps recently computed simulation results in Redis so the
// dashboard's history panel avoids hitting Postgres for every refresh, and
// broadcasts completed runs over Pub/Sub.
type ResultCache struct {
	client    *redis.Client
	recentCap int64
}

// NewResultCache creates a new ResultCache. recentCap bounds the recent-id list.
func NewResultCache(client *redis.Client, recentCap int) *ResultCache {
	return &ResultCache{client: client, recentCap: int64(recentCap)}
}

// Cache stores one result, pushes its id onto the recent list and trims
// the list to its cap. All writes go through one pipeline.
func (c *ResultCache) Cache(ctx context.Context, result *domain.SimulationResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, c.resultKey(result.ID), data, resultTTL)
	pipe.LPush(ctx, recentListKey, result.ID)
	pipe.LTrim(ctx, recentListKey, 0, c.recentCap-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to cache result: %w", err)
	}

	c.client.Publish(ctx, completedRunsChannel, data)

	return nil
}

// Get retrieves a cached result by id.
func (c *ResultCache) Get(ctx context.Context, id string) (*domain.SimulationResult, error) {
	data, err := c.client.Get(ctx, c.resultKey(id)).Result()
	if err == redis.Nil {
		return nil, domain.ErrResultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached result: %w", err)
	}

	var result domain.SimulationResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached result: %w", err)
	}

	return &result, nil
}

// RecentIDs returns up to n recent result ids, newest first.
func (c *ResultCache) RecentIDs(ctx context.Context, n int) ([]string, error) {
	ids, err := c.client.LRange(ctx, recentListKey, 0, int64(n)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent results: %w", err)
	}

	return ids, nil
}

// Trim shrinks the recent list to the configured cap. Used by the
// retention job after the cap changes.
func (c *ResultCache) Trim(ctx context.Context) error {
	if err := c.client.LTrim(ctx, recentListKey, 0, c.recentCap-1).Err(); err != nil {
		return fmt.Errorf("failed to trim recent results: %w", err)
	}

	return nil
}

func (c *ResultCache) resultKey(id string) string {
	return fmt.Sprintf("%s%s", resultKeyPrefix, id)
}
