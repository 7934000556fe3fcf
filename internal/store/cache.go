// internal/store/cache.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"fitplan-engine/internal/common/database"
	"fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/common/logger"
	"fitplan-engine/internal/plan"
)

// PlanCache keeps the latest plan per owner and flavor in Redis, so
// the common "show me my current plan" read skips Postgres.
type PlanCache struct {
	redis *database.RedisClient
	ttl   time.Duration
	log   logger.Logger
}

func NewPlanCache(r *database.RedisClient, ttl time.Duration, log logger.Logger) *PlanCache {
	return &PlanCache{
		redis: r,
		ttl:   ttl,
		log:   log.WithFields(map[string]interface{}{"component": "plancache"}),
	}
}

func cacheKey(ownerID string, flavor plan.PlanFlavor) string {
	return fmt.Sprintf("plan:latest:%s:%s", ownerID, flavor)
}

// SetLatest stores a plan as the owner's current one. Failures are
// returned as cache errors for the caller to log and ignore.
func (c *PlanCache) SetLatest(ctx context.Context, ownerID string, stored *StoredPlan) error {
	payload, err := json.Marshal(stored)
	if err != nil {
		return errors.NewCacheFailedError(err)
	}
	if err := c.redis.Set(ctx, cacheKey(ownerID, stored.Flavor), payload, c.ttl); err != nil {
		return errors.NewCacheFailedError(err)
	}
	return nil
}

// GetLatest returns the cached current plan, or (nil, nil) on a miss.
func (c *PlanCache) GetLatest(ctx context.Context, ownerID string, flavor plan.PlanFlavor) (*StoredPlan, error) {
	raw, err := c.redis.Get(ctx, cacheKey(ownerID, flavor))
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewCacheFailedError(err)
	}

	var stored StoredPlan
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		// A corrupt entry behaves like a miss, the store remains the
		// source of truth.
		c.log.Warn("dropping unreadable cache entry", map[string]interface{}{
			"ownerId": ownerID,
			"flavor":  string(flavor),
			"error":   err.Error(),
		})
		_ = c.redis.Delete(ctx, cacheKey(ownerID, flavor))
		return nil, nil
	}
	return &stored, nil
}

// Invalidate drops the cached plan for an owner and flavor.
func (c *PlanCache) Invalidate(ctx context.Context, ownerID string, flavor plan.PlanFlavor) error {
	if err := c.redis.Delete(ctx, cacheKey(ownerID, flavor)); err != nil {
		return errors.NewCacheFailedError(err)
	}
	return nil
}
