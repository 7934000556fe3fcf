// internal/store/cache_test.go
package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitplan-engine/internal/common/database"
	"fitplan-engine/internal/common/errors"
	"fitplan-engine/internal/common/logger"
	"fitplan-engine/internal/plan"
)

// ==========================================
// Test Fixtures
// ==========================================

func newTestCache(t *testing.T) (*PlanCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })
	return NewPlanCache(client, 10*time.Minute, logger.NewTestLogger(t)), mr
}

func sampleStored() *StoredPlan {
	p := samplePlan()
	return &StoredPlan{
		ID:        "plan-id-1",
		OwnerID:   "user-1",
		Flavor:    p.Flavor,
		Source:    p.Source,
		Plan:      p,
		CreatedAt: p.CreatedAt,
	}
}

// ==========================================
// Cache Tests
// ==========================================

func TestCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetLatest(ctx, "user-1", sampleStored()))

	got, err := cache.GetLatest(ctx, "user-1", plan.FlavorWorkout)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "plan-id-1", got.ID)
	assert.Equal(t, "3-Day Weight Loss Workout Plan", got.Plan.Name)
}

func TestCache_MissReturnsNil(t *testing.T) {
	cache, _ := newTestCache(t)

	got, err := cache.GetLatest(context.Background(), "stranger", plan.FlavorMeal)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_FlavorsAreSeparate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetLatest(ctx, "user-1", sampleStored()))

	got, err := cache.GetLatest(ctx, "user-1", plan.FlavorMeal)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_EntryExpires(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetLatest(ctx, "user-1", sampleStored()))
	mr.FastForward(11 * time.Minute)

	got, err := cache.GetLatest(ctx, "user-1", plan.FlavorWorkout)

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_CorruptEntryBehavesLikeMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	mr.Set(cacheKey("user-1", plan.FlavorWorkout), "{not json")

	got, err := cache.GetLatest(ctx, "user-1", plan.FlavorWorkout)

	require.NoError(t, err)
	assert.Nil(t, got)
	// The bad entry is evicted, not left to fail every read.
	assert.False(t, mr.Exists(cacheKey("user-1", plan.FlavorWorkout)))
}

func TestCache_Invalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetLatest(ctx, "user-1", sampleStored()))
	require.NoError(t, cache.Invalidate(ctx, "user-1", plan.FlavorWorkout))

	got, err := cache.GetLatest(ctx, "user-1", plan.FlavorWorkout)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_ServerDown(t *testing.T) {
	cache, mr := newTestCache(t)
	mr.Close()

	err := cache.SetLatest(context.Background(), "user-1", sampleStored())

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeCacheFailed, errors.CodeOf(err))
}

func TestCache_ReadErrorSurfacesAsCacheFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := NewPlanCache(&database.RedisClient{Client: db}, 10*time.Minute, logger.NewNoOpLogger())

	mock.ExpectGet("plan:latest:user-1:workout").SetErr(fmt.Errorf("connection reset by peer"))

	got, err := cache.GetLatest(context.Background(), "user-1", plan.FlavorWorkout)

	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, errors.ErrCodeCacheFailed, errors.CodeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
