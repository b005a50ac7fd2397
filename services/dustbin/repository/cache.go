package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/smartdustbin/internal/pkg/constants"
	"github.com/piresc/smartdustbin/internal/pkg/database"
	"github.com/piresc/smartdustbin/internal/pkg/logger"
	"github.com/piresc/smartdustbin/internal/pkg/models"
	"github.com/piresc/smartdustbin/services/dustbin"
)

const defaultCacheTTL = 30 * time.Second

// CachedRepo decorates a repository with a Redis read cache. Reads fall
// through to the wrapped repository whenever Redis misbehaves.
type CachedRepo struct {
	dustbin.DustbinRepo
	redis *database.RedisClient
	ttl   time.Duration

	// generation is bumped by every invalidation. A read only writes back
	// what it loaded if no invalidation happened in between.
	mu         sync.Mutex
	generation uint64
}

// NewCachedRepository wraps inner with a Redis cache
func NewCachedRepository(inner dustbin.DustbinRepo, redisClient *database.RedisClient, ttl time.Duration) *CachedRepo {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedRepo{
		DustbinRepo: inner,
		redis:       redisClient,
		ttl:         ttl,
	}
}

// ListActive serves the active list from Redis when present
func (r *CachedRepo) ListActive(ctx context.Context) ([]*models.Dustbin, error) {
	var cached []*models.Dustbin
	if r.load(ctx, constants.KeyActiveDustbins, &cached) {
		return cached, nil
	}

	gen := r.currentGeneration()
	dustbins, err := r.DustbinRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	r.store(ctx, gen, constants.KeyActiveDustbins, dustbins)
	return dustbins, nil
}

// GetByID serves a single record from Redis when present
func (r *CachedRepo) GetByID(ctx context.Context, id string) (*models.Dustbin, error) {
	key := fmt.Sprintf(constants.KeyDustbin, id)

	var cached models.Dustbin
	if r.load(ctx, key, &cached) {
		return &cached, nil
	}

	gen := r.currentGeneration()
	d, err := r.DustbinRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, gen, key, d)
	return d, nil
}

// Create inserts through the wrapped repository and drops the list cache
func (r *CachedRepo) Create(ctx context.Context, d *models.Dustbin) error {
	if err := r.DustbinRepo.Create(ctx, d); err != nil {
		return err
	}
	r.invalidate(ctx, constants.KeyActiveDustbins, fmt.Sprintf(constants.KeyDustbin, d.ID))
	return nil
}

// CreateMany inserts through the wrapped repository and drops the list cache
func (r *CachedRepo) CreateMany(ctx context.Context, dustbins []*models.Dustbin) error {
	if err := r.DustbinRepo.CreateMany(ctx, dustbins); err != nil {
		return err
	}
	keys := make([]string, 0, len(dustbins)+1)
	keys = append(keys, constants.KeyActiveDustbins)
	for _, d := range dustbins {
		keys = append(keys, fmt.Sprintf(constants.KeyDustbin, d.ID))
	}
	r.invalidate(ctx, keys...)
	return nil
}

// UpdateFillLevel updates through the wrapped repository and drops the
// cached copies of the record
func (r *CachedRepo) UpdateFillLevel(ctx context.Context, id string, fillPercentage float64, updatedAt time.Time) error {
	if err := r.DustbinRepo.UpdateFillLevel(ctx, id, fillPercentage, updatedAt); err != nil {
		return err
	}
	r.invalidate(ctx, constants.KeyActiveDustbins, fmt.Sprintf(constants.KeyDustbin, id))
	return nil
}

// Warm reloads the active list from the wrapped repository into Redis
func (r *CachedRepo) Warm(ctx context.Context) error {
	gen := r.currentGeneration()
	dustbins, err := r.DustbinRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active dustbins: %w", err)
	}

	data, err := json.Marshal(dustbins)
	if err != nil {
		return fmt.Errorf("failed to marshal active dustbins: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.generation {
		logger.Debug("Skipping cache warm, records changed meanwhile")
		return nil
	}
	if err := r.redis.Set(ctx, constants.KeyActiveDustbins, data, r.ttl); err != nil {
		return fmt.Errorf("failed to cache active dustbins: %w", err)
	}

	logger.Debug("Active dustbin cache warmed", logger.Int("count", len(dustbins)))
	return nil
}

func (r *CachedRepo) load(ctx context.Context, key string, out interface{}) bool {
	data, err := r.redis.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnCtx(ctx, "Cache read failed", logger.String("key", key), logger.Err(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		logger.WarnCtx(ctx, "Discarding unreadable cache entry", logger.String("key", key), logger.Err(err))
		return false
	}
	return true
}

func (r *CachedRepo) currentGeneration() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

// store writes value under key unless an invalidation ran after gen was read
func (r *CachedRepo) store(ctx context.Context, gen uint64, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.generation {
		return
	}
	if err := r.redis.Set(ctx, key, data, r.ttl); err != nil {
		logger.WarnCtx(ctx, "Cache write failed", logger.String("key", key), logger.Err(err))
	}
}

func (r *CachedRepo) invalidate(ctx context.Context, keys ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generation++
	if err := r.redis.Delete(ctx, keys...); err != nil {
		logger.WarnCtx(ctx, "Cache invalidation failed", logger.Err(err))
	}
}
