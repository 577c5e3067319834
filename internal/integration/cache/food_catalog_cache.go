// Package cache implements read-through caches in front of repositories.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/nutritrack/backend/internal/application/adapter"
	"github.com/nutritrack/backend/internal/domain/entity"
)

const (
	foodKeyPrefix           = "nutritrack:food:"
	foodGenerationKeyPrefix = "nutritrack:food-gen:"
)

// errStaleLoad marks a load that raced with an invalidation.
var errStaleLoad = errors.New("food changed while loading")

// cachedFood is the redis representation of a catalog food.
type cachedFood struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Nutrients entity.Nutrients `json:"nutrients"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// FoodCatalogCache serves food lookups from redis and falls back to the wrapped catalog.
// Redis failures are logged and never fail a lookup.
type FoodCatalogCache struct {
	next   adapter.FoodCatalog
	client *redis.Client
	ttl    time.Duration
}

// NewFoodCatalogCache creates a new FoodCatalogCache instance.
func NewFoodCatalogCache(next adapter.FoodCatalog, client *redis.Client, ttl time.Duration) *FoodCatalogCache {
	return &FoodCatalogCache{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

func foodKey(id uuid.UUID) string {
	return foodKeyPrefix + id.String()
}

func foodGenerationKey(id uuid.UUID) string {
	return foodGenerationKeyPrefix + id.String()
}

// FindByID returns the cached food or loads it from the wrapped catalog and caches it.
// A load is only written back when no invalidation happened since it started.
func (c *FoodCatalogCache) FindByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	if food, ok := c.get(ctx, id); ok {
		return food, nil
	}

	generation, genErr := c.generation(ctx, id)

	food, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if genErr == nil {
		c.set(ctx, food, generation)
	}
	return food, nil
}

// Invalidate drops the cached entry of a food and fences off loads that started before it.
func (c *FoodCatalogCache) Invalidate(ctx context.Context, id uuid.UUID) {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, foodGenerationKey(id))
		pipe.Del(ctx, foodKey(id))
		return nil
	})
	if err != nil {
		slog.WarnContext(ctx, "food cache invalidation failed", "food_id", id, "error", err)
	}
}

func (c *FoodCatalogCache) generation(ctx context.Context, id uuid.UUID) (int64, error) {
	generation, err := c.client.Get(ctx, foodGenerationKey(id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "food cache generation read failed", "food_id", id, "error", err)
		return 0, err
	}
	return generation, nil
}

func (c *FoodCatalogCache) get(ctx context.Context, id uuid.UUID) (*entity.Food, bool) {
	raw, err := c.client.Get(ctx, foodKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.WarnContext(ctx, "food cache read failed", "food_id", id, "error", err)
		}
		return nil, false
	}

	var cached cachedFood
	if err := json.Unmarshal(raw, &cached); err != nil {
		slog.WarnContext(ctx, "food cache entry is corrupt", "food_id", id, "error", err)
		return nil, false
	}

	return &entity.Food{
		ID:        cached.ID,
		Name:      cached.Name,
		Nutrients: cached.Nutrients,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}, true
}

func (c *FoodCatalogCache) set(ctx context.Context, food *entity.Food, generation int64) {
	raw, err := json.Marshal(cachedFood{
		ID:        food.ID,
		Name:      food.Name,
		Nutrients: food.Nutrients,
		CreatedAt: food.CreatedAt,
		UpdatedAt: food.UpdatedAt,
	})
	if err != nil {
		slog.WarnContext(ctx, "food cache encode failed", "food_id", food.ID, "error", err)
		return
	}

	genKey := foodGenerationKey(food.ID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleLoad
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, foodKey(food.ID), raw, c.ttl)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleLoad), errors.Is(err, redis.TxFailedErr):
		slog.DebugContext(ctx, "skipped caching a food invalidated during load", "food_id", food.ID)
	default:
		slog.WarnContext(ctx, "food cache write failed", "food_id", food.ID, "error", err)
	}
}
