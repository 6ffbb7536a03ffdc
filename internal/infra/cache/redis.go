package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"staybook/internal/domain/review"
	"staybook/internal/pkg/config"
	"staybook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	cacheName = "rating"
	keyPrefix = "staybook:rating:"
)

type Observer interface {
	ObserveCache(cache, event string)
}

// RatingCache stores rating summaries as JSON under one key per listing, next to
// a per listing generation counter.
type RatingCache struct {
	client   redis.UniversalClient
	ttl      time.Duration
	observer Observer
}

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
}

func NewRatingCache(client redis.UniversalClient, ttl time.Duration, observer Observer) *RatingCache {
	return &RatingCache{client: client, ttl: ttl, observer: observer}
}

func key(listingID uuid.UUID) string {
	return keyPrefix + listingID.String()
}

// generationKey counts invalidations of one listing. It never expires.
func generationKey(listingID uuid.UUID) string {
	return keyPrefix + "gen:" + listingID.String()
}

var errStaleGeneration = errors.New("rating cache generation moved")

func (c *RatingCache) Get(ctx context.Context, listingID uuid.UUID) (shared.CachedSummary, error) {
	vals, err := c.client.MGet(ctx, key(listingID), generationKey(listingID)).Result()
	if err != nil {
		c.observer.ObserveCache(cacheName, "error")
		return shared.CachedSummary{}, err
	}
	var out shared.CachedSummary
	if raw, ok := vals[1].(string); ok {
		if out.Generation, err = strconv.ParseInt(raw, 10, 64); err != nil {
			c.observer.ObserveCache(cacheName, "error")
			return shared.CachedSummary{}, err
		}
	}
	raw, ok := vals[0].(string)
	if !ok {
		c.observer.ObserveCache(cacheName, "miss")
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out.Summary); err != nil {
		// treat a corrupt entry as a miss; the next Set overwrites it
		c.observer.ObserveCache(cacheName, "error")
		out.Summary = review.Summary{}
		return out, nil
	}
	out.Hit = true
	c.observer.ObserveCache(cacheName, "hit")
	return out, nil
}

// Set stores s only while the listing's generation still equals generation. The
// check and the write run under WATCH, so an Invalidate in between drops the write.
func (c *RatingCache) Set(ctx context.Context, listingID uuid.UUID, generation int64, s review.Summary) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	gk := generationKey(listingID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, gk).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key(listingID), b, c.ttl)
			return nil
		})
		return err
	}, gk)
	switch {
	case errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		c.observer.ObserveCache(cacheName, "stale")
		return nil
	case err != nil:
		c.observer.ObserveCache(cacheName, "error")
		return err
	}
	c.observer.ObserveCache(cacheName, "set")
	return nil
}

// Invalidate bumps the generation and drops the entry in one transaction.
func (c *RatingCache) Invalidate(ctx context.Context, listingID uuid.UUID) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(listingID))
		pipe.Del(ctx, key(listingID))
		return nil
	})
	if err != nil {
		c.observer.ObserveCache(cacheName, "error")
		return err
	}
	c.observer.ObserveCache(cacheName, "del")
	return nil
}

func (c *RatingCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
