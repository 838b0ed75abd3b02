package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberbook/api/internal/config"
	domain "github.com/barberbook/api/internal/domain/appointment"
)

// Availability caches projected slot lists per (barber, date) with a short
// TTL. Every booking write invalidates the day it touches; a cache miss or
// a redis failure just falls through to the database. A nil *Availability
// disables caching entirely.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
}

func NewAvailability(rdb *redis.Client, ttl time.Duration) *Availability {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Availability{rdb: rdb, ttl: ttl}
}

func key(barberID uint, date string) string {
	return fmt.Sprintf("availability:%d:%s", barberID, date)
}

func (c *Availability) Get(ctx context.Context, barberID uint, date string) ([]domain.Slot, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(barberID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []domain.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *Availability) Set(ctx context.Context, barberID uint, date string, slots []domain.Slot) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key(barberID, date), raw, c.ttl).Err(); err != nil {
		log.Printf("cache: set failed: %v", err)
	}
}

func (c *Availability) Invalidate(ctx context.Context, barberID uint, date string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, key(barberID, date)).Err(); err != nil {
		log.Printf("cache: invalidate failed: %v", err)
	}
}
