package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"celebrity-booking/internal/data/entity"

	"github.com/redis/go-redis/v9"
)

const platformKey = "platform:settings"

type SettingsCache interface {
	Get(ctx context.Context) (*entity.Platform, error)
	Set(ctx context.Context, p *entity.Platform) error
	// Fill stores p only when no entry exists, so a reader holding an old
	// row cannot overwrite settings written by a concurrent update.
	Fill(ctx context.Context, p *entity.Platform) error
	Invalidate(ctx context.Context) error
}

type settingsCache struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewSettingsCache(rdb redis.Cmdable, ttl time.Duration) SettingsCache {
	return &settingsCache{rdb: rdb, ttl: ttl}
}

// Get returns nil, nil on a cache miss.
func (c *settingsCache) Get(ctx context.Context) (*entity.Platform, error) {
	raw, err := c.rdb.Get(ctx, platformKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get platform cache: %w", err)
	}

	var p entity.Platform
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode platform cache: %w", err)
	}
	return &p, nil
}

func (c *settingsCache) Set(ctx context.Context, p *entity.Platform) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode platform cache: %w", err)
	}
	if err := c.rdb.Set(ctx, platformKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set platform cache: %w", err)
	}
	return nil
}

func (c *settingsCache) Fill(ctx context.Context, p *entity.Platform) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode platform cache: %w", err)
	}
	if err := c.rdb.SetNX(ctx, platformKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("fill platform cache: %w", err)
	}
	return nil
}

func (c *settingsCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, platformKey).Err(); err != nil {
		return fmt.Errorf("invalidate platform cache: %w", err)
	}
	return nil
}
