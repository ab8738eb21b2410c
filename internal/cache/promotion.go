package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/thepKz/gender-care-sub009/internal/models"
)

const promotionTTL = 5 * time.Minute

// PromotionCache is a redis-backed read cache for promotion lookups by code.
type PromotionCache struct {
	client *redis.Client
}

func NewPromotionCache(addr string) *PromotionCache {
	return &PromotionCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func key(code string) string {
	return fmt.Sprintf("promotion:code:%s", code)
}

func (c *PromotionCache) Get(ctx context.Context, code string) (*models.Promotion, error) {
	raw, err := c.client.Get(ctx, key(code)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var promo models.Promotion
	if err := json.Unmarshal([]byte(raw), &promo); err != nil {
		return nil, err
	}
	return &promo, nil
}

func (c *PromotionCache) Set(ctx context.Context, promo *models.Promotion) error {
	data, err := json.Marshal(promo)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key(promo.Code), data, promotionTTL).Err()
}

func (c *PromotionCache) Invalidate(ctx context.Context, code string) error {
	return c.client.Del(ctx, key(code)).Err()
}

func (c *PromotionCache) Close() error {
	return c.client.Close()
}
