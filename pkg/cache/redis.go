package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ophelia-market/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a thin JSON layer over redis. A nil *Cache or a Cache without a
// client behaves as an always-miss cache so the app keeps working without
// redis.
type Cache struct {
	client *redis.Client
}

func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// InitRedis connects and pings. On failure it logs and returns a cache with
// no client rather than an error.
func InitRedis(config utils.RedisConfig, log *zap.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unavailable, continuing without session cache",
			zap.String("addr", config.Addr), zap.Error(err))
		_ = client.Close()
		return New(nil)
	}

	log.Info("Redis connected", zap.String("addr", config.Addr))
	return New(client)
}

func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetJSON returns (true, nil) when key was found and decoded into dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	s, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Del(ctx, key).Err()
}

func (c *Cache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.client.Close()
}
