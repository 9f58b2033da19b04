// Package cache keeps serialized catalog problems in Redis so repeated
// reads of the same problem skip the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/YusovID/pangea-backend/internal/config"
	"github.com/YusovID/pangea-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const problemKeyPrefix = "pangea:problem:"

// ProblemCache is a read-through store for catalog problems.
// Get returns (nil, nil) on a miss.
type ProblemCache interface {
	Get(ctx context.Context, problemNum string) (*domain.Problem, error)
	Set(ctx context.Context, p *domain.Problem) error
	Delete(ctx context.Context, problemNum string) error
}

type RedisProblemCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New returns a Redis backed cache, or a no-op cache when cfg.Addr is empty.
func New(ctx context.Context, cfg config.Redis) (ProblemCache, error) {
	if cfg.Addr == "" {
		return Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return NewRedisProblemCache(client, cfg.TTL), nil
}

func NewRedisProblemCache(client *redis.Client, ttl time.Duration) *RedisProblemCache {
	return &RedisProblemCache{client: client, ttl: ttl}
}

func (c *RedisProblemCache) Get(ctx context.Context, problemNum string) (*domain.Problem, error) {
	raw, err := c.client.Get(ctx, problemKeyPrefix+problemNum).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get cached problem: %w", err)
	}

	var p domain.Problem
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to decode cached problem: %w", err)
	}

	return &p, nil
}

func (c *RedisProblemCache) Set(ctx context.Context, p *domain.Problem) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode problem: %w", err)
	}

	if err := c.client.Set(ctx, problemKeyPrefix+p.ProblemNum, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache problem: %w", err)
	}

	return nil
}

func (c *RedisProblemCache) Delete(ctx context.Context, problemNum string) error {
	if err := c.client.Del(ctx, problemKeyPrefix+problemNum).Err(); err != nil {
		return fmt.Errorf("failed to evict problem: %w", err)
	}

	return nil
}

func (c *RedisProblemCache) Close() error {
	return c.client.Close()
}

// Noop never stores anything.
type Noop struct{}

func (Noop) Get(context.Context, string) (*domain.Problem, error) { return nil, nil }
func (Noop) Set(context.Context, *domain.Problem) error           { return nil }
func (Noop) Delete(context.Context, string) error                 { return nil }
