package holders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/mothlight/delve/internal/effects"
)

const holderIndexKey = "effects:holders"

func holderKey(holderID string) string {
	return fmt.Sprintf("effects:holder:%s", holderID)
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client redis.UniversalClient
}

// redisRepository implements Repository using Redis
type redisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a new Redis-backed repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil || cfg.Client == nil {
		panic("RedisRepoConfig and Client are required")
	}
	return &redisRepository{client: cfg.Client}
}

func (r *redisRepository) Get(ctx context.Context, holderID string) ([]*effects.Effect, error) {
	data, err := r.client.Get(ctx, holderKey(holderID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []*effects.Effect{}, nil
		}
		return nil, fmt.Errorf("failed to get effects for holder %s: %w", holderID, err)
	}

	var list []*effects.Effect
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal effects for holder %s: %w", holderID, err)
	}
	return list, nil
}

func (r *redisRepository) Set(ctx context.Context, holderID string, active []*effects.Effect) error {
	if active == nil {
		active = []*effects.Effect{}
	}
	data, err := json.Marshal(active)
	if err != nil {
		return fmt.Errorf("failed to marshal effects for holder %s: %w", holderID, err)
	}

	if err := r.client.Set(ctx, holderKey(holderID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store effects for holder %s: %w", holderID, err)
	}
	if err := r.client.SAdd(ctx, holderIndexKey, holderID).Err(); err != nil {
		return fmt.Errorf("failed to index holder %s: %w", holderID, err)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, holderID string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, holderKey(holderID))
	pipe.SRem(ctx, holderIndexKey, holderID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete effects for holder %s: %w", holderID, err)
	}
	return nil
}

func (r *redisRepository) GetAll(ctx context.Context) (map[string][]*effects.Effect, error) {
	holderIDs, err := r.client.SMembers(ctx, holderIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list holders: %w", err)
	}

	lists := make([][]*effects.Effect, len(holderIDs))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range holderIDs {
		i, id := i, id
		g.Go(func() error {
			list, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			lists[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string][]*effects.Effect, len(holderIDs))
	for i, id := range holderIDs {
		out[id] = lists[i]
	}
	return out, nil
}
