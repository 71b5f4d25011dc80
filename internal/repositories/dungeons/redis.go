package dungeons

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dungeonworks/roomforge/internal/domain/rooms"
	apperrors "github.com/dungeonworks/roomforge/internal/errors"
)

const dungeonSetKey = "dungeons:all"

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

	return &redisRepository{
		client: cfg.Client,
	}
}

func dungeonKey(id string) string {
	return fmt.Sprintf("dungeon:%s", id)
}

// Create creates a new dungeon
func (r *redisRepository) Create(ctx context.Context, dungeon *rooms.Dungeon) error {
	if dungeon == nil {
		return apperrors.InvalidArgument("dungeon cannot be nil")
	}
	if dungeon.ID == "" {
		return apperrors.InvalidArgument("dungeon ID cannot be empty")
	}

	data, err := json.Marshal(dungeon)
	if err != nil {
		return apperrors.Wrapf(err, "failed to marshal dungeon %s", dungeon.ID)
	}

	set, err := r.client.SetNX(ctx, dungeonKey(dungeon.ID), string(data), 0).Result()
	if err != nil {
		return apperrors.Wrapf(err, "failed to store dungeon %s", dungeon.ID)
	}
	if !set {
		return apperrors.AlreadyExistsf("dungeon with ID %s already exists", dungeon.ID)
	}

	if err := r.client.SAdd(ctx, dungeonSetKey, dungeon.ID).Err(); err != nil {
		return apperrors.Wrapf(err, "failed to index dungeon %s", dungeon.ID)
	}

	return nil
}

// Get retrieves a dungeon by ID
func (r *redisRepository) Get(ctx context.Context, id string) (*rooms.Dungeon, error) {
	data, err := r.client.Get(ctx, dungeonKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, apperrors.NotFoundf("dungeon not found: %s", id)
		}
		return nil, apperrors.Wrapf(err, "failed to get dungeon %s", id)
	}

	var dungeon rooms.Dungeon
	if err := json.Unmarshal(data, &dungeon); err != nil {
		return nil, apperrors.Wrapf(err, "failed to unmarshal dungeon %s", id)
	}

	return &dungeon, nil
}

// Update updates an existing dungeon
func (r *redisRepository) Update(ctx context.Context, dungeon *rooms.Dungeon) error {
	if dungeon == nil {
		return apperrors.InvalidArgument("dungeon cannot be nil")
	}
	if dungeon.ID == "" {
		return apperrors.InvalidArgument("dungeon ID cannot be empty")
	}

	data, err := json.Marshal(dungeon)
	if err != nil {
		return apperrors.Wrapf(err, "failed to marshal dungeon %s", dungeon.ID)
	}

	if err := r.client.Set(ctx, dungeonKey(dungeon.ID), string(data), 0).Err(); err != nil {
		return apperrors.Wrapf(err, "failed to update dungeon %s", dungeon.ID)
	}

	return nil
}

// Delete removes a dungeon
func (r *redisRepository) Delete(ctx context.Context, id string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, dungeonKey(id))
	pipe.SRem(ctx, dungeonSetKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrapf(err, "failed to delete dungeon %s", id)
	}

	return nil
}

// ListAll retrieves all stored dungeons
func (r *redisRepository) ListAll(ctx context.Context) ([]*rooms.Dungeon, error) {
	ids, err := r.client.SMembers(ctx, dungeonSetKey).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list dungeon IDs")
	}

	dungeons := make([]*rooms.Dungeon, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			dungeon, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			dungeons[i] = dungeon
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return dungeons, nil
}
