package snapshot

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
	redisclient "github.com/KirkDiggler/heroquest-tracker/internal/redis"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a Repository storing the record as a plain
// string value without expiry
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Load reads the record stored under the key
func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	data, err := r.client.Get(ctx, input.Key).Bytes()
	if err != nil {
		if err == redis.Nil {
			slog.DebugContext(ctx, "no stored hero state", "key", input.Key)
			return emptyOutput(), nil
		}
		return nil, errors.Wrapf(err, "failed to get hero state from Redis")
	}

	state, err := decodeRoster(input.Key, data)
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "loaded hero state",
		"key", input.Key,
		"hero_count", len(state.Heroes))

	return &LoadOutput{State: state, Found: true}, nil
}

// Save replaces the record stored under the key
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	data, err := encodeRoster(input.State)
	if err != nil {
		return nil, err
	}

	if err := r.client.Set(ctx, input.Key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store hero state in Redis")
	}

	return &SaveOutput{Bytes: len(data)}, nil
}
