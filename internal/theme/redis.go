package theme

import (
	"context"
	"errors"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// RedisStore keeps each owner's preferences in a hash.
type RedisStore struct {
	client *backend.Client
	prefix string
}

func NewRedis(address, password string, db int) *RedisStore {
	return NewRedisFromClient(backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	}))
}

func NewRedisFromClient(client *backend.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "portfolio:prefs:"}
}

func (s *RedisStore) key(owner string) string {
	return s.prefix + owner
}

// Ping checks connectivity so a bad address fails at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, owner, key string) (string, error) {
	v, err := s.client.HGet(ctx, s.key(owner), key).Result()
	if errors.Is(err, backend.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get from redis: %w", err)
	}
	return v, nil
}

func (s *RedisStore) Set(ctx context.Context, owner, key, value string) error {
	if err := s.client.HSet(ctx, s.key(owner), key, value).Err(); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
