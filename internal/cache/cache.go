package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss возвращается Store.Get, когда ключ отсутствует или истек.
var ErrCacheMiss = errors.New("cache: key not found")

// Store — минимальный контракт key-value хранилища для read-through кеша.
// Значения — непрозрачные байтовые блобы, запись целиком заменяет предыдущую.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// RedisStore — реализация Store поверх Redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("cache: failed to get key %q: %w", key, err)
	}
	return data, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to set key %q: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache: failed to delete keys: %w", err)
	}
	return nil
}

// GetOrCompute — read-through кеш. При попадании compute не вызывается,
// при промахе вызывается ровно один раз, результат сохраняется перед
// возвратом. Одновременные промахи по одному ключу могут вычислить
// значение параллельно (stampede допустим для этой нагрузки).
//
// Ошибка compute возвращается как есть и не кешируется. Ошибки самого
// хранилища не фатальны для чтения: при недоступном Get значение
// вычисляется заново, неудачный Set не мешает вернуть вычисленное.
func GetOrCompute[T any](ctx context.Context, store Store, key string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	if data, err := store.Get(ctx, key); err == nil {
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
		// Нечитаемая запись перезаписывается свежим значением
	}

	value, err := compute(ctx)
	if err != nil {
		return zero, err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return zero, fmt.Errorf("cache: failed to marshal value for key %q: %w", key, err)
	}
	_ = store.Set(ctx, key, encoded, ttl)

	return value, nil
}
