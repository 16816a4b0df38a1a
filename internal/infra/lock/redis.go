package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker распределённая блокировка
// Используется генератором слотов, чтобы конкурентные запуски по одному
// шаблону не работали одновременно
type Locker interface {
	Lock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// RedisLock блокировка на основе Redis SETNX
type RedisLock struct {
	client *redis.Client
}

// NewRedisLock создает блокировку, проверяя соединение с Redis
func NewRedisLock(addr, password string, db int) (*RedisLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("lock: failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisLock{client: client}, nil
}

// Lock пытается захватить блокировку; false - блокировка уже занята
func (r *RedisLock) Lock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, "lock:"+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("lock: failed to acquire %q: %w", key, err)
	}
	return ok, nil
}

// Unlock освобождает блокировку
func (r *RedisLock) Unlock(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, "lock:"+key).Err(); err != nil {
		return fmt.Errorf("lock: failed to release %q: %w", key, err)
	}
	return nil
}

// Close закрывает соединение с Redis
func (r *RedisLock) Close() error {
	return r.client.Close()
}
