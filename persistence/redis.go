// persistence/redis.go
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisRoomStore keeps room documents as plain string values under
// "game/<code>". A non-zero TTL makes abandoned rooms expire on their own;
// every save refreshes it.
type RedisRoomStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRoomStore(addr, password string, db int, ttl time.Duration) (*RedisRoomStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisRoomStore{client: client, ttl: ttl}, nil
}

func (s *RedisRoomStore) Load(ctx context.Context, code string) ([]byte, error) {
	data, err := s.client.Get(ctx, roomKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisRoomStore) Save(ctx context.Context, code string, data []byte) error {
	return s.client.Set(ctx, roomKey(code), data, s.ttl).Err()
}

func (s *RedisRoomStore) Close() error {
	return s.client.Close()
}
