package selection

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore хранилище выборок в Redis с TTL на ключ сессии
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore создает хранилище выборок поверх Redis
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func selectionKey(sessionID string) string {
	return "teeservice:selections:" + sessionID
}

// Load загружает набор сессии из Redis
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*Set, error) {
	data, err := s.client.Get(ctx, selectionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return NewSet(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - redis get: %v", ErrStoreUnavailable, err)
	}

	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%w: Load - unmarshal set: %v", ErrDecodeSet, err)
	}
	if set.Entries == nil {
		set.Entries = make([]Entry, 0)
	}
	return &set, nil
}

// Save сохраняет набор сессии в Redis, продлевая TTL
func (s *RedisStore) Save(ctx context.Context, sessionID string, set *Set) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("%w: Save - marshal set: %v", ErrEncodeSet, err)
	}

	if err := s.client.Set(ctx, selectionKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - redis set: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Clear удаляет набор сессии из Redis
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, selectionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: Clear - redis del: %v", ErrStoreUnavailable, err)
	}
	return nil
}
