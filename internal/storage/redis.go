package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions as JSON values with a TTL, so abandoned
// dialogues expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func sessionKey(conversationID int64) string {
	return fmt.Sprintf("conversation:%d", conversationID)
}

func (s *RedisStore) Get(ctx context.Context, conversationID int64) (*Session, error) {
	value, err := s.client.Get(ctx, sessionKey(conversationID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var session Session
	if err := json.Unmarshal([]byte(value), &session); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &session, nil
}

func (s *RedisStore) Set(ctx context.Context, conversationID int64, session Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encoding session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(conversationID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, conversationID int64) error {
	if err := s.client.Del(ctx, sessionKey(conversationID)).Err(); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}
