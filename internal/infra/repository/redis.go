package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"vittasaathi/internal/domain/interfaces/repository"
)

// RedisRepository stores each entity as one JSON value keyed by
// collection:conversation_id. A TTL of zero means no expiry.
type RedisRepository[T any] struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepository[T any](client *redis.Client, ttl time.Duration) *RedisRepository[T] {
	return &RedisRepository[T]{client: client, ttl: ttl}
}

func key(collectionName, conversationID string) string {
	return fmt.Sprintf("%s:%s", collectionName, conversationID)
}

func (r *RedisRepository[T]) set(ctx context.Context, collectionName, conversationID string, entity T) (T, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return entity, err
	}
	err = r.client.Set(ctx, key(collectionName, conversationID), data, r.ttl).Err()
	return entity, err
}

func (r *RedisRepository[T]) Create(ctx context.Context, collectionName string, entity T) (T, error) {
	id, err := conversationIDOf(entity)
	if err != nil {
		return entity, err
	}
	return r.set(ctx, collectionName, id, entity)
}

func (r *RedisRepository[T]) Update(ctx context.Context, collectionName string, conversationID string, entity T) (T, error) {
	return r.set(ctx, collectionName, conversationID, entity)
}

func (r *RedisRepository[T]) Delete(ctx context.Context, collectionName string, conversationID string) error {
	return r.client.Del(ctx, key(collectionName, conversationID)).Err()
}

func (r *RedisRepository[T]) FindByConversationID(ctx context.Context, collectionName string, conversationID string) (T, error) {
	var entity T
	data, err := r.client.Get(ctx, key(collectionName, conversationID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity, repository.ErrNotFound
	}
	if err != nil {
		return entity, err
	}
	err = json.Unmarshal(data, &entity)
	return entity, err
}

// conversationIDOf reads the conversation_id field off the entity through
// its JSON form, so Create does not need a per-type accessor.
func conversationIDOf(entity any) (string, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return "", err
	}
	var probe struct {
		ConversationID string `json:"conversation_id"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", err
	}
	if probe.ConversationID == "" {
		return "", fmt.Errorf("entity has no conversation_id")
	}
	return probe.ConversationID, nil
}
