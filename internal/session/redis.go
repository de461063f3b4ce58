package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/PParksung/smart-subscription-manager/internal/config"
	"github.com/PParksung/smart-subscription-manager/internal/models"
)

// RedisStore хранит сессии в Redis с TTL.
type RedisStore struct {
	db  *redis.Client
	ttl time.Duration
}

// InitRedisStore подключается к Redis и возвращает хранилище сессий.
func InitRedisStore(ctx context.Context, cfg config.RedisConnection, ttl time.Duration) (*RedisStore, error) {
	const op = "session.InitRedisStore"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &RedisStore{db: db, ttl: ttl}, nil
}

func key(id string) string {
	return "session:" + id
}

// Create сериализует сессию в JSON и сохраняет её с TTL.
func (s *RedisStore) Create(ctx context.Context, sess models.Session) error {
	const op = "session.redis.Create"
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.db.Set(ctx, key(sess.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Get возвращает сессию по идентификатору или ErrSessionNotFound.
func (s *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	const op = "session.redis.Get"
	val, err := s.db.Get(ctx, key(id)).Result()
	if err == redis.Nil {
		return nil, fmt.Errorf("%s: %w", op, ErrSessionNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	var sess models.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &sess, nil
}

// Delete удаляет сессию из Redis.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	const op = "session.redis.Delete"
	if err := s.db.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
