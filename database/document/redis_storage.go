package document

import (
	"context"
	"errors"
	"fmt"

	"thanawyia/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const defaultUpdateRetries = 10

// RedisStorage keeps the serialized document under a single Redis key.
type RedisStorage struct {
	client     *redis.Client
	key        string
	maxRetries int
}

func NewRedisStorage(client *redis.Client, key string) *RedisStorage {
	return &RedisStorage{client: client, key: key, maxRetries: defaultUpdateRetries}
}

func (s *RedisStorage) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.key, err)
	}
	return data, nil
}

func (s *RedisStorage) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.key, err)
	}
	return nil
}

// Update uses WATCH/MULTI so concurrent writers never lose each other's changes.
func (s *RedisStorage) Update(ctx context.Context, fn func(current []byte) ([]byte, error)) error {
	txf := func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, s.key).Bytes()
		if errors.Is(err, redis.Nil) {
			current = nil
		} else if err != nil {
			return fmt.Errorf("failed to read %s: %w", s.key, err)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, s.key, next, 0)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		err := s.client.Watch(ctx, txf, s.key)
		if errors.Is(err, redis.TxFailedErr) {
			utils.DocumentWriteConflicts.Inc()
			utils.GetLogger().Debug("Document changed during update, retrying", zap.Int("attempt", attempt))
			continue
		}
		return err
	}
	return utils.Conflict("document was modified concurrently, retries exhausted")
}

func (s *RedisStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
