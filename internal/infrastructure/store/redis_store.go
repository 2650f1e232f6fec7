package store

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"stayhub/internal/domain/contract"
	usecasecontract "stayhub/internal/usecase/contract"
)

// keyPrefix namespaces every application key so Clear can find them.
const keyPrefix = "stayhub:"

// RedisStore is the redis-backed KVStore. Values are JSON blobs under
// prefixed string keys with no TTL.
type RedisStore struct {
	rdb    *redis.Client
	logger usecasecontract.IAppLogger
}

var _ contract.KVStore = (*RedisStore)(nil)

// NewRedisFromURL connects a redis client from a REDIS_URL string.
func NewRedisFromURL(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return rdb, nil
}

// NewRedisStore creates a KVStore over an existing redis client.
func NewRedisStore(rdb *redis.Client, logger usecasecontract.IAppLogger) *RedisStore {
	return &RedisStore{rdb: rdb, logger: logger}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) bool {
	raw, err := s.rdb.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Errorf("redis store: reading %s: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Errorf("redis store: decoding %s: %v", key, err)
		return false
	}
	return true
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Errorf("redis store: encoding %s: %v", key, err)
		return false
	}
	if err := s.rdb.Set(ctx, keyPrefix+key, raw, 0).Err(); err != nil {
		s.logger.Errorf("redis store: writing %s: %v", key, err)
		return false
	}
	return true
}

func (s *RedisStore) Remove(ctx context.Context, key string) bool {
	if err := s.rdb.Del(ctx, keyPrefix+key).Err(); err != nil {
		s.logger.Errorf("redis store: removing %s: %v", key, err)
		return false
	}
	return true
}

func (s *RedisStore) Clear(ctx context.Context) bool {
	iter := s.rdb.Scan(ctx, 0, keyPrefix+"*", 1000).Iterator()
	pipe := s.rdb.Pipeline()
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		s.logger.Errorf("redis store: clearing: %v", err)
		return false
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Errorf("redis store: clearing: %v", err)
		return false
	}
	return true
}
