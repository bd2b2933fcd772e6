package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/warp/pb"
)

// DefaultKeyPrefix namespaces warp entries inside a shared Redis database.
const DefaultKeyPrefix = "warp:alignment:"

// RedisStore keeps protobuf-encoded results in Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore wraps client. A zero ttl keeps entries forever; an empty
// prefix falls back to DefaultKeyPrefix.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

// DialRedis connects to addr/db and verifies the connection with PING.
func DialRedis(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "cache: redis at %s is unreachable", addr)
	}

	return client, nil
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, key string) (*pb.Alignment, bool, error) {
	if key == "" {
		return nil, false, ErrEmptyKey
	}
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "cache: get %s", key)
	}
	value, err := pb.Decode(data)
	if err != nil {
		return nil, false, errors.Wrapf(err, "cache: decode %s", key)
	}

	return value, true, nil
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, key string, value *pb.Alignment) error {
	if key == "" {
		return ErrEmptyKey
	}
	data, err := pb.Encode(value)
	if err != nil {
		return err
	}

	return errors.Wrapf(s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(), "cache: put %s", key)
}
