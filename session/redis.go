package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zero-day-ai/archstudio/design"
)

// defaultKeyPrefix namespaces session keys in Redis.
const defaultKeyPrefix = "archstudio:session:"

// RedisOptions configures the Redis-backed session store.
type RedisOptions struct {
	// URL is the Redis connection string (e.g. "redis://localhost:6379").
	URL string

	// TTL is how long a session lives without being written. Zero means
	// sessions never expire.
	TTL time.Duration

	// KeyPrefix namespaces session keys. Defaults to
	// "archstudio:session:".
	KeyPrefix string

	// ConnectTimeout is the maximum time to wait for connection
	// establishment. Defaults to 5s.
	ConnectTimeout time.Duration
}

// RedisStore implements Store on top of Redis, storing each design as a
// JSON value with an optional TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisStore creates a Redis-backed session store and verifies the
// connection with a ping.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.KeyPrefix == "" {
		opts.KeyPrefix = defaultKeyPrefix
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	redisOpts.DialTimeout = opts.ConnectTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client: client,
		ttl:    opts.TTL,
		prefix: opts.KeyPrefix,
	}, nil
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

// Get returns the design stored for the session ID.
func (s *RedisStore) Get(ctx context.Context, id string) (*design.State, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}

	state := design.New()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("%w: corrupt session %s: %v", ErrStorageFailed, id, err)
	}
	return state, nil
}

// Put stores the design as JSON, refreshing the session TTL.
func (s *RedisStore) Put(ctx context.Context, id string, state *design.State) error {
	if id == "" {
		return ErrInvalidID
	}
	if state == nil {
		return ErrNilState
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: encode session %s: %v", ErrStorageFailed, id, err)
	}

	if err := s.client.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}
	return nil
}

// Delete removes the session.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, s.key(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns the IDs of all stored sessions by scanning the key prefix.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, s.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(s.prefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailed, err)
	}
	return ids, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
