package catdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "catbase:cats:"

// RedisStore keeps the cat records in a Redis hash (ID -> JSON encoded
// record) behind the same Store contract as InMemoryStore. It is an optional
// external mirror seeded at startup, not durable state the engine depends on.
type RedisStore struct {
	client *redis.Client
	key    string
}

// RedisConfig holds configuration for RedisStore.
type RedisConfig struct {
	// Client is the Redis client instance. If nil, a new client is created
	// from Addr, Password and DB and the connection is verified with a ping.
	Client *redis.Client

	// Addr is the Redis server address (used if Client is nil).
	Addr string

	// Password is the Redis password (used if Client is nil).
	Password string

	// DB is the Redis database number (used if Client is nil).
	DB int

	// KeyPrefix is the prefix for the hash key. Default is "catbase:cats:".
	KeyPrefix string
}

// NewRedisStore creates a RedisStore from the given configuration.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := cfg.Client
	if client == nil {
		addr := cfg.Addr
		if addr == "" {
			addr = "localhost:6379"
		}
		client = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisStore{client: client, key: prefix + "all"}, nil
}

// Seed writes the given records into the hash, one field per ID. Writes go
// through a single pipeline so seeding is one round trip.
func (s *RedisStore) Seed(ctx context.Context, cats []Cat) error {
	pipe := s.client.Pipeline()
	for _, c := range cats {
		data, err := json.Marshal(c)
		if err != nil {
			return fmt.Errorf("failed to marshal cat %d: %w", c.ID, err)
		}
		pipe.HSet(ctx, s.key, strconv.Itoa(c.ID), data)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to seed cats: %w", err)
	}
	return nil
}

// Get returns the record with the given ID, or (nil, nil) when absent.
func (s *RedisStore) Get(ctx context.Context, id int) (*Cat, error) {
	data, err := s.client.HGet(ctx, s.key, strconv.Itoa(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cat %d from redis: %w", id, err)
	}
	var c Cat
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cat %d: %w", id, err)
	}
	return &c, nil
}

// All returns every record sorted by ascending ID.
func (s *RedisStore) All(ctx context.Context) ([]Cat, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list cats from redis: %w", err)
	}
	cats := make([]Cat, 0, len(fields))
	for _, data := range fields {
		var c Cat
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, fmt.Errorf("failed to decode cat record: %w", err)
		}
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].ID < cats[j].ID })
	return cats, nil
}

// Filter returns every record satisfying pred, in All's order.
func (s *RedisStore) Filter(ctx context.Context, pred func(Cat) bool) ([]Cat, error) {
	cats, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]Cat, 0, len(cats))
	for _, c := range cats {
		if pred(c) {
			result = append(result, c)
		}
	}
	return result, nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
