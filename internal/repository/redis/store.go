package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Rrens/fitsmart/internal/domain"
)

const trackerPrefix = "tracker:"

// Store implements domain.KeyValueStore on Redis. Every write refreshes the
// key's TTL so tracker state expires after a day without activity.
type Store struct {
	client *Client
	ttl    time.Duration
}

// NewStore creates a new Redis backed tracker store
func NewStore(client *Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

func key(k string) string {
	return trackerPrefix + k
}

// Get returns the raw value stored under k
func (s *Store) Get(ctx context.Context, k string) ([]byte, error) {
	data, err := s.client.rdb.Get(ctx, key(k)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", k, err)
	}
	return data, nil
}

// Set stores value under k with the configured TTL
func (s *Store) Set(ctx context.Context, k string, value []byte) error {
	if err := s.client.rdb.Set(ctx, key(k), value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", k, err)
	}
	return nil
}

// Delete removes the given keys; missing keys are ignored
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	full := make([]string, 0, len(keys))
	for _, k := range keys {
		full = append(full, key(k))
	}

	if err := s.client.rdb.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys: %w", err)
	}
	return nil
}
