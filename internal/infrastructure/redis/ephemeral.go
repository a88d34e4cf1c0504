package redisinfra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/recipeshare/api/internal/domain"
	"github.com/redis/go-redis/v9"
)

// EphemeralStore is a keyed KV store with per-entry TTL, backing both
// temp login codes and session tokens. Keys are `<namespace>_<subject>`;
// a Set for an existing key overwrites the value and resets its expiry,
// so at most one value per (namespace, subject) is ever live.
type EphemeralStore struct {
	client *redis.Client
}

func NewEphemeralStore(client *redis.Client) *EphemeralStore {
	return &EphemeralStore{client: client}
}

func (s *EphemeralStore) key(ns domain.Namespace, subjectID int64) string {
	return fmt.Sprintf("%s_%d", ns, subjectID)
}

// Set unconditionally stores value under (ns, subjectID) with the given
// TTL. Concurrent sets for the same key are last-write-wins.
func (s *EphemeralStore) Set(ctx context.Context, ns domain.Namespace, subjectID int64, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(ns, subjectID), value, ttl).Err(); err != nil {
		return fmt.Errorf("ephemeral set %s: %w", ns, err)
	}
	return nil
}

// Get returns the live value for (ns, subjectID). An absent or expired
// entry is a normal result, reported as ok=false with a nil error;
// only store connectivity failures return a non-nil error.
func (s *EphemeralStore) Get(ctx context.Context, ns domain.Namespace, subjectID int64) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(ns, subjectID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ephemeral get %s: %w", ns, err)
	}
	return v, true, nil
}

// Delete removes the entry for (ns, subjectID). Deleting an absent key
// is a no-op.
func (s *EphemeralStore) Delete(ctx context.Context, ns domain.Namespace, subjectID int64) error {
	if err := s.client.Del(ctx, s.key(ns, subjectID)).Err(); err != nil {
		return fmt.Errorf("ephemeral delete %s: %w", ns, err)
	}
	return nil
}
