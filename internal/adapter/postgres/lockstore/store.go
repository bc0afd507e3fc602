// Package lockstore keeps moderation locks in PostgreSQL so every process
// sharing the database sees the same lock state.
package lockstore

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
)

const locksTable = "moderation_locks"

// Store is a lock.Store over the moderation_locks table. Every operation is a
// single statement, so acquisition is atomic without explicit transactions.
// Statements never join a caller session: lock state must be visible to
// other processes immediately.
type Store struct {
	q postgres.Querier
}

// New creates a new lock store.
func New(q postgres.Querier) *Store {
	return &Store{q: q}
}

func expiry(ttl time.Duration) squirrel.Sqlizer {
	return squirrel.Expr("now() + make_interval(secs => ?)", ttl.Seconds())
}

// SetIfAbsent stores key with the given ttl unless a live entry exists.
// An expired entry is taken over.
func (s *Store) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	n, err := postgres.Exec(ctx, s.q, postgres.Builder.Insert(locksTable).
		Columns("key", "token", "expires_at").
		Values(key, value, expiry(ttl)).
		Suffix("ON CONFLICT (key) DO UPDATE SET token = EXCLUDED.token, expires_at = EXCLUDED.expires_at " +
			"WHERE moderation_locks.expires_at <= now()"))
	if err != nil {
		return false, fmt.Errorf("lock %s set: %w", key, err)
	}
	return n == 1, nil
}

// ExtendTTL resets the ttl of a live entry. It reports false when the key is
// missing or already expired.
func (s *Store) ExtendTTL(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	n, err := postgres.Exec(ctx, s.q, postgres.Builder.Update(locksTable).
		Set("expires_at", expiry(ttl)).
		Where(squirrel.Eq{"key": key}).
		Where("expires_at > now()"))
	if err != nil {
		return false, fmt.Errorf("lock %s extend: %w", key, err)
	}
	return n == 1, nil
}

// Delete removes key. A missing key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := postgres.Exec(ctx, s.q, postgres.Builder.Delete(locksTable).Where(squirrel.Eq{"key": key})); err != nil {
		return fmt.Errorf("lock %s delete: %w", key, err)
	}
	return nil
}

// Exists reports whether key holds a live entry.
func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	var exists bool
	row := s.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM moderation_locks WHERE key = $1 AND expires_at > now())`, key)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("lock %s exists: %w", key, err)
	}
	return exists, nil
}

// Purge removes expired entries and returns how many were deleted.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	n, err := postgres.Exec(ctx, s.q, postgres.Builder.Delete(locksTable).Where("expires_at <= now()"))
	if err != nil {
		return 0, fmt.Errorf("purge locks: %w", err)
	}
	return n, nil
}
