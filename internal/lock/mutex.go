// Package lock implements the moderation mutex: a per-entity lock kept in a
// shared store so concurrent moderation actions on one entity exclude each
// other across processes.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/internal/domain"
)

var (
	// ErrAcquireFailed means the entity is already under moderation.
	ErrAcquireFailed = fmt.Errorf("%w: entity is locked for moderation", domain.ErrConflict)
	// ErrNotHeld is returned by Renew when the lock expired or was released.
	ErrNotHeld = errors.New("moderation lock not held")
)

// Store is a shared key-value store with atomic set-if-absent semantics.
type Store interface {
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ExtendTTL(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Mutex is the lock of one entity. It holds no local state besides its key
// and token, so a Mutex built in another process for the same entity
// operates on the same lock.
type Mutex struct {
	store          Store
	key            string
	token          string
	defaultTimeout time.Duration
	renewalTimeout time.Duration
}

// Key returns the store key of the lock.
func (m *Mutex) Key() string { return m.key }

// Acquire takes the lock for timeout, or the default timeout when timeout is
// zero. It fails with ErrAcquireFailed when the lock is held.
func (m *Mutex) Acquire(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = m.defaultTimeout
	}
	ok, err := m.store.SetIfAbsent(ctx, m.key, m.token, timeout)
	if err != nil {
		lockOps.WithLabelValues(opAcquire, resultError).Inc()
		return fmt.Errorf("acquire %s: %w", m.key, err)
	}
	if !ok {
		lockOps.WithLabelValues(opAcquire, resultRejected).Inc()
		return fmt.Errorf("%s: %w", m.key, ErrAcquireFailed)
	}
	lockOps.WithLabelValues(opAcquire, resultOK).Inc()
	return nil
}

// Renew extends a live lock to timeout from now, or to the renewal timeout
// when timeout is zero. It fails with ErrNotHeld when the lock is gone.
func (m *Mutex) Renew(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = m.renewalTimeout
	}
	ok, err := m.store.ExtendTTL(ctx, m.key, timeout)
	if err != nil {
		lockOps.WithLabelValues(opRenew, resultError).Inc()
		return fmt.Errorf("renew %s: %w", m.key, err)
	}
	if !ok {
		lockOps.WithLabelValues(opRenew, resultRejected).Inc()
		return fmt.Errorf("%s: %w", m.key, ErrNotHeld)
	}
	lockOps.WithLabelValues(opRenew, resultOK).Inc()
	return nil
}

// AcquireOrRenew extends the lock when it is live and takes it otherwise.
// Zero timeout means the renewal timeout.
func (m *Mutex) AcquireOrRenew(ctx context.Context, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = m.renewalTimeout
	}
	err := m.Renew(ctx, timeout)
	if !errors.Is(err, ErrNotHeld) {
		return err
	}
	return m.Acquire(ctx, timeout)
}

// Release removes the lock. Releasing an expired or missing lock succeeds.
func (m *Mutex) Release(ctx context.Context) error {
	if err := m.store.Delete(ctx, m.key); err != nil {
		lockOps.WithLabelValues(opRelease, resultError).Inc()
		return fmt.Errorf("release %s: %w", m.key, err)
	}
	lockOps.WithLabelValues(opRelease, resultOK).Inc()
	return nil
}

// Exists reports whether the lock is currently held by anyone.
func (m *Mutex) Exists(ctx context.Context) (bool, error) {
	ok, err := m.store.Exists(ctx, m.key)
	if err != nil {
		return false, fmt.Errorf("check %s: %w", m.key, err)
	}
	return ok, nil
}

// Config configures a Factory.
type Config struct {
	KeyPrefix      string
	DefaultTimeout time.Duration
	RenewalTimeout time.Duration
}

// Factory builds mutexes for entities.
type Factory struct {
	store Store
	cfg   Config
}

// NewFactory creates a Factory.
func NewFactory(store Store, cfg Config) *Factory {
	return &Factory{store: store, cfg: cfg}
}

// For returns the mutex of the entity with the given id.
func (f *Factory) For(id string) *Mutex {
	return &Mutex{
		store:          f.store,
		key:            f.cfg.KeyPrefix + "." + id,
		token:          uuid.NewString(),
		defaultTimeout: f.cfg.DefaultTimeout,
		renewalTimeout: f.cfg.RenewalTimeout,
	}
}

// ForUser returns the moderation mutex of a user.
func (f *Factory) ForUser(id uuid.UUID) *Mutex {
	return f.For(id.String())
}
