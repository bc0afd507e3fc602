package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// ErrListenerExists is returned by Listen when the name is already registered.
var ErrListenerExists = errors.New("transaction listener already registered")

// TxListener receives transaction lifecycle events. Any hook may be nil.
// A BeforeCommit error aborts the commit.
type TxListener struct {
	BeforeCommit  func(ctx context.Context, s *Session) error
	AfterCommit   func(ctx context.Context, s *Session)
	AfterRollback func(ctx context.Context, s *Session)
}

type namedListener struct {
	TxListener
	name string
}

// TxManager opens sessions and dispatches their lifecycle events to the
// registered listeners. Nested RunInTx calls are NOT supported: calling
// RunInTx inside a RunInTx callback creates a second independent transaction.
type TxManager struct {
	pool Pool

	mu        sync.RWMutex
	listeners []namedListener
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool Pool) *TxManager {
	return &TxManager{pool: pool}
}

// Listen registers l under name. Listeners run in registration order.
func (m *TxManager) Listen(name string, l TxListener) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.listeners {
		if existing.name == name {
			return fmt.Errorf("%s: %w", name, ErrListenerExists)
		}
	}
	m.listeners = append(m.listeners, namedListener{TxListener: l, name: name})
	return nil
}

// Listening reports whether a listener is registered under name.
func (m *TxManager) Listening(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.listeners {
		if l.name == name {
			return true
		}
	}
	return false
}

func (m *TxManager) snapshot() []namedListener {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]namedListener, len(m.listeners))
	copy(out, m.listeners)
	return out
}

// Begin opens a new session. The caller must Commit or Rollback it.
func (m *TxManager) Begin(ctx context.Context) (*Session, error) {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Session{id: uuid.New(), tx: tx, m: m}, nil
}

// RunInTx executes fn within a database transaction.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	s, err := m.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = s.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(s.Context(ctx)); err != nil {
		if rbErr := s.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	return s.Commit(ctx)
}
