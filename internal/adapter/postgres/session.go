package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrSessionClosed is returned when a committed or rolled back session is used.
var ErrSessionClosed = errors.New("session closed")

// ChangeKind classifies a row tracked on a session.
type ChangeKind int

const (
	ChangeNew ChangeKind = iota
	ChangeDirty
	ChangeDeleted
)

type statement struct {
	sql  string
	args []any
}

// Session is the per-transaction handle. It owns the pgx transaction, the
// rows written through it and the statements queued for the next flush.
// Listeners registered on the TxManager receive the session on commit and
// rollback, so everything they need about the transaction lives here.
type Session struct {
	id uuid.UUID
	tx pgx.Tx
	m  *TxManager

	mu      sync.Mutex
	pending []statement
	newRows []any
	dirty   []any
	deleted []any
	values  map[any]any
	closed  bool
}

// ID returns the unique identity of this session.
func (s *Session) ID() uuid.UUID { return s.id }

// Tx returns the underlying transaction.
func (s *Session) Tx() pgx.Tx { return s.tx }

// Context returns ctx carrying this session, so repositories run their
// statements inside the transaction.
func (s *Session) Context(ctx context.Context) context.Context {
	return WithSession(ctx, s)
}

// Queue defers a write until the next Flush or Commit.
func (s *Session) Queue(sql string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, statement{sql: sql, args: args})
}

// Pending returns the number of queued statements.
func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush executes queued writes in order without finishing the transaction.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for i, st := range pending {
		if _, err := s.tx.Exec(ctx, st.sql, st.args...); err != nil {
			return fmt.Errorf("flush statement %d: %w", i, err)
		}
	}
	return nil
}

// Track records a row written in this transaction.
func (s *Session) Track(kind ChangeKind, row any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch kind {
	case ChangeNew:
		s.newRows = append(s.newRows, row)
	case ChangeDirty:
		s.dirty = append(s.dirty, row)
	case ChangeDeleted:
		s.deleted = append(s.deleted, row)
	}
}

// NewRows returns a copy of the rows inserted in this transaction.
func (s *Session) NewRows() []any { return s.snapshot(ChangeNew) }

// DirtyRows returns a copy of the rows updated in this transaction.
func (s *Session) DirtyRows() []any { return s.snapshot(ChangeDirty) }

// DeletedRows returns a copy of the rows deleted in this transaction.
func (s *Session) DeletedRows() []any { return s.snapshot(ChangeDeleted) }

func (s *Session) snapshot(kind ChangeKind) []any {
	s.mu.Lock()
	defer s.mu.Unlock()
	var src []any
	switch kind {
	case ChangeNew:
		src = s.newRows
	case ChangeDirty:
		src = s.dirty
	default:
		src = s.deleted
	}
	out := make([]any, len(src))
	copy(out, src)
	return out
}

// Savepoint runs fn under a savepoint. When fn fails the transaction is rolled
// back to the savepoint, so a failed statement inside fn does not leave the
// whole transaction aborted. fn's error is returned.
func (s *Session) Savepoint(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	ident := pgx.Identifier{name}.Sanitize()
	if _, err := s.tx.Exec(ctx, "SAVEPOINT "+ident); err != nil {
		return fmt.Errorf("savepoint %s: %w", name, err)
	}

	if err := fn(s.Context(ctx)); err != nil {
		if _, rbErr := s.tx.Exec(ctx, "ROLLBACK TO SAVEPOINT "+ident); rbErr != nil {
			return fmt.Errorf("rollback to savepoint %s: %w (original error: %v)", name, rbErr, err)
		}
		return err
	}

	if _, err := s.tx.Exec(ctx, "RELEASE SAVEPOINT "+ident); err != nil {
		return fmt.Errorf("release savepoint %s: %w", name, err)
	}
	return nil
}

// Value returns a value attached to the session.
func (s *Session) Value(key any) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[key]
}

// SetValue attaches a value to the session for its lifetime.
func (s *Session) SetValue(key, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.values == nil {
		s.values = make(map[any]any)
	}
	s.values[key] = value
}

// DeleteValue removes a value attached to the session.
func (s *Session) DeleteValue(key any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Commit runs the before-commit listeners, flushes queued writes and commits.
// After-commit listeners run only when the commit succeeded. Any failure rolls
// the transaction back and runs the after-rollback listeners instead.
func (s *Session) Commit(ctx context.Context) error {
	if s.isClosed() {
		return ErrSessionClosed
	}
	ctx = s.Context(ctx)
	listeners := s.m.snapshot()

	for _, l := range listeners {
		if l.BeforeCommit == nil {
			continue
		}
		if err := l.BeforeCommit(ctx, s); err != nil {
			return s.abort(ctx, fmt.Errorf("before commit %s: %w", l.name, err))
		}
	}

	if err := s.Flush(ctx); err != nil {
		return s.abort(ctx, err)
	}

	s.close()
	if err := s.tx.Commit(ctx); err != nil {
		s.fireRollback(ctx, listeners)
		return fmt.Errorf("commit transaction: %w", err)
	}

	for _, l := range listeners {
		if l.AfterCommit != nil {
			l.AfterCommit(ctx, s)
		}
	}
	return nil
}

// Rollback aborts the transaction and runs the after-rollback listeners.
// Rolling back a closed session is a no-op.
func (s *Session) Rollback(ctx context.Context) error {
	if s.isClosed() {
		return nil
	}
	s.close()
	err := s.tx.Rollback(ctx)
	s.fireRollback(s.Context(ctx), s.m.snapshot())
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

func (s *Session) abort(ctx context.Context, cause error) error {
	if rbErr := s.Rollback(ctx); rbErr != nil {
		return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, cause)
	}
	return cause
}

func (s *Session) fireRollback(ctx context.Context, listeners []namedListener) {
	for _, l := range listeners {
		if l.AfterRollback != nil {
			l.AfterRollback(ctx, s)
		}
	}
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) close() {
	s.mu.Lock()
	s.closed = true
	s.pending = nil
	s.mu.Unlock()
}
