// Package uow groups several side effects into one transaction that commits
// or rolls back as a whole.
package uow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
)

// ErrFinished is returned when a committed or rolled back unit is reused.
var ErrFinished = errors.New("unit of work already finished")

// Op is an operation registered on a unit of work. An op takes part in the
// lifecycle by implementing any of Registerer, Committer, PostCommitter and
// RollbackHandler.
type Op any

// Registerer runs when the op is registered, inside the transaction.
type Registerer interface {
	OnRegister(ctx context.Context) error
}

// Committer runs right before the transaction commits. An error aborts the
// commit.
type Committer interface {
	OnCommit(ctx context.Context) error
}

// PostCommitter runs after a successful commit.
type PostCommitter interface {
	OnPostCommit(ctx context.Context)
}

// RollbackHandler runs after the transaction was rolled back.
type RollbackHandler interface {
	OnRollback(ctx context.Context)
}

type sessionBeginner interface {
	Begin(ctx context.Context) (*postgres.Session, error)
}

// UnitOfWork owns one transaction and the ops registered on it.
type UnitOfWork struct {
	session *postgres.Session

	mu       sync.Mutex
	ops      []Op
	finished bool
}

// Begin opens a unit of work.
func Begin(ctx context.Context, b sessionBeginner) (*UnitOfWork, error) {
	s, err := b.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}
	return &UnitOfWork{session: s}, nil
}

// Context returns ctx bound to the unit's transaction. Repositories called
// with it write inside the unit.
func (u *UnitOfWork) Context(ctx context.Context) context.Context {
	return u.session.Context(ctx)
}

// Register adds op to the unit and runs its OnRegister hook.
func (u *UnitOfWork) Register(ctx context.Context, op Op) error {
	u.mu.Lock()
	if u.finished {
		u.mu.Unlock()
		return ErrFinished
	}
	u.ops = append(u.ops, op)
	u.mu.Unlock()

	if r, ok := op.(Registerer); ok {
		if err := r.OnRegister(u.Context(ctx)); err != nil {
			return fmt.Errorf("register op: %w", err)
		}
	}
	return nil
}

func (u *UnitOfWork) finish() ([]Op, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.finished {
		return nil, ErrFinished
	}
	u.finished = true
	return u.ops, nil
}

// Commit runs the OnCommit hooks, commits the transaction and then runs the
// OnPostCommit hooks. A failure rolls everything back.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	ops, err := u.finish()
	if err != nil {
		return err
	}
	txCtx := u.Context(ctx)

	for _, op := range ops {
		if c, ok := op.(Committer); ok {
			if err := c.OnCommit(txCtx); err != nil {
				u.rollback(ctx, ops)
				return fmt.Errorf("commit op: %w", err)
			}
		}
	}

	if err := u.session.Commit(ctx); err != nil {
		notifyRollback(ctx, ops)
		return err
	}

	for _, op := range ops {
		if p, ok := op.(PostCommitter); ok {
			p.OnPostCommit(ctx)
		}
	}
	return nil
}

// Rollback discards every effect of the unit. Rolling back a finished unit
// is a no-op.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	ops, err := u.finish()
	if err != nil {
		return nil
	}
	return u.rollback(ctx, ops)
}

func (u *UnitOfWork) rollback(ctx context.Context, ops []Op) error {
	err := u.session.Rollback(ctx)
	notifyRollback(ctx, ops)
	return err
}

func notifyRollback(ctx context.Context, ops []Op) {
	for _, op := range ops {
		if r, ok := op.(RollbackHandler); ok {
			r.OnRollback(ctx)
		}
	}
}

// Func is an op that runs fn inside the transaction when registered.
type Func func(ctx context.Context) error

func (f Func) OnRegister(ctx context.Context) error { return f(ctx) }

// AfterCommit is an op that runs fn once the unit committed.
type AfterCommit func(ctx context.Context)

func (f AfterCommit) OnPostCommit(ctx context.Context) { f(ctx) }
