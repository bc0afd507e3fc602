package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/lock"
	"github.com/heartmarshall/users-resources/internal/tasks"
	"github.com/heartmarshall/users-resources/internal/uow"
	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

type lockFactory interface {
	ForUser(id uuid.UUID) *lock.Mutex
}

type sessionBeginner interface {
	Begin(ctx context.Context) (*postgres.Session, error)
}

type taskRunner interface {
	Submit(name string, fn tasks.Func, opts tasks.Options) tasks.Task
}

// Callback chains are not retried: a rerun after a partial failure would
// execute the whole chain again under a lock another request may now hold.
var executeOptions = tasks.Options{IgnoreResult: true, AcksLate: true}

// Executor runs the callback chain of an action under the user's moderation
// lock and one shared unit of work.
type Executor struct {
	log            *slog.Logger
	registry       *Registry
	locks          lockFactory
	tx             sessionBeginner
	runner         taskRunner
	renewalTimeout time.Duration
}

// NewExecutor creates an Executor.
func NewExecutor(
	logger *slog.Logger,
	registry *Registry,
	locks lockFactory,
	tx sessionBeginner,
	runner taskRunner,
	renewalTimeout time.Duration,
) *Executor {
	return &Executor{
		log:            logger.With("component", "moderation_executor"),
		registry:       registry,
		locks:          locks,
		tx:             tx,
		runner:         runner,
		renewalTimeout: renewalTimeout,
	}
}

// Schedule submits the chain of action for userID to the background runner.
// The acting user of ctx, if any, is carried over to the callbacks.
func (e *Executor) Schedule(ctx context.Context, userID uuid.UUID, action domain.ModerationAction) tasks.Task {
	actor, hasActor := ctxutil.UserIDFromCtx(ctx)
	return e.runner.Submit("moderation."+action.String(), func(taskCtx context.Context) error {
		if hasActor {
			taskCtx = ctxutil.WithUserID(taskCtx, actor)
		}
		return e.Execute(taskCtx, userID, action)
	}, executeOptions)
}

// Execute renews the lock, runs every callback of action in order inside one
// unit of work and commits it. Any callback error rolls the whole unit back.
// The lock is released in both cases.
func (e *Executor) Execute(ctx context.Context, userID uuid.UUID, action domain.ModerationAction) (err error) {
	log := e.log.With(slog.String("action", action.String()), slog.String("user_id", userID.String()))

	mutex := e.locks.ForUser(userID)
	if err := mutex.AcquireOrRenew(ctx, e.renewalTimeout); err != nil {
		chainsTotal.WithLabelValues(action.String(), resultLockLost).Inc()
		log.ErrorContext(ctx, "moderation lock could not be renewed", slog.Any("error", err))
		return fmt.Errorf("renew moderation lock: %w", err)
	}
	defer func() {
		if relErr := mutex.Release(ctx); relErr != nil {
			log.ErrorContext(ctx, "release moderation lock", slog.Any("error", relErr))
		}
	}()

	u, err := uow.Begin(ctx, e.tx)
	if err != nil {
		chainsTotal.WithLabelValues(action.String(), resultFailed).Inc()
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			_ = u.Rollback(ctx)
			chainsTotal.WithLabelValues(action.String(), resultRolledBack).Inc()
			log.ErrorContext(ctx, "moderation callback panicked", slog.Any("panic", r))
			err = fmt.Errorf("moderation callback panicked: %v", r)
		}
	}()

	txCtx := u.Context(ctx)
	for i, cb := range e.registry.Callbacks(action) {
		if err := cb(txCtx, userID, u); err != nil {
			if rbErr := u.Rollback(ctx); rbErr != nil {
				log.ErrorContext(ctx, "rollback moderation unit of work", slog.Any("error", rbErr))
			}
			chainsTotal.WithLabelValues(action.String(), resultRolledBack).Inc()
			log.ErrorContext(ctx, "moderation callback failed, unit of work rolled back",
				slog.Int("callback", i),
				slog.Any("error", err),
			)
			return fmt.Errorf("moderation %s callback %d: %w", action, i, err)
		}
	}

	if err := u.Commit(ctx); err != nil {
		chainsTotal.WithLabelValues(action.String(), resultFailed).Inc()
		log.ErrorContext(ctx, "commit moderation unit of work", slog.Any("error", err))
		return err
	}
	chainsTotal.WithLabelValues(action.String(), resultCommitted).Inc()
	return nil
}
