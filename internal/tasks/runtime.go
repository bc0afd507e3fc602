// Package tasks runs fire-and-forget background work on a bounded worker pool.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/sethvargo/go-retry"

	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

// ErrStopped is returned by tasks submitted after Stop.
var ErrStopped = errors.New("task runtime stopped")

// Func is a unit of background work.
type Func func(ctx context.Context) error

// Options tune how one submission is executed.
type Options struct {
	// IgnoreResult discards the task error after logging it; Wait returns nil.
	IgnoreResult bool
	// AcksLate keeps a queued task alive through Stop: it still runs while the
	// pool drains. Other queued tasks are dropped.
	AcksLate bool
	// Retry retries failed attempts with exponential backoff unless the error
	// was marked Permanent.
	Retry bool
}

// Task is the handle of a submitted task.
type Task interface {
	Wait() error
}

// Config configures the runtime.
type Config struct {
	Workers        int
	MaxRetries     uint64
	RetryBaseDelay time.Duration
}

// Runtime executes submitted tasks. Tasks run under the system identity,
// detached from the request that submitted them.
type Runtime struct {
	pool       pond.Pool
	log        *slog.Logger
	maxRetries uint64
	baseDelay  time.Duration

	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.RWMutex
	stopping atomic.Bool
	inflight sync.WaitGroup
}

// New starts a runtime with cfg.Workers workers.
func New(cfg Config, logger *slog.Logger) *Runtime {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	base := cfg.RetryBaseDelay
	if base <= 0 {
		base = 100 * time.Millisecond
	}

	ctx, cancel := context.WithCancel(ctxutil.WithSystemIdentity(context.Background()))
	return &Runtime{
		pool:       pond.NewPool(workers),
		log:        logger.With("component", "tasks"),
		maxRetries: cfg.MaxRetries,
		baseDelay:  base,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Submit schedules fn and returns immediately.
func (r *Runtime) Submit(name string, fn Func, opts Options) Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.stopping.Load() {
		tasksTotal.WithLabelValues(name, resultDropped).Inc()
		return doneTask{err: fmt.Errorf("%s: %w", name, ErrStopped)}
	}

	tasksSubmitted.WithLabelValues(name).Inc()
	r.inflight.Add(1)
	return r.pool.SubmitErr(func() error {
		defer r.inflight.Done()
		return r.run(name, fn, opts)
	})
}

func (r *Runtime) run(name string, fn Func, opts Options) error {
	if r.stopping.Load() && !opts.AcksLate {
		r.log.Warn("dropping queued task on shutdown", slog.String("task", name))
		tasksTotal.WithLabelValues(name, resultDropped).Inc()
		return fmt.Errorf("%s: %w", name, ErrStopped)
	}

	start := time.Now()
	err := r.attempt(name, fn, opts)
	taskDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err == nil {
		tasksTotal.WithLabelValues(name, resultSucceeded).Inc()
		return nil
	}

	tasksTotal.WithLabelValues(name, resultFailed).Inc()
	r.log.Error("task failed", slog.String("task", name), slog.Any("error", err))
	if opts.IgnoreResult {
		return nil
	}
	return err
}

func (r *Runtime) attempt(name string, fn Func, opts Options) error {
	if !opts.Retry || r.maxRetries == 0 {
		return unwrapPermanent(fn(r.ctx))
	}

	b := retry.WithMaxRetries(r.maxRetries, retry.NewExponential(r.baseDelay))
	attempt := 0
	err := retry.Do(r.ctx, b, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if IsPermanent(err) {
			return err
		}
		if attempt <= int(r.maxRetries) {
			tasksRetried.WithLabelValues(name).Inc()
			r.log.Warn("task attempt failed, retrying",
				slog.String("task", name),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
		}
		return retry.RetryableError(err)
	})
	return unwrapPermanent(err)
}

// Wait blocks until every task submitted so far has finished.
func (r *Runtime) Wait() {
	r.inflight.Wait()
}

// Stop stops accepting tasks, drops queued tasks that were not submitted with
// AcksLate and waits for the rest to finish.
func (r *Runtime) Stop() {
	r.mu.Lock()
	swapped := r.stopping.CompareAndSwap(false, true)
	r.mu.Unlock()
	if !swapped {
		return
	}
	r.pool.StopAndWait()
	r.cancel()
}

type doneTask struct{ err error }

func (t doneTask) Wait() error { return t.err }

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var pe *permanentError
	return errors.As(err, &pe)
}

func unwrapPermanent(err error) error {
	if pe, ok := err.(*permanentError); ok {
		return pe.err
	}
	return err
}
