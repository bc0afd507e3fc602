package indexing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/changes"
)

// ListenerName is the transaction listener name the reindex hooks use.
const ListenerName = "indexing.reindex"

type txListenerRegistry interface {
	Listen(name string, l postgres.TxListener) error
	Listening(name string) bool
}

type preCommitRecorder interface {
	RecordPreCommit(ctx context.Context, s *postgres.Session) error
}

// Registrar wires change tracking and reindex dispatch into the transaction
// lifecycle.
type Registrar struct {
	log        *slog.Logger
	tracker    preCommitRecorder
	dispatcher *Dispatcher
}

// NewRegistrar creates a Registrar.
func NewRegistrar(logger *slog.Logger, tracker preCommitRecorder, dispatcher *Dispatcher) *Registrar {
	return &Registrar{
		log:        logger.With("component", "reindex_hooks"),
		tracker:    tracker,
		dispatcher: dispatcher,
	}
}

// Install registers the hooks on tm. Installing on a manager that already
// carries them is a no-op, so several callers sharing one manager register
// the hooks once.
func (r *Registrar) Install(tm txListenerRegistry) error {
	if tm.Listening(ListenerName) {
		return nil
	}

	err := tm.Listen(ListenerName, postgres.TxListener{
		BeforeCommit:  r.beforeCommit,
		AfterCommit:   r.afterCommit,
		AfterRollback: r.afterRollback,
	})
	if errors.Is(err, postgres.ErrListenerExists) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("install reindex hooks: %w", err)
	}
	r.log.Info("reindex hooks installed")
	return nil
}

func (r *Registrar) beforeCommit(ctx context.Context, s *postgres.Session) error {
	return r.tracker.RecordPreCommit(ctx, s)
}

func (r *Registrar) afterCommit(ctx context.Context, s *postgres.Session) {
	cs := changes.Take(s)
	if cs == nil || cs.Empty() {
		return
	}
	r.log.DebugContext(ctx, "dispatching reindex", slog.String("session", s.ID().String()))
	r.dispatcher.Dispatch(cs)
}

func (r *Registrar) afterRollback(_ context.Context, s *postgres.Session) {
	changes.Discard(s)
}
