package indexing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/users-resources/internal/changes"
	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/search"
	"github.com/heartmarshall/users-resources/internal/tasks"
)

const defaultBulkSize = 500

type searchIndex interface {
	Exists(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, name string) error
	Drop(ctx context.Context, name string) error
	BulkIndex(ctx context.Context, name string, docs []search.Document) (search.BulkResult, error)
	BulkDelete(ctx context.Context, name string, ids []string) error
}

type taskRunner interface {
	Submit(name string, fn tasks.Func, opts tasks.Options) tasks.Task
}

type notifier interface {
	Publish(ctx context.Context, notes []domain.ChangeNotification) error
}

// reindexOptions are used for every reindex task: failures other than
// conflicts are retried and the task survives a graceful shutdown.
var reindexOptions = tasks.Options{IgnoreResult: true, AcksLate: true, Retry: true}

// Dispatcher turns a committed change set into background bulk index and
// delete tasks, one per entity type and operation.
type Dispatcher struct {
	log      *slog.Logger
	index    searchIndex
	runner   taskRunner
	notify   notifier
	indexers map[domain.EntityType]Indexer
	bulkSize int
}

// NewDispatcher creates a Dispatcher. notify may be nil.
func NewDispatcher(
	logger *slog.Logger,
	index searchIndex,
	runner taskRunner,
	notify notifier,
	bulkSize int,
	indexers ...Indexer,
) *Dispatcher {
	if bulkSize <= 0 {
		bulkSize = defaultBulkSize
	}
	byType := make(map[domain.EntityType]Indexer, len(indexers))
	for _, x := range indexers {
		byType[x.Entity()] = x
	}
	return &Dispatcher{
		log:      logger.With("component", "reindex_dispatcher"),
		index:    index,
		runner:   runner,
		notify:   notify,
		indexers: byType,
		bulkSize: bulkSize,
	}
}

// Dispatch submits the tasks for cs and returns without waiting for them.
func (d *Dispatcher) Dispatch(cs *changes.ChangeSet) []tasks.Task {
	if cs == nil {
		return nil
	}

	var submitted []tasks.Task
	for _, t := range changes.EntityTypes {
		x, ok := d.indexers[t]
		if !ok {
			continue
		}
		if ids := cs.Updated(t); len(ids) > 0 {
			submitted = append(submitted, d.runner.Submit("reindex."+t.String()+".index", func(ctx context.Context) error {
				return d.BulkIndex(ctx, x, ids)
			}, reindexOptions))
		}
		if ids := cs.Deleted(t); len(ids) > 0 {
			submitted = append(submitted, d.runner.Submit("reindex."+t.String()+".delete", func(ctx context.Context) error {
				return d.BulkDelete(ctx, x, ids)
			}, reindexOptions))
		}
	}
	return submitted
}

// BulkIndex writes the current state of ids. Version conflicts are logged and
// tolerated. Change notifications for users are published only for documents
// that were written.
func (d *Dispatcher) BulkIndex(ctx context.Context, x Indexer, ids []string) error {
	ok, err := d.index.Exists(ctx, x.Index())
	if err != nil {
		return fmt.Errorf("check index %s: %w", x.Index(), err)
	}
	if !ok {
		d.log.WarnContext(ctx, "skip bulk index: index does not exist", slog.String("index", x.Index()))
		reindexTotal.WithLabelValues(x.Entity().String(), opIndex, resultSkipped).Inc()
		return nil
	}

	for start := 0; start < len(ids); start += d.bulkSize {
		end := min(start+d.bulkSize, len(ids))
		if err := d.indexChunk(ctx, x, ids[start:end]); err != nil {
			reindexTotal.WithLabelValues(x.Entity().String(), opIndex, resultFailed).Inc()
			return err
		}
	}
	reindexTotal.WithLabelValues(x.Entity().String(), opIndex, resultSucceeded).Inc()
	return nil
}

func (d *Dispatcher) indexChunk(ctx context.Context, x Indexer, ids []string) error {
	docs, err := x.Documents(ctx, ids)
	if err != nil {
		return fmt.Errorf("load %s documents: %w", x.Entity(), err)
	}
	if len(docs) == 0 {
		return nil
	}

	res, err := d.index.BulkIndex(ctx, x.Index(), docs)
	switch {
	case errors.Is(err, search.ErrConflict):
		d.log.WarnContext(ctx, "version conflict while indexing",
			slog.String("index", x.Index()),
			slog.Int("conflicts", len(res.Conflicts)),
			slog.Any("error", err),
		)
		reindexConflicts.WithLabelValues(x.Entity().String()).Add(float64(len(res.Conflicts)))
	case err != nil:
		return fmt.Errorf("bulk index %s: %w", x.Index(), err)
	}

	if x.Entity() == domain.EntityUsers {
		d.publish(ctx, x.Entity(), docs, res.Succeeded)
	}
	return nil
}

func (d *Dispatcher) publish(ctx context.Context, t domain.EntityType, docs []search.Document, written []string) {
	if d.notify == nil || len(written) == 0 {
		return
	}

	revisions := make(map[string]int64, len(docs))
	for _, doc := range docs {
		revisions[doc.ID] = doc.Revision
	}
	notes := make([]domain.ChangeNotification, 0, len(written))
	for _, id := range written {
		notes = append(notes, domain.ChangeNotification{EntityType: t, ID: id, Revision: int(revisions[id])})
	}

	// The index write already landed; a failed publish is logged, not retried.
	if err := d.notify.Publish(ctx, notes); err != nil {
		d.log.ErrorContext(ctx, "publish change notifications",
			slog.String("type", t.String()),
			slog.Int("count", len(notes)),
			slog.Any("error", err),
		)
	}
}

// BulkDelete removes ids from the index of x.
func (d *Dispatcher) BulkDelete(ctx context.Context, x Indexer, ids []string) error {
	ok, err := d.index.Exists(ctx, x.Index())
	if err != nil {
		return fmt.Errorf("check index %s: %w", x.Index(), err)
	}
	if !ok {
		d.log.WarnContext(ctx, "skip bulk delete: index does not exist", slog.String("index", x.Index()))
		reindexTotal.WithLabelValues(x.Entity().String(), opDelete, resultSkipped).Inc()
		return nil
	}

	if err := d.index.BulkDelete(ctx, x.Index(), ids); err != nil {
		reindexTotal.WithLabelValues(x.Entity().String(), opDelete, resultFailed).Inc()
		return fmt.Errorf("bulk delete %s: %w", x.Index(), err)
	}
	reindexTotal.WithLabelValues(x.Entity().String(), opDelete, resultSucceeded).Inc()
	return nil
}

// IndexNow synchronously indexes ids of type t, for callers that must see
// their own write in search results.
func (d *Dispatcher) IndexNow(ctx context.Context, t domain.EntityType, ids ...string) error {
	x, ok := d.indexers[t]
	if !ok {
		return fmt.Errorf("no indexer for %s", t)
	}
	return d.BulkIndex(ctx, x, ids)
}
