package indexing

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/users-resources/internal/domain"
)

// Rebuild drops and recreates the index of t, then indexes every entity of
// that type page by page. It returns the number of documents written.
func (d *Dispatcher) Rebuild(ctx context.Context, t domain.EntityType) (int, error) {
	x, ok := d.indexers[t]
	if !ok {
		return 0, fmt.Errorf("no indexer for %s", t)
	}
	if s, ok := x.(rebuildScoper); ok {
		x = s.RebuildScope()
	}

	if err := d.index.Drop(ctx, x.Index()); err != nil {
		return 0, fmt.Errorf("drop index %s: %w", x.Index(), err)
	}
	if err := d.index.Create(ctx, x.Index()); err != nil {
		return 0, fmt.Errorf("create index %s: %w", x.Index(), err)
	}

	total := 0
	after := ""
	for {
		ids, err := x.ListIDs(ctx, after, d.bulkSize)
		if err != nil {
			return total, fmt.Errorf("list %s ids: %w", t, err)
		}
		if len(ids) == 0 {
			break
		}

		docs, err := x.Documents(ctx, ids)
		if err != nil {
			return total, fmt.Errorf("load %s documents: %w", t, err)
		}
		if len(docs) > 0 {
			res, err := d.index.BulkIndex(ctx, x.Index(), docs)
			if err != nil {
				return total, fmt.Errorf("bulk index %s: %w", x.Index(), err)
			}
			total += len(res.Succeeded)
			rebuildDocuments.WithLabelValues(t.String()).Add(float64(len(res.Succeeded)))
		}

		after = ids[len(ids)-1]
		if len(ids) < d.bulkSize {
			break
		}
	}

	d.log.InfoContext(ctx, "index rebuilt", slog.String("index", x.Index()), slog.Int("documents", total))
	return total, nil
}

// RebuildAll rebuilds every configured index concurrently.
func (d *Dispatcher) RebuildAll(ctx context.Context) (map[domain.EntityType]int, error) {
	counts := make(map[domain.EntityType]int, len(d.indexers))
	results := make([]int, len(d.indexers))
	types := make([]domain.EntityType, 0, len(d.indexers))
	for t := range d.indexers {
		types = append(types, t)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range types {
		g.Go(func() error {
			n, err := d.Rebuild(gctx, t)
			results[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, t := range types {
		counts[t] = results[i]
	}
	return counts, nil
}

// EnsureIndices creates every configured index that does not exist yet.
func (d *Dispatcher) EnsureIndices(ctx context.Context) error {
	for _, x := range d.indexers {
		if err := d.index.Create(ctx, x.Index()); err != nil {
			return fmt.Errorf("create index %s: %w", x.Index(), err)
		}
	}
	return nil
}
