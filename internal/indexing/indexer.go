// Package indexing keeps the search indices in step with committed database
// changes and rebuilds them on demand.
package indexing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/internal/aggregate"
	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/search"
)

// Indexer turns entity ids into search documents for one entity type.
type Indexer interface {
	Entity() domain.EntityType
	Index() string
	// Documents loads the current state of ids. Ids that no longer exist are
	// omitted.
	Documents(ctx context.Context, ids []string) ([]search.Document, error)
	// ListIDs pages through every id in key order, starting after after.
	ListIDs(ctx context.Context, after string, limit int) ([]string, error)
}

type uuidLister interface {
	ListIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error)
}

type nameLister interface {
	ListNames(ctx context.Context, after string, limit int) ([]string, error)
}

type userLoader interface {
	Users(ctx context.Context, ids []uuid.UUID) ([]domain.UserAggregate, error)
}

// userScoper is a userLoader that can memoize lookups across the pages of
// one rebuild.
type userScoper interface {
	NewScope() *aggregate.Scope
}

// rebuildScoper is implemented by indexers that keep state for the duration
// of a single rebuild.
type rebuildScoper interface {
	RebuildScope() Indexer
}

type groupLoader interface {
	Groups(ctx context.Context, ids []uuid.UUID) ([]domain.GroupAggregate, error)
}

type domainLoader interface {
	Domains(ctx context.Context, names []string) ([]domain.DomainAggregate, error)
}

// UserIndexer indexes user aggregates.
type UserIndexer struct {
	index  string
	ids    uuidLister
	loader userLoader
}

func NewUserIndexer(index string, ids uuidLister, loader userLoader) *UserIndexer {
	return &UserIndexer{index: index, ids: ids, loader: loader}
}

func (x *UserIndexer) Entity() domain.EntityType { return domain.EntityUsers }
func (x *UserIndexer) Index() string             { return x.index }

func (x *UserIndexer) Documents(ctx context.Context, ids []string) ([]search.Document, error) {
	parsed, err := parseUUIDs(ids)
	if err != nil {
		return nil, err
	}
	aggs, err := x.loader.Users(ctx, parsed)
	if err != nil {
		return nil, err
	}
	docs := make([]search.Document, 0, len(aggs))
	for _, a := range aggs {
		docs = append(docs, search.Document{ID: a.ID.String(), Revision: int64(a.Revision), Body: a})
	}
	return docs, nil
}

func (x *UserIndexer) ListIDs(ctx context.Context, after string, limit int) ([]string, error) {
	return listUUIDs(ctx, x.ids, after, limit)
}

// RebuildScope returns an indexer whose loader caches email domains until the
// rebuild finishes. Loaders without scope support are used as they are.
func (x *UserIndexer) RebuildScope() Indexer {
	s, ok := x.loader.(userScoper)
	if !ok {
		return x
	}
	return &UserIndexer{index: x.index, ids: x.ids, loader: s.NewScope()}
}

// GroupIndexer indexes group aggregates.
type GroupIndexer struct {
	index  string
	ids    uuidLister
	loader groupLoader
}

func NewGroupIndexer(index string, ids uuidLister, loader groupLoader) *GroupIndexer {
	return &GroupIndexer{index: index, ids: ids, loader: loader}
}

func (x *GroupIndexer) Entity() domain.EntityType { return domain.EntityGroups }
func (x *GroupIndexer) Index() string             { return x.index }

func (x *GroupIndexer) Documents(ctx context.Context, ids []string) ([]search.Document, error) {
	parsed, err := parseUUIDs(ids)
	if err != nil {
		return nil, err
	}
	aggs, err := x.loader.Groups(ctx, parsed)
	if err != nil {
		return nil, err
	}
	docs := make([]search.Document, 0, len(aggs))
	for _, a := range aggs {
		docs = append(docs, search.Document{ID: a.ID.String(), Revision: int64(a.Revision), Body: a})
	}
	return docs, nil
}

func (x *GroupIndexer) ListIDs(ctx context.Context, after string, limit int) ([]string, error) {
	return listUUIDs(ctx, x.ids, after, limit)
}

// DomainIndexer indexes email domain aggregates. Domains are keyed by name.
type DomainIndexer struct {
	index  string
	names  nameLister
	loader domainLoader
}

func NewDomainIndexer(index string, names nameLister, loader domainLoader) *DomainIndexer {
	return &DomainIndexer{index: index, names: names, loader: loader}
}

func (x *DomainIndexer) Entity() domain.EntityType { return domain.EntityDomains }
func (x *DomainIndexer) Index() string             { return x.index }

func (x *DomainIndexer) Documents(ctx context.Context, ids []string) ([]search.Document, error) {
	aggs, err := x.loader.Domains(ctx, ids)
	if err != nil {
		return nil, err
	}
	docs := make([]search.Document, 0, len(aggs))
	for _, a := range aggs {
		docs = append(docs, search.Document{ID: a.Domain, Revision: int64(a.Revision), Body: a})
	}
	return docs, nil
}

func (x *DomainIndexer) ListIDs(ctx context.Context, after string, limit int) ([]string, error) {
	return x.names.ListNames(ctx, after, limit)
}

func parseUUIDs(ids []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		u, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse id %q: %w", id, err)
		}
		out = append(out, u)
	}
	return out, nil
}

func listUUIDs(ctx context.Context, l uuidLister, after string, limit int) ([]string, error) {
	start := uuid.Nil
	if after != "" {
		u, err := uuid.Parse(after)
		if err != nil {
			return nil, fmt.Errorf("parse cursor %q: %w", after, err)
		}
		start = u
	}
	ids, err := l.ListIDs(ctx, start, limit)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out, nil
}
