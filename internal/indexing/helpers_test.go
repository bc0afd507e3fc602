package indexing

import (
	"context"
	"log/slog"
	"os"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/search"
	"github.com/heartmarshall/users-resources/internal/tasks"
)

//go:generate moq -out task_runner_mock_test.go -pkg indexing . taskRunner
//go:generate moq -out notifier_mock_test.go -pkg indexing . notifier

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// stubIndexer serves documents from an in-memory row set.
type stubIndexer struct {
	entity domain.EntityType
	index  string

	mu   sync.Mutex
	rows map[string]int64
}

func newStubIndexer(entity domain.EntityType, rows map[string]int64) *stubIndexer {
	return &stubIndexer{entity: entity, index: entity.String(), rows: rows}
}

func (s *stubIndexer) Entity() domain.EntityType { return s.entity }
func (s *stubIndexer) Index() string             { return s.index }

func (s *stubIndexer) Documents(_ context.Context, ids []string) ([]search.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var docs []search.Document
	for _, id := range ids {
		if rev, ok := s.rows[id]; ok {
			docs = append(docs, search.Document{ID: id, Revision: rev, Body: map[string]any{"id": id}})
		}
	}
	return docs, nil
}

func (s *stubIndexer) ListIDs(_ context.Context, after string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var ids []string
	for id := range s.rows {
		if id > after {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// syncRunner runs every task inline and remembers what was submitted.
type syncRunner struct {
	mu    sync.Mutex
	names []string
}

func (r *syncRunner) Submit(name string, fn tasks.Func, _ tasks.Options) tasks.Task {
	r.mu.Lock()
	r.names = append(r.names, name)
	r.mu.Unlock()
	return doneTask{err: fn(context.Background())}
}

func (r *syncRunner) submitted() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.names)
}

type doneTask struct{ err error }

func (t doneTask) Wait() error { return t.err }

func newSearch(t *testing.T, indices ...string) *search.Client {
	t.Helper()
	c := search.NewClient("")
	t.Cleanup(func() { _ = c.Close() })
	for _, name := range indices {
		require.NoError(t, c.Create(context.Background(), name))
	}
	return c
}
