// Package search keeps denormalized aggregates in bleve indices.
//
// Documents carry an external revision. Writing a revision older than the
// stored one is rejected as a conflict; an equal revision overwrites, since
// rows owned by an aggregate change its document without bumping the parent
// version. Callers treat conflicts as non-fatal because the newer write
// already landed.
package search

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

var (
	// ErrConflict marks a rejected write carrying an older revision.
	ErrConflict = errors.New("index version conflict")
	// ErrIndexNotFound is returned for operations on an index that was not created.
	ErrIndexNotFound = errors.New("index not found")
)

// ConflictError lists the documents whose write was rejected.
type ConflictError struct {
	Index string
	IDs   []string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %d document(s) rejected: %v", e.Index, len(e.IDs), ErrConflict)
}

func (e *ConflictError) Is(target error) bool { return target == ErrConflict }

// Document is one entry of a bulk write.
type Document struct {
	ID       string
	Revision int64
	Body     any
}

// BulkResult reports the outcome of a bulk write per document id.
type BulkResult struct {
	Succeeded []string
	Conflicts []string
}

// Query selects documents. An empty Text matches everything; Bools adds
// exact boolean field filters.
type Query struct {
	Text  string
	Bools map[string]bool
	From  int
	Size  int
}

// Hit is a matching document id with its score.
type Hit struct {
	ID    string
	Score float64
}

// Result is one page of hits.
type Result struct {
	Total uint64
	Hits  []Hit
}

type versionedIndex struct {
	mu  sync.Mutex
	idx bleve.Index
}

// Client manages named bleve indices. With an empty dir every index lives
// in memory.
type Client struct {
	dir string

	mu      sync.RWMutex
	indices map[string]*versionedIndex
}

// NewClient creates a client storing indices under dir.
func NewClient(dir string) *Client {
	return &Client{dir: dir, indices: make(map[string]*versionedIndex)}
}

// Exists reports whether the index was created.
func (c *Client) Exists(_ context.Context, name string) (bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.indices[name]
	return ok, nil
}

// Create opens or creates the index. Creating an existing index is a no-op.
func (c *Client) Create(_ context.Context, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.indices[name]; ok {
		return nil
	}

	idx, err := c.open(name)
	if err != nil {
		return fmt.Errorf("create index %s: %w", name, err)
	}
	c.indices[name] = &versionedIndex{idx: idx}
	return nil
}

func (c *Client) open(name string) (bleve.Index, error) {
	mapping := bleve.NewIndexMapping()
	if c.dir == "" {
		return bleve.NewMemOnly(mapping)
	}

	path := filepath.Join(c.dir, name)
	if _, err := os.Stat(path); err == nil {
		return bleve.Open(path)
	}
	return bleve.New(path, mapping)
}

// Drop closes the index and removes its data.
func (c *Client) Drop(_ context.Context, name string) error {
	c.mu.Lock()
	vi, ok := c.indices[name]
	delete(c.indices, name)
	c.mu.Unlock()

	if !ok {
		return nil
	}
	if err := vi.idx.Close(); err != nil {
		return fmt.Errorf("close index %s: %w", name, err)
	}
	if c.dir != "" {
		if err := os.RemoveAll(filepath.Join(c.dir, name)); err != nil {
			return fmt.Errorf("remove index %s: %w", name, err)
		}
	}
	return nil
}

func (c *Client) get(name string) (*versionedIndex, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	vi, ok := c.indices[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrIndexNotFound)
	}
	return vi, nil
}

// BulkIndex upserts docs in one batch. Documents whose revision is older
// than the stored one are skipped and reported; the returned error then
// wraps ErrConflict while the rest of the batch is still written.
func (c *Client) BulkIndex(ctx context.Context, name string, docs []Document) (BulkResult, error) {
	vi, err := c.get(name)
	if err != nil {
		return BulkResult{}, err
	}

	vi.mu.Lock()
	defer vi.mu.Unlock()

	var res BulkResult
	batch := vi.idx.NewBatch()
	for _, d := range docs {
		if err := ctx.Err(); err != nil {
			return BulkResult{}, err
		}

		stored, ok, err := storedRevision(vi.idx, d.ID)
		if err != nil {
			return BulkResult{}, fmt.Errorf("%s: read revision %s: %w", name, d.ID, err)
		}
		if ok && d.Revision < stored {
			res.Conflicts = append(res.Conflicts, d.ID)
			continue
		}

		body, err := toFields(d.Body)
		if err != nil {
			return BulkResult{}, fmt.Errorf("%s: encode %s: %w", name, d.ID, err)
		}
		if err := batch.Index(d.ID, body); err != nil {
			return BulkResult{}, fmt.Errorf("%s: index %s: %w", name, d.ID, err)
		}
		batch.SetInternal(revisionKey(d.ID), encodeRevision(d.Revision))
		res.Succeeded = append(res.Succeeded, d.ID)
	}

	if batch.Size() > 0 {
		if err := vi.idx.Batch(batch); err != nil {
			return BulkResult{}, fmt.Errorf("%s: bulk index: %w", name, err)
		}
	}

	if len(res.Conflicts) > 0 {
		return res, &ConflictError{Index: name, IDs: res.Conflicts}
	}
	return res, nil
}

// BulkDelete removes ids in one batch. Missing ids are ignored.
func (c *Client) BulkDelete(_ context.Context, name string, ids []string) error {
	vi, err := c.get(name)
	if err != nil {
		return err
	}

	vi.mu.Lock()
	defer vi.mu.Unlock()

	batch := vi.idx.NewBatch()
	for _, id := range ids {
		batch.Delete(id)
		batch.DeleteInternal(revisionKey(id))
	}
	if err := vi.idx.Batch(batch); err != nil {
		return fmt.Errorf("%s: bulk delete: %w", name, err)
	}
	return nil
}

// IndexSingle upserts one document.
func (c *Client) IndexSingle(ctx context.Context, name string, doc Document) error {
	_, err := c.BulkIndex(ctx, name, []Document{doc})
	return err
}

// DeleteSingle removes one document.
func (c *Client) DeleteSingle(ctx context.Context, name, id string) error {
	return c.BulkDelete(ctx, name, []string{id})
}

// Revision returns the stored revision of a document.
func (c *Client) Revision(_ context.Context, name, id string) (int64, bool, error) {
	vi, err := c.get(name)
	if err != nil {
		return 0, false, err
	}
	return storedRevision(vi.idx, id)
}

// Count returns the number of documents in the index.
func (c *Client) Count(_ context.Context, name string) (uint64, error) {
	vi, err := c.get(name)
	if err != nil {
		return 0, err
	}
	return vi.idx.DocCount()
}

// Search runs q against the index.
func (c *Client) Search(ctx context.Context, name string, q Query) (Result, error) {
	vi, err := c.get(name)
	if err != nil {
		return Result{}, err
	}

	var bq query.Query
	if q.Text == "" {
		bq = bleve.NewMatchAllQuery()
	} else {
		bq = bleve.NewQueryStringQuery(q.Text)
	}
	if len(q.Bools) > 0 {
		fields := make([]string, 0, len(q.Bools))
		for f := range q.Bools {
			fields = append(fields, f)
		}
		sort.Strings(fields)

		conj := bleve.NewConjunctionQuery(bq)
		for _, f := range fields {
			fq := bleve.NewBoolFieldQuery(q.Bools[f])
			fq.SetField(f)
			conj.AddQuery(fq)
		}
		bq = conj
	}

	size := q.Size
	if size <= 0 {
		size = 10
	}
	req := bleve.NewSearchRequestOptions(bq, size, q.From, false)
	req.SortBy([]string{"-_score", "_id"})

	sr, err := vi.idx.SearchInContext(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("%s: search: %w", name, err)
	}

	res := Result{Total: sr.Total, Hits: make([]Hit, 0, len(sr.Hits))}
	for _, h := range sr.Hits {
		res.Hits = append(res.Hits, Hit{ID: h.ID, Score: h.Score})
	}
	return res, nil
}

// Close closes every open index.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for name, vi := range c.indices {
		if err := vi.idx.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close index %s: %w", name, err))
		}
	}
	c.indices = make(map[string]*versionedIndex)
	return errors.Join(errs...)
}

func revisionKey(id string) []byte {
	return []byte("rev:" + id)
}

func encodeRevision(rev int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(rev))
	return buf
}

func storedRevision(idx bleve.Index, id string) (int64, bool, error) {
	raw, err := idx.GetInternal(revisionKey(id))
	if err != nil {
		return 0, false, err
	}
	if len(raw) != 8 {
		return 0, false, nil
	}
	return int64(binary.BigEndian.Uint64(raw)), true, nil
}

// toFields flattens a document body into the generic form bleve maps by
// field name, honoring json tags.
func toFields(body any) (map[string]any, error) {
	if m, ok := body.(map[string]any); ok {
		return m, nil
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
