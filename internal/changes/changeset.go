// Package changes classifies the rows touched by a transaction into the
// per-entity id sets that drive reindexing.
package changes

import (
	"slices"
	"sync"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/domain"
)

// ChangeSet holds the ids of updated and deleted entities of one transaction.
type ChangeSet struct {
	mu      sync.Mutex
	updated map[domain.EntityType]map[string]struct{}
	deleted map[domain.EntityType]map[string]struct{}
}

// NewChangeSet returns an empty change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{
		updated: make(map[domain.EntityType]map[string]struct{}),
		deleted: make(map[domain.EntityType]map[string]struct{}),
	}
}

// MarkUpdated records id as updated.
func (c *ChangeSet) MarkUpdated(t domain.EntityType, id string) {
	c.mark(c.updated, t, id)
}

// MarkDeleted records id as deleted.
func (c *ChangeSet) MarkDeleted(t domain.EntityType, id string) {
	c.mark(c.deleted, t, id)
}

func (c *ChangeSet) mark(m map[domain.EntityType]map[string]struct{}, t domain.EntityType, id string) {
	if id == "" {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	ids, ok := m[t]
	if !ok {
		ids = make(map[string]struct{})
		m[t] = ids
	}
	ids[id] = struct{}{}
}

// Updated returns the sorted ids of updated entities of type t. An id that
// was also deleted in the same transaction is reported only as deleted.
func (c *ChangeSet) Updated(t domain.EntityType) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.updated[t]))
	for id := range c.updated[t] {
		if _, gone := c.deleted[t][id]; gone {
			continue
		}
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Deleted returns the sorted ids of deleted entities of type t.
func (c *ChangeSet) Deleted(t domain.EntityType) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]string, 0, len(c.deleted[t]))
	for id := range c.deleted[t] {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

// Empty reports whether nothing was recorded.
func (c *ChangeSet) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, ids := range c.updated {
		if len(ids) > 0 {
			return false
		}
	}
	for _, ids := range c.deleted {
		if len(ids) > 0 {
			return false
		}
	}
	return true
}

// Merge adds every id recorded in other.
func (c *ChangeSet) Merge(other *ChangeSet) {
	for _, t := range EntityTypes {
		for _, id := range other.Updated(t) {
			c.MarkUpdated(t, id)
		}
		for _, id := range other.Deleted(t) {
			c.MarkDeleted(t, id)
		}
	}
}

// EntityTypes lists the tracked entity types in dispatch order.
var EntityTypes = []domain.EntityType{domain.EntityUsers, domain.EntityGroups, domain.EntityDomains}

type sessionKey struct{}

// ForSession returns the change set attached to s, creating it on first use.
func ForSession(s *postgres.Session) *ChangeSet {
	if cs, ok := s.Value(sessionKey{}).(*ChangeSet); ok {
		return cs
	}
	cs := NewChangeSet()
	s.SetValue(sessionKey{}, cs)
	return cs
}

// Take detaches and returns the change set of s, or nil when none was recorded.
func Take(s *postgres.Session) *ChangeSet {
	cs, _ := s.Value(sessionKey{}).(*ChangeSet)
	s.DeleteValue(sessionKey{})
	return cs
}

// Discard drops the change set of s without returning it.
func Discard(s *postgres.Session) {
	s.DeleteValue(sessionKey{})
}
