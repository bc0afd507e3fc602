package changes

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/domain"
)

// OwnerResolver finds the user owning a profile row.
type OwnerResolver interface {
	UserIDByProfileID(ctx context.Context, profileID uuid.UUID) (uuid.UUID, error)
}

// Tracker records the entities touched by a session before it commits.
type Tracker struct {
	owners OwnerResolver
	log    *slog.Logger
}

// NewTracker creates a Tracker.
func NewTracker(owners OwnerResolver, logger *slog.Logger) *Tracker {
	return &Tracker{owners: owners, log: logger.With("component", "change_tracker")}
}

// RecordPreCommit flushes the queued writes of s and classifies its new,
// dirty and deleted rows into the session's change set. Classification
// failures are logged per row and never abort the commit; only a failed
// flush is returned.
func (t *Tracker) RecordPreCommit(ctx context.Context, s *postgres.Session) error {
	if err := s.Flush(ctx); err != nil {
		return fmt.Errorf("flush before classification: %w", err)
	}

	cs := ForSession(s)
	for _, row := range s.NewRows() {
		t.classify(ctx, s, cs, row, false)
	}
	for _, row := range s.DirtyRows() {
		t.classify(ctx, s, cs, row, false)
	}
	for _, row := range s.DeletedRows() {
		t.classify(ctx, s, cs, row, true)
	}
	return nil
}

func (t *Tracker) classify(ctx context.Context, s *postgres.Session, cs *ChangeSet, row any, deleted bool) {
	switch r := row.(type) {
	case *domain.User:
		mark(cs, domain.EntityUsers, r.ID.String(), deleted)
	case *domain.Group:
		mark(cs, domain.EntityGroups, r.ID.String(), deleted)
	case *domain.Domain:
		mark(cs, domain.EntityDomains, r.Name, deleted)
	case *domain.UserProfile:
		owner, err := t.profileOwner(ctx, s, r)
		if err != nil {
			t.log.WarnContext(ctx, "skip profile change: owner lookup failed",
				slog.String("profile_id", r.ID.String()),
				slog.Any("error", err),
			)
			return
		}
		cs.MarkUpdated(domain.EntityUsers, owner.String())
	case *domain.GroupMembership:
		cs.MarkUpdated(domain.EntityUsers, r.UserID.String())
		cs.MarkUpdated(domain.EntityGroups, r.GroupID.String())
	default:
		t.log.DebugContext(ctx, "skip untracked row", slog.String("type", fmt.Sprintf("%T", row)))
	}
}

// profileOwner returns the owning user of p. Rows tracked without the owner
// are resolved against the database, which sees the flushed writes. The
// lookup runs under a savepoint so a failed query leaves the transaction
// usable for the commit.
func (t *Tracker) profileOwner(ctx context.Context, s *postgres.Session, p *domain.UserProfile) (uuid.UUID, error) {
	if id, ok := p.OwnerID(); ok {
		return id, nil
	}
	if t.owners == nil {
		return uuid.Nil, fmt.Errorf("profile %s has no owner and no resolver is configured", p.ID)
	}

	var owner uuid.UUID
	err := s.Savepoint(ctx, "profile_owner", func(ctx context.Context) error {
		var err error
		owner, err = t.owners.UserIDByProfileID(ctx, p.ID)
		return err
	})
	return owner, err
}

func mark(cs *ChangeSet, t domain.EntityType, id string, deleted bool) {
	if deleted {
		cs.MarkDeleted(t, id)
		return
	}
	cs.MarkUpdated(t, id)
}
