// Package group implements the Group repository using PostgreSQL.
// Membership rows are dependent rows touching both a user and a group.
package group

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/domain"
)

const (
	groupsTable      = "groups"
	membershipsTable = "group_memberships"
)

var groupColumns = []string{"id", "name", "description", "is_managed", "version", "created_at", "updated_at"}

// Repo provides group and membership persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new group repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Group operations
// ---------------------------------------------------------------------------

// GetByID returns a group by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	var row groupRow
	query := postgres.Builder.Select(groupColumns...).From(groupsTable).Where(squirrel.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "group", id)
	}
	g := row.toDomain()
	return &g, nil
}

// GetByIDs returns the groups with the given ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Group, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []groupRow
	query := postgres.Builder.Select(groupColumns...).From(groupsTable).
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id")
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query); err != nil {
		return nil, fmt.Errorf("get groups by ids: %w", err)
	}

	groups := make([]domain.Group, len(rows))
	for i, row := range rows {
		groups[i] = row.toDomain()
	}
	return groups, nil
}

// ListIDs returns up to limit group ids greater than after, in id order.
func (r *Repo) ListIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	query := postgres.Builder.Select("id").From(groupsTable).
		Where(squirrel.Gt{"id": after}).
		OrderBy("id").
		Limit(uint64(limit))
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &ids, query); err != nil {
		return nil, fmt.Errorf("list group ids: %w", err)
	}
	return ids, nil
}

// Create inserts a new group.
func (r *Repo) Create(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	var row groupRow
	query := postgres.Builder.Insert(groupsTable).
		Columns("id", "name", "description", "is_managed", "created_at", "updated_at").
		Values(g.ID, g.Name, g.Description, g.IsManaged, g.CreatedAt, g.UpdatedAt).
		Suffix("RETURNING " + strings.Join(groupColumns, ", "))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "group", g.ID)
	}

	created := row.toDomain()
	postgres.TrackNew(ctx, &created)
	return &created, nil
}

// Update writes name and description and bumps the row version.
func (r *Repo) Update(ctx context.Context, g *domain.Group) (*domain.Group, error) {
	var row groupRow
	query := postgres.Builder.Update(groupsTable).
		Set("name", g.Name).
		Set("description", g.Description).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": g.ID}).
		Suffix("RETURNING " + strings.Join(groupColumns, ", "))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "group", g.ID)
	}

	updated := row.toDomain()
	postgres.TrackDirty(ctx, &updated)
	return &updated, nil
}

// Delete removes a group. Membership rows cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.q),
		postgres.Builder.Delete(groupsTable).Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "group", id)
	}
	if n == 0 {
		return fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
	}
	postgres.TrackDeleted(ctx, &domain.Group{ID: id})
	return nil
}

// ---------------------------------------------------------------------------
// Membership operations
// ---------------------------------------------------------------------------

// AddMember adds userID to groupID. Adding an existing member is a no-op.
func (r *Repo) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	now := time.Now().UTC()
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.q),
		postgres.Builder.Insert(membershipsTable).
			Columns("user_id", "group_id", "created_at").
			Values(userID, groupID, now).
			Suffix("ON CONFLICT (user_id, group_id) DO NOTHING"))
	if err != nil {
		return postgres.MapError(err, "group_membership", groupID)
	}
	if n > 0 {
		postgres.TrackNew(ctx, &domain.GroupMembership{UserID: userID, GroupID: groupID, CreatedAt: now})
	}
	return nil
}

// RemoveMember removes userID from groupID.
func (r *Repo) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.q),
		postgres.Builder.Delete(membershipsTable).
			Where(squirrel.Eq{"user_id": userID, "group_id": groupID}))
	if err != nil {
		return postgres.MapError(err, "group_membership", groupID)
	}
	if n == 0 {
		return fmt.Errorf("group_membership %s/%s: %w", groupID, userID, domain.ErrNotFound)
	}
	postgres.TrackDeleted(ctx, &domain.GroupMembership{UserID: userID, GroupID: groupID})
	return nil
}

// CountMembers returns member counts keyed by group id.
func (r *Repo) CountMembers(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	out := make(map[uuid.UUID]int, len(groupIDs))
	if len(groupIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		GroupID uuid.UUID `db:"group_id"`
		Count   int       `db:"count"`
	}
	query := postgres.Builder.Select("group_id", "count(*) AS count").
		From(membershipsTable).
		Where(squirrel.Eq{"group_id": groupIDs}).
		GroupBy("group_id")
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query); err != nil {
		return nil, fmt.Errorf("count group members: %w", err)
	}
	for _, row := range rows {
		out[row.GroupID] = row.Count
	}
	return out, nil
}

type groupRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	IsManaged   bool      `db:"is_managed"`
	Version     int       `db:"version"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (row groupRow) toDomain() domain.Group {
	return domain.Group{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		IsManaged:   row.IsManaged,
		Version:     row.Version,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
