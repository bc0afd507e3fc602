// Package audit implements the moderation audit log repository using PostgreSQL.
// It provides append-only operations for audit records.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/domain"
)

const auditTable = "moderation_audit_log"

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new audit repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	var row auditRow
	query := postgres.Builder.Insert(auditTable).
		Columns("id", "user_id", "actor_id", "action", "created_at").
		Values(record.ID, record.UserID, record.ActorID, string(record.Action), record.CreatedAt).
		Suffix("RETURNING id, user_id, actor_id, action, created_at")
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID)
	}

	return row.toDomain(), nil
}

// Log creates an audit record without returning it.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByUser returns audit records for a user, ordered by created_at DESC
// with pagination.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	var rows []auditRow
	query := postgres.Builder.Select("id", "user_id", "actor_id", "action", "created_at").
		From(auditTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query); err != nil {
		return nil, fmt.Errorf("get audit_records by user: %w", err)
	}

	records := make([]domain.AuditRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}

type auditRow struct {
	ID        uuid.UUID  `db:"id"`
	UserID    uuid.UUID  `db:"user_id"`
	ActorID   *uuid.UUID `db:"actor_id"`
	Action    string     `db:"action"`
	CreatedAt time.Time  `db:"created_at"`
}

func (row auditRow) toDomain() domain.AuditRecord {
	return domain.AuditRecord{
		ID:        row.ID,
		UserID:    row.UserID,
		ActorID:   row.ActorID,
		Action:    domain.ModerationAction(row.Action),
		CreatedAt: row.CreatedAt,
	}
}
