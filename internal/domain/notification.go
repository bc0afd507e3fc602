package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChangeNotification tells subsystems holding a denormalized copy of an entity
// that their copy may be stale.
type ChangeNotification struct {
	EntityType EntityType `json:"type"`
	ID         string     `json:"id"`
	Revision   int        `json:"revision"`
}

// AuditRecord logs a moderation action taken on a user.
type AuditRecord struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ActorID   *uuid.UUID
	Action    ModerationAction
	CreatedAt time.Time
}
