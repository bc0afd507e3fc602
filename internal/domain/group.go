package domain

import (
	"time"

	"github.com/google/uuid"
)

// Group is a named role that users can be members of.
type Group struct {
	ID          uuid.UUID
	Name        string
	Description string
	IsManaged   bool
	Version     int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GroupMembership links a user to a group. It changes both aggregates.
type GroupMembership struct {
	UserID    uuid.UUID
	GroupID   uuid.UUID
	CreatedAt time.Time
}
