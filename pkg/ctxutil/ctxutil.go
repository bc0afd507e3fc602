package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	roleKey      ctxKey = "role"
	systemKey    ctxKey = "system"
	requestIDKey ctxKey = "request_id"
)

// Role is the coarse permission level of the caller.
type Role string

const (
	RoleUser      Role = "user"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the caller role in the context.
func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx returns the caller role, RoleUser when absent.
func RoleFromCtx(ctx context.Context) Role {
	if r, ok := ctx.Value(roleKey).(Role); ok && r != "" {
		return r
	}
	return RoleUser
}

// WithSystemIdentity marks the context as running on behalf of the system
// itself (background tasks, CLI commands). System identity passes every
// permission check.
func WithSystemIdentity(ctx context.Context) context.Context {
	return context.WithValue(ctx, systemKey, true)
}

// IsSystem reports whether the context carries the system identity.
func IsSystem(ctx context.Context) bool {
	v, _ := ctx.Value(systemKey).(bool)
	return v
}

// IsAdmin reports whether the caller is an administrator or the system.
func IsAdmin(ctx context.Context) bool {
	return IsSystem(ctx) || RoleFromCtx(ctx) == RoleAdmin
}

// CanModerate reports whether the caller may run moderation actions.
func CanModerate(ctx context.Context) bool {
	if IsSystem(ctx) {
		return true
	}
	r := RoleFromCtx(ctx)
	return r == RoleModerator || r == RoleAdmin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
