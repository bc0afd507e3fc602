package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

// Identity is the authenticated caller carried by a bearer token.
type Identity struct {
	UserID uuid.UUID
	Role   ctxutil.Role
}

// Into stores the identity in ctx.
func (id Identity) Into(ctx context.Context) context.Context {
	ctx = ctxutil.WithUserID(ctx, id.UserID)
	return ctxutil.WithRole(ctx, id.Role)
}
