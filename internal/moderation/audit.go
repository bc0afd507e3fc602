package moderation

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/uow"
	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// AuditExtension records every moderation action in the audit log, inside
// the chain's unit of work.
type AuditExtension struct {
	audit auditLogger
}

// NewAuditExtension creates an AuditExtension.
func NewAuditExtension(audit auditLogger) *AuditExtension {
	return &AuditExtension{audit: audit}
}

// ModerationActions registers the audit callback for the actions that run
// a callback chain.
func (x *AuditExtension) ModerationActions() map[domain.ModerationAction][]Callback {
	out := make(map[domain.ModerationAction][]Callback)
	for _, a := range []domain.ModerationAction{domain.ActionBlock, domain.ActionApprove, domain.ActionRestore} {
		out[a] = []Callback{x.callback(a)}
	}
	return out
}

func (x *AuditExtension) callback(action domain.ModerationAction) Callback {
	return func(ctx context.Context, userID uuid.UUID, u *uow.UnitOfWork) error {
		rec := domain.AuditRecord{UserID: userID, Action: action}
		if actor, ok := ctxutil.UserIDFromCtx(ctx); ok {
			rec.ActorID = &actor
		}
		return x.audit.Log(u.Context(ctx), rec)
	}
}
