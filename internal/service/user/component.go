package user

import (
	"context"

	"github.com/heartmarshall/users-resources/internal/domain"
)

// Component extends the service. A component takes part in an operation by
// implementing the matching hook interface; it may implement any subset.
type Component any

// Creator runs inside the create transaction, before the row is written.
type Creator interface {
	OnCreate(ctx context.Context, u *domain.User) error
}

// Updater runs inside the update transaction, before the row is written.
type Updater interface {
	OnUpdate(ctx context.Context, old, u *domain.User) error
}

// Reader runs on every successful read.
type Reader interface {
	OnRead(ctx context.Context, agg *domain.UserAggregate) error
}

type domainEnsurer interface {
	Ensure(ctx context.Context, name string) error
}

// DomainComponent derives the email domain of a user and makes sure the
// domain row exists.
type DomainComponent struct {
	domains domainEnsurer
}

// NewDomainComponent creates a DomainComponent.
func NewDomainComponent(domains domainEnsurer) *DomainComponent {
	return &DomainComponent{domains: domains}
}

func (c *DomainComponent) OnCreate(ctx context.Context, u *domain.User) error {
	return c.sync(ctx, u)
}

func (c *DomainComponent) OnUpdate(ctx context.Context, old, u *domain.User) error {
	if old.Email == u.Email && u.Domain != "" {
		return nil
	}
	return c.sync(ctx, u)
}

func (c *DomainComponent) sync(ctx context.Context, u *domain.User) error {
	u.Domain = domain.EmailDomain(u.Email)
	if u.Domain == "" {
		return nil
	}
	return c.domains.Ensure(ctx, u.Domain)
}
