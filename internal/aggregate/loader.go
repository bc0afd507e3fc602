// Package aggregate materializes user, group and domain aggregates from their
// backing rows.
package aggregate

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/users-resources/internal/domain"
)

const defaultDomainCacheSize = 1024

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
	GetProfilesByUserIDs(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]domain.UserProfile, error)
	CountByDomains(ctx context.Context, domains []string) (map[string]domain.DomainUserCounts, error)
}

type groupRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Group, error)
	CountMembers(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

type domainRepo interface {
	GetByNames(ctx context.Context, names []string) (map[string]domain.Domain, error)
}

// Loader reads rows and computes aggregates. Ids that no longer exist are
// left out of the result.
type Loader struct {
	users   userRepo
	groups  groupRepo
	domains domainRepo
}

// NewLoader creates a Loader.
func NewLoader(users userRepo, groups groupRepo, domains domainRepo) *Loader {
	return &Loader{users: users, groups: groups, domains: domains}
}

// Users loads user aggregates with no memoization.
func (l *Loader) Users(ctx context.Context, ids []uuid.UUID) ([]domain.UserAggregate, error) {
	return l.NewScope().Users(ctx, ids)
}

// Groups loads group aggregates.
func (l *Loader) Groups(ctx context.Context, ids []uuid.UUID) ([]domain.GroupAggregate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	groups, err := l.groups.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load groups: %w", err)
	}
	counts, err := l.groups.CountMembers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count members: %w", err)
	}

	out := make([]domain.GroupAggregate, 0, len(groups))
	for _, g := range groups {
		out = append(out, domain.NewGroupAggregate(g, counts[g.ID]))
	}
	return out, nil
}

// Domains loads domain aggregates.
func (l *Loader) Domains(ctx context.Context, names []string) ([]domain.DomainAggregate, error) {
	if len(names) == 0 {
		return nil, nil
	}
	rows, err := l.domains.GetByNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("load domains: %w", err)
	}
	counts, err := l.users.CountByDomains(ctx, names)
	if err != nil {
		return nil, err
	}

	out := make([]domain.DomainAggregate, 0, len(rows))
	for _, name := range names {
		d, ok := rows[name]
		if !ok {
			continue
		}
		out = append(out, domain.NewDomainAggregate(d, counts[name]))
	}
	return out, nil
}

// Scope memoizes domain rows across several user loads, for example across
// the pages of an index rebuild. A scope must not outlive the batch job that
// created it.
type Scope struct {
	l       *Loader
	domains *lru.Cache[string, *domain.Domain]
}

// NewScope starts a memoization scope.
func (l *Loader) NewScope() *Scope {
	cache, _ := lru.New[string, *domain.Domain](defaultDomainCacheSize)
	return &Scope{l: l, domains: cache}
}

// Users loads user aggregates, fetching each email domain at most once per scope.
func (s *Scope) Users(ctx context.Context, ids []uuid.UUID) ([]domain.UserAggregate, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	users, err := s.l.users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	if len(users) == 0 {
		return nil, nil
	}

	found := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		found = append(found, u.ID)
	}
	profiles, err := s.l.users.GetProfilesByUserIDs(ctx, found)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	if err := s.warmDomains(ctx, users); err != nil {
		return nil, err
	}

	out := make([]domain.UserAggregate, 0, len(users))
	for _, u := range users {
		var profile *domain.UserProfile
		if p, ok := profiles[u.ID]; ok {
			profile = &p
		}
		dom, _ := s.domains.Get(u.Domain)
		out = append(out, domain.NewUserAggregate(u, profile, dom))
	}
	return out, nil
}

func (s *Scope) warmDomains(ctx context.Context, users []domain.User) error {
	var missing []string
	seen := make(map[string]struct{})
	for _, u := range users {
		if u.Domain == "" {
			continue
		}
		if _, ok := seen[u.Domain]; ok {
			continue
		}
		seen[u.Domain] = struct{}{}
		if !s.domains.Contains(u.Domain) {
			missing = append(missing, u.Domain)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	rows, err := s.l.domains.GetByNames(ctx, missing)
	if err != nil {
		return fmt.Errorf("load user domains: %w", err)
	}
	for _, name := range missing {
		if d, ok := rows[name]; ok {
			s.domains.Add(name, &d)
		} else {
			// Unknown domains are cached too so they are not fetched again.
			s.domains.Add(name, nil)
		}
	}
	return nil
}
