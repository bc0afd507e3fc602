// Package emaildomain implements the email domains service.
package emaildomain

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/search"
	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

const maxPageSize = 100

type domainRepo interface {
	GetByName(ctx context.Context, name string) (*domain.Domain, error)
	Create(ctx context.Context, d *domain.Domain) (*domain.Domain, error)
	Ensure(ctx context.Context, d *domain.Domain) (bool, error)
	Update(ctx context.Context, d *domain.Domain) (*domain.Domain, error)
	Delete(ctx context.Context, name string) error
}

type aggregateLoader interface {
	Domains(ctx context.Context, names []string) ([]domain.DomainAggregate, error)
}

type searcher interface {
	Search(ctx context.Context, index string, q search.Query) (search.Result, error)
}

type indexRebuilder interface {
	Rebuild(ctx context.Context, t domain.EntityType) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements email domain operations. Domains are moderated, so every
// operation except Ensure requires a moderator.
type Service struct {
	log       *slog.Logger
	domains   domainRepo
	loader    aggregateLoader
	search    searcher
	rebuilder indexRebuilder
	tx        txManager
	index     string
}

// NewService creates a new email domain service instance.
func NewService(
	logger *slog.Logger,
	domains domainRepo,
	loader aggregateLoader,
	search searcher,
	rebuilder indexRebuilder,
	tx txManager,
	index string,
) *Service {
	return &Service{
		log:       logger.With("service", "emaildomain"),
		domains:   domains,
		loader:    loader,
		search:    search,
		rebuilder: rebuilder,
		tx:        tx,
		index:     index,
	}
}

// Input holds the moderation fields of a domain.
type Input struct {
	Status        domain.DomainStatus
	Category      *string
	Flagged       bool
	FlaggedSource string
}

// Validate validates the input.
func (i Input) Validate() error {
	if !i.Status.IsValid() {
		return domain.NewValidationError("status", "unknown status")
	}
	return nil
}

// Normalize lower-cases a domain name and derives its public suffix. It
// rejects names that are not below a public suffix, such as "co.uk".
func Normalize(name string) (normalized, tld string, err error) {
	name = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(name)), ".")
	if name == "" {
		return "", "", domain.NewValidationError("domain", "required")
	}
	if _, err := publicsuffix.EffectiveTLDPlusOne(name); err != nil {
		return "", "", domain.NewValidationError("domain", "not a registrable domain")
	}
	suffix, _ := publicsuffix.PublicSuffix(name)
	return name, suffix, nil
}

// Create registers a domain.
func (s *Service) Create(ctx context.Context, name string, in Input) (*domain.DomainAggregate, error) {
	if !ctxutil.CanModerate(ctx) {
		return nil, domain.ErrForbidden
	}
	name, tld, err := Normalize(name)
	if err != nil {
		return nil, err
	}
	if in.Status == 0 {
		in.Status = domain.DomainStatusNew
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.domains.Create(txCtx, &domain.Domain{
			Name:          name,
			TLD:           tld,
			Status:        in.Status,
			Category:      in.Category,
			Flagged:       in.Flagged,
			FlaggedSource: in.FlaggedSource,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("emaildomain.Create: %w", err)
	}

	s.log.InfoContext(ctx, "domain created", slog.String("domain", name))
	return s.Read(ctx, name)
}

// Ensure makes sure a row exists for the domain, creating it with the "new"
// status when missing. It runs in the caller's transaction.
func (s *Service) Ensure(ctx context.Context, name string) error {
	name, tld, err := Normalize(name)
	if err != nil {
		// Unregistrable domains are still recorded on the user; they just
		// get no domain row.
		return nil
	}
	created, err := s.domains.Ensure(ctx, &domain.Domain{Name: name, TLD: tld, Status: domain.DomainStatusNew})
	if err != nil {
		return fmt.Errorf("emaildomain.Ensure: %w", err)
	}
	if created {
		s.log.DebugContext(ctx, "domain registered", slog.String("domain", name))
	}
	return nil
}

// Read returns a domain aggregate.
func (s *Service) Read(ctx context.Context, name string) (*domain.DomainAggregate, error) {
	if !ctxutil.CanModerate(ctx) {
		return nil, domain.ErrForbidden
	}
	aggs, err := s.loader.Domains(ctx, []string{strings.ToLower(name)})
	if err != nil {
		return nil, fmt.Errorf("emaildomain.Read: %w", err)
	}
	if len(aggs) == 0 {
		return nil, fmt.Errorf("domain %s: %w", name, domain.ErrNotFound)
	}
	return &aggs[0], nil
}

// Update changes the moderation fields of a domain.
func (s *Service) Update(ctx context.Context, name string, in Input) (*domain.DomainAggregate, error) {
	if !ctxutil.CanModerate(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	name = strings.ToLower(name)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.domains.GetByName(txCtx, name)
		if err != nil {
			return err
		}
		d.Status = in.Status
		d.Category = in.Category
		d.Flagged = in.Flagged
		d.FlaggedSource = in.FlaggedSource
		_, err = s.domains.Update(txCtx, d)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("emaildomain.Update: %w", err)
	}
	return s.Read(ctx, name)
}

// Delete removes a domain. Users keep their email domain string.
func (s *Service) Delete(ctx context.Context, name string) error {
	if !ctxutil.IsAdmin(ctx) {
		return domain.ErrForbidden
	}
	name = strings.ToLower(name)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.domains.Delete(txCtx, name)
	})
	if err != nil {
		return fmt.Errorf("emaildomain.Delete: %w", err)
	}
	s.log.InfoContext(ctx, "domain deleted", slog.String("domain", name))
	return nil
}

// SearchResult is one page of domain aggregates.
type SearchResult struct {
	Total   uint64
	Domains []domain.DomainAggregate
}

// Search queries the domains index.
func (s *Service) Search(ctx context.Context, query string, page, size int) (*SearchResult, error) {
	if !ctxutil.CanModerate(ctx) {
		return nil, domain.ErrForbidden
	}
	if size <= 0 || size > maxPageSize {
		size = maxPageSize
	}
	if page <= 0 {
		page = 1
	}

	res, err := s.search.Search(ctx, s.index, search.Query{Text: query, From: (page - 1) * size, Size: size})
	if err != nil {
		return nil, fmt.Errorf("emaildomain.Search: %w", err)
	}

	names := make([]string, len(res.Hits))
	for i, h := range res.Hits {
		names[i] = h.ID
	}
	domains, err := s.loader.Domains(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("emaildomain.Search: %w", err)
	}
	return &SearchResult{Total: res.Total, Domains: domains}, nil
}

// RebuildIndex drops and refills the domains index.
func (s *Service) RebuildIndex(ctx context.Context) (int, error) {
	if !ctxutil.IsAdmin(ctx) {
		return 0, domain.ErrForbidden
	}
	n, err := s.rebuilder.Rebuild(ctx, domain.EntityDomains)
	if err != nil {
		return 0, fmt.Errorf("emaildomain.RebuildIndex: %w", err)
	}
	s.log.InfoContext(ctx, "domains index rebuilt", slog.Int("documents", n))
	return n, nil
}
