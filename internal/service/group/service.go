// Package group implements the groups service.
package group

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/search"
	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

const (
	maxNameLength        = 80
	maxDescriptionLength = 1000
	maxPageSize          = 100
)

type groupRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Group, error)
	Create(ctx context.Context, g *domain.Group) (*domain.Group, error)
	Update(ctx context.Context, g *domain.Group) (*domain.Group, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, groupID, userID uuid.UUID) error
	RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error
}

type aggregateLoader interface {
	Groups(ctx context.Context, ids []uuid.UUID) ([]domain.GroupAggregate, error)
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

// Service implements group operations. Writes are reserved to administrators.
type Service struct {
	log       *slog.Logger
	groups    groupRepo
	loader    aggregateLoader
	search    searcher
	rebuilder indexRebuilder
	tx        txManager
	index     string
}

// NewService creates a new group service instance.
func NewService(
	logger *slog.Logger,
	groups groupRepo,
	loader aggregateLoader,
	search searcher,
	rebuilder indexRebuilder,
	tx txManager,
	index string,
) *Service {
	return &Service{
		log:       logger.With("service", "group"),
		groups:    groups,
		loader:    loader,
		search:    search,
		rebuilder: rebuilder,
		tx:        tx,
		index:     index,
	}
}

// Input holds the writable group fields.
type Input struct {
	Name        string
	Description string
	IsManaged   bool
}

// Validate validates the group input.
func (i Input) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	switch {
	case name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len(name) > maxNameLength:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Create creates a group.
func (s *Service) Create(ctx context.Context, in Input) (*domain.GroupAggregate, error) {
	if !ctxutil.IsAdmin(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	g := &domain.Group{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		IsManaged:   in.IsManaged,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		_, err := s.groups.Create(txCtx, g)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("group.Create: %w", err)
	}

	s.log.InfoContext(ctx, "group created",
		slog.String("group_id", g.ID.String()),
		slog.String("name", g.Name),
	)
	return s.Read(ctx, g.ID)
}

// Read returns a group aggregate.
func (s *Service) Read(ctx context.Context, id uuid.UUID) (*domain.GroupAggregate, error) {
	aggs, err := s.loader.Groups(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("group.Read: %w", err)
	}
	if len(aggs) == 0 {
		return nil, fmt.Errorf("group %s: %w", id, domain.ErrNotFound)
	}
	return &aggs[0], nil
}

// Update changes the name and description of a group. Managed groups can
// only be changed by the system itself.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*domain.GroupAggregate, error) {
	if !ctxutil.IsAdmin(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		g, err := s.editable(txCtx, id)
		if err != nil {
			return err
		}
		g.Name = strings.TrimSpace(in.Name)
		g.Description = in.Description
		_, err = s.groups.Update(txCtx, g)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("group.Update: %w", err)
	}
	return s.Read(ctx, id)
}

// Delete removes a group and its memberships.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdmin(ctx) {
		return domain.ErrForbidden
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.editable(txCtx, id); err != nil {
			return err
		}
		return s.groups.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("group.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "group deleted", slog.String("group_id", id.String()))
	return nil
}

// AddMember adds a user to a group. Adding an existing member is a no-op.
func (s *Service) AddMember(ctx context.Context, groupID, userID uuid.UUID) error {
	if !ctxutil.IsAdmin(ctx) {
		return domain.ErrForbidden
	}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.groups.AddMember(txCtx, groupID, userID)
	})
	if err != nil {
		return fmt.Errorf("group.AddMember: %w", err)
	}
	return nil
}

// RemoveMember removes a user from a group.
func (s *Service) RemoveMember(ctx context.Context, groupID, userID uuid.UUID) error {
	if !ctxutil.IsAdmin(ctx) {
		return domain.ErrForbidden
	}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.groups.RemoveMember(txCtx, groupID, userID)
	})
	if err != nil {
		return fmt.Errorf("group.RemoveMember: %w", err)
	}
	return nil
}

// SearchResult is one page of group aggregates.
type SearchResult struct {
	Total  uint64
	Groups []domain.GroupAggregate
}

// Search queries the groups index.
func (s *Service) Search(ctx context.Context, query string, page, size int) (*SearchResult, error) {
	if size <= 0 || size > maxPageSize {
		size = maxPageSize
	}
	if page <= 0 {
		page = 1
	}

	res, err := s.search.Search(ctx, s.index, search.Query{Text: query, From: (page - 1) * size, Size: size})
	if err != nil {
		return nil, fmt.Errorf("group.Search: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(res.Hits))
	for _, h := range res.Hits {
		if id, err := uuid.Parse(h.ID); err == nil {
			ids = append(ids, id)
		}
	}
	groups, err := s.loader.Groups(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("group.Search: %w", err)
	}
	return &SearchResult{Total: res.Total, Groups: groups}, nil
}

// RebuildIndex drops and refills the groups index.
func (s *Service) RebuildIndex(ctx context.Context) (int, error) {
	if !ctxutil.IsAdmin(ctx) {
		return 0, domain.ErrForbidden
	}
	n, err := s.rebuilder.Rebuild(ctx, domain.EntityGroups)
	if err != nil {
		return 0, fmt.Errorf("group.RebuildIndex: %w", err)
	}
	s.log.InfoContext(ctx, "groups index rebuilt", slog.Int("documents", n))
	return n, nil
}

var errManaged = errors.New("group is managed by the system")

func (s *Service) editable(ctx context.Context, id uuid.UUID) (*domain.Group, error) {
	g, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.IsManaged && !ctxutil.IsSystem(ctx) {
		return nil, fmt.Errorf("%w: %w", domain.ErrForbidden, errManaged)
	}
	return g, nil
}
