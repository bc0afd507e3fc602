package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/search"
	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

// SearchResult is one page of user aggregates.
type SearchResult struct {
	Total uint64
	Page  int
	Size  int
	Users []domain.UserAggregate
}

// Search returns active, confirmed users matching the query.
func (s *Service) Search(ctx context.Context, in SearchInput) (*SearchResult, error) {
	return s.searchIndex(ctx, in, map[string]bool{"active": true, "confirmed": true})
}

// SearchAll returns every user matching the query, including blocked and
// unconfirmed accounts. Moderators only.
func (s *Service) SearchAll(ctx context.Context, in SearchInput) (*SearchResult, error) {
	if !ctxutil.CanModerate(ctx) {
		return nil, domain.ErrForbidden
	}
	return s.searchIndex(ctx, in, nil)
}

func (s *Service) searchIndex(ctx context.Context, in SearchInput, bools map[string]bool) (*SearchResult, error) {
	in = in.normalize()

	res, err := s.search.Search(ctx, s.index, search.Query{
		Text:  in.Query,
		Bools: bools,
		From:  (in.Page - 1) * in.Size,
		Size:  in.Size,
	})
	if err != nil {
		return nil, fmt.Errorf("user.Search: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(res.Hits))
	for _, h := range res.Hits {
		id, err := uuid.Parse(h.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	users, err := s.loader.Users(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("user.Search: %w", err)
	}

	return &SearchResult{
		Total: res.Total,
		Page:  in.Page,
		Size:  in.Size,
		Users: users,
	}, nil
}
