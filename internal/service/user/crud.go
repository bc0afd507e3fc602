package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

// Create registers a new account with its profile. Creation is an
// administrative operation.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.UserAggregate, error) {
	if !ctxutil.IsAdmin(ctx) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	prefs := domain.DefaultUserPreferences()
	if in.Preferences != nil {
		prefs = *in.Preferences
	}
	now := time.Now().UTC()
	u := &domain.User{
		ID:          uuid.New(),
		Email:       in.Email,
		Username:    in.Username,
		Active:      true,
		Preferences: prefs,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, c := range s.components {
			if cr, ok := c.(Creator); ok {
				if err := cr.OnCreate(txCtx, u); err != nil {
					return err
				}
			}
		}

		var err error
		created, err = s.users.Create(txCtx, u)
		if err != nil {
			return err
		}

		_, err = s.users.UpsertProfile(txCtx, &domain.UserProfile{
			UserID:       created.ID,
			FullName:     in.FullName,
			Affiliations: in.Affiliations,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.Create: %w", err)
	}

	s.log.InfoContext(ctx, "user created", slog.String("user_id", created.ID.String()))

	return s.Read(ctx, created.ID)
}

// Read returns the aggregate of a single user.
func (s *Service) Read(ctx context.Context, id uuid.UUID) (*domain.UserAggregate, error) {
	aggs, err := s.loader.Users(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, fmt.Errorf("user.Read: %w", err)
	}
	if len(aggs) == 0 {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	agg := &aggs[0]
	if !canRead(ctx, agg) {
		return nil, domain.ErrForbidden
	}

	for _, c := range s.components {
		if r, ok := c.(Reader); ok {
			if err := r.OnRead(ctx, agg); err != nil {
				return nil, fmt.Errorf("user.Read: %w", err)
			}
		}
	}
	return agg, nil
}

// Update changes the account fields of a user. Users may update themselves.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.UserAggregate, error) {
	if !canWrite(ctx, id) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.users.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		u := *old
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Username != nil {
			u.Username = in.Username
		}
		if in.Preferences != nil {
			u.Preferences = *in.Preferences
		}

		for _, c := range s.components {
			if up, ok := c.(Updater); ok {
				if err := up.OnUpdate(txCtx, old, &u); err != nil {
					return err
				}
			}
		}

		_, err = s.users.Update(txCtx, &u)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.Update: %w", err)
	}

	return s.Read(ctx, id)
}

// UpdateProfile changes the profile of a user. The profile row is owned by the
// user, so the user aggregate is reindexed after commit.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, in ProfileInput) (*domain.UserAggregate, error) {
	if !canWrite(ctx, id) {
		return nil, domain.ErrForbidden
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		p, err := s.users.GetProfile(txCtx, id)
		if errors.Is(err, domain.ErrNotFound) {
			_, err = s.users.UpsertProfile(txCtx, &domain.UserProfile{
				UserID:       id,
				FullName:     in.FullName,
				Affiliations: in.Affiliations,
			})
			return err
		}
		if err != nil {
			return err
		}
		return s.users.UpdateProfile(txCtx, p.ID, in.FullName, in.Affiliations)
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	return s.Read(ctx, id)
}

// Delete removes an account.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if !ctxutil.IsAdmin(ctx) {
		return domain.ErrForbidden
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.users.Delete(txCtx, id)
	})
	if err != nil {
		return fmt.Errorf("user.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
	return nil
}

// RebuildIndex drops and refills the users index.
func (s *Service) RebuildIndex(ctx context.Context) (int, error) {
	if !ctxutil.IsAdmin(ctx) {
		return 0, domain.ErrForbidden
	}

	start := time.Now()
	n, err := s.rebuilder.Rebuild(ctx, domain.EntityUsers)
	if err != nil {
		return 0, fmt.Errorf("user.RebuildIndex: %w", err)
	}

	s.log.InfoContext(ctx, "users index rebuilt",
		slog.Int("documents", n),
		slog.Duration("took", time.Since(start)),
	)
	return n, nil
}

// canRead reports whether the caller may see agg. Moderators see everyone;
// other callers see themselves and active, confirmed users whose profile is
// not hidden.
func canRead(ctx context.Context, agg *domain.UserAggregate) bool {
	if ctxutil.CanModerate(ctx) {
		return true
	}
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok && id == agg.ID {
		return true
	}
	return agg.Active && agg.Confirmed && agg.Visibility != domain.ProfileVisibilityHidden
}

func canWrite(ctx context.Context, id uuid.UUID) bool {
	if ctxutil.IsAdmin(ctx) {
		return true
	}
	caller, ok := ctxutil.UserIDFromCtx(ctx)
	return ok && caller == id
}
