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

// transition applies a state change to u, or returns a validation error when
// u is already in the target state.
type transition func(u *domain.User, now time.Time) error

// Block blocks a user and schedules the block callback chain.
func (s *Service) Block(ctx context.Context, id uuid.UUID) error {
	return s.moderate(ctx, id, domain.ActionBlock, func(u *domain.User, now time.Time) error {
		if u.IsBlocked() {
			return domain.NewValidationError("id", "User is already blocked.")
		}
		u.Block(now)
		return nil
	})
}

// Restore lifts a block and schedules the restore callback chain.
func (s *Service) Restore(ctx context.Context, id uuid.UUID) error {
	return s.moderate(ctx, id, domain.ActionRestore, func(u *domain.User, now time.Time) error {
		if !u.IsBlocked() {
			return domain.NewValidationError("id", "User is not blocked.")
		}
		u.Activate(now)
		return nil
	})
}

// Approve verifies a user and schedules the approve callback chain.
func (s *Service) Approve(ctx context.Context, id uuid.UUID) error {
	return s.moderate(ctx, id, domain.ActionApprove, func(u *domain.User, now time.Time) error {
		if u.IsVerified() {
			return domain.NewValidationError("id", "User is already verified.")
		}
		u.Verify(now)
		return nil
	})
}

// Deactivate disables an account. No callback chain runs.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.setState(ctx, id, "deactivate", func(u *domain.User, _ time.Time) error {
		if !u.Active {
			return domain.NewValidationError("id", "User is already inactive.")
		}
		u.Deactivate()
		return nil
	})
}

// Activate enables and confirms an account. No callback chain runs.
func (s *Service) Activate(ctx context.Context, id uuid.UUID) error {
	return s.setState(ctx, id, "activate", func(u *domain.User, now time.Time) error {
		if u.Active && u.IsConfirmed() {
			return domain.NewValidationError("id", "User is already active.")
		}
		u.Activate(now)
		return nil
	})
}

// moderate runs a locked moderation action: take the user's moderation lock,
// then read the user, apply the transition and commit in one transaction, then
// hand the callback chain to the task runtime. The lock stays held until the
// chain finishes; the chain releases it.
func (s *Service) moderate(ctx context.Context, id uuid.UUID, action domain.ModerationAction, fn transition) error {
	op := "user." + action.String()
	if !ctxutil.CanModerate(ctx) {
		return domain.ErrForbidden
	}

	mu := s.locks.ForUser(id)
	if err := mu.Acquire(ctx, 0); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.apply(ctx, id, fn); err != nil {
		if relErr := mu.Release(context.WithoutCancel(ctx)); relErr != nil {
			s.log.WarnContext(ctx, "release moderation lock",
				slog.String("user_id", id.String()),
				slog.String("error", relErr.Error()),
			)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.actions.Schedule(ctx, id, action)

	s.log.InfoContext(ctx, "user moderated",
		slog.String("user_id", id.String()),
		slog.String("action", action.String()),
	)
	return nil
}

func (s *Service) setState(ctx context.Context, id uuid.UUID, name string, fn transition) error {
	op := "user." + name
	if !ctxutil.CanModerate(ctx) {
		return domain.ErrForbidden
	}

	if err := s.apply(ctx, id, fn); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, "user state changed",
		slog.String("user_id", id.String()),
		slog.String("op", name),
	)
	return nil
}

// apply reads the user, checks and applies fn and writes the result in one
// transaction. The write is version checked, so a concurrent change to the
// same row fails with domain.ErrConflict instead of being overwritten.
// A missing user is reported as forbidden so that callers cannot discover ids.
func (s *Service) apply(ctx context.Context, id uuid.UUID, fn transition) error {
	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		u, err := s.users.GetByID(txCtx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		if err != nil {
			return err
		}
		if err := fn(u, time.Now().UTC()); err != nil {
			return err
		}
		_, err = s.users.Update(txCtx, u)
		return err
	})
}
