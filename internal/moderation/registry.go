// Package moderation runs the callback chains registered for moderation
// actions once the primary state change has committed.
package moderation

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/uow"
)

// Callback is a side effect of a moderation action. Every callback of one
// execution shares u; its writes must go through u.Context(ctx).
type Callback func(ctx context.Context, userID uuid.UUID, u *uow.UnitOfWork) error

// ActionProvider is implemented by extensions that contribute callbacks.
type ActionProvider interface {
	ModerationActions() map[domain.ModerationAction][]Callback
}

// Registry maps actions to their ordered callbacks. It is immutable.
type Registry struct {
	actions map[domain.ModerationAction][]Callback
}

// Callbacks returns the callbacks of action in registration order.
func (r *Registry) Callbacks(action domain.ModerationAction) []Callback {
	return slices.Clone(r.actions[action])
}

// Actions returns the actions that have at least one callback.
func (r *Registry) Actions() []domain.ModerationAction {
	out := make([]domain.ModerationAction, 0, len(r.actions))
	for a, cbs := range r.actions {
		if len(cbs) > 0 {
			out = append(out, a)
		}
	}
	slices.Sort(out)
	return out
}

// Builder collects callbacks during startup and produces a Registry.
type Builder struct {
	actions map[domain.ModerationAction][]Callback
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{actions: make(map[domain.ModerationAction][]Callback)}
}

// Register appends cb to the callbacks of action.
func (b *Builder) Register(action domain.ModerationAction, cb Callback) error {
	if !action.IsValid() {
		return fmt.Errorf("register moderation callback: unknown action %q: %w", action, domain.ErrValidation)
	}
	if cb == nil {
		return fmt.Errorf("register moderation callback for %s: nil callback: %w", action, domain.ErrValidation)
	}
	b.actions[action] = append(b.actions[action], cb)
	return nil
}

// Discover registers the callbacks of every extension that implements
// ActionProvider, in the order given. Other extensions are skipped.
func (b *Builder) Discover(extensions ...any) error {
	for _, ext := range extensions {
		p, ok := ext.(ActionProvider)
		if !ok {
			continue
		}
		provided := p.ModerationActions()
		actions := make([]domain.ModerationAction, 0, len(provided))
		for a := range provided {
			actions = append(actions, a)
		}
		slices.Sort(actions)

		for _, a := range actions {
			for _, cb := range provided[a] {
				if err := b.Register(a, cb); err != nil {
					return fmt.Errorf("extension %T: %w", ext, err)
				}
			}
		}
	}
	return nil
}

// Build returns a Registry holding a copy of the collected callbacks.
func (b *Builder) Build() *Registry {
	actions := make(map[domain.ModerationAction][]Callback, len(b.actions))
	for a, cbs := range b.actions {
		actions[a] = slices.Clone(cbs)
	}
	return &Registry{actions: actions}
}
