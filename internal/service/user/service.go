// Package user implements the users service: CRUD, search and moderation.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/internal/lock"
	"github.com/heartmarshall/users-resources/internal/search"
	"github.com/heartmarshall/users-resources/internal/tasks"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	UpsertProfile(ctx context.Context, p *domain.UserProfile) (*domain.UserProfile, error)
	UpdateProfile(ctx context.Context, profileID uuid.UUID, fullName, affiliations string) error
}

// aggregateLoader materializes user aggregates.
type aggregateLoader interface {
	Users(ctx context.Context, ids []uuid.UUID) ([]domain.UserAggregate, error)
}

// searcher queries the users index.
type searcher interface {
	Search(ctx context.Context, index string, q search.Query) (search.Result, error)
}

// lockFactory hands out moderation mutexes.
type lockFactory interface {
	ForUser(id uuid.UUID) *lock.Mutex
}

// actionScheduler runs moderation callback chains in the background.
type actionScheduler interface {
	Schedule(ctx context.Context, userID uuid.UUID, action domain.ModerationAction) tasks.Task
}

// indexRebuilder rebuilds an entity index.
type indexRebuilder interface {
	Rebuild(ctx context.Context, t domain.EntityType) (int, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Deps groups the collaborators of the service.
type Deps struct {
	Users      userRepo
	Loader     aggregateLoader
	Search     searcher
	Locks      lockFactory
	Actions    actionScheduler
	Rebuilder  indexRebuilder
	Tx         txManager
	Index      string
	Components []Component
}

// Service implements user operations.
type Service struct {
	log        *slog.Logger
	users      userRepo
	loader     aggregateLoader
	search     searcher
	locks      lockFactory
	actions    actionScheduler
	rebuilder  indexRebuilder
	tx         txManager
	index      string
	components []Component
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, deps Deps) *Service {
	return &Service{
		log:        logger.With("service", "user"),
		users:      deps.Users,
		loader:     deps.Loader,
		search:     deps.Search,
		locks:      deps.Locks,
		actions:    deps.Actions,
		rebuilder:  deps.Rebuilder,
		tx:         deps.Tx,
		index:      deps.Index,
		components: deps.Components,
	}
}
