package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/adapter/postgres/audit"
	"github.com/heartmarshall/users-resources/internal/adapter/postgres/emaildomain"
	"github.com/heartmarshall/users-resources/internal/adapter/postgres/group"
	"github.com/heartmarshall/users-resources/internal/adapter/postgres/lockstore"
	"github.com/heartmarshall/users-resources/internal/adapter/postgres/notify"
	userrepo "github.com/heartmarshall/users-resources/internal/adapter/postgres/user"
	"github.com/heartmarshall/users-resources/internal/aggregate"
	"github.com/heartmarshall/users-resources/internal/changes"
	"github.com/heartmarshall/users-resources/internal/config"
	"github.com/heartmarshall/users-resources/internal/indexing"
	"github.com/heartmarshall/users-resources/internal/lock"
	"github.com/heartmarshall/users-resources/internal/moderation"
	"github.com/heartmarshall/users-resources/internal/search"
	domainsvc "github.com/heartmarshall/users-resources/internal/service/emaildomain"
	groupsvc "github.com/heartmarshall/users-resources/internal/service/group"
	usersvc "github.com/heartmarshall/users-resources/internal/service/user"
	"github.com/heartmarshall/users-resources/internal/tasks"
)

// Container holds the wired application graph shared by the server and the
// command line tools.
type Container struct {
	Config     *config.Config
	Log        *slog.Logger
	Pool       *pgxpool.Pool
	Tx         *postgres.TxManager
	Search     *search.Client
	Runtime    *tasks.Runtime
	Dispatcher *indexing.Dispatcher
	Locks      *lock.Factory
	LockStore  lock.Store
	Users      *usersvc.Service
	Groups     *groupsvc.Service
	Domains    *domainsvc.Service
}

// Build connects to the database, opens the search indices and wires every
// component. The reindex commit hook is installed before Build returns; a
// failure to install it aborts startup.
func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	c := &Container{Config: cfg, Log: logger, Pool: pool}
	if err := postgres.RegisterPoolMetrics(prometheus.DefaultRegisterer, pool); err != nil {
		c.Close()
		return nil, err
	}
	if err := c.wire(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func (c *Container) wire(ctx context.Context) error {
	cfg, logger := c.Config, c.Log

	// Repositories.
	users := userrepo.New(c.Pool)
	groups := group.New(c.Pool)
	domains := emaildomain.New(c.Pool)
	audits := audit.New(c.Pool)
	publisher := notify.New(c.Pool, cfg.Notify.Channel)

	c.Tx = postgres.NewTxManager(c.Pool)
	c.Search = search.NewClient(cfg.Search.Path)
	c.Runtime = tasks.New(tasks.Config{
		Workers:        cfg.Tasks.Workers,
		MaxRetries:     cfg.Tasks.MaxRetries,
		RetryBaseDelay: cfg.Tasks.RetryBaseDelay,
	}, logger)

	// Indexing.
	loader := aggregate.NewLoader(users, groups, domains)
	c.Dispatcher = indexing.NewDispatcher(logger, c.Search, c.Runtime, publisher, cfg.Search.BulkSize,
		indexing.NewUserIndexer(cfg.Search.UsersIndex, users, loader),
		indexing.NewGroupIndexer(cfg.Search.GroupsIndex, groups, loader),
		indexing.NewDomainIndexer(cfg.Search.DomainsIndex, domains, loader),
	)
	registrar := indexing.NewRegistrar(logger, changes.NewTracker(users, logger), c.Dispatcher)
	if err := registrar.Install(c.Tx); err != nil {
		return fmt.Errorf("install reindex hook: %w", err)
	}
	if err := c.Dispatcher.EnsureIndices(ctx); err != nil {
		return fmt.Errorf("ensure indices: %w", err)
	}

	// Moderation.
	switch cfg.Moderation.LockBackend {
	case "memory":
		c.LockStore = lock.NewMemoryStore()
	default:
		c.LockStore = lockstore.New(c.Pool)
	}
	c.Locks = lock.NewFactory(c.LockStore, lock.Config{
		KeyPrefix:      cfg.Moderation.LockKeyPrefix,
		DefaultTimeout: cfg.Moderation.DefaultTimeout(),
		RenewalTimeout: cfg.Moderation.RenewalTimeout(),
	})

	builder := moderation.NewBuilder()
	if err := builder.Discover(moderation.NewAuditExtension(audits)); err != nil {
		return fmt.Errorf("discover moderation extensions: %w", err)
	}
	registry := builder.Build()
	logger.Info("moderation registry built", slog.Any("actions", registry.Actions()))

	executor := moderation.NewExecutor(logger, registry, c.Locks, c.Tx, c.Runtime, cfg.Moderation.RenewalTimeout())

	// Services.
	c.Domains = domainsvc.NewService(logger, domains, loader, c.Search, c.Dispatcher, c.Tx, cfg.Search.DomainsIndex)
	c.Groups = groupsvc.NewService(logger, groups, loader, c.Search, c.Dispatcher, c.Tx, cfg.Search.GroupsIndex)
	c.Users = usersvc.NewService(logger, usersvc.Deps{
		Users:      users,
		Loader:     loader,
		Search:     c.Search,
		Locks:      c.Locks,
		Actions:    executor,
		Rebuilder:  c.Dispatcher,
		Tx:         c.Tx,
		Index:      cfg.Search.UsersIndex,
		Components: []usersvc.Component{usersvc.NewDomainComponent(c.Domains)},
	})

	return nil
}

// Indices returns the configured index names.
func (c *Container) Indices() []string {
	return []string{c.Config.Search.UsersIndex, c.Config.Search.GroupsIndex, c.Config.Search.DomainsIndex}
}

// Close stops the task runtime, waiting for in-flight tasks, then releases
// the search index and the database pool.
func (c *Container) Close() {
	if c.Runtime != nil {
		c.Runtime.Stop()
	}
	if c.Search != nil {
		if err := c.Search.Close(); err != nil {
			c.Log.Warn("close search index", slog.String("error", err.Error()))
		}
	}
	if ms, ok := c.LockStore.(*lock.MemoryStore); ok {
		_ = ms.Close()
	}
	if c.Pool != nil {
		c.Pool.Close()
	}
}
