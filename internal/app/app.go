package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/users-resources/internal/adapter/postgres/lockstore"
	"github.com/heartmarshall/users-resources/internal/auth"
	"github.com/heartmarshall/users-resources/internal/config"
	"github.com/heartmarshall/users-resources/internal/transport/middleware"
	"github.com/heartmarshall/users-resources/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, wires the
// container, serves HTTP until ctx is cancelled and then shuts down
// gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("build", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("lock_backend", cfg.Moderation.LockBackend),
	)

	c, err := Build(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}
	defer c.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.handler(limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if store, ok := c.LockStore.(*lockstore.Store); ok {
		g.Go(func() error {
			purgeLocks(gctx, logger, store, cfg.Moderation.DefaultTimeout())
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

func (c *Container) handler(limiter *middleware.RateLimiter) http.Handler {
	cfg, logger := c.Config, c.Log

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(c.Pool, c.Search, c.Indices(), BuildVersion()),
		Users:   rest.NewUserHandler(c.Users, logger),
		Groups:  rest.NewGroupHandler(c.Groups, logger),
		Domains: rest.NewDomainHandler(c.Domains, logger),
		Admin:   rest.NewAdminHandler(c.Users, c.Groups, c.Domains, logger),
	}, limiter.Limit(cfg.Server.ModerationRPM))

	var cors middleware.Middleware
	if cfg.CORS.AllowedOrigins != "" {
		cors = middleware.CORS(cfg.CORS)
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		cors,
		middleware.Auth(jwtManager),
		middleware.Logger(logger),
		middleware.Metrics,
	)(router)
}

// purgeLocks removes expired moderation locks until ctx is done. Expired
// rows never block acquisition, they only take space.
func purgeLocks(ctx context.Context, logger *slog.Logger, store *lockstore.Store, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := store.Purge(ctx)
			if err != nil {
				if ctx.Err() == nil {
					logger.Warn("purge expired locks", slog.String("error", err.Error()))
				}
				continue
			}
			if n > 0 {
				logger.Debug("purged expired locks", slog.Int64("count", n))
			}
		}
	}
}
