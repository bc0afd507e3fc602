// Command reindex rebuilds the search indices from the database. Without
// arguments every index is rebuilt; with -type only the named one.
//
// Usage:
//
//	reindex [-type=users|groups|domains]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/users-resources/internal/app"
	"github.com/heartmarshall/users-resources/internal/config"
	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

func main() {
	entity := flag.String("type", "", "entity type to rebuild (users, groups, domains)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer c.Close()

	ctx = ctxutil.WithSystemIdentity(ctx)

	if *entity != "" {
		t := domain.EntityType(*entity)
		if !t.IsValid() {
			logger.Error("unknown entity type", slog.String("type", *entity))
			c.Close()
			os.Exit(1)
		}
		n, err := c.Dispatcher.Rebuild(ctx, t)
		if err != nil {
			logger.Error("rebuild failed", slog.String("type", *entity), slog.String("error", err.Error()))
			c.Close()
			os.Exit(1)
		}
		logger.Info("rebuild completed", slog.String("type", *entity), slog.Int("documents", n))
		return
	}

	counts, err := c.Dispatcher.RebuildAll(ctx)
	if err != nil {
		logger.Error("rebuild failed", slog.String("error", err.Error()))
		c.Close()
		os.Exit(1)
	}
	for t, n := range counts {
		logger.Info("rebuild completed", slog.String("type", t.String()), slog.Int("documents", n))
	}
}
