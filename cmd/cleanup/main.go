// Command cleanup removes expired moderation locks from the database. The
// server purges them periodically as well; this command is meant for an
// external cron job when the server runs with the memory lock backend or is
// scaled to zero.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/adapter/postgres/lockstore"
	"github.com/heartmarshall/users-resources/internal/app"
	"github.com/heartmarshall/users-resources/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	purged, err := lockstore.New(pool).Purge(ctx)
	if err != nil {
		logger.Error("purge failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("purge completed", slog.Int64("purged", purged))
}
