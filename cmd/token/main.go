// Command token issues a bearer token for an existing user. It is used to
// bootstrap the first administrator and to script moderation calls.
//
// Usage:
//
//	token --email=user@example.com --role=admin
//
// Requires the AUTH_JWT_SECRET and DATABASE_DSN environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/heartmarshall/users-resources/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/users-resources/internal/adapter/postgres/user"
	"github.com/heartmarshall/users-resources/internal/auth"
	"github.com/heartmarshall/users-resources/internal/config"
	"github.com/heartmarshall/users-resources/internal/domain"
	"github.com/heartmarshall/users-resources/pkg/ctxutil"
)

func main() {
	email := flag.String("email", "", "email of the user the token is issued for")
	role := flag.String("role", string(ctxutil.RoleUser), "role claim: user, moderator or admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: token --email=user@example.com [--role=admin]")
		os.Exit(1)
	}

	r := ctxutil.Role(*role)
	switch r {
	case ctxutil.RoleUser, ctxutil.RoleModerator, ctxutil.RoleAdmin:
	default:
		log.Fatalf("unknown role %q", *role)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	user, err := userrepo.New(pool).GetByEmail(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) {
		pool.Close()
		log.Fatalf("no user found with email %q", *email)
	}
	if err != nil {
		pool.Close()
		log.Fatalf("lookup user: %v", err)
	}

	manager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	token, err := manager.Issue(auth.Identity{UserID: user.ID, Role: r})
	if err != nil {
		pool.Close()
		log.Fatalf("issue token: %v", err)
	}

	fmt.Println(token)
}
