package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/users-resources/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active, confirmed user with a profile.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:          uuid.New(),
		Email:       "testuser-" + suffix + "@example.com",
		Active:      true,
		ConfirmedAt: &now,
		Domain:      "example.com",
		Preferences: domain.DefaultUserPreferences(),
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, active, confirmed_at, domain, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Active, user.ConfirmedAt, user.Domain, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO user_profiles (id, user_id, full_name) VALUES ($1, $2, $3)`,
		uuid.New(), user.ID, "Test User "+suffix,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert profile: %v", err)
	}

	return user
}

// SeedGroup creates a managed group.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	g := domain.Group{
		ID:        uuid.New(),
		Name:      "group-" + uniqueSuffix(),
		IsManaged: true,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO groups (id, name, is_managed, created_at, updated_at) VALUES ($1, $2, $3, $4, $5)`,
		g.ID, g.Name, g.IsManaged, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGroup insert: %v", err)
	}
	return g
}

// SeedDomain creates an email domain with the given status.
func SeedDomain(t *testing.T, pool *pgxpool.Pool, status domain.DomainStatus) domain.Domain {
	t.Helper()

	d := domain.Domain{
		Name:    uniqueSuffix() + ".example.org",
		TLD:     "org",
		Status:  status,
		Version: 1,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO domains (name, tld, status) VALUES ($1, $2, $3)`,
		d.Name, d.TLD, int(d.Status),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDomain insert: %v", err)
	}
	return d
}
