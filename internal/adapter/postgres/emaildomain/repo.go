// Package emaildomain implements the email Domain repository using PostgreSQL.
package emaildomain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/users-resources/internal/adapter/postgres"
	"github.com/heartmarshall/users-resources/internal/domain"
)

const domainsTable = "domains"

var domainColumns = []string{
	"name", "tld", "status", "category", "flagged", "flagged_source", "version", "created_at", "updated_at",
}

// Repo provides email domain persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new email domain repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// GetByName returns a domain by name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Domain, error) {
	var row domainRow
	query := postgres.Builder.Select(domainColumns...).From(domainsTable).Where(squirrel.Eq{"name": name})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "domain", name)
	}
	d := row.toDomain()
	return &d, nil
}

// GetByNames returns the known domains among names, keyed by name.
func (r *Repo) GetByNames(ctx context.Context, names []string) (map[string]domain.Domain, error) {
	out := make(map[string]domain.Domain, len(names))
	if len(names) == 0 {
		return out, nil
	}

	var rows []domainRow
	query := postgres.Builder.Select(domainColumns...).From(domainsTable).Where(squirrel.Eq{"name": names})
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &rows, query); err != nil {
		return nil, fmt.Errorf("get domains by names: %w", err)
	}
	for _, row := range rows {
		out[row.Name] = row.toDomain()
	}
	return out, nil
}

// ListNames returns up to limit domain names greater than after, in order.
func (r *Repo) ListNames(ctx context.Context, after string, limit int) ([]string, error) {
	var names []string
	query := postgres.Builder.Select("name").From(domainsTable).
		Where(squirrel.Gt{"name": after}).
		OrderBy("name").
		Limit(uint64(limit))
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), &names, query); err != nil {
		return nil, fmt.Errorf("list domain names: %w", err)
	}
	return names, nil
}

// Create inserts a new domain.
func (r *Repo) Create(ctx context.Context, d *domain.Domain) (*domain.Domain, error) {
	var row domainRow
	query := postgres.Builder.Insert(domainsTable).
		Columns("name", "tld", "status", "category", "flagged", "flagged_source").
		Values(d.Name, d.TLD, int(d.Status), d.Category, d.Flagged, d.FlaggedSource).
		Suffix("RETURNING " + strings.Join(domainColumns, ", "))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "domain", d.Name)
	}

	created := row.toDomain()
	postgres.TrackNew(ctx, &created)
	return &created, nil
}

// Ensure inserts the domain unless a row with the same name exists.
// It reports whether a row was inserted.
func (r *Repo) Ensure(ctx context.Context, d *domain.Domain) (bool, error) {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.q),
		postgres.Builder.Insert(domainsTable).
			Columns("name", "tld", "status").
			Values(d.Name, d.TLD, int(d.Status)).
			Suffix("ON CONFLICT (name) DO NOTHING"))
	if err != nil {
		return false, postgres.MapError(err, "domain", d.Name)
	}
	if n == 0 {
		return false, nil
	}
	postgres.TrackNew(ctx, d)
	return true, nil
}

// Update writes the moderation fields of d and bumps the row version.
func (r *Repo) Update(ctx context.Context, d *domain.Domain) (*domain.Domain, error) {
	var row domainRow
	query := postgres.Builder.Update(domainsTable).
		Set("status", int(d.Status)).
		Set("category", d.Category).
		Set("flagged", d.Flagged).
		Set("flagged_source", d.FlaggedSource).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"name": d.Name}).
		Suffix("RETURNING " + strings.Join(domainColumns, ", "))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.q), &row, query); err != nil {
		return nil, postgres.MapError(err, "domain", d.Name)
	}

	updated := row.toDomain()
	postgres.TrackDirty(ctx, &updated)
	return &updated, nil
}

// Delete removes a domain.
func (r *Repo) Delete(ctx context.Context, name string) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.q),
		postgres.Builder.Delete(domainsTable).Where(squirrel.Eq{"name": name}))
	if err != nil {
		return postgres.MapError(err, "domain", name)
	}
	if n == 0 {
		return fmt.Errorf("domain %s: %w", name, domain.ErrNotFound)
	}
	postgres.TrackDeleted(ctx, &domain.Domain{Name: name})
	return nil
}

type domainRow struct {
	Name          string    `db:"name"`
	TLD           string    `db:"tld"`
	Status        int       `db:"status"`
	Category      *string   `db:"category"`
	Flagged       bool      `db:"flagged"`
	FlaggedSource string    `db:"flagged_source"`
	Version       int       `db:"version"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (row domainRow) toDomain() domain.Domain {
	return domain.Domain{
		Name:          row.Name,
		TLD:           row.TLD,
		Status:        domain.DomainStatus(row.Status),
		Category:      row.Category,
		Flagged:       row.Flagged,
		FlaggedSource: row.FlaggedSource,
		Version:       row.Version,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
